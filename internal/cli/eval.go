package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gebn/nibble/internal/expr"
	"github.com/gebn/nibble/internal/quantity"
)

// EvalResult is the JSON payload of a successful evaluation.
type EvalResult struct {
	Expression string `json:"expression"`
	Kind       string `json:"kind"`
	Text       string `json:"text"`
}

// ErrorDetails is the JSON details member of a failed evaluation.
type ErrorDetails struct {
	// Class is "lex", "parse" or a value error code such as "ZERO_DURATION".
	Class string `json:"class"`

	// Literal and Position locate the offending token, when there is one.
	Literal  string `json:"literal,omitempty"`
	Position *int   `json:"position,omitempty"`

	// Symbol is the unit or format text a value error refers to.
	Symbol string `json:"symbol,omitempty"`
}

func runEval(opts *RootOptions, args []string, cmd *cobra.Command) error {
	if len(args) == 0 {
		return NewExitError(ExitCommandError, "no expression given")
	}
	input := strings.Join(args, " ")

	id := opts.IDs.Generate()
	logger := opts.Logger.With("eval_id", id)
	f := opts.formatter(cmd, id)

	logger.Info("evaluating", "expression", input)
	v, err := expr.NewParser(logger).Parse(input)
	var text string
	if err == nil {
		text, err = opts.Config.Display.Render(v)
	}
	if err != nil {
		details := errorDetails(err)
		logger.Info("evaluation failed", "class", details.Class)
		if ferr := f.Error(errorCode(details.Class), err.Error(), details); ferr != nil {
			return ferr
		}
		return &ExitError{Code: ExitFailure, Message: "evaluation failed", Err: err, Reported: true}
	}

	logger.Info("evaluated", "kind", v.Kind().String())
	if opts.Format == "json" {
		return f.Success(EvalResult{
			Expression: input,
			Kind:       v.Kind().String(),
			Text:       text,
		})
	}
	return f.Success(text)
}

// errorCode maps a failure class to the envelope's error code.
func errorCode(class string) string {
	switch class {
	case expr.ClassLex:
		return "E_LEX"
	case expr.ClassParse:
		return "E_PARSE"
	case expr.ClassInternal:
		return "E_INTERNAL"
	default:
		return "E_VALUE"
	}
}

func errorDetails(err error) ErrorDetails {
	d := ErrorDetails{Class: expr.Classify(err)}

	var le *expr.LexError
	var pe *expr.ParseError
	var qe *quantity.Error
	switch {
	case errors.As(err, &le):
		pos := le.Pos
		d.Literal, d.Position = le.Literal, &pos
	case errors.As(err, &pe):
		if pe.Token != nil {
			pos := pe.Token.Pos
			d.Literal, d.Position = pe.Token.Literal, &pos
		}
	case errors.As(err, &qe):
		d.Symbol = qe.Symbol
	}
	return d
}
