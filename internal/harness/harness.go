package harness

import (
	"fmt"
	"log/slog"

	"github.com/gebn/nibble/internal/config"
	"github.com/gebn/nibble/internal/expr"
	"github.com/gebn/nibble/internal/logging"
	"github.com/gebn/nibble/internal/testutil"
)

// Harness evaluates scenarios. Evaluations are numbered from 1 within each
// run so traces are reproducible.
type Harness struct {
	parser *expr.Parser
	seq    *testutil.Sequence
	logger *slog.Logger
}

// New returns a Harness logging to logger. A nil logger discards.
func New(logger *slog.Logger) *Harness {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Harness{
		parser: expr.NewParser(logger),
		seq:    &testutil.Sequence{},
		logger: logger,
	}
}

// Run evaluates scenario with a silent Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New(nil).Run(scenario)
}

// Run evaluates every case in scenario. The returned error is reserved for
// scenarios that cannot be run at all; case mismatches are reported in the
// Result.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	display := scenario.Display.Config()
	if err := display.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display: %w", err)
	}

	h.seq.Reset()
	result := NewResult()
	for i, c := range scenario.Cases {
		ev := h.evaluate(c.Expr, display)
		result.AddEvaluation(ev)
		if msg := check(i, c, ev); msg != "" {
			result.AddError(msg)
		}
	}

	h.logger.Info("scenario finished",
		"scenario", scenario.Name,
		"cases", len(scenario.Cases),
		"evaluations", h.seq.Current(),
		"failed", len(result.Errors),
	)
	return result, nil
}

func (h *Harness) evaluate(input string, display config.Display) Evaluation {
	ev := Evaluation{Seq: h.seq.Next(), Expr: input}

	v, err := h.parser.Parse(input)
	if err == nil {
		ev.Kind = v.Kind().String()
		ev.Text, err = display.Render(v)
	}
	if err != nil {
		ev.Kind, ev.Text = "", ""
		ev.Error = expr.Classify(err)
		ev.Message = err.Error()
	}

	h.logger.Debug("case evaluated",
		"seq", ev.Seq,
		"expr", ev.Expr,
		"kind", ev.Kind,
		"error", ev.Error,
	)
	return ev
}

// check compares ev with c and returns a description of any mismatch.
func check(index int, c Case, ev Evaluation) string {
	prefix := fmt.Sprintf("cases[%d] %q", index, c.Expr)

	if c.Error != "" {
		switch {
		case !ev.Failed():
			return fmt.Sprintf("%s: want error %s, got %q", prefix, c.Error, ev.Text)
		case ev.Error != c.Error:
			return fmt.Sprintf("%s: want error %s, got %s: %s", prefix, c.Error, ev.Error, ev.Message)
		}
		return ""
	}

	switch {
	case ev.Failed():
		return fmt.Sprintf("%s: want %q, got error %s: %s", prefix, c.Want, ev.Error, ev.Message)
	case ev.Text != c.Want:
		return fmt.Sprintf("%s: want %q, got %q", prefix, c.Want, ev.Text)
	case c.Kind != "" && ev.Kind != c.Kind:
		return fmt.Sprintf("%s: want kind %s, got %s", prefix, c.Kind, ev.Kind)
	}
	return ""
}
