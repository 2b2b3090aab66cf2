package expr

import (
	"errors"
	"fmt"

	"github.com/gebn/nibble/internal/quantity"
)

// LexError reports input the lexer could not turn into a token. Lexing stops
// at the first one.
type LexError struct {
	// Literal is the offending text.
	Literal string

	// Pos is the character offset of Literal in the normalised input.
	Pos int

	// Line is the 1-based line of Literal.
	Line int

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%s '%s' at position %d", e.Message, e.Literal, e.Pos)
}

// ParseError reports a token sequence that matches no production.
type ParseError struct {
	// Token is the unexpected token, or nil at end of input.
	Token *Token

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: unexpected %s token with value '%s' after character %d",
		e.Message, e.Token.Type, e.Token.Literal, e.Token.Pos)
}

const (
	msgUnrecognised = "unrecognised token or unit"
	msgIllegal      = "illegal sequence"
	msgUnparseable  = "unable to parse expression"
	msgSenseless    = "expression is senseless"
)

func unexpected(tok Token) *ParseError {
	if tok.Type == EOF {
		return &ParseError{Message: msgSenseless}
	}
	return &ParseError{Token: &tok, Message: msgUnparseable}
}

// IsLexError returns true if err is or wraps a LexError.
func IsLexError(err error) bool {
	var le *LexError
	return errors.As(err, &le)
}

// IsParseError returns true if err is or wraps a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Failure classes returned by Classify alongside quantity error codes.
const (
	ClassLex      = "lex"
	ClassParse    = "parse"
	ClassInternal = "internal"
)

// Classify names the kind of failure err represents: ClassLex, ClassParse,
// the quantity.ErrorCode of a value error, or ClassInternal.
func Classify(err error) string {
	switch {
	case IsLexError(err):
		return ClassLex
	case IsParseError(err):
		return ClassParse
	}
	var qe *quantity.Error
	if errors.As(err, &qe) {
		return string(qe.Code)
	}
	return ClassInternal
}
