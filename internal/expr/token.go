package expr

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// TokenType classifies a lexeme.
type TokenType int

const (
	EOF TokenType = iota
	Number
	InformationUnit
	DurationUnit
	At
	In
	For
	Per
)

var tokenNames = [...]string{
	EOF:             "EOF",
	Number:          "NUMBER",
	InformationUnit: "INFORMATION_UNIT",
	DurationUnit:    "DURATION_UNIT",
	At:              "AT",
	In:              "IN",
	For:             "FOR",
	Per:             "PER",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

var reserved = map[string]TokenType{
	"at":  At,
	"in":  In,
	"for": For,
	"per": Per,
}

// Token is a single lexeme. Pos is the character offset into the normalised input
// and Line starts at 1.
type Token struct {
	Type    TokenType
	Literal string
	Number  *apd.Decimal // set for Number tokens
	Pos     int
	Line    int
}

// Float64 returns the value of a NUMBER token as a float.
func (t Token) Float64() (float64, error) {
	if t.Number == nil {
		return 0, fmt.Errorf("%s token has no numeric value", t.Type)
	}
	return t.Number.Float64()
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Literal, t.Pos)
}
