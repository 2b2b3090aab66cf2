package expr

import (
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"golang.org/x/text/unicode/norm"

	"github.com/gebn/nibble/internal/quantity"
)

// Lexer turns an expression into tokens one at a time.
//
// Input is NFKC-normalised first, so full-width digits and compatibility
// forms such as the micro sign lex like their plain equivalents. Offsets in
// tokens and errors count characters, not bytes, of the normalised text.
type Lexer struct {
	input string
	pos   int
	line  int
}

// NewLexer returns a Lexer over input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: norm.NFKC.String(input), line: 1}
}

// Input returns the normalised text being lexed.
func (l *Lexer) Input() string {
	return l.input
}

// Lex returns every token in input, excluding EOF. Empty input yields no
// tokens and no error.
func Lex(input string) ([]Token, error) {
	return NewLexer(input).all()
}

func (l *Lexer) all() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token, an EOF token at the end of input, or a
// *LexError.
func (l *Lexer) Next() (Token, error) {
	l.skipSpace()
	if l.pos >= len(l.input) {
		return Token{Type: EOF, Pos: l.offset(l.pos), Line: l.line}, nil
	}

	start := l.pos
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	switch {
	case r == '/':
		l.pos += size
		return l.token(Per, start), nil
	case isDigit(r) || r == '.' || r == '+' || r == '-':
		return l.number(start)
	case unicode.IsLetter(r):
		return l.word(start)
	}

	l.pos += size
	return Token{}, l.errorf(msgIllegal, start)
}

func (l *Lexer) skipSpace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.line++
		default:
			return
		}
	}
}

// number scans [+-]?(\d+(\.\d*)?|\.\d+).
func (l *Lexer) number(start int) (Token, error) {
	if c := l.input[l.pos]; c == '+' || c == '-' {
		l.pos++
	}
	intDigits := l.digits()
	fracDigits := 0
	if l.pos < len(l.input) && l.input[l.pos] == '.' {
		l.pos++
		fracDigits = l.digits()
	}
	if intDigits == 0 && fracDigits == 0 {
		if l.pos == start {
			l.pos++
		}
		return Token{}, l.errorf(msgIllegal, start)
	}

	tok := l.token(Number, start)
	d, _, err := apd.NewFromString(tok.Literal)
	if err != nil {
		return Token{}, l.errorf(msgIllegal, start)
	}
	tok.Number = d
	return tok, nil
}

func (l *Lexer) digits() int {
	n := 0
	for l.pos < len(l.input) && isDigit(rune(l.input[l.pos])) {
		l.pos++
		n++
	}
	return n
}

// word scans a run of letters and classifies it as a reserved word, an
// information unit or category, or a duration unit, in that order.
func (l *Lexer) word(start int) (Token, error) {
	for l.pos < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.pos:])
		if !unicode.IsLetter(r) {
			break
		}
		l.pos += size
	}
	text := l.input[start:l.pos]

	if typ, ok := reserved[text]; ok {
		return l.token(typ, start), nil
	}
	if quantity.IsInformationUnit(text) || quantity.IsInformationCategory(text) {
		return l.token(InformationUnit, start), nil
	}
	if quantity.IsDurationUnit(text) {
		return l.token(DurationUnit, start), nil
	}
	return Token{}, l.errorf(msgUnrecognised, start)
}

func (l *Lexer) token(typ TokenType, start int) Token {
	return Token{Type: typ, Literal: l.input[start:l.pos], Pos: l.offset(start), Line: l.line}
}

func (l *Lexer) errorf(message string, start int) *LexError {
	return &LexError{
		Literal: l.input[start:l.pos],
		Pos:     l.offset(start),
		Line:    l.line,
		Message: message,
	}
}

// offset converts a byte index into the input to a character offset.
func (l *Lexer) offset(i int) int {
	return utf8.RuneCountInString(l.input[:i])
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
