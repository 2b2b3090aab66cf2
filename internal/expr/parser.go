package expr

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/gebn/nibble/internal/quantity"
)

// Binding powers, lowest first. Conversions happen last, then AT/FOR
// calculations, then the PER of a speed unit. Adjacent duration terms bind
// tightest so "3h 30m" is one duration before any operator applies.
const (
	precIn   = 1
	precAt   = 2
	precPer  = 3
	precUnit = 4
)

// anyKind accepts an operand of any kind.
const anyKind Kind = 0

func infixPrec(t TokenType) int {
	switch t {
	case In:
		return precIn
	case At, For:
		return precAt
	default:
		return 0
	}
}

// Parser evaluates expressions. It holds no per-parse state, so one Parser
// may be shared between goroutines.
type Parser struct {
	logger *slog.Logger
}

// NewParser returns a Parser that logs each reduction at debug level. A nil
// logger uses slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse evaluates input with a default Parser.
func Parse(input string) (Value, error) {
	return NewParser(nil).Parse(input)
}

// Parse lexes and evaluates input. The result is an Information, Duration or
// Speed, or Formatted if the outermost operation was an IN conversion.
//
// Errors are *LexError, *ParseError, or a *quantity.Error raised while
// combining values.
func (p *Parser) Parse(input string) (Value, error) {
	l := NewLexer(input)
	tokens, err := l.all()
	if err != nil {
		return nil, err
	}
	p.logger.Debug("lexed", "input", l.Input(), "tokens", len(tokens))

	s := &parse{tokens: tokens, logger: p.logger}
	v, err := s.operand(0, anyKind)
	if err != nil {
		return nil, err
	}
	if tok := s.peek(); tok.Type != EOF {
		return nil, unexpected(tok)
	}
	s.reduced("expression", v)
	return v, nil
}

// parse is the state of a single Parse call.
type parse struct {
	tokens []Token
	pos    int
	logger *slog.Logger
}

func (s *parse) peek() Token {
	return s.peekAt(0)
}

func (s *parse) peekAt(offset int) Token {
	i := s.pos + offset
	if i < len(s.tokens) {
		return s.tokens[i]
	}
	// EOF sits just past the last token
	end := 0
	line := 1
	if n := len(s.tokens); n > 0 {
		last := s.tokens[n-1]
		end = last.Pos + utf8.RuneCountInString(last.Literal)
		line = last.Line
	}
	return Token{Type: EOF, Pos: end, Line: line}
}

func (s *parse) next() Token {
	tok := s.peek()
	if s.pos < len(s.tokens) {
		s.pos++
	}
	return tok
}

func (s *parse) reduced(rule string, v Value) {
	if !s.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	s.logger.Debug("reduced", "rule", rule, "kind", v.Kind().String(), "value", v.String())
}

// operand parses a value and then applies infix operators. An operator
// binding looser than minPrec ends the operand only once the operand already
// has the wanted kind; otherwise it is applied, as no other reading of the
// input could succeed.
func (s *parse) operand(minPrec int, want Kind) (Value, error) {
	left, err := s.primary()
	if err != nil {
		return nil, err
	}

	for {
		tok := s.peek()
		prec := infixPrec(tok.Type)
		if prec == 0 || left.Kind() == KindFormatted {
			break
		}
		if prec < minPrec && (want == anyKind || left.Kind() == want) {
			break
		}
		s.next()
		if left, err = s.infix(left, tok); err != nil {
			return nil, err
		}
	}

	if want != anyKind && left.Kind() != want {
		return nil, unexpected(s.peek())
	}
	return left, nil
}

func (s *parse) primary() (Value, error) {
	tok := s.next()
	switch tok.Type {
	case DurationUnit:
		d, err := quantity.Of(tok.Literal)
		if err != nil {
			return nil, err
		}
		v := Duration{d}
		s.reduced("duration = duration_unit", v)
		return v, nil

	case Number:
		unit := s.next()
		switch unit.Type {
		case InformationUnit:
			return s.information(tok, unit)
		case DurationUnit:
			return s.duration(tok, unit)
		}
		return nil, unexpected(unit)
	}
	return nil, unexpected(tok)
}

// information handles NUMBER INFORMATION_UNIT [PER duration].
func (s *parse) information(num, unit Token) (Value, error) {
	info, err := quantity.InformationOf(num.Number, unit.Literal)
	if err != nil {
		return nil, err
	}
	if s.peek().Type != Per {
		v := Information{info}
		s.reduced("information = number information_unit", v)
		return v, nil
	}

	s.next()
	d, _, err := s.denominator()
	if err != nil {
		return nil, err
	}
	speed, err := quantity.NewSpeed(info, d)
	if err != nil {
		return nil, err
	}
	v := Speed{speed}
	s.reduced("speed = number information_unit per duration", v)
	return v, nil
}

// duration handles NUMBER DURATION_UNIT [duration], summing adjacent terms.
// The tail may be a bare unit, as in "1h m", which then ends the duration.
func (s *parse) duration(num, unit Token) (Value, error) {
	d, err := quantity.DurationOf(num.Number, unit.Literal)
	if err != nil {
		return nil, err
	}
	if t := s.peek().Type; t != Number && t != DurationUnit {
		v := Duration{d}
		s.reduced("duration = number duration_unit", v)
		return v, nil
	}

	tail, err := s.operand(precUnit+1, KindDuration)
	if err != nil {
		return nil, err
	}
	v := Duration{d.Add(tail.(Duration).Duration)}
	s.reduced("duration = number duration_unit duration", v)
	return v, nil
}

// denominator parses the duration after PER. The returned Per reproduces how
// it was written when it is a single term, e.g. "h" or "3h".
func (s *parse) denominator() (quantity.Duration, quantity.Per, error) {
	start := s.pos
	v, err := s.operand(precUnit, KindDuration)
	if err != nil {
		return quantity.Duration{}, quantity.Per{}, err
	}
	d := v.(Duration).Duration

	terms := s.tokens[start:s.pos]
	switch {
	case len(terms) == 1:
		return d, quantity.Per{Unit: terms[0].Literal}, nil
	case len(terms) == 2 && terms[0].Type == Number:
		return d, quantity.Per{Quantity: terms[0].Number, Unit: terms[1].Literal}, nil
	}
	return d, quantity.PerDuration(d), nil
}

func (s *parse) infix(left Value, op Token) (Value, error) {
	switch op.Type {
	case At:
		return s.at(left, op)
	case For:
		return s.forDuration(left, op)
	default:
		return s.in(left, op)
	}
}

// at handles `information AT speed` and `duration AT speed`.
func (s *parse) at(left Value, op Token) (Value, error) {
	switch left.Kind() {
	case KindInformation, KindDuration:
	default:
		return nil, unexpected(op)
	}
	right, err := s.operand(precAt+1, KindSpeed)
	if err != nil {
		return nil, err
	}
	speed := right.(Speed).Speed

	if l, ok := left.(Information); ok {
		d, err := l.AtSpeed(speed)
		if err != nil {
			return nil, err
		}
		v := Duration{d}
		s.reduced("duration = information at speed", v)
		return v, nil
	}
	v := Information{left.(Duration).AtSpeed(speed)}
	s.reduced("information = duration at speed", v)
	return v, nil
}

// forDuration handles `speed FOR duration`.
func (s *parse) forDuration(left Value, op Token) (Value, error) {
	l, ok := left.(Speed)
	if !ok {
		return nil, unexpected(op)
	}
	right, err := s.operand(precAt+1, KindDuration)
	if err != nil {
		return nil, err
	}
	v := Information{l.ForDuration(right.(Duration).Duration)}
	s.reduced("information = speed for duration", v)
	return v, nil
}

// in handles the three terminal conversions and `information IN duration`.
func (s *parse) in(left Value, op Token) (Value, error) {
	switch l := left.(type) {
	case Information:
		if unit := s.peek(); unit.Type == InformationUnit {
			s.next()
			text, err := l.Format(" " + unit.Literal)
			if err != nil {
				return nil, err
			}
			v := Formatted(text)
			s.reduced("information = information in information_unit", v)
			return v, nil
		}
		right, err := s.operand(precIn+1, KindDuration)
		if err != nil {
			return nil, err
		}
		speed, err := l.InDuration(right.(Duration).Duration)
		if err != nil {
			return nil, err
		}
		v := Speed{speed}
		s.reduced("speed = information in duration", v)
		return v, nil

	case Duration:
		unit := s.next()
		if unit.Type != DurationUnit {
			return nil, unexpected(unit)
		}
		text, err := l.Format(" " + unit.Literal)
		if err != nil {
			return nil, err
		}
		v := Formatted(text)
		s.reduced("duration = duration in duration_unit", v)
		return v, nil

	case Speed:
		unit := s.next()
		if unit.Type != InformationUnit {
			return nil, unexpected(unit)
		}
		if per := s.next(); per.Type != Per {
			return nil, unexpected(per)
		}
		_, per, err := s.denominator()
		if err != nil {
			return nil, err
		}
		spec, err := quantity.ParseSpec(" " + unit.Literal)
		if err != nil {
			return nil, err
		}
		text, err := l.FormatSpec(quantity.SpeedSpec{Spec: spec, Per: per})
		if err != nil {
			return nil, err
		}
		v := Formatted(text)
		s.reduced("speed = speed in speed_unit", v)
		return v, nil
	}
	return nil, unexpected(op)
}
