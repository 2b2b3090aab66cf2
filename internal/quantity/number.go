package quantity

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
)

const (
	// defaultFixedPrecision is used by the 'f' verb when no precision is given.
	defaultFixedPrecision = 6

	maxPrecision = 100
	maxWidth     = 1000
)

// NumberFormat controls how the numeric part of a rendered value is written:
// `[[fill]align][0][width][,][.N][f]`.
//
// Align is one of '<', '>', '^' or '='. Values are never negative, so '='
// pads like '>'. A leading 0 before the width means fill '0' with '='
// alignment. Numbers are right-aligned when only a width is given. The width
// counts characters of the rendered number, thousands separators included,
// and never truncates.
//
// The zero value selects the default rendering: integers verbatim, values of
// at least one rounded to two decimal places, smaller values rounded to their
// second significant digit, always with thousands separators.
type NumberFormat struct {
	Fill  rune
	Align byte
	Width int

	Grouping     bool
	Precision    int
	HasPrecision bool
	Fixed        bool
}

var numberFormatPattern = regexp.MustCompile(`^(?:(.)?([<>=^]))?(0)?(\d+)?(,)?(?:\.(\d+))?(f)?$`)

// ParseNumberFormat parses the part of a format specification before `|`.
// Sign, alternate-form and type letters other than f are not accepted.
func ParseNumberFormat(s string) (NumberFormat, error) {
	m := numberFormatPattern.FindStringSubmatch(s)
	if m == nil {
		return NumberFormat{}, badFormat(s, "expected [[fill]align][0][width][,][.N][f]")
	}
	nf := NumberFormat{
		Grouping: m[5] != "",
		Fixed:    m[7] != "",
	}

	if m[2] != "" {
		nf.Align = m[2][0]
		nf.Fill = ' '
		if m[1] != "" {
			nf.Fill, _ = utf8.DecodeRuneInString(m[1])
		}
	}
	if m[3] != "" && nf.Align == 0 {
		nf.Fill, nf.Align = '0', '='
	}
	if m[4] != "" {
		w, err := strconv.Atoi(m[4])
		if err != nil || w > maxWidth {
			return NumberFormat{}, badFormat(s, "width out of range")
		}
		nf.Width = w
	}
	if m[6] != "" {
		p, err := strconv.Atoi(m[6])
		if err != nil || p > maxPrecision {
			return NumberFormat{}, badFormat(s, "precision out of range")
		}
		nf.Precision = p
		nf.HasPrecision = true
	}
	return nf, nil
}

// IsDefault reports whether nf renders digits the default way. Padding does
// not affect it.
func (nf NumberFormat) IsDefault() bool {
	return !nf.Grouping && !nf.HasPrecision && !nf.Fixed
}

// Render writes the non-negative value r according to nf.
func (nf NumberFormat) Render(r *big.Rat) string {
	return nf.pad(nf.digits(r))
}

func (nf NumberFormat) digits(r *big.Rat) string {
	grouping := nf.Grouping || nf.IsDefault()

	var text string
	switch {
	case nf.HasPrecision:
		text = fixedText(roundHalfEven, r, nf.Precision)
	case nf.Fixed:
		text = fixedText(roundHalfEven, r, defaultFixedPrecision)
	default:
		text = defaultText(r)
	}
	if grouping {
		text = groupThousands(text)
	}
	return text
}

// pad widens text to nf.Width with the fill character.
func (nf NumberFormat) pad(text string) string {
	n := nf.Width - utf8.RuneCountInString(text)
	if n <= 0 {
		return text
	}
	fill := nf.Fill
	if fill == 0 {
		fill = ' '
	}

	var left, right int
	switch nf.Align {
	case '<':
		right = n
	case '^':
		left = n / 2
		right = n - left
	default:
		left = n
	}
	f := string(fill)
	return strings.Repeat(f, left) + text + strings.Repeat(f, right)
}

// fixedText rounds r to places decimal places and keeps trailing zeros.
func fixedText(round func(*big.Rat) *big.Int, r *big.Rat, places int) string {
	scaled := new(big.Rat).Mul(r, intRat(pow10(places)))
	return decimalText(round(scaled), places, false)
}

// defaultText keeps at most two significant decimals for values below one
// so small ratios never collapse to 0.00.
func defaultText(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	if r.Cmp(intRat(bigOne)) >= 0 {
		return fixedText(roundHalfUp, r, 2)
	}

	// p is the position of the first significant decimal digit
	p := 1
	probe := new(big.Rat).Mul(r, intRat(bigTen))
	for probe.Cmp(intRat(bigOne)) < 0 {
		probe.Mul(probe, intRat(bigTen))
		p++
	}
	places := p + 1
	scaled := new(big.Rat).Mul(r, intRat(pow10(places)))
	return decimalText(roundHalfUp(scaled), places, true)
}

// decimalText renders coeff × 10^-places in plain notation.
func decimalText(coeff *big.Int, places int, trim bool) string {
	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(coeff), -int32(places))
	// only used below one, so Reduce never yields a positive exponent
	if trim {
		d.Reduce(d)
	}
	return d.Text('f')
}

// groupThousands inserts commas into the integer part of a plain decimal.
func groupThousands(text string) string {
	intPart, frac, hasFrac := strings.Cut(text, ".")
	if len(intPart) <= 3 {
		return text
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
