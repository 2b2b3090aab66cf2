package quantity

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Spec is a parsed `[number-format|][ ][unit-or-category]` specification.
type Spec struct {
	Number    NumberFormat
	HasNumber bool
	Separator bool
	Unit      string
}

// ParseSpec splits s on its last `|`, consumes one leading space as the
// separator request and keeps the remainder as the unit or category.
// Unit validity is checked by the renderer, which knows the dimension.
func ParseSpec(s string) (Spec, error) {
	var spec Spec
	rest := s
	if i := strings.LastIndex(s, "|"); i >= 0 {
		nf, err := ParseNumberFormat(s[:i])
		if err != nil {
			return Spec{}, err
		}
		spec.Number = nf
		spec.HasNumber = true
		rest = s[i+1:]
	}
	if strings.HasPrefix(rest, " ") {
		spec.Separator = true
		rest = rest[1:]
	}
	spec.Unit = rest
	return spec, nil
}

func (s Spec) join(number, unit string) string {
	if s.Separator {
		return number + " " + unit
	}
	return number + unit
}

// Per is the denominator of a speed format: `[quantity][ ]unit`.
type Per struct {
	Quantity *apd.Decimal
	Unit     string

	// span, when set, replaces Quantity and Unit with an exact duration
	span *big.Int
}

// PerDuration returns a denominator of exactly d, labelled with d in its
// automatically chosen unit.
func PerDuration(d Duration) Per {
	return Per{span: d.Nanoseconds()}
}

// Label is the denominator as printed after the slash. A quantity of one is
// omitted.
func (p Per) Label() string {
	if p.span != nil {
		label, _ := formatNanoseconds(p.span, Spec{})
		return label
	}
	if p.Quantity == nil || p.Quantity.Cmp(apd.New(1, 0)) == 0 {
		return p.Unit
	}
	q := new(apd.Decimal)
	q.Reduce(p.Quantity)
	return q.Text('f') + p.Unit
}

func (p Per) nanoseconds() (*big.Rat, error) {
	if p.span != nil {
		if p.span.Sign() == 0 {
			return nil, ErrZeroDuration
		}
		return intRat(p.span), nil
	}
	scale, err := DurationScale(p.Unit)
	if err != nil {
		return nil, err
	}
	ns := intRat(scale)
	if p.Quantity != nil {
		ns.Mul(ns, decimalRat(p.Quantity))
	}
	if ns.Sign() <= 0 {
		return nil, ErrZeroDuration
	}
	return ns, nil
}

// SpeedSpec is a speed format: an information spec over a denominator.
type SpeedSpec struct {
	Spec
	Per Per
}

var perPattern = regexp.MustCompile(`^(\d+\.?\d*)?\s*(.*)$`)

// ParseSpeedSpec parses `[information-spec][/[quantity][ ]duration-unit]`.
// Without a slash the denominator is one second. With a slash and nothing
// before it the information part auto-selects binary bytes with no
// separator.
func ParseSpeedSpec(s string) (SpeedSpec, error) {
	lhs, rhs, hasPer := strings.Cut(s, "/")
	if !hasPer {
		if lhs == "" {
			lhs = " " + CategoryBinaryBytes
		}
		spec, err := ParseSpec(lhs)
		if err != nil {
			return SpeedSpec{}, err
		}
		return SpeedSpec{Spec: spec, Per: Per{Unit: "s"}}, nil
	}

	if lhs == "" {
		lhs = CategoryBinaryBytes
	}
	spec, err := ParseSpec(lhs)
	if err != nil {
		return SpeedSpec{}, err
	}

	m := perPattern.FindStringSubmatch(rhs)
	per := Per{Unit: m[2]}
	if m[1] != "" {
		q, _, err := apd.NewFromString(m[1])
		if err != nil {
			return SpeedSpec{}, badFormat(rhs, "invalid duration quantity")
		}
		per.Quantity = q
	}
	if !IsDurationUnit(per.Unit) {
		return SpeedSpec{}, unknownUnit(dimensionDuration, per.Unit)
	}
	return SpeedSpec{Spec: spec, Per: per}, nil
}

// formatBits renders a number of bits, which may be fractional when it is a
// rate over a display denominator.
func formatBits(bits *big.Rat, spec Spec) (string, error) {
	unit := spec.Unit
	if unit == "" {
		unit = CategoryBinaryBytes
	}
	if category, ok := informationCategories[unit]; ok {
		unit = selectUnit(bits, category.Units, informationUnits)
	}
	scale, err := InformationScale(unit)
	if err != nil {
		return "", err
	}
	value := new(big.Rat).Quo(bits, intRat(scale))
	return spec.join(spec.Number.Render(value), unit), nil
}

func formatNanoseconds(ns *big.Int, spec Spec) (string, error) {
	unit := spec.Unit
	if unit == "" {
		unit = selectUnit(intRat(ns), durationAuto, durationUnits)
	}
	scale, err := DurationScale(unit)
	if err != nil {
		return "", err
	}
	value := new(big.Rat).SetFrac(ns, scale)
	return spec.join(spec.Number.Render(value), unit), nil
}

// selectUnit returns the first unit, in descending order, no larger than
// value, falling back to the smallest.
func selectUnit(value *big.Rat, units []string, table map[string]*big.Int) string {
	for _, u := range units {
		if value.Cmp(intRat(table[u])) >= 0 {
			return u
		}
	}
	return units[len(units)-1]
}
