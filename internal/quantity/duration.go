package quantity

import (
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Duration is a non-negative whole number of nanoseconds. A month is 730
// hours and a year twelve months.
//
// The zero value is zero nanoseconds.
type Duration struct {
	ns *big.Int
}

// Common durations.
var (
	ZeroDuration = Duration{}
	Nanosecond   = Duration{ns: nanosecond}
	Microsecond  = Duration{ns: microsecond}
	Millisecond  = Duration{ns: millisecond}
	Second       = Duration{ns: second}
	Minute       = Duration{ns: minute}
	Hour         = Duration{ns: hour}
	Day          = Duration{ns: day}
	Week         = Duration{ns: week}
	Month        = Duration{ns: month}
	Year         = Duration{ns: year}
)

// NewDuration returns q of unit, rounded to the nearest nanosecond.
func NewDuration(q float64, unit string) (Duration, error) {
	r, err := floatRat(q)
	if err != nil {
		return Duration{}, err
	}
	return durationFromRat(r, unit)
}

// DurationOf is NewDuration for an exact decimal quantity.
func DurationOf(q *apd.Decimal, unit string) (Duration, error) {
	if err := checkDecimal(q); err != nil {
		return Duration{}, err
	}
	return durationFromRat(decimalRat(q), unit)
}

// Of returns one of unit.
func Of(unit string) (Duration, error) {
	scale, err := DurationScale(unit)
	if err != nil {
		return Duration{}, err
	}
	return Duration{ns: scale}, nil
}

func durationFromRat(q *big.Rat, unit string) (Duration, error) {
	scale, err := DurationScale(unit)
	if err != nil {
		return Duration{}, err
	}
	ns := roundHalfEven(new(big.Rat).Mul(q, intRat(scale)))
	if ns.Sign() < 0 {
		return Duration{}, negative("duration quantity")
	}
	return Duration{ns: ns}, nil
}

// Nanoseconds returns a Duration of n nanoseconds. It panics if n is negative.
func Nanoseconds(n int64) Duration {
	if n < 0 {
		panic("quantity: negative nanosecond count")
	}
	return Duration{ns: big.NewInt(n)}
}

// NanosecondsOf returns a Duration holding a copy of n.
func NanosecondsOf(n *big.Int) (Duration, error) {
	if n.Sign() < 0 {
		return Duration{}, negative("duration quantity")
	}
	return Duration{ns: new(big.Int).Set(n)}, nil
}

// FromStd converts a time.Duration.
func FromStd(d time.Duration) (Duration, error) {
	return NanosecondsOf(big.NewInt(int64(d)))
}

// Std converts d to a time.Duration, reporting false if it does not fit.
func (d Duration) Std() (time.Duration, bool) {
	if !d.n().IsInt64() {
		return time.Duration(math.MaxInt64), false
	}
	return time.Duration(d.n().Int64()), true
}

// Seconds returns d in seconds as a float.
func (d Duration) Seconds() float64 {
	f, _ := new(big.Rat).SetFrac(d.n(), second).Float64()
	return f
}

// Nanoseconds returns a copy of the number of nanoseconds.
func (d Duration) Nanoseconds() *big.Int {
	return new(big.Int).Set(d.n())
}

func (d Duration) n() *big.Int {
	return orZero(d.ns)
}

// Cmp compares d and o, returning -1, 0 or +1.
func (d Duration) Cmp(o Duration) int {
	return d.n().Cmp(o.n())
}

// Equal reports whether d and o are the same length.
func (d Duration) Equal(o Duration) bool {
	return d.Cmp(o) == 0
}

// IsZero reports whether d is zero nanoseconds.
func (d Duration) IsZero() bool {
	return d.n().Sign() == 0
}

// Add returns d + o.
func (d Duration) Add(o Duration) Duration {
	return Duration{ns: new(big.Int).Add(d.n(), o.n())}
}

// Sub returns d - o, or an error if o is longer than d.
func (d Duration) Sub(o Duration) (Duration, error) {
	diff := new(big.Int).Sub(d.n(), o.n())
	if diff.Sign() < 0 {
		return Duration{}, negative("duration subtraction")
	}
	return Duration{ns: diff}, nil
}

// Mul scales d by k, rounding to the nearest nanosecond.
func (d Duration) Mul(k float64) (Duration, error) {
	r, err := scalar(k, "multiplication")
	if err != nil {
		return Duration{}, err
	}
	return Duration{ns: roundHalfEven(new(big.Rat).Mul(r, intRat(d.n())))}, nil
}

// Div divides d by k, rounding to the nearest nanosecond.
func (d Duration) Div(k float64) (Duration, error) {
	r, err := divisor(k, "duration")
	if err != nil {
		return Duration{}, err
	}
	return Duration{ns: roundHalfEven(new(big.Rat).Quo(intRat(d.n()), r))}, nil
}

// FloorDiv divides d by k, rounding down.
func (d Duration) FloorDiv(k float64) (Duration, error) {
	r, err := divisor(k, "duration")
	if err != nil {
		return Duration{}, err
	}
	return Duration{ns: floorRat(new(big.Rat).Quo(intRat(d.n()), r))}, nil
}

// AtSpeed returns the information moved in d at s, rounded up to a whole bit.
func (d Duration) AtSpeed(s Speed) Information {
	moved := new(big.Int).Mul(s.info.n(), d.n())
	return Information{bits: ceilRat(new(big.Rat).SetFrac(moved, s.dur.n()))}
}

// HumanReadable spells d out in whole units, largest first, e.g.
// "1 week 2 days 3 hours". Zero is "0 nanoseconds".
func (d Duration) HumanReadable() string {
	remaining := new(big.Int).Set(d.n())
	var chunks []string
	for _, unit := range durationHuman {
		q, r := new(big.Int).QuoRem(remaining, durationUnits[unit], new(big.Int))
		if q.Sign() == 0 {
			continue
		}
		name := unit
		if !q.IsInt64() || q.Int64() != 1 {
			name += "s"
		}
		chunks = append(chunks, q.String()+" "+name)
		remaining = r
		if remaining.Sign() == 0 {
			break
		}
	}
	if len(chunks) == 0 {
		return "0 nanoseconds"
	}
	return strings.Join(chunks, " ")
}

// Format renders d according to a `[number-format|][ ][unit]` specification.
// An empty spec is HumanReadable; an empty unit picks the largest unit of
// which d is at least one.
func (d Duration) Format(spec string) (string, error) {
	if spec == "" {
		return d.HumanReadable(), nil
	}
	s, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	return formatNanoseconds(d.n(), s)
}

// String is HumanReadable.
func (d Duration) String() string {
	return d.HumanReadable()
}
