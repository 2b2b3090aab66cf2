package quantity

import (
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

// Information is a non-negative whole number of bits.
//
// The zero value is zero bits. Values are immutable; every operation returns
// a new Information.
type Information struct {
	bits *big.Int
}

// ZeroInformation is zero bits.
var ZeroInformation = Information{}

// NewInformation returns q of unit, rounded up to a whole bit so a quantity is
// never under-reported.
func NewInformation(q float64, unit string) (Information, error) {
	r, err := floatRat(q)
	if err != nil {
		return Information{}, err
	}
	return informationFromRat(r, unit)
}

// InformationOf is NewInformation for an exact decimal quantity.
func InformationOf(q *apd.Decimal, unit string) (Information, error) {
	if err := checkDecimal(q); err != nil {
		return Information{}, err
	}
	return informationFromRat(decimalRat(q), unit)
}

func informationFromRat(q *big.Rat, unit string) (Information, error) {
	scale, err := InformationScale(unit)
	if err != nil {
		return Information{}, err
	}
	bits := ceilRat(new(big.Rat).Mul(q, intRat(scale)))
	if bits.Sign() < 0 {
		return Information{}, negative("information quantity")
	}
	return Information{bits: bits}, nil
}

// Bits returns an Information of n bits. It panics if n is negative.
func Bits(n int64) Information {
	if n < 0 {
		panic("quantity: negative bit count")
	}
	return Information{bits: big.NewInt(n)}
}

// BitsOf returns an Information holding a copy of n.
func BitsOf(n *big.Int) (Information, error) {
	if n.Sign() < 0 {
		return Information{}, negative("information quantity")
	}
	return Information{bits: new(big.Int).Set(n)}, nil
}

// mustInformation builds package constants from known-good units.
func mustInformation(q float64, unit string) Information {
	i, err := NewInformation(q, unit)
	if err != nil {
		panic(err)
	}
	return i
}

// Bits returns a copy of the number of bits.
func (i Information) Bits() *big.Int {
	return new(big.Int).Set(orZero(i.bits))
}

func (i Information) n() *big.Int {
	return orZero(i.bits)
}

// Cmp compares i and o, returning -1, 0 or +1.
func (i Information) Cmp(o Information) int {
	return i.n().Cmp(o.n())
}

// Equal reports whether i and o hold the same number of bits.
func (i Information) Equal(o Information) bool {
	return i.Cmp(o) == 0
}

// IsZero reports whether i is zero bits.
func (i Information) IsZero() bool {
	return i.n().Sign() == 0
}

// Add returns i + o.
func (i Information) Add(o Information) Information {
	return Information{bits: new(big.Int).Add(i.n(), o.n())}
}

// Sub returns i - o, or an error if o is larger than i.
func (i Information) Sub(o Information) (Information, error) {
	diff := new(big.Int).Sub(i.n(), o.n())
	if diff.Sign() < 0 {
		return Information{}, negative("information subtraction")
	}
	return Information{bits: diff}, nil
}

// Mul scales i by k, rounding up.
func (i Information) Mul(k float64) (Information, error) {
	r, err := scalar(k, "multiplication")
	if err != nil {
		return Information{}, err
	}
	return Information{bits: ceilRat(new(big.Rat).Mul(r, intRat(i.n())))}, nil
}

// Div divides i by k, rounding to the nearest bit.
func (i Information) Div(k float64) (Information, error) {
	r, err := divisor(k, "information")
	if err != nil {
		return Information{}, err
	}
	return Information{bits: roundHalfEven(new(big.Rat).Quo(intRat(i.n()), r))}, nil
}

// FloorDiv divides i by k, rounding down.
func (i Information) FloorDiv(k float64) (Information, error) {
	r, err := divisor(k, "information")
	if err != nil {
		return Information{}, err
	}
	return Information{bits: floorRat(new(big.Rat).Quo(intRat(i.n()), r))}, nil
}

// AtSpeed returns how long moving i takes at s, to the nearest nanosecond.
func (i Information) AtSpeed(s Speed) (Duration, error) {
	if s.info.IsZero() {
		return Duration{}, divisionByZero("information by a zero speed")
	}
	ns := new(big.Int).Mul(s.dur.n(), i.n())
	return Duration{ns: roundHalfEven(new(big.Rat).SetFrac(ns, s.info.n()))}, nil
}

// InDuration returns the speed of moving i in d.
func (i Information) InDuration(d Duration) (Speed, error) {
	return NewSpeed(i, d)
}

// Format renders i according to a `[number-format|][ ][unit-or-category]`
// specification. An empty spec selects binary bytes with a separator.
func (i Information) Format(spec string) (string, error) {
	if spec == "" {
		spec = " " + CategoryBinaryBytes
	}
	s, err := ParseSpec(spec)
	if err != nil {
		return "", err
	}
	return formatBits(intRat(i.n()), s)
}

// String renders i in the most appropriate binary byte unit.
func (i Information) String() string {
	s, err := i.Format("")
	if err != nil {
		return i.n().String() + " b"
	}
	return s
}
