package quantity

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"
)

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigTen  = big.NewInt(10)
)

// decimalRat returns the exact value of a finite decimal.
func decimalRat(d *apd.Decimal) *big.Rat {
	coeff := d.Coeff.MathBigInt()
	if d.Negative {
		coeff.Neg(coeff)
	}
	if d.Exponent >= 0 {
		scale := new(big.Int).Exp(bigTen, big.NewInt(int64(d.Exponent)), nil)
		return new(big.Rat).SetInt(coeff.Mul(coeff, scale))
	}
	scale := new(big.Int).Exp(bigTen, big.NewInt(int64(-d.Exponent)), nil)
	return new(big.Rat).SetFrac(coeff, scale)
}

// floatRat converts f through its shortest decimal representation, so 0.1
// scales like the literal 0.1 rather than its binary approximation.
func floatRat(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, notFinite(f)
	}
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(f); err != nil {
		return nil, notFinite(f)
	}
	return decimalRat(d), nil
}

func checkDecimal(d *apd.Decimal) error {
	if d == nil || d.Form != apd.Finite {
		return &Error{Code: ErrCodeNotFinite, Message: "quantity must be a finite number"}
	}
	return nil
}

func floorRat(r *big.Rat) *big.Int {
	q, _ := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	return q
}

func ceilRat(r *big.Rat) *big.Int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Sign() != 0 {
		q.Add(q, bigOne)
	}
	return q
}

// roundHalfEven rounds r to the nearest integer, ties to even.
func roundHalfEven(r *big.Rat) *big.Int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	switch m.Mul(m, bigTwo).Cmp(r.Denom()) {
	case 1:
		q.Add(q, bigOne)
	case 0:
		if q.Bit(0) == 1 {
			q.Add(q, bigOne)
		}
	}
	return q
}

// roundHalfUp rounds a non-negative r to the nearest integer, ties upward.
func roundHalfUp(r *big.Rat) *big.Int {
	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	if m.Mul(m, bigTwo).Cmp(r.Denom()) >= 0 {
		q.Add(q, bigOne)
	}
	return q
}

func intRat(n *big.Int) *big.Rat {
	return new(big.Rat).SetInt(n)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// scalar validates a non-negative finite multiplier or divisor.
func scalar(k float64, op string) (*big.Rat, error) {
	r, err := floatRat(k)
	if err != nil {
		return nil, err
	}
	if r.Sign() < 0 {
		return nil, negative(op + " by a negative scalar")
	}
	return r, nil
}

// divisor is scalar with a zero check.
func divisor(k float64, what string) (*big.Rat, error) {
	r, err := scalar(k, "division")
	if err != nil {
		return nil, err
	}
	if r.Sign() == 0 {
		return nil, divisionByZero(what)
	}
	return r, nil
}

func orZero(n *big.Int) *big.Int {
	if n == nil {
		return bigZero
	}
	return n
}
