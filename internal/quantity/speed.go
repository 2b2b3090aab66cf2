package quantity

import (
	"math/big"
)

// Speed is an amount of information over a strictly positive duration.
//
// The pair is kept as written, so 1GB/h stays 1GB per hour rather than being
// reduced to a per-second rate. Comparisons are by rate.
type Speed struct {
	info Information
	dur  Duration
}

// NewSpeed returns info per dur.
func NewSpeed(info Information, dur Duration) (Speed, error) {
	if dur.IsZero() {
		return Speed{}, ErrZeroDuration
	}
	return Speed{info: info, dur: dur}, nil
}

// PerSecond returns info per second.
func PerSecond(info Information) Speed {
	return Speed{info: info, dur: Second}
}

// SpeedOf returns q of infoUnit per one durUnit.
func SpeedOf(q float64, infoUnit, durUnit string) (Speed, error) {
	info, err := NewInformation(q, infoUnit)
	if err != nil {
		return Speed{}, err
	}
	dur, err := Of(durUnit)
	if err != nil {
		return Speed{}, err
	}
	return NewSpeed(info, dur)
}

func mustSpeed(q float64, infoUnit string) Speed {
	return PerSecond(mustInformation(q, infoUnit))
}

// Information returns the information part of the pair.
func (s Speed) Information() Information {
	return s.info
}

// Duration returns the duration part of the pair. It is one second for the
// zero Speed.
func (s Speed) Duration() Duration {
	if s.dur.IsZero() {
		return Second
	}
	return s.dur
}

// normalized substitutes a one second duration for the zero Speed.
func (s Speed) normalized() Speed {
	if s.dur.IsZero() {
		return Speed{info: s.info, dur: Second}
	}
	return s
}

// PerSecondBits returns the exact rate in bits per second.
func (s Speed) PerSecondBits() *big.Rat {
	s = s.normalized()
	moved := new(big.Int).Mul(s.info.n(), second)
	return new(big.Rat).SetFrac(moved, s.dur.n())
}

// perSecond is the rate rounded to a whole number of bits per second.
func (s Speed) perSecond() *big.Int {
	return roundHalfEven(s.PerSecondBits())
}

// ForDuration returns the information moved at s over d.
func (s Speed) ForDuration(d Duration) Information {
	return d.AtSpeed(s.normalized())
}

// Cmp compares the rates of s and o, returning -1, 0 or +1.
func (s Speed) Cmp(o Speed) int {
	s, o = s.normalized(), o.normalized()
	lhs := new(big.Int).Mul(s.info.n(), o.dur.n())
	rhs := new(big.Int).Mul(o.info.n(), s.dur.n())
	return lhs.Cmp(rhs)
}

// Equal reports whether s and o are the same rate, however each is written:
// 10b/s equals 100b/10s.
func (s Speed) Equal(o Speed) bool {
	return s.Cmp(o) == 0
}

// IsZero reports whether s moves no information.
func (s Speed) IsZero() bool {
	return s.info.IsZero()
}

// Add returns the sum of the two rates per second.
func (s Speed) Add(o Speed) Speed {
	sum := new(big.Int).Add(s.perSecond(), o.perSecond())
	return PerSecond(Information{bits: sum})
}

// Sub returns the difference of the two rates per second. The difference
// must be positive.
func (s Speed) Sub(o Speed) (Speed, error) {
	diff := new(big.Int).Sub(s.perSecond(), o.perSecond())
	switch diff.Sign() {
	case -1:
		return Speed{}, negative("speed subtraction")
	case 0:
		return Speed{}, &Error{
			Code:    ErrCodeInfiniteSpeed,
			Message: "speed subtraction leaves no rate",
		}
	}
	return PerSecond(Information{bits: diff}), nil
}

// Mul scales the information part of s by k.
func (s Speed) Mul(k float64) (Speed, error) {
	info, err := s.info.Mul(k)
	if err != nil {
		return Speed{}, err
	}
	return Speed{info: info, dur: s.Duration()}, nil
}

// Div divides the information part of s by k.
func (s Speed) Div(k float64) (Speed, error) {
	info, err := s.info.Div(k)
	if err != nil {
		return Speed{}, err
	}
	return Speed{info: info, dur: s.Duration()}, nil
}

// FloorDiv divides the information part of s by k, rounding down.
func (s Speed) FloorDiv(k float64) (Speed, error) {
	info, err := s.info.FloorDiv(k)
	if err != nil {
		return Speed{}, err
	}
	return Speed{info: info, dur: s.Duration()}, nil
}

// Format renders s according to
// `[number-format|][ ][unit-or-category][/[quantity][ ]duration-unit]`.
// The denominator defaults to one second and is independent of the duration
// s was written with.
func (s Speed) Format(spec string) (string, error) {
	ss, err := ParseSpeedSpec(spec)
	if err != nil {
		return "", err
	}
	return s.FormatSpec(ss)
}

// FormatSpec renders s according to an already parsed specification.
func (s Speed) FormatSpec(ss SpeedSpec) (string, error) {
	s = s.normalized()
	denominator, err := ss.Per.nanoseconds()
	if err != nil {
		return "", err
	}
	bits := intRat(s.info.n())
	bits.Mul(bits, denominator)
	bits.Quo(bits, intRat(s.dur.n()))
	text, err := formatBits(bits, ss.Spec)
	if err != nil {
		return "", err
	}
	return text + "/" + ss.Per.Label(), nil
}

// String renders s in the most appropriate binary byte unit per second.
func (s Speed) String() string {
	text, err := s.Format("")
	if err != nil {
		return s.PerSecondBits().FloatString(2) + " b/s"
	}
	return text
}

// Named line rates.
var (
	ZeroSpeed = PerSecond(ZeroInformation)

	// Ethernet
	TenMegabit     = mustSpeed(10, "Mb")
	HundredMegabit = mustSpeed(100, "Mb")
	Gigabit        = mustSpeed(1, "Gb")
	TenGigabit     = mustSpeed(10, "Gb")
	FortyGigabit   = mustSpeed(40, "Gb")
	HundredGigabit = mustSpeed(100, "Gb")

	// E-carrier
	E0 = mustSpeed(64, "kb")
	E1 = mustSpeed(2.048, "Mb")
	E2 = mustSpeed(8.448, "Mb")
	E3 = mustSpeed(34.368, "Mb")
	E4 = mustSpeed(139.264, "Mb")
	E5 = mustSpeed(565.148, "Mb")

	// T-carrier signalling levels
	DS0  = E0
	DS1  = mustSpeed(1.544, "Mb")
	DS1C = mustSpeed(3.152, "Mb")
	DS2  = mustSpeed(6.312, "Mb")
	DS3  = mustSpeed(44.736, "Mb")
	DS4  = mustSpeed(274.176, "Mb")
	DS5  = mustSpeed(400.352, "Mb")

	// T-carrier lines
	T1  = DS1
	T1C = DS1C
	T2  = DS2
	T3  = DS3
	T4  = DS4
	T5  = DS5
)
