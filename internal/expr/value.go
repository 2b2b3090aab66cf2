package expr

import "github.com/gebn/nibble/internal/quantity"

// Kind is the type of an evaluated expression.
type Kind int

const (
	KindInformation Kind = iota + 1
	KindDuration
	KindSpeed
	KindFormatted
)

func (k Kind) String() string {
	switch k {
	case KindInformation:
		return "information"
	case KindDuration:
		return "duration"
	case KindSpeed:
		return "speed"
	case KindFormatted:
		return "formatted"
	default:
		return "unknown"
	}
}

// Value is the result of parsing an expression.
type Value interface {
	Kind() Kind
	String() string
}

// Information is an information result.
type Information struct{ quantity.Information }

// Duration is a duration result.
type Duration struct{ quantity.Duration }

// Speed is a speed result.
type Speed struct{ quantity.Speed }

// Formatted is the rendered result of a terminal IN conversion.
type Formatted string

func (Information) Kind() Kind { return KindInformation }
func (Duration) Kind() Kind    { return KindDuration }
func (Speed) Kind() Kind       { return KindSpeed }
func (Formatted) Kind() Kind   { return KindFormatted }

func (f Formatted) String() string { return string(f) }
