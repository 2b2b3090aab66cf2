package quantity

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		in   string
		want Spec
	}{
		{"", Spec{}},
		{" ", Spec{Separator: true}},
		{"GiB", Spec{Unit: "GiB"}},
		{" dB", Spec{Separator: true, Unit: "dB"}},
		{".2f|", Spec{Number: NumberFormat{Precision: 2, HasPrecision: true, Fixed: true}, HasNumber: true}},
		{",|  Mb", Spec{Number: NumberFormat{Grouping: true}, HasNumber: true, Separator: true, Unit: " Mb"}},
		{"|h", Spec{HasNumber: true, Unit: "h"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSpec(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpec_BadNumberFormat(t *testing.T) {
	_, err := ParseSpec("q|GiB")
	assert.True(t, IsBadFormat(err))
}

func TestParseSpeedSpec(t *testing.T) {
	t.Run("no denominator", func(t *testing.T) {
		got, err := ParseSpeedSpec("")
		require.NoError(t, err)
		assert.Equal(t, Spec{Separator: true, Unit: "bB"}, got.Spec)
		assert.Equal(t, "s", got.Per.Unit)
		assert.Equal(t, "s", got.Per.Label())
	})

	t.Run("empty left part", func(t *testing.T) {
		got, err := ParseSpeedSpec("/m")
		require.NoError(t, err)
		assert.Equal(t, Spec{Unit: "bB"}, got.Spec)
		assert.Equal(t, "m", got.Per.Label())
	})

	t.Run("quantity", func(t *testing.T) {
		got, err := ParseSpeedSpec(" MiB/3.50 h")
		require.NoError(t, err)
		assert.Equal(t, Spec{Separator: true, Unit: "MiB"}, got.Spec)
		assert.Equal(t, "h", got.Per.Unit)
		assert.Equal(t, "3.5h", got.Per.Label())
	})

	t.Run("quantity of one is dropped", func(t *testing.T) {
		got, err := ParseSpeedSpec("Gb/1s")
		require.NoError(t, err)
		assert.Equal(t, "s", got.Per.Label())
	})

	t.Run("whole quantity", func(t *testing.T) {
		got, err := ParseSpeedSpec("Gb/10m")
		require.NoError(t, err)
		assert.Equal(t, "10m", got.Per.Label())
	})

	t.Run("unknown duration unit", func(t *testing.T) {
		_, err := ParseSpeedSpec("Gb/fortnight")
		require.Error(t, err)
		assert.True(t, IsUnknownUnit(err))
	})
}

func TestPer_ZeroQuantity(t *testing.T) {
	p := Per{Quantity: apd.New(0, 0), Unit: "s"}
	_, err := p.nanoseconds()
	assert.True(t, IsZeroDuration(err))
}

func TestPerDuration_ExactDenominator(t *testing.T) {
	span := Hour.Add(mustDur(t, 20, "m"))
	ss := SpeedSpec{Spec: Spec{Separator: true, Unit: "Mb"}, Per: PerDuration(span)}

	got, err := Gigabit.FormatSpec(ss)
	require.NoError(t, err)
	assert.Equal(t, "4,800,000 Mb/1.33h", got)

	_, err = Gigabit.FormatSpec(SpeedSpec{Spec: Spec{Unit: "Mb"}, Per: PerDuration(ZeroDuration)})
	assert.True(t, IsZeroDuration(err))
}
