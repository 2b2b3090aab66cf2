package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSpeedT(t *testing.T, q float64, infoUnit, durUnit string) Speed {
	t.Helper()
	s, err := SpeedOf(q, infoUnit, durUnit)
	require.NoError(t, err)
	return s
}

func TestNewSpeed_ZeroDuration(t *testing.T) {
	_, err := NewSpeed(Bits(10), ZeroDuration)
	require.Error(t, err)
	assert.True(t, IsZeroDuration(err))
}

func TestSpeedOf_Errors(t *testing.T) {
	_, err := SpeedOf(1, "zz", "s")
	assert.True(t, IsUnknownUnit(err))

	_, err = SpeedOf(1, "Gb", "zz")
	assert.True(t, IsUnknownUnit(err))
}

func TestSpeed_KeepsWrittenPair(t *testing.T) {
	s := mustSpeedT(t, 1, "GB", "h")
	assert.True(t, s.Information().Equal(mustInfo(t, 1, "GB")))
	assert.True(t, s.Duration().Equal(Hour))
}

func TestSpeed_EqualityIsRateBased(t *testing.T) {
	a, err := NewSpeed(Bits(10), Second)
	require.NoError(t, err)
	b, err := NewSpeed(Bits(100), mustDur(t, 10, "s"))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Cmp(b))

	faster, err := NewSpeed(Bits(11), Second)
	require.NoError(t, err)
	assert.Equal(t, -1, a.Cmp(faster))
	assert.Equal(t, 1, faster.Cmp(b))

	assert.True(t, mustSpeedT(t, 60, "Mb", "m").Equal(mustSpeedT(t, 1, "Mb", "s")))
}

func TestSpeed_AddSub(t *testing.T) {
	a, err := NewSpeed(Bits(10), Second)
	require.NoError(t, err)
	b, err := NewSpeed(Bits(20), mustDur(t, 2, "s"))
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, int64(20), sum.Information().Bits().Int64())
	assert.True(t, sum.Duration().Equal(Second))

	c := PerSecond(Bits(30))
	diff, err := c.Sub(a)
	require.NoError(t, err)
	assert.True(t, diff.Equal(PerSecond(Bits(20))))

	_, err = a.Sub(b)
	assert.True(t, IsInfiniteSpeed(err))

	_, err = a.Sub(c)
	assert.True(t, IsNegative(err))
}

func TestSpeed_Scalars(t *testing.T) {
	s, err := NewSpeed(Bits(4), Nanosecond)
	require.NoError(t, err)
	got, err := s.Div(3)
	require.NoError(t, err)
	want, err := NewSpeed(Bits(1), Nanosecond)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	s, err = NewSpeed(Bits(10), Nanosecond)
	require.NoError(t, err)
	got, err = s.Div(6)
	require.NoError(t, err)
	want, err = NewSpeed(Bits(20), Nanoseconds(10))
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	got, err = s.FloorDiv(6)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Information().Bits().Int64())

	got, err = s.Mul(2.5)
	require.NoError(t, err)
	assert.Equal(t, int64(25), got.Information().Bits().Int64())
	assert.True(t, got.Duration().Equal(Nanosecond))

	_, err = s.Div(0)
	assert.True(t, IsDivisionByZero(err))
}

func TestSpeed_ForDurationMatchesAtSpeed(t *testing.T) {
	s := mustSpeedT(t, 10, "Gb", "s")
	d := mustDur(t, 11, "minutes")
	assert.True(t, s.ForDuration(d).Equal(d.AtSpeed(s)))
	assert.True(t, s.ForDuration(d).Equal(mustInfo(t, 6600, "Gb")))
}

func TestSpeed_Format(t *testing.T) {
	gigabit := mustSpeedT(t, 1, "Gb", "s")

	tests := []struct {
		name  string
		speed Speed
		spec  string
		want  string
	}{
		{"default", gigabit, "", "119.21 MiB/s"},
		{"empty left part", gigabit, "/m", "6.98GiB/m"},
		{"binary bits per hour", gigabit, " bb/h", "3.27 Tib/h"},
		{"explicit unit per minute", gigabit, " MiB/m", "7,152.56 MiB/m"},
		{"number format per month", gigabit, ",.2f|dB/mo", "328.50TB/mo"},
		{"no denominator", mustSpeedT(t, 1, "Tb", "s"), " Gb", "1,000 Gb/s"},
		{"no separator", gigabit, "Gb", "1Gb/s"},
		{"denominator quantity", gigabit, " Mb/10m", "600,000 Mb/10m"},
		{"stored per hour", mustSpeedT(t, 1, "GB", "h"), "", "271.27 KiB/s"},
		{"zero", ZeroSpeed, "", "0 b/s"},
		{"sub byte", PerSecond(Bits(10)), "", "1.25 B/s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.speed.Format(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.spec == "" {
				assert.Equal(t, tt.want, tt.speed.String())
			}
		})
	}
}

func TestSpeed_FormatErrors(t *testing.T) {
	_, err := Gigabit.Format(" zz/s")
	assert.True(t, IsUnknownUnit(err))

	_, err = Gigabit.Format(" Gb/zz")
	assert.True(t, IsUnknownUnit(err))

	_, err = Gigabit.Format(" Gb/0s")
	assert.True(t, IsZeroDuration(err))
}

func TestSpeed_ZeroValue(t *testing.T) {
	var s Speed
	assert.True(t, s.IsZero())
	assert.True(t, s.Duration().Equal(Second))
	assert.True(t, s.Equal(ZeroSpeed))
	assert.Equal(t, "0 b/s", s.String())
}

func TestSpeed_LineRates(t *testing.T) {
	assert.True(t, TenGigabit.Equal(mustSpeedT(t, 10, "Gb", "s")))
	assert.True(t, HundredGigabit.Equal(mustSpeedT(t, 100, "Gb", "s")))
	assert.Equal(t, int64(64_000), E0.Information().Bits().Int64())
	assert.Equal(t, int64(2_048_000), E1.Information().Bits().Int64())
	assert.Equal(t, int64(565_148_000), E5.Information().Bits().Int64())
	assert.True(t, DS0.Equal(E0))
	assert.True(t, T1.Equal(DS1))
	assert.Equal(t, int64(1_544_000), T1.Information().Bits().Int64())
	assert.Equal(t, 1, FortyGigabit.Cmp(TenGigabit))
}
