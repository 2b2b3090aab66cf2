package quantity

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDur(t *testing.T, q float64, unit string) Duration {
	t.Helper()
	d, err := NewDuration(q, unit)
	require.NoError(t, err)
	return d
}

func TestNewDuration(t *testing.T) {
	assert.True(t, mustDur(t, 90, "m").Equal(mustDur(t, 1.5, "h")))
	assert.True(t, mustDur(t, 1, "y").Equal(mustDur(t, 12, "mo")))
	assert.True(t, mustDur(t, 1, "mo").Equal(mustDur(t, 730, "h")))
	assert.Equal(t, int64(2), mustDur(t, 1.5, "ns").Nanoseconds().Int64(), "ties to even")
	assert.Equal(t, int64(2), mustDur(t, 2.5, "ns").Nanoseconds().Int64(), "ties to even")
	assert.Equal(t, int64(3), mustDur(t, 2.6, "ns").Nanoseconds().Int64())
}

func TestNewDuration_Errors(t *testing.T) {
	_, err := NewDuration(-1, "s")
	assert.True(t, IsNegative(err))

	_, err = NewDuration(math.Inf(-1), "s")
	assert.True(t, IsNotFinite(err))

	_, err = NewDuration(1, "fortnight")
	assert.True(t, IsUnknownUnit(err))

	_, err = Of("GiB")
	assert.True(t, IsUnknownUnit(err))
}

func TestDuration_LargerThanInt64(t *testing.T) {
	d := mustDur(t, 1000, "y")
	_, ok := d.Std()
	assert.False(t, ok)
	assert.Equal(t, "31536000000000000000", d.Nanoseconds().String())
}

func TestDuration_StdInterop(t *testing.T) {
	d, err := FromStd(90 * time.Second)
	require.NoError(t, err)
	assert.True(t, d.Equal(mustDur(t, 1.5, "m")))
	assert.Equal(t, 90.0, d.Seconds())

	std, ok := d.Std()
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, std)

	_, err = FromStd(-time.Second)
	assert.True(t, IsNegative(err))
}

func TestDuration_SubAddRoundTrip(t *testing.T) {
	durations := []Duration{
		ZeroDuration,
		Nanosecond,
		mustDur(t, 1.5, "s"),
		mustDur(t, 3, "h"),
		mustDur(t, 2.5, "w"),
		mustDur(t, 14, "y"),
	}
	for _, d1 := range durations {
		for _, d2 := range durations {
			if d1.Cmp(d2) < 0 {
				_, err := d1.Sub(d2)
				assert.True(t, IsNegative(err), "%s - %s", d1, d2)
				continue
			}
			diff, err := d1.Sub(d2)
			require.NoError(t, err)
			assert.True(t, diff.Add(d2).Equal(d1), "(%s - %s) + %s", d1, d2, d2)
		}
	}
}

func TestDuration_Scalars(t *testing.T) {
	d := Nanoseconds(7)

	got, err := d.Mul(1.5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Nanoseconds().Int64(), "10.5 ties to even")

	got, err = d.Div(2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Nanoseconds().Int64(), "3.5 ties to even")

	got, err = d.FloorDiv(2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Nanoseconds().Int64())

	_, err = d.Div(0)
	assert.True(t, IsDivisionByZero(err))

	_, err = d.FloorDiv(0)
	assert.True(t, IsDivisionByZero(err))

	_, err = d.Mul(-1)
	assert.True(t, IsNegative(err))
}

func TestDuration_AtSpeed(t *testing.T) {
	rate := mustSpeedT(t, 10, "Gb", "s")
	got := mustDur(t, 11, "minutes").AtSpeed(rate)
	assert.Equal(t, int64(10_000_000_000*60*11), got.Bits().Int64())

	// rounds up
	slow, err := NewSpeed(Bits(1), Nanoseconds(3))
	require.NoError(t, err)
	assert.Equal(t, int64(1), Nanosecond.AtSpeed(slow).Bits().Int64())
}

func TestDuration_HumanReadable(t *testing.T) {
	tests := []struct {
		d    Duration
		want string
	}{
		{ZeroDuration, "0 nanoseconds"},
		{Nanosecond, "1 nanosecond"},
		{mustDur(t, 90, "m"), "1 hour 30 minutes"},
		{mustDur(t, 1, "y").Add(Month).Add(Day), "1 year 1 month 1 day"},
		{mustDur(t, 2, "w").Add(Nanoseconds(3)), "2 weeks 3 nanoseconds"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.HumanReadable())
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestDuration_Format(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		spec string
		want string
	}{
		{"empty is human readable", mustDur(t, 1, "h"), "", "1 hour"},
		{"grouped years", mustDur(t, 1000, "y"), ",.0f|", "1,000y"},
		{"fixed auto unit", mustDur(t, 1.1, "d"), ".2f|", "1.10d"},
		{"separator auto unit", Day, " ", "1 d"},
		{"explicit minutes", mustDur(t, 90, "s"), " m", "1.50 m"},
		{"explicit seconds", mustDur(t, 1.5, "m"), "s", "90s"},
		{"fraction of a year", mustDur(t, 3.65, "d"), "y", "0.01y"},
		{"thousandth of a year", mustDur(t, 8.76581277, "h"), "y", "0.001y"},
		{"second in years", Second, "y", "0.000000032y"},
		{"zero auto unit", ZeroDuration, " ", "0 ns"},
		{"long unit name", mustDur(t, 14, "y").Add(mustDur(t, 2.5, "w")), " months", "168.58 months"},
		{"auto picks months", mustDur(t, 45, "d"), " ", "1.48 mo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.d.Format(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDuration_FormatUnknownUnit(t *testing.T) {
	_, err := Second.Format(" GiB")
	require.Error(t, err)
	assert.True(t, IsUnknownUnit(err))
}

func TestDuration_ZeroValue(t *testing.T) {
	var d Duration
	assert.True(t, d.IsZero())
	assert.True(t, d.Equal(ZeroDuration))
	assert.Equal(t, 0.0, d.Seconds())
}
