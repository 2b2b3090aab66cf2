package quantity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumberFormat(t *testing.T) {
	tests := []struct {
		in   string
		want NumberFormat
	}{
		{"", NumberFormat{}},
		{",", NumberFormat{Grouping: true}},
		{".2f", NumberFormat{Precision: 2, HasPrecision: true, Fixed: true}},
		{",.0f", NumberFormat{Grouping: true, HasPrecision: true, Fixed: true}},
		{".3", NumberFormat{Precision: 3, HasPrecision: true}},
		{"f", NumberFormat{Fixed: true}},
		{"8", NumberFormat{Width: 8}},
		{">10", NumberFormat{Fill: ' ', Align: '>', Width: 10}},
		{"<", NumberFormat{Fill: ' ', Align: '<'}},
		{"*^9,", NumberFormat{Fill: '*', Align: '^', Width: 9, Grouping: true}},
		{"010.2f", NumberFormat{Fill: '0', Align: '=', Width: 10, Precision: 2, HasPrecision: true, Fixed: true}},
		{"<<6", NumberFormat{Fill: '<', Align: '<', Width: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumberFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumberFormat_Invalid(t *testing.T) {
	for _, in := range []string{"x", ".f2", "x5", ",,", ".", ".999", "+5", "#x", "5d", "1001", "*"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseNumberFormat(in)
			require.Error(t, err)
			assert.True(t, IsBadFormat(err))
		})
	}
}

func TestNumberFormat_RenderDefault(t *testing.T) {
	tests := []struct {
		name string
		num  int64
		den  int64
		want string
	}{
		{"zero", 0, 1, "0"},
		{"integer", 42, 1, "42"},
		{"integer grouped", 12_000_000, 1, "12,000,000"},
		{"two places", 3, 2, "1.50"},
		{"round half up", 12345, 1000, "12.35"},
		{"grouped fraction", 1234567, 100, "12,345.67"},
		{"small", 1, 3, "0.33"},
		{"very small", 1, 3000, "0.00033"},
		{"small trimmed", 1, 10, "0.1"},
		{"small rounds to one", 999, 1000, "1"},
		{"second significant digit", 123, 10000, "0.012"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NumberFormat{}.Render(big.NewRat(tt.num, tt.den))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberFormat_RenderExplicit(t *testing.T) {
	tests := []struct {
		format string
		num    int64
		den    int64
		want   string
	}{
		{",.0f", 1000, 1, "1,000"},
		{".0f", 1000, 1, "1000"},
		{".2f", 11, 10, "1.10"},
		{",.2f", 657, 2, "328.50"},
		{".1f", 25, 100, "0.2"},
		{".1f", 35, 100, "0.4"},
		{"f", 1, 3, "0.333333"},
		{",", 1234567, 1000, "1,234.57"},
		{"8", 42, 1, "      42"},
		{">10", 1234567, 1000, "  1,234.57"},
		{"<8", 42, 1, "42      "},
		{"*^9", 42, 1, "***42****"},
		{"010.2f", 3, 2, "0000001.50"},
		{"=9,.1f", 1000, 1, "  1,000.0"},
		{"3", 12_000_000, 1, "12,000,000"},
		{"·>4", 7, 1, "···7"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			nf, err := ParseNumberFormat(tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, nf.Render(big.NewRat(tt.num, tt.den)))
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1", groupThousands("1"))
	assert.Equal(t, "999", groupThousands("999"))
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "100,000.123", groupThousands("100000.123"))
	assert.Equal(t, "1,000,000", groupThousands("1000000"))
}
