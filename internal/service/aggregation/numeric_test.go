package aggregation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	cases := []struct {
		in    string
		value string
		unit  string
	}{
		{"1,234.5 GJ", "1234.5", "GJ"},
		{"10 joule", "10", "joule"},
		{"123.45", "123.45", ""},
		{"1,000,000", "1000000", ""},
		{"", "0", ""},
		{"   ", "0", ""},
		{"n/a", "0", ""},
		{"- GJ", "0", ""},
		{"12.5   kl per day", "12.5", "kl per day"},
	}

	for _, tc := range cases {
		val, unit := parseCell(tc.in)
		require.True(t, val.Equal(decimal.RequireFromString(tc.value)), "parseCell(%q) value = %s", tc.in, val)
		require.Equal(t, tc.unit, unit, "parseCell(%q) unit", tc.in)
	}
}

func TestFormatCell(t *testing.T) {
	require.Equal(t, "15.00", formatCell(decimal.RequireFromString("15")))
	require.Equal(t, "1234.50", formatCell(decimal.RequireFromString("1234.5")))
	require.Equal(t, "0.00", formatCell(decimal.Zero))
	require.Equal(t, "0.67", formatCell(decimal.RequireFromString("0.666")))
}

func TestFormatCellWithUnit(t *testing.T) {
	require.Equal(t, "20.00 joule", formatCellWithUnit(decimal.RequireFromString("20"), "joule"))
	require.Equal(t, "20.00", formatCellWithUnit(decimal.RequireFromString("20"), ""))
}
