package aggregation

import (
	"testing"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestClassifyRow(t *testing.T) {
	cases := []struct {
		meta domain.RowDescriptor
		want rowClass
	}{
		{domain.RowDescriptor{Parameter: "Renewable sources", IsHeader: true}, rowHeader},
		{domain.RowDescriptor{Parameter: "Total Energy (A+B+C)"}, rowTotal},
		{domain.RowDescriptor{Parameter: "TOTAL water withdrawal"}, rowTotal},
		{domain.RowDescriptor{Parameter: "<b>Total</b> volume discharged"}, rowTotal},
		{domain.RowDescriptor{Parameter: "<strong>total</strong>"}, rowTotal},
		{domain.RowDescriptor{Parameter: "Energy intensity per ton"}, rowIntensity},
		{domain.RowDescriptor{Parameter: "Water Intensity (kl/tonne)"}, rowIntensity},
		{domain.RowDescriptor{Parameter: "Electricity (A)"}, rowSummable},
		{domain.RowDescriptor{Parameter: "Grid electricity"}, rowSummable},
		// заголовок важнее содержимого названия
		{domain.RowDescriptor{Parameter: "Total from renewables", IsHeader: true}, rowHeader},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, classifyRow(tc.meta), "classifyRow(%+v)", tc.meta)
	}
}

func TestShouldAggregate(t *testing.T) {
	require.True(t, shouldAggregate(domain.RowDescriptor{Parameter: "Fuel (B)"}))
	require.False(t, shouldAggregate(domain.RowDescriptor{Parameter: "Total Energy (A+B+C)"}))
	require.False(t, shouldAggregate(domain.RowDescriptor{Parameter: "Energy intensity per ton"}))
	require.False(t, shouldAggregate(domain.RowDescriptor{Parameter: "Header", IsHeader: true}))
}

func TestPlainLabel(t *testing.T) {
	require.Equal(t, "Total Energy (A+B)", plainLabel("<b>Total</b> Energy (A+B)"))
	require.Equal(t, "Plain label", plainLabel("Plain label"))
	require.Equal(t, "A & B", plainLabel("A &amp; B"))
}

func cellsFromCurrent(values ...string) []aggregatedRow {
	out := make([]aggregatedRow, len(values))
	for i, v := range values {
		out[i].current = cell{value: decimal.RequireFromString(v)}
	}
	return out
}

func TestRecomputeTotalsBoundaries(t *testing.T) {
	metadata := []domain.RowDescriptor{
		{Parameter: "A"},
		{Parameter: "B"},
		{Parameter: "Total first section"},
		{Parameter: "C"},
		{Parameter: "Total second section"},
	}
	cells := cellsFromCurrent("10", "20", "999", "5", "999")

	recomputeTotals(cells, metadata)

	require.True(t, cells[2].current.value.Equal(decimal.RequireFromString("30")))
	// второй итог считается только от строк после первого итога
	require.True(t, cells[4].current.value.Equal(decimal.RequireFromString("5")))
}

func TestRecomputeTotalsSkipsHeadersAndIntensity(t *testing.T) {
	metadata := []domain.RowDescriptor{
		{Parameter: "Section", IsHeader: true},
		{Parameter: "A"},
		{Parameter: "Energy intensity per ton"},
		{Parameter: "Total"},
	}
	// ячейки заголовков и интенсивностей агрегатор не трогает - нули
	cells := cellsFromCurrent("0", "10", "0", "777")

	recomputeTotals(cells, metadata)

	require.True(t, cells[3].current.value.Equal(decimal.RequireFromString("10")))
}
