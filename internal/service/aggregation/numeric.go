package aggregation

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// parseCell разбирает свободный текст ячейки вида "1,234.5 GJ" на величину
// и единицу измерения. Никогда не возвращает ошибку: пустые и нечисловые
// значения дают (0, "").
func parseCell(text string) (decimal.Decimal, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Zero, ""
	}

	numToken := trimmed
	unit := ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		numToken = trimmed[:i]
		unit = strings.TrimSpace(trimmed[i:])
	}

	// тысячные разделители
	numToken = strings.ReplaceAll(numToken, ",", "")

	val, err := decimal.NewFromString(numToken)
	if err != nil {
		return decimal.Zero, ""
	}

	return val, unit
}

// formatCell форматирует величину фиксированно с двумя знаками после точки.
func formatCell(val decimal.Decimal) string {
	return val.StringFixed(2)
}

func formatCellWithUnit(val decimal.Decimal, unit string) string {
	if unit == "" {
		return formatCell(val)
	}
	return formatCell(val) + " " + unit
}
