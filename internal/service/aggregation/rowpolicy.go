package aggregation

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ecovance/disclose/internal/domain"
	"github.com/shopspring/decimal"
)

type rowClass int

const (
	rowSummable rowClass = iota
	rowHeader
	rowTotal
	rowIntensity
)

// classifyRow решает, как строка участвует в агрегации. Порядок проверок
// важен: заголовки не содержат чисел, строки-итоги пересчитываются из уже
// агрегированных значений, интенсивности не аддитивны между заводами.
func classifyRow(meta domain.RowDescriptor) rowClass {
	if meta.IsHeader {
		return rowHeader
	}

	label := strings.ToLower(plainLabel(meta.Parameter))
	switch {
	case strings.Contains(label, "total"):
		return rowTotal
	case strings.Contains(label, "intensity"):
		return rowIntensity
	default:
		return rowSummable
	}
}

func shouldAggregate(meta domain.RowDescriptor) bool {
	return classifyRow(meta) == rowSummable
}

// plainLabel снимает html разметку с названия строки:
// "<b>Total</b> Energy (A+B)" -> "Total Energy (A+B)".
func plainLabel(label string) string {
	if !strings.ContainsAny(label, "<&") {
		return label
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(label))
	if err != nil {
		return label
	}

	return doc.Text()
}

// recomputeTotals пересчитывает строки-итоги: каждая получает сумму уже
// агрегированных значений строк строго между ней и предыдущим итогом
// (или началом таблицы). Вызывается после прохода по суммируемым строкам.
func recomputeTotals(cells []aggregatedRow, metadata []domain.RowDescriptor) {
	boundary := -1
	for i, meta := range metadata {
		if classifyRow(meta) != rowTotal {
			continue
		}

		current := cell{value: decimal.Zero}
		previous := cell{value: decimal.Zero}
		for j := boundary + 1; j < i; j++ {
			current.add(cells[j].current.value, cells[j].current.unit)
			previous.add(cells[j].previous.value, cells[j].previous.unit)
		}

		cells[i].current = current
		cells[i].previous = previous
		boundary = i
	}
}
