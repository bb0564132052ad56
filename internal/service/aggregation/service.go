package aggregation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/ecovance/disclose/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

// AnswerStore - хранилище ответов (реализуется store.Store).
type AnswerStore interface {
	GetReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error)
	UpsertAnswer(ctx context.Context, companyID, plantID string, year domain.FinancialYear, answer domain.QuestionAnswer) error
}

// PlantDirectory - справочник заводов компании (реализуется store.Store).
type PlantDirectory interface {
	GetPlantByType(ctx context.Context, companyID string, plantType domain.PlantType) (*domain.Plant, error)
	ListPlantsByType(ctx context.Context, companyID string, plantType domain.PlantType) ([]*domain.Plant, error)
}

// QuestionCatalog - статичный каталог модулей (реализуется catalog.Catalog).
type QuestionCatalog interface {
	QuestionType(questionID string) domain.QuestionType
	RowMetadata(questionID string) []domain.RowDescriptor
}

// Service пересчитывает ответ aggregator завода после каждой записи ответа.
//
// Пересчёт полный и детерминированный, поэтому идемпотентный: повторный
// вызов при том же состоянии соседей даёт байт-в-байт тот же результат.
// Агрегации одного ключа сериализуются мьютексом внутри процесса; между
// процессами побеждает последняя запись - ответ aggregator завода
// производное состояние и целиком перезаписывается.
type Service struct {
	store   AnswerStore
	plants  PlantDirectory
	catalog QuestionCatalog
	keys    *keyedMutex
}

func NewService(store AnswerStore, plants PlantDirectory, catalog QuestionCatalog) *Service {
	return &Service{
		store:   store,
		plants:  plants,
		catalog: catalog,
		keys:    newKeyedMutex(),
	}
}

type Params struct {
	CompanyID     string
	FinancialYear domain.FinancialYear
	QuestionID    string
	QuestionTitle string
	Payload       domain.RawAnswer
	SourcePlantID string
}

// Aggregate выполняет прогон агрегации. Никогда не возвращает ошибку:
// вызывается после того как исходная запись уже подтверждена, все сбои
// логируются и глотаются.
func (s *Service) Aggregate(ctx context.Context, params Params) {
	s.run(ctx, params, false)
}

// AggregateWithUnits - вариант для прямых правок таблиц: при накоплении
// запоминает первую непустую единицу измерения каждой ячейки и дописывает
// её к отформатированному числу ("20.00 joule").
func (s *Service) AggregateWithUnits(ctx context.Context, params Params) {
	s.run(ctx, params, true)
}

func (s *Service) run(ctx context.Context, p Params, withUnits bool) {
	unlock := s.keys.lock(fmt.Sprintf("%s/%s/%s", p.CompanyID, p.FinancialYear, p.QuestionID))
	defer unlock()

	aggregator, err := s.plants.GetPlantByType(ctx, p.CompanyID, domain.PlantTypeAggregator)
	if err != nil {
		logger.Errorf(ctx, "aggregation: company %s has no aggregator plant: %s", p.CompanyID, err.Error())
		return
	}

	// Прямые правки aggregator завода авторитетны и не пересчитываются.
	if p.SourcePlantID == aggregator.ID {
		s.writeAnswer(ctx, p, aggregator.ID, p.Payload, domain.AnswerOriginManual, nil)
		return
	}

	switch s.classify(p.QuestionID, p.Payload) {
	case domain.QuestionTypeSubjective:
		s.resyncSubjective(ctx, p, aggregator)
	case domain.QuestionTypeTable:
		s.rollupTable(ctx, p, aggregator, withUnits)
	default:
		logger.Warnf(ctx, "aggregation: question %s is unclassifiable, skipping", p.QuestionID)
	}
}

// classify определяет тип вопроса по каталогу, при промахе - по форме
// записанного payload.
func (s *Service) classify(questionID string, payload domain.RawAnswer) domain.QuestionType {
	if qt := s.catalog.QuestionType(questionID); qt != domain.QuestionTypeUnknown {
		return qt
	}
	return sniffPayload(payload)
}

func sniffPayload(payload domain.RawAnswer) domain.QuestionType {
	var sub struct {
		Type string `json:"type"`
	}
	if err := sonic.Unmarshal(payload, &sub); err == nil && sub.Type == "subjective" {
		return domain.QuestionTypeSubjective
	}

	var rows []map[string]interface{}
	if err := sonic.Unmarshal(payload, &rows); err == nil && len(rows) > 0 {
		for _, row := range rows {
			if _, ok := row["current_year"]; !ok {
				return domain.QuestionTypeUnknown
			}
		}
		return domain.QuestionTypeTable
	}

	return domain.QuestionTypeUnknown
}

// resyncSubjective переносит в aggregator текущий текст home завода.
// Входящий payload намеренно игнорируется: субъективные ответы любых других
// заводов не распространяются, авторитетен только home.
func (s *Service) resyncSubjective(ctx context.Context, p Params, aggregator *domain.Plant) {
	home, err := s.plants.GetPlantByType(ctx, p.CompanyID, domain.PlantTypeHome)
	if err != nil {
		logger.Errorf(ctx, "aggregation: company %s has no home plant: %s", p.CompanyID, err.Error())
		return
	}

	report, err := s.store.GetReport(ctx, p.CompanyID, home.ID, p.FinancialYear)
	if err != nil {
		if errors.Is(err, constants.ErrDBNotFound) {
			logger.Warnf(ctx, "aggregation: home plant has no report for %s yet, nothing to propagate", p.FinancialYear)
		} else {
			logger.Errorf(ctx, "aggregation: read home plant report for %s: %s", p.FinancialYear, err.Error())
		}
		return
	}

	answer, ok := report.Answer(p.QuestionID)
	if !ok {
		logger.Warnf(ctx, "aggregation: home plant has no answer for question %s yet, nothing to propagate", p.QuestionID)
		return
	}

	sub, ok := answer.UpdatedData.DecodeSubjective()
	if !ok {
		logger.Warnf(ctx, "aggregation: home plant answer for question %s is not subjective", p.QuestionID)
		return
	}

	s.writeAnswer(ctx, p, aggregator.ID, domain.NewSubjectiveRaw(sub.Text), domain.AnswerOriginDerived, nil)
}

type cell struct {
	value decimal.Decimal
	unit  string
}

func (c *cell) add(val decimal.Decimal, unit string) {
	c.value = c.value.Add(val)
	if c.unit == "" {
		c.unit = unit
	}
}

type aggregatedRow struct {
	current  cell
	previous cell
}

// rollupTable суммирует значения regular заводов по строкам таблицы,
// пересчитывает итоговые строки и добавляет собственные прежние значения
// aggregator завода поверх свежих сумм.
func (s *Service) rollupTable(ctx context.Context, p Params, aggregator *domain.Plant, withUnits bool) {
	metadata := s.catalog.RowMetadata(p.QuestionID)
	if len(metadata) == 0 {
		logger.Errorf(ctx, "aggregation: question %s has no row metadata, aborting", p.QuestionID)
		return
	}

	regulars, err := s.plants.ListPlantsByType(ctx, p.CompanyID, domain.PlantTypeRegular)
	if err != nil {
		logger.Errorf(ctx, "aggregation: list regular plants for company %s: %s", p.CompanyID, err.Error())
		return
	}

	cells := make([]aggregatedRow, len(metadata))

	for _, plant := range regulars {
		rows, ok := s.plantRows(ctx, p, plant.ID)
		if !ok {
			continue
		}

		if len(rows) != len(metadata) {
			logger.Warnf(ctx, "aggregation: plant %s has %d rows for question %s, catalog has %d, extra rows ignored",
				plant.ID, len(rows), p.QuestionID, len(metadata))
		}

		for i := 0; i < min(len(rows), len(metadata)); i++ {
			if !shouldAggregate(metadata[i]) {
				continue
			}

			val, unit := parseCell(rows[i].CurrentYear)
			cells[i].current.add(val, unit)

			val, unit = parseCell(rows[i].PreviousYear)
			cells[i].previous.add(val, unit)
		}
	}

	recomputeTotals(cells, metadata)

	// Собственные значения aggregator завода (введённые вручную)
	// сохраняются аддитивно, но только для суммируемых строк. Прошлый
	// результат пересчёта собственным значением не считается: берётся
	// baseline, а не сохранённый производный ответ.
	baseline, ok := s.aggregatorBaseline(ctx, p, aggregator.ID)
	if ok {
		for i := 0; i < min(len(baseline), len(metadata)); i++ {
			if !shouldAggregate(metadata[i]) {
				continue
			}

			val, unit := parseCell(baseline[i].CurrentYear)
			cells[i].current.add(val, unit)

			val, unit = parseCell(baseline[i].PreviousYear)
			cells[i].previous.add(val, unit)
		}
	}

	out := make([]domain.TableRow, len(metadata))
	for i := range cells {
		if withUnits {
			out[i] = domain.TableRow{
				CurrentYear:  formatCellWithUnit(cells[i].current.value, cells[i].current.unit),
				PreviousYear: formatCellWithUnit(cells[i].previous.value, cells[i].previous.unit),
			}
		} else {
			out[i] = domain.TableRow{
				CurrentYear:  formatCell(cells[i].current.value),
				PreviousYear: formatCell(cells[i].previous.value),
			}
		}
	}

	s.writeAnswer(ctx, p, aggregator.ID, domain.NewTableRaw(out), domain.AnswerOriginDerived, baseline)
}

// aggregatorBaseline возвращает вручную введённые строки aggregator завода.
// Ручной ответ (прямая правка) сам является baseline; производный ответ
// несёт поглощённый baseline прошлого прогона.
func (s *Service) aggregatorBaseline(ctx context.Context, p Params, aggregatorID string) ([]domain.TableRow, bool) {
	report, err := s.store.GetReport(ctx, p.CompanyID, aggregatorID, p.FinancialYear)
	if err != nil {
		return nil, false
	}

	answer, ok := report.Answer(p.QuestionID)
	if !ok {
		return nil, false
	}

	if answer.Origin == domain.AnswerOriginDerived {
		if len(answer.Baseline) == 0 {
			return nil, false
		}
		return answer.Baseline, true
	}

	rows, ok := answer.UpdatedData.DecodeRows()
	if !ok {
		logger.Warnf(ctx, "aggregation: aggregator plant has malformed rows for question %s, own values skipped", p.QuestionID)
		return nil, false
	}

	return rows, true
}

// plantRows читает сохранённые строки таблицы завода. Любой промах
// (нет отчёта, нет ответа, неразбираемые данные) - вклад завода
// пропускается, агрегация продолжается.
func (s *Service) plantRows(ctx context.Context, p Params, plantID string) ([]domain.TableRow, bool) {
	report, err := s.store.GetReport(ctx, p.CompanyID, plantID, p.FinancialYear)
	if err != nil {
		return nil, false
	}

	answer, ok := report.Answer(p.QuestionID)
	if !ok {
		return nil, false
	}

	rows, ok := answer.UpdatedData.DecodeRows()
	if !ok {
		logger.Warnf(ctx, "aggregation: plant %s has malformed rows for question %s, contribution skipped", plantID, p.QuestionID)
		return nil, false
	}

	return rows, true
}

func (s *Service) writeAnswer(ctx context.Context, p Params, plantID string, payload domain.RawAnswer, origin domain.AnswerOrigin, baseline []domain.TableRow) {
	answer := domain.QuestionAnswer{
		QuestionID:    p.QuestionID,
		QuestionTitle: p.QuestionTitle,
		UpdatedData:   payload,
		LastUpdated:   time.Now().UTC(),
		Origin:        origin,
		Baseline:      baseline,
	}

	if err := s.store.UpsertAnswer(ctx, p.CompanyID, plantID, p.FinancialYear, answer); err != nil {
		logger.Errorf(ctx, "aggregation: failed to store aggregate for question %s: %s", p.QuestionID, err.Error())
	}
}
