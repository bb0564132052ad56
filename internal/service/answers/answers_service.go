package answers

import (
	"context"
	"fmt"
	"time"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/domain/dto"
	"github.com/ecovance/disclose/internal/pkg/logger"
	"github.com/ecovance/disclose/internal/pkg/store"
	"github.com/ecovance/disclose/internal/service/aggregation"
)

const aggregationTimeout = 30 * time.Second

// Service принимает записи ответов. Каждая запись сначала коммитится в
// хранилище, затем fire-and-forget запускает пересчёт aggregator завода:
// исход агрегации не влияет на ответ клиенту.
type Service struct {
	store      store.Store
	aggregator *aggregation.Service
}

func NewAnswersService(store store.Store, aggregator *aggregation.Service) *Service {
	return &Service{store: store, aggregator: aggregator}
}

func (s *Service) UpsertSubjective(
	ctx context.Context,
	companyID, plantID string,
	year domain.FinancialYear,
	req *dto.SubjectiveAnswerRequest,
) (*domain.QuestionAnswer, error) {
	answer := domain.QuestionAnswer{
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		UpdatedData:   domain.NewSubjectiveRaw(req.Text),
		LastUpdated:   time.Now().UTC(),
	}

	if err := s.store.UpsertAnswer(ctx, companyID, plantID, year, answer); err != nil {
		return nil, fmt.Errorf("store.UpsertAnswer: %w", err)
	}

	s.trigger(ctx, aggregation.Params{
		CompanyID:     companyID,
		FinancialYear: year,
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		Payload:       answer.UpdatedData,
		SourcePlantID: plantID,
	}, false)

	return &answer, nil
}

func (s *Service) UpsertTable(
	ctx context.Context,
	companyID, plantID string,
	year domain.FinancialYear,
	req *dto.TableAnswerRequest,
) (*domain.QuestionAnswer, error) {
	answer := domain.QuestionAnswer{
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		UpdatedData:   domain.NewTableRaw(req.Rows),
		LastUpdated:   time.Now().UTC(),
	}

	if err := s.store.UpsertAnswer(ctx, companyID, plantID, year, answer); err != nil {
		return nil, fmt.Errorf("store.UpsertAnswer: %w", err)
	}

	// прямые правки таблиц идут через вариант с единицами измерения
	s.trigger(ctx, aggregation.Params{
		CompanyID:     companyID,
		FinancialYear: year,
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		Payload:       answer.UpdatedData,
		SourcePlantID: plantID,
	}, true)

	return &answer, nil
}

// PatchTable сливает непустые ячейки запроса поверх сохранённых строк
// и сохраняет результат как обычную табличную запись.
func (s *Service) PatchTable(
	ctx context.Context,
	companyID, plantID string,
	year domain.FinancialYear,
	req *dto.TableAnswerPatchRequest,
) (*domain.QuestionAnswer, error) {
	merged := req.Rows
	if report, err := s.store.GetReport(ctx, companyID, plantID, year); err == nil {
		if stored, ok := report.Answer(req.QuestionID); ok {
			if storedRows, ok := stored.UpdatedData.DecodeRows(); ok {
				merged = mergeRows(storedRows, req.Rows)
			}
		}
	}

	answer := domain.QuestionAnswer{
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		UpdatedData:   domain.NewTableRaw(merged),
		LastUpdated:   time.Now().UTC(),
	}

	if err := s.store.UpsertAnswer(ctx, companyID, plantID, year, answer); err != nil {
		return nil, fmt.Errorf("store.UpsertAnswer: %w", err)
	}

	s.trigger(ctx, aggregation.Params{
		CompanyID:     companyID,
		FinancialYear: year,
		QuestionID:    req.QuestionID,
		QuestionTitle: req.QuestionTitle,
		Payload:       answer.UpdatedData,
		SourcePlantID: plantID,
	}, false)

	return &answer, nil
}

func (s *Service) GetReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error) {
	return s.store.GetReport(ctx, companyID, plantID, year)
}

func (s *Service) SubmitReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error) {
	return s.store.SubmitReport(ctx, companyID, plantID, year)
}

// mergeRows накладывает непустые ячейки patch поверх stored. Строки за
// пределами stored берутся из patch как есть.
func mergeRows(stored, patch []domain.TableRow) []domain.TableRow {
	out := make([]domain.TableRow, max(len(stored), len(patch)))
	copy(out, stored)

	for i := range patch {
		if patch[i].CurrentYear != "" {
			out[i].CurrentYear = patch[i].CurrentYear
		}
		if patch[i].PreviousYear != "" {
			out[i].PreviousYear = patch[i].PreviousYear
		}
	}

	return out
}

func (s *Service) trigger(ctx context.Context, params aggregation.Params, withUnits bool) {
	aggCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), aggregationTimeout)

	go func() {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				logger.Errorf(aggCtx, "aggregation panic for question %s: %v", params.QuestionID, r)
			}
		}()

		if withUnits {
			s.aggregator.AggregateWithUnits(aggCtx, params)
		} else {
			s.aggregator.Aggregate(aggCtx, params)
		}
	}()
}
