package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/google/uuid"
)

var reportsColumns = []string{"id", "company_id", "plant_id", "financial_year", "answers", "status", "version", "created_at", "updated_at"}

func (s *store) GetReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error) {
	query := builder().Select(reportsColumns...).
		From(tableReports).
		Where(sq.And{
			sq.Eq{"company_id": companyID},
			sq.Eq{"plant_id": plantID},
			sq.Eq{"financial_year": year},
		})

	var selected domain.EnvironmentReport
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

// UpsertAnswer создаёт отчёт при первой записи и сливает ответ в answers
// по ключу вопроса. Слияние на уровне jsonb: ключ вопроса заменяется целиком.
func (s *store) UpsertAnswer(
	ctx context.Context,
	companyID, plantID string,
	year domain.FinancialYear,
	answer domain.QuestionAnswer,
) error {
	answersJSON, err := sonic.Marshal(domain.AnswersMap{answer.QuestionID: answer})
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	query := builder().Insert(tableReports).
		Columns("id", "company_id", "plant_id", "financial_year", "answers", "status", "version").
		Values(uuid.NewString(), companyID, plantID, year, answersJSON, domain.ReportStatusDraft, 1).
		Suffix(`
on conflict (company_id, plant_id, financial_year)
do update
set
	answers = environment_reports.answers || excluded.answers,
	updated_at = now()`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) SubmitReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error) {
	query := builder().Update(tableReports).
		Set("status", domain.ReportStatusSubmitted).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{
			sq.Eq{"company_id": companyID},
			sq.Eq{"plant_id": plantID},
			sq.Eq{"financial_year": year},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, constants.ErrDBNotFound
	}

	return s.GetReport(ctx, companyID, plantID, year)
}
