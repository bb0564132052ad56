package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/pkg/xpgx"
	"github.com/google/uuid"
)

var companiesColumns = []string{"id", "name", "created_at", "updated_at"}

// CreateCompany создаёт компанию вместе с её виртуальными заводами
// (home и aggregator) в одной транзакции.
func (s *store) CreateCompany(ctx context.Context, name string) (*domain.Company, error) {
	companyID := uuid.NewString()

	err := s.pool.WithinTx(ctx, func(ctx context.Context, tx xpgx.Runner) error {
		query := builder().Insert(tableCompanies).
			Columns("id", "name").
			Values(companyID, name)

		if _, err := tx.Execx(ctx, query); err != nil {
			return fmt.Errorf("insert company: %w", err)
		}

		plantsQuery := builder().Insert(tablePlants).
			Columns("id", "company_id", "plant_code", "plant_name", "plant_type").
			Values(uuid.NewString(), companyID, "HOME", name+" (home)", domain.PlantTypeHome).
			Values(uuid.NewString(), companyID, "AGG", name+" (aggregate)", domain.PlantTypeAggregator)

		if _, err := tx.Execx(ctx, plantsQuery); err != nil {
			return fmt.Errorf("insert virtual plants: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetCompany(ctx, companyID)
}

func (s *store) GetCompany(ctx context.Context, companyID string) (*domain.Company, error) {
	query := builder().Select(companiesColumns...).
		From(tableCompanies).
		Where(sq.Eq{"id": companyID})

	var selected domain.Company
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}
