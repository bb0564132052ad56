package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/google/uuid"
)

var plantsColumns = []string{"id", "company_id", "plant_code", "plant_name", "plant_type", "created_at", "updated_at"}

func (s *store) CreatePlant(ctx context.Context, plant *domain.Plant) (*domain.Plant, error) {
	if plant.ID == "" {
		plant.ID = uuid.NewString()
	}

	query := builder().Insert(tablePlants).
		Columns("id", "company_id", "plant_code", "plant_name", "plant_type").
		Values(plant.ID, plant.CompanyID, plant.PlantCode, plant.PlantName, plant.PlantType).
		Suffix(`on conflict (company_id, plant_code) do nothing`)

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return nil, wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return nil, constants.ErrPlantConflict
	}

	return s.GetPlant(ctx, plant.CompanyID, plant.ID)
}

func (s *store) DeletePlant(ctx context.Context, companyID, plantID string) error {
	query := builder().Delete(tablePlants).
		Where(sq.And{
			sq.Eq{"id": plantID},
			sq.Eq{"company_id": companyID},
			sq.Eq{"plant_type": domain.PlantTypeRegular},
		})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return wrapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

func (s *store) GetPlant(ctx context.Context, companyID, plantID string) (*domain.Plant, error) {
	query := builder().Select(plantsColumns...).
		From(tablePlants).
		Where(sq.And{
			sq.Eq{"id": plantID},
			sq.Eq{"company_id": companyID},
		})

	var selected domain.Plant
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) GetPlantByType(ctx context.Context, companyID string, plantType domain.PlantType) (*domain.Plant, error) {
	query := builder().Select(plantsColumns...).
		From(tablePlants).
		Where(sq.And{
			sq.Eq{"company_id": companyID},
			sq.Eq{"plant_type": plantType},
		})

	var selected domain.Plant
	if err := s.pool.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

func (s *store) ListPlants(ctx context.Context, companyID string) ([]*domain.Plant, error) {
	query := builder().Select(plantsColumns...).
		From(tablePlants).
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("plant_code")

	var selected []*domain.Plant
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListPlantsByType(ctx context.Context, companyID string, plantType domain.PlantType) ([]*domain.Plant, error) {
	query := builder().Select(plantsColumns...).
		From(tablePlants).
		Where(sq.And{
			sq.Eq{"company_id": companyID},
			sq.Eq{"plant_type": plantType},
		}).
		OrderBy("plant_code")

	var selected []*domain.Plant
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
