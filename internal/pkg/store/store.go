package store

import (
	"context"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/pkg/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateCompany(ctx context.Context, name string) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID string) (*domain.Company, error)

	CreatePlant(ctx context.Context, plant *domain.Plant) (*domain.Plant, error)
	DeletePlant(ctx context.Context, companyID, plantID string) error
	GetPlant(ctx context.Context, companyID, plantID string) (*domain.Plant, error)
	GetPlantByType(ctx context.Context, companyID string, plantType domain.PlantType) (*domain.Plant, error)
	ListPlants(ctx context.Context, companyID string) ([]*domain.Plant, error)
	ListPlantsByType(ctx context.Context, companyID string, plantType domain.PlantType) ([]*domain.Plant, error)

	GetReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error)
	UpsertAnswer(ctx context.Context, companyID, plantID string, year domain.FinancialYear, answer domain.QuestionAnswer) error
	SubmitReport(ctx context.Context, companyID, plantID string, year domain.FinancialYear) (*domain.EnvironmentReport, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
