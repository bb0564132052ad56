package plants

import (
	"context"
	"fmt"

	"github.com/ecovance/disclose/internal/domain"
	"github.com/ecovance/disclose/internal/domain/dto"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/ecovance/disclose/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewPlantsService(store store.Store) *Service {
	return &Service{store: store}
}

// CreateCompany создаёт компанию и её home/aggregator заводы атомарно.
func (s *Service) CreateCompany(ctx context.Context, req *dto.CreateCompanyRequest) (*domain.Company, error) {
	company, err := s.store.CreateCompany(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("store.CreateCompany: %w", err)
	}

	return company, nil
}

// CreatePlant создаёт только regular завод: виртуальные заводы живут вместе
// с компанией и через API не управляются.
func (s *Service) CreatePlant(ctx context.Context, companyID string, req *dto.CreatePlantRequest) (*domain.Plant, error) {
	plant := &domain.Plant{
		CompanyID: companyID,
		PlantCode: req.PlantCode,
		PlantName: req.PlantName,
		PlantType: domain.PlantTypeRegular,
	}

	created, err := s.store.CreatePlant(ctx, plant)
	if err != nil {
		return nil, fmt.Errorf("store.CreatePlant: %w", err)
	}

	return created, nil
}

func (s *Service) DeletePlant(ctx context.Context, companyID, plantID string) error {
	plant, err := s.store.GetPlant(ctx, companyID, plantID)
	if err != nil {
		return err
	}
	if plant.IsVirtual() {
		return constants.ErrVirtualPlant
	}

	return s.store.DeletePlant(ctx, companyID, plantID)
}

func (s *Service) ListPlants(ctx context.Context, companyID string) ([]*domain.Plant, error) {
	return s.store.ListPlants(ctx, companyID)
}
