package auth

import (
	"context"
	"time"

	"github.com/ecovance/disclose/internal/domain/dto"
	"github.com/ecovance/disclose/internal/pkg/store"
	"github.com/ecovance/disclose/internal/pkg/utils"
)

const tokenTTL = 24 * time.Hour

// Service - тонкий коллаборатор: проверяет, что компания и завод существуют,
// и выдаёт JWT с их идентификаторами. Реальная аутентификация пользователей
// живёт снаружи.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

func (svc *Service) Login(ctx context.Context, request *dto.LoginRequest) (*dto.LoginResponse, error) {
	if _, err := svc.store.GetPlant(ctx, request.CompanyID, request.PlantID); err != nil {
		return nil, err
	}

	token, err := utils.IssueAuthToken(request.UserID, request.CompanyID, request.PlantID, tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token}, nil
}
