package controller

import (
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/ecovance/disclose/internal/service/answers"
	"github.com/ecovance/disclose/internal/service/auth"
	"github.com/ecovance/disclose/internal/service/plants"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	answersService *answers.Service
	plantsService  *plants.Service
	authService    *auth.Service
}

func NewController(answersService *answers.Service, plantsService *plants.Service, authService *auth.Service) *Controller {
	return &Controller{
		answersService: answersService,
		plantsService:  plantsService,
		authService:    authService,
	}
}

// plantScope достаёт company/plant, положенные в контекст AuthMiddleware.
func plantScope(ctx echo.Context) (companyID, plantID string, err error) {
	companyID, _ = ctx.Get(string(constants.CtxKeyCompanyID)).(string)
	plantID, _ = ctx.Get(string(constants.CtxKeyPlantID)).(string)
	if companyID == "" || plantID == "" {
		return "", "", constants.ErrUnauthorized
	}
	return companyID, plantID, nil
}
