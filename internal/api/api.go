package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ecovance/disclose/internal/api/controller"
	"github.com/ecovance/disclose/internal/pkg/catalog"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/ecovance/disclose/internal/pkg/logger"
	"github.com/ecovance/disclose/internal/pkg/store"
	"github.com/ecovance/disclose/internal/service/aggregation"
	"github.com/ecovance/disclose/internal/service/answers"
	"github.com/ecovance/disclose/internal/service/auth"
	"github.com/ecovance/disclose/internal/service/plants"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store, moduleCatalog *catalog.Catalog) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: viper.GetStringSlice(constants.ViperCORSOrigins),
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	aggregationService := aggregation.NewService(store, store, moduleCatalog)
	answersService := answers.NewAnswersService(store, aggregationService)
	plantsService := plants.NewPlantsService(store)
	authService := auth.NewService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(answersService, plantsService, authService)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", cntrl.Login)

	companies := api.Group("/companies")
	companies.POST("", cntrl.CreateCompany)

	plantsGroup := api.Group("/plants", svc.AuthMiddleware)
	plantsGroup.GET("/list", cntrl.ListPlants)
	plantsGroup.POST("/create", cntrl.CreatePlant)
	plantsGroup.DELETE("/:id", cntrl.DeletePlant)

	reports := api.Group("/reports", svc.AuthMiddleware)
	reports.GET("/:year", cntrl.GetReport)
	reports.POST("/:year/submit", cntrl.SubmitReport)
	reports.PUT("/:year/answers/subjective", cntrl.UpsertSubjectiveAnswer)
	reports.PUT("/:year/answers/table", cntrl.UpsertTableAnswer)
	reports.PATCH("/:year/answers/table", cntrl.PatchTableAnswer)

	return svc, nil
}
