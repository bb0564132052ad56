package controller

import (
	"net/http"

	"github.com/ecovance/disclose/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) CreateCompany(ctx echo.Context) error {
	req := new(dto.CreateCompanyRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	company, err := c.plantsService.CreateCompany(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, company)
}

func (c *Controller) CreatePlant(ctx echo.Context) error {
	companyID, _, err := plantScope(ctx)
	if err != nil {
		return err
	}

	req := new(dto.CreatePlantRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	plant, err := c.plantsService.CreatePlant(ctx.Request().Context(), companyID, req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, plant)
}

func (c *Controller) DeletePlant(ctx echo.Context) error {
	companyID, _, err := plantScope(ctx)
	if err != nil {
		return err
	}

	if err := c.plantsService.DeletePlant(ctx.Request().Context(), companyID, ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ListPlants(ctx echo.Context) error {
	companyID, _, err := plantScope(ctx)
	if err != nil {
		return err
	}

	list, err := c.plantsService.ListPlants(ctx.Request().Context(), companyID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, list)
}
