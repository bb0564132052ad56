package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) GetReport(ctx echo.Context) error {
	companyID, plantID, err := plantScope(ctx)
	if err != nil {
		return err
	}

	report, err := c.answersService.GetReport(ctx.Request().Context(), companyID, plantID, ctx.Param("year"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *Controller) SubmitReport(ctx echo.Context) error {
	companyID, plantID, err := plantScope(ctx)
	if err != nil {
		return err
	}

	report, err := c.answersService.SubmitReport(ctx.Request().Context(), companyID, plantID, ctx.Param("year"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}
