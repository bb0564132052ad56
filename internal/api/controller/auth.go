package controller

import (
	"net/http"

	"github.com/ecovance/disclose/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Login(ctx echo.Context) error {
	req := new(dto.LoginRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	resp, err := c.authService.Login(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
