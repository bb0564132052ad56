package controller

import (
	"net/http"

	"github.com/ecovance/disclose/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) UpsertSubjectiveAnswer(ctx echo.Context) error {
	companyID, plantID, err := plantScope(ctx)
	if err != nil {
		return err
	}

	req := new(dto.SubjectiveAnswerRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	answer, err := c.answersService.UpsertSubjective(ctx.Request().Context(), companyID, plantID, ctx.Param("year"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, answer)
}

func (c *Controller) UpsertTableAnswer(ctx echo.Context) error {
	companyID, plantID, err := plantScope(ctx)
	if err != nil {
		return err
	}

	req := new(dto.TableAnswerRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	answer, err := c.answersService.UpsertTable(ctx.Request().Context(), companyID, plantID, ctx.Param("year"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, answer)
}

func (c *Controller) PatchTableAnswer(ctx echo.Context) error {
	companyID, plantID, err := plantScope(ctx)
	if err != nil {
		return err
	}

	req := new(dto.TableAnswerPatchRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	answer, err := c.answersService.PatchTable(ctx.Request().Context(), companyID, plantID, ctx.Param("year"), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, answer)
}
