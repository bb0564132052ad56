package api

import (
	"context"

	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/ecovance/disclose/internal/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
)

func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = random.String(16)
		}

		req := ctx.Request()
		ctx.SetRequest(req.WithContext(context.WithValue(req.Context(), constants.CtxKeyRequestID, reqID)))
		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		return next(ctx)
	}
}

// AuthMiddleware достаёт company/plant из auth cookie и кладёт их в контекст
// запроса - дальше ими пользуются контроллеры отчётов и заводов.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(string(constants.CtxKeyUserID), token.UserID)
		ctx.Set(string(constants.CtxKeyCompanyID), token.CompanyID)
		ctx.Set(string(constants.CtxKeyPlantID), token.PlantID)

		return next(ctx)
	}
}
