package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/ecovance/disclose/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

// Binder - echo.Binder поверх sonic.
type Binder struct{}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	db := new(echo.DefaultBinder)
	if err := db.BindPathParams(c, i); err != nil {
		return err
	}
	if err := db.BindQueryParams(c, i); err != nil {
		return err
	}

	req := c.Request()
	if req.ContentLength == 0 {
		return nil
	}

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}

	if err := sonic.Unmarshal(body, i); err != nil {
		return constants.NewCodedError(fmt.Sprintf("malformed request body: %s", err.Error()), http.StatusBadRequest)
	}

	return nil
}
