package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	cartapp "github.com/dwikikusuma/plantshop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/plantshop/internal/catalog/app"
	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func httpStatusFromErr(err error) (int, string, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_"))
		return he.Code, code, fmt.Sprint(he.Message)
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, cartapp.ErrInvalidSession):
		return http.StatusBadRequest, "INVALID_ARGUMENT", err.Error()
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, cartapp.ErrCorruptCart):
		return http.StatusInternalServerError, "CORRUPT_CART", "stored cart could not be read"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "UNAVAILABLE", "request timed out"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, code, msg := httpStatusFromErr(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			"err", err,
			"method", c.Request().Method,
			"path", c.Path(),
			"code", code,
		)
	}

	if err := c.JSON(status, errorBody{Code: code, Message: msg}); err != nil {
		s.log.Error("write error response", "err", err)
	}
}
