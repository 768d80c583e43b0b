package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avoronkov/catalog-api/internal/logging"
	"github.com/avoronkov/catalog-api/internal/service"
	"github.com/avoronkov/catalog-api/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "bad body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "user not found")
		case errors.Is(err, service.ErrInvalidPassword):
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot log in")
		}
	}

	return c.JSON(http.StatusOK, transport.Response{
		Data:    transport.TokenData{AccessToken: token},
		Success: true,
	})
}
