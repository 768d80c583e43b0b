package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avoronkov/catalog-api/internal/tokens"
)

// ClaimsKey is where the gate stores validated claims in the echo context.
const ClaimsKey = "claims"

// RequireRole gates a route on a bearer token whose role claim equals the
// required role exactly. The comparison is case-sensitive: a route configured
// with "admin" will never admit a token carrying "Admin".
//
// Missing or invalid token -> 401. Valid token, wrong role -> 403.
func RequireRole(ts *tokens.Service, role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
			}

			claims, err := ts.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}

			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}
