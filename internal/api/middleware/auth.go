package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nexa-agro/auth-api/internal/api/metrics"
	"github.com/nexa-agro/auth-api/internal/core/token"
)

// Context keys under which Auth stores the verified claims.
const (
	CtxUserID = "usuario_id"
	CtxEmail  = "usuario_email"
	CtxRol    = "usuario_rol"
)

// Auth verifies the bearer token on the request and injects its claims into
// the echo context. The header must be exactly "Bearer <token>".
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token no proporcionado")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token no proporcionado")
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido o expirado")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxRol, claims.Rol)

			return next(c)
		}
	}
}
