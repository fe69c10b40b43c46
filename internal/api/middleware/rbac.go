package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRoles enforces a role allow-list. It assumes Auth already ran: a
// request without claims is rejected as unauthenticated, one whose role is
// not in the list gets a 403 naming the permitted roles.
func RequireRoles(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rol, _ := c.Get(CtxRol).(string)
			if rol == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "no autenticado")
			}
			if _, ok := allowed[rol]; !ok {
				return echo.NewHTTPError(http.StatusForbidden,
					fmt.Sprintf("acceso denegado, se requiere uno de estos roles: %s", strings.Join(allowedRoles, ", ")))
			}
			return next(c)
		}
	}
}
