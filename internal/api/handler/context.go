package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nexa-agro/auth-api/internal/api/middleware"
)

// ctxIdentity extracts the authenticated user id injected by the Auth
// middleware. A missing or zero id means the middleware did not run (or the
// token carried no identity), so the request is rejected before any service
// call.
func ctxIdentity(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.CtxUserID).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "no autenticado")
	}
	return id, nil
}
