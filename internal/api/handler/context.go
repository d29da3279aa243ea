package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradeconnect/marketplace-api/internal/api/middleware"
	"github.com/tradeconnect/marketplace-api/internal/core/domain"
)

// ctxPrincipal extracts the identity injected by the auth guard and fast-fails
// before any service call when the wrong guard variant (or none) ran for this
// route.
func ctxPrincipal(c echo.Context, want domain.PrincipalType) (id, email string, err error) {
	id, _ = c.Get(middleware.CtxPrincipalID).(string)
	pt, _ := c.Get(middleware.CtxPrincipalType).(string)
	if id == "" || pt != string(want) {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	email, _ = c.Get(middleware.CtxPrincipalEmail).(string)
	return id, email, nil
}
