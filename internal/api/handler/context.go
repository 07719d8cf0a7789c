package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batarcade/arcade-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: both claims must be
// present, otherwise the request never went through the middleware.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, _ := c.Get("id").(int64)
	username, _ := c.Get("username").(string)
	if id == 0 || username == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return domain.Identity{ID: id, Username: username}, nil
}
