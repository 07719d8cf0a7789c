package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batarcade/arcade-api/internal/core/ports"
)

// sessionCookie must match the cookie name set by the auth handler.
const sessionCookie = "token"

// Auth verifies the session cookie and injects the resolved identity into
// the request context. A missing cookie and an invalid token answer with the
// portal's original messages so existing clients keep working.
func Auth(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			identity, err := sessions.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set("id", identity.ID)
			c.Set("username", identity.Username)

			return next(c)
		}
	}
}
