package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// LoginPath is where unauthenticated admin requests are sent.
const LoginPath = "/admin"

// RequireAdmin lets the request through only when the session is
// authenticated. Anyone else is redirected to the login screen; this is a
// redirect, not an HTTP error.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !SessionFrom(c).IsAuthenticated() {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			return next(c)
		}
	}
}
