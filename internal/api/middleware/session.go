package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/infrastructure/session"
)

const sessionKey = "session"

// Session loads the browser's session into the echo context and commits any
// change to it right before the response headers go out.
func Session(manager *session.Manager, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := manager.Load(c.Request())
			c.Set(sessionKey, sess)

			res := c.Response()
			res.Before(func() {
				if err := manager.Commit(c.Request().Context(), res.Writer, sess); err != nil {
					log.Error().Err(err).Str("path", c.Path()).Msg("session commit failed")
				}
			})

			return next(c)
		}
	}
}

// SessionFrom returns the request's session. Handlers mounted without the
// Session middleware get a throwaway session that is never persisted.
func SessionFrom(c echo.Context) *session.Session {
	if sess, ok := c.Get(sessionKey).(*session.Session); ok {
		return sess
	}
	sess := &session.Session{}
	c.Set(sessionKey, sess)
	return sess
}
