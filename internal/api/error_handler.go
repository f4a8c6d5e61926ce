package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/api/view"
	"github.com/integra/health-sport-site/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders the 404 page for unknown routes and unknown services.
//   - Logs unexpected errors internally and renders the generic error page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, page := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		if rerr := c.Render(code, page, view.Data{}); rerr != nil {
			log.Error().Err(rerr).Str("view", page).Msg("error page render failed")
			_ = c.String(code, http.StatusText(code))
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	if errors.Is(err, domain.ErrServiceNotFound) {
		return http.StatusNotFound, view.NotFound
	}

	// Echo's own errors (unknown route, wrong method, bind failures, ...)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		switch he.Code {
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			return http.StatusNotFound, view.NotFound
		}
		if he.Code < http.StatusInternalServerError {
			return he.Code, view.Error
		}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, view.Error
}
