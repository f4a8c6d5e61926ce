package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/integra/health-sport-site/internal/api/metrics"
	"github.com/integra/health-sport-site/internal/api/middleware"
	"github.com/integra/health-sport-site/internal/api/view"
	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

const (
	contactPath         = "/contactos"
	contactErrorMessage = "No pudimos enviar tu mensaje. Intenta de nuevo en unos minutos."
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contacts ports.ContactService
	log      zerolog.Logger
}

func NewContactHandler(contacts ports.ContactService, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{contacts: contacts, log: log}
}

// Form handles GET /contactos and consumes the one-shot result flashes.
func (h *ContactHandler) Form(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	_, success := sess.Flash(domain.FlashContactSuccess)
	errMsg, _ := sess.Flash(domain.FlashContactError)

	return c.Render(http.StatusOK, view.Contact, view.Data{
		"Success": success,
		"Error":   errMsg,
	})
}

// Submit handles POST /contacto. Nothing is validated; the visitor is always
// redirected back to the form with a success or error flash.
func (h *ContactHandler) Submit(c echo.Context) error {
	var form contactForm
	if err := c.Bind(&form); err != nil {
		h.log.Debug().Err(err).Msg("contact form bind failed, storing what was bound")
	}

	sess := middleware.SessionFrom(c)
	if _, err := h.contacts.Submit(c.Request().Context(), form.fields()); err != nil {
		metrics.ContactsFailedTotal.WithLabelValues("submit").Inc()
		sess.AddFlash(domain.FlashContactError, contactErrorMessage)
		return c.Redirect(http.StatusFound, contactPath)
	}

	metrics.ContactsSubmittedTotal.Inc()
	sess.AddFlash(domain.FlashContactSuccess, "1")
	return c.Redirect(http.StatusFound, contactPath)
}
