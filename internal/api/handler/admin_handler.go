package handler

import (
	"errors"
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
	adminContactsPath = "/admin/contactos"
	badCredentials    = "Credenciales incorrectas"
)

// AdminHandler serves the login screen and the contact moderation panel.
type AdminHandler struct {
	auth     ports.AuthService
	contacts ports.ContactService
	log      zerolog.Logger
}

func NewAdminHandler(auth ports.AuthService, contacts ports.ContactService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{auth: auth, contacts: contacts, log: log}
}

// Shell handles GET /admin. It is both the login screen and the landing
// page once signed in.
func (h *AdminHandler) Shell(c echo.Context) error {
	sess := middleware.SessionFrom(c)
	errMsg, _ := sess.Flash(domain.FlashAuthError)

	return c.Render(http.StatusOK, view.Admin, view.Data{
		"Authenticated": sess.IsAuthenticated(),
		"Error":         errMsg,
	})
}

// Login handles POST /admin: logout when the logout field is present,
// otherwise a credential check.
func (h *AdminHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		form = loginForm{}
	}

	sess := middleware.SessionFrom(c)
	if form.Logout != "" {
		sess.Destroy()
		return c.Redirect(http.StatusFound, middleware.LoginPath)
	}

	err := c.Validate(&form)
	var fe *formError
	if errors.As(err, &fe) {
		h.log.Debug().Strs("missing", fe.Fields).Msg("admin login form incomplete")
	}
	if err == nil {
		err = h.auth.Login(c.Request().Context(), form.User, form.Pass)
	}

	switch {
	case err == nil:
		metrics.AdminLoginsTotal.WithLabelValues(metrics.LoginSuccess).Inc()
		h.log.Info().Str("ip", c.RealIP()).Msg("admin login")
		sess.Regenerate()
		sess.SetAuthenticated(true)
		return c.Redirect(http.StatusFound, adminContactsPath)
	case errors.Is(err, domain.ErrAdminDisabled):
		metrics.AdminLoginsTotal.WithLabelValues(metrics.LoginDisabled).Inc()
		h.log.Warn().Msg("admin login attempted but no admin credentials are configured")
	default:
		metrics.AdminLoginsTotal.WithLabelValues(metrics.LoginRejected).Inc()
		h.log.Info().Err(err).Str("ip", c.RealIP()).Msg("admin login rejected")
	}

	sess.AddFlash(domain.FlashAuthError, badCredentials)
	return c.Redirect(http.StatusFound, middleware.LoginPath)
}

// Contacts handles GET /admin/contactos. Mount behind middleware.RequireAdmin.
func (h *AdminHandler) Contacts(c echo.Context) error {
	return c.Render(http.StatusOK, view.Admin, view.Data{
		"Authenticated": true,
		"ShowContacts":  true,
		"Contacts":      h.contacts.List(c.Request().Context()),
	})
}

// Delete handles POST /admin/contactos/delete/:id. Mount behind
// middleware.RequireAdmin. Always redirects back to the list.
func (h *AdminHandler) Delete(c echo.Context) error {
	removed, err := h.contacts.Delete(c.Request().Context(), c.Param("id"))
	switch {
	case err != nil:
		metrics.ContactsFailedTotal.WithLabelValues("delete").Inc()
	case removed:
		metrics.ContactsDeletedTotal.Inc()
	}
	return c.Redirect(http.StatusFound, adminContactsPath)
}
