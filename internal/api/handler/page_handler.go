package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/integra/health-sport-site/internal/api/view"
	"github.com/integra/health-sport-site/internal/core/ports"
)

// PageHandler serves the public marketing pages.
type PageHandler struct {
	catalog ports.CatalogService
}

func NewPageHandler(catalog ports.CatalogService) *PageHandler {
	return &PageHandler{catalog: catalog}
}

// Home handles GET /.
func (h *PageHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, view.Home, view.Data{
		"Services": h.catalog.All(c.Request().Context()),
	})
}

// About handles GET /nosotros.
func (h *PageHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, view.About, view.Data{})
}

// Services handles GET /servicios.
func (h *PageHandler) Services(c echo.Context) error {
	return c.Render(http.StatusOK, view.Services, view.Data{
		"Services": h.catalog.All(c.Request().Context()),
	})
}

// ServiceDetail handles GET /servicio/:id. Unknown ids bubble up as
// domain.ErrServiceNotFound and are rendered as the 404 page.
func (h *PageHandler) ServiceDetail(c echo.Context) error {
	detail, err := h.catalog.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, view.ServiceDetail, view.Data{
		"Service":       detail.Service,
		"OtherServices": detail.Others,
	})
}
