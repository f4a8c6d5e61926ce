package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/integra/health-sport-site/internal/api/view"
	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

// --- stubs ---

type stubCatalog struct {
	services []domain.Service
}

func (s *stubCatalog) All(context.Context) []domain.Service { return s.services }

func (s *stubCatalog) Detail(_ context.Context, id string) (*ports.ServiceDetail, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			return &ports.ServiceDetail{Service: svc, Others: domain.Others(s.services, id)}, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

type stubContacts struct {
	contacts  []domain.Contact
	submitted []domain.ContactFields
	deleted   []string
	err       error
}

func (s *stubContacts) Submit(_ context.Context, f domain.ContactFields) (domain.Contact, error) {
	if s.err != nil {
		return domain.Contact{}, s.err
	}
	s.submitted = append(s.submitted, f)
	return domain.Contact{ID: "new", Name: f.Name}, nil
}

func (s *stubContacts) List(context.Context) []domain.Contact { return s.contacts }

func (s *stubContacts) Delete(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	s.deleted = append(s.deleted, id)
	return true, nil
}

type stubAuth struct {
	err error
}

func (s *stubAuth) Login(context.Context, string, string) error { return s.err }

// --- helpers ---

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.MustNewRenderer()
	e.Validator = NewValidator()
	return e
}

func newContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

var (
	_ ports.CatalogService = (*stubCatalog)(nil)
	_ ports.ContactService = (*stubContacts)(nil)
	_ ports.AuthService    = (*stubAuth)(nil)
)
