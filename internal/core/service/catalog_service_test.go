package service

import (
	"context"
	"errors"
	"testing"

	"github.com/integra/health-sport-site/internal/core/domain"
)

type stubCatalog struct {
	services []domain.Service
	lookedUp []string
}

func (c *stubCatalog) All(_ context.Context) []domain.Service { return c.services }

func (c *stubCatalog) ByID(_ context.Context, id string) (domain.Service, error) {
	c.lookedUp = append(c.lookedUp, id)
	for _, s := range c.services {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Service{}, domain.ErrServiceNotFound
}

func testCatalog() *stubCatalog {
	return &stubCatalog{services: []domain.Service{
		{ID: "fisioterapia", Title: "Fisioterapia"},
		{ID: "nutricion", Title: "Nutrición"},
		{ID: "entrenamiento", Title: "Entrenamiento"},
	}}
}

func TestCatalogService_DetailExcludesSelectedFromOthers(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	for _, id := range []string{"fisioterapia", "nutricion", "entrenamiento"} {
		d, err := svc.Detail(context.Background(), id)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", id, err)
		}
		if d.Service.ID != id {
			t.Fatalf("expected %s, got %s", id, d.Service.ID)
		}
		if len(d.Others) != 2 {
			t.Fatalf("%s: expected 2 others, got %d", id, len(d.Others))
		}
		for _, o := range d.Others {
			if o.ID == id {
				t.Fatalf("%s: selected service listed among others", id)
			}
		}
	}
}

func TestCatalogService_DetailKeepsCatalogOrder(t *testing.T) {
	d, err := NewCatalogService(testCatalog()).Detail(context.Background(), "nutricion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Others[0].ID != "fisioterapia" || d.Others[1].ID != "entrenamiento" {
		t.Fatalf("unexpected order: %+v", d.Others)
	}
}

func TestCatalogService_DetailNotFound(t *testing.T) {
	svc := NewCatalogService(testCatalog())
	for _, id := range []string{"missing", ""} {
		if _, err := svc.Detail(context.Background(), id); !errors.Is(err, domain.ErrServiceNotFound) {
			t.Fatalf("id %q: expected ErrServiceNotFound, got %v", id, err)
		}
	}
}

func TestCatalogService_DetailLooksUpThroughReader(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog)

	if _, err := svc.Detail(context.Background(), "nutricion"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Detail(context.Background(), "missing"); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
	if len(catalog.lookedUp) != 2 || catalog.lookedUp[0] != "nutricion" || catalog.lookedUp[1] != "missing" {
		t.Fatalf("expected lookups through ByID, got %v", catalog.lookedUp)
	}
}
