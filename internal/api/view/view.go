// Package view renders the server-side HTML pages. Each page template is
// parsed together with the shared layout.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Page names accepted by Renderer.Render.
const (
	Home          = "home"
	About         = "about"
	Services      = "services"
	ServiceDetail = "service_detail"
	Contact       = "contact"
	Admin         = "admin"
	NotFound      = "not_found"
	Error         = "error"
)

var pages = []string{Home, About, Services, ServiceDetail, Contact, Admin, NotFound, Error}

//go:embed templates/*.html
var templateFS embed.FS

// Data is the template context. The renderer adds IsHome, which the layout
// uses to switch to the transparent header.
type Data map[string]any

// Renderer implements echo.Renderer.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// MustNewRenderer panics when the embedded templates do not parse.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown view "+name)
	}

	d, _ := data.(Data)
	if d == nil {
		d = Data{}
	}
	if c != nil {
		d["IsHome"] = c.Request().URL.Path == "/"
	}
	return t.ExecuteTemplate(w, "layout", d)
}
