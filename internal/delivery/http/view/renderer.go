// Package view renders the HTML pages from embedded templates.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"

	"meuapp/internal/errors"

	"github.com/labstack/echo/v4"
)

// Page template names.
const (
	PageIndex    = "index.html"
	PageRegister = "cadastro.html"
	PageLogin    = "login.html"
	PageAccount  = "conta.html"
	PageError    = "error.html"
)

const layoutTemplate = "layout.html"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer. Each page is parsed together with the layout.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page template.
func NewRenderer() (*Renderer, error) {
	pages, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "list templates")
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		name := path.Base(p)
		if name == layoutTemplate {
			continue
		}

		t, err := template.New(name).ParseFS(templateFS, "templates/"+layoutTemplate, p)
		if err != nil {
			return nil, errors.Wrapf(err, "parse template %s", name)
		}
		r.templates[name] = t
	}

	return r, nil
}

// Render writes the named page. data is the page's render context.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return errors.Errorf("template %s not found", name)
	}

	return errors.Wrapf(t.ExecuteTemplate(w, "layout", data), "render %s", name)
}
