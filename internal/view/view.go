// Package view renders the HTML pages served by the front controller.
// Templates are embedded at build time and parsed once at startup.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl *template.Template
}

// New parses every embedded template. A broken template fails here,
// at startup, rather than on the first request.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("view: parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template with the injected variables.
func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	if r.tmpl.Lookup(name) == nil {
		return fmt.Errorf("view: unknown template %q", name)
	}
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("view: render %s: %w", name, err)
	}
	return nil
}
