// Package views renders server-side HTML pages from embedded templates.
//
// Each page template is parsed together with the shared layout at startup;
// a parse failure is a programming error and fails fast. Rendering buffers
// the full page before writing so that a template execution error can still
// produce a clean 500 response instead of a truncated page.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer holds the parsed page templates.
type Renderer struct {
	list          *template.Template
	form          *template.Template
	confirmDelete *template.Template
}

// NewRenderer parses all page templates from the embedded filesystem.
func NewRenderer() (*Renderer, error) {
	pages := map[string]**template.Template{}
	r := &Renderer{}
	pages["todo_list.html"] = &r.list
	pages["todo_form.html"] = &r.form
	pages["todo_confirm_delete.html"] = &r.confirmDelete

	for page, dst := range pages {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		*dst = tmpl
	}
	return r, nil
}

// List renders the todo list page.
func (r *Renderer) List(w http.ResponseWriter, status int, data ListData) {
	r.render(w, r.list, status, data)
}

// Form renders the create/edit form page.
func (r *Renderer) Form(w http.ResponseWriter, status int, data FormData) {
	r.render(w, r.form, status, data)
}

// ConfirmDelete renders the delete confirmation page.
func (r *Renderer) ConfirmDelete(w http.ResponseWriter, status int, data DeleteData) {
	r.render(w, r.confirmDelete, status, data)
}

// render executes a page template into a buffer, then writes the status and
// body. Execution errors degrade to a plain 500.
func (r *Renderer) render(w http.ResponseWriter, tmpl *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
