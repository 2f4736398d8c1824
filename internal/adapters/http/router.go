// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-web/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Page routes use
// trailing slashes, matching the canonical URLs the templates link to.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// The root redirects to the list page.
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/todos/", http.StatusFound)
	})

	r.Route("/todos", func(r chi.Router) {
		r.Get("/", todoHandler.List)
		r.Get("/new/", todoHandler.NewForm)
		r.Post("/new/", todoHandler.Create)
		r.Get("/{id}/edit/", todoHandler.EditForm)
		r.Post("/{id}/edit/", todoHandler.Update)
		r.Get("/{id}/delete/", todoHandler.ConfirmDelete)
		r.Post("/{id}/delete/", todoHandler.Delete)
		r.Get("/{id}/toggle/", todoHandler.Toggle)
	})

	return r
}
