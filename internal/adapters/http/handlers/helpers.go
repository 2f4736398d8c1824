package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-web/internal/domain"
	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

// parseID extracts the int64 id path parameter from the chi URL params.
// A non-numeric id can never resolve to a record, so it maps to not found
// rather than bad request.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("todo id %q: %w", raw, domain.ErrNotFound)
	}
	return id, nil
}

// parseFilter reads the filter query parameter; unrecognized values fall
// back to all.
func parseFilter(r *http.Request) todo.Filter {
	return todo.ParseFilter(r.URL.Query().Get("filter"))
}

// defaultRedirect is where mutations land when no usable next target exists.
const defaultRedirect = "/todos/"

// safeNext returns the given redirect target if it is a same-origin relative
// path, and the list page otherwise. Absolute URLs, scheme-relative URLs
// ("//evil.example") and anything not starting with "/" are rejected to
// prevent open redirects. Backslashes are rejected too: browsers treat "\"
// as "/" when parsing a Location header, so "/\evil.example" would resolve
// scheme-relative.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return defaultRedirect
	}
	if strings.Contains(next, `\`) {
		return defaultRedirect
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return defaultRedirect
	}
	return next
}
