package views

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/jsamuelsen11/todo-web/internal/domain"
)

// errorTemplate is parsed once at startup; the error page must always be
// renderable, even when no Renderer instance is in scope (panic recovery).
var errorTemplate = template.Must(template.ParseFS(templatesFS,
	"templates/layout.html", "templates/error.html"))

// ErrorData backs the error page.
type ErrorData struct {
	Status int
	Title  string
	Detail string
}

// WriteError maps an error to an HTTP status and renders the error page.
// Unrecognized errors become a generic 500; their details are never exposed
// to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	data := classify(err)

	var buf bytes.Buffer
	if execErr := errorTemplate.ExecuteTemplate(&buf, "layout", data); execErr != nil {
		http.Error(w, http.StatusText(data.Status), data.Status)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(data.Status)
	_, _ = buf.WriteTo(w)
}

func classify(err error) ErrorData {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return ErrorData{
			Status: http.StatusNotFound,
			Title:  "Page Not Found",
			Detail: "The task you are looking for does not exist.",
		}
	case errors.Is(err, domain.ErrValidation):
		return ErrorData{
			Status: http.StatusBadRequest,
			Title:  "Bad Request",
			Detail: "The request could not be understood.",
		}
	case errors.Is(err, domain.ErrConflict):
		return ErrorData{
			Status: http.StatusConflict,
			Title:  "Conflict",
			Detail: "The task was modified concurrently. Please try again.",
		}
	case errors.Is(err, domain.ErrUnavailable):
		return ErrorData{
			Status: http.StatusServiceUnavailable,
			Title:  "Service Unavailable",
			Detail: "The service is temporarily unavailable. Please try again later.",
		}
	default:
		return ErrorData{
			Status: http.StatusInternalServerError,
			Title:  "Something Went Wrong",
			Detail: "An unexpected error occurred. Please try again later.",
		}
	}
}
