package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-web/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/todo-web/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todo-web/internal/app"
	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

// fixture wires a handler to a real service over the in-memory store.
type fixture struct {
	handler *handlers.TodoHandler
	service *app.TodoService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	renderer, err := views.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	service := app.NewTodoService(memory.New(), nil)
	return &fixture{
		handler: handlers.NewTodoHandler(service, renderer),
		service: service,
	}
}

func (f *fixture) seed(t *testing.T, title string, resolved bool) *todo.Todo {
	t.Helper()

	created, err := f.service.CreateTodo(context.Background(), &todo.Todo{
		Title:    title,
		Resolved: resolved,
	})
	if err != nil {
		t.Fatalf("seeding todo %q: %v", title, err)
	}
	return created
}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}

func requireLocation(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	if loc := rec.Header().Get("Location"); loc != want {
		t.Fatalf("Location = %q, want %q", loc, want)
	}
}
