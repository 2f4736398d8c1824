// Package handlers contains the HTTP handlers for the server-rendered pages.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jsamuelsen11/todo-web/internal/adapters/http/forms"
	"github.com/jsamuelsen11/todo-web/internal/adapters/http/views"
	"github.com/jsamuelsen11/todo-web/internal/ports"
)

// TodoHandler handles the todo list, form, delete, and toggle pages.
type TodoHandler struct {
	service ports.TodoService
	views   *views.Renderer
	now     func() time.Time
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService, renderer *views.Renderer) *TodoHandler {
	return &TodoHandler{
		service: service,
		views:   renderer,
		now:     time.Now,
	}
}

// List handles GET /todos/. An unrecognized filter value falls back to all;
// counts are always computed over the unfiltered set.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r)

	todos, err := h.service.ListTodos(r.Context(), filter)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	counts, err := h.service.CountTodos(r.Context())
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	now := h.now()
	items := make([]views.TodoView, 0, len(todos))
	for _, t := range todos {
		items = append(items, views.NewTodoView(t, now))
	}

	h.views.List(w, http.StatusOK, views.ListData{
		Todos:  items,
		Filter: filter,
		Counts: counts,
	})
}

// NewForm handles GET /todos/new/.
func (h *TodoHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.views.Form(w, http.StatusOK, views.FormData{
		Heading: "Create New Task",
		Action:  "/todos/new/",
		Form:    &forms.TodoForm{},
	})
}

// Create handles POST /todos/new/. An invalid submission re-renders the form
// with field errors and status 200; a valid one redirects to the list.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := forms.Parse(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	if !form.Validate() {
		h.views.Form(w, http.StatusOK, views.FormData{
			Heading: "Create New Task",
			Action:  "/todos/new/",
			Form:    form,
		})
		return
	}

	t := form.Todo()
	if _, err := h.service.CreateTodo(r.Context(), &t); err != nil {
		views.WriteError(w, r, err)
		return
	}

	http.Redirect(w, r, "/todos/", http.StatusFound)
}

// EditForm handles GET /todos/{id}/edit/.
func (h *TodoHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	t, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	h.views.Form(w, http.StatusOK, views.FormData{
		Heading: "Edit Task",
		Action:  editAction(id),
		Form:    forms.FromTodo(*t),
	})
}

// Update handles POST /todos/{id}/edit/. The record must exist before the
// submission is validated, so a missing id is a 404 even for invalid input.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	if _, err := h.service.GetTodo(r.Context(), id); err != nil {
		views.WriteError(w, r, err)
		return
	}

	form, err := forms.Parse(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	if !form.Validate() {
		h.views.Form(w, http.StatusOK, views.FormData{
			Heading: "Edit Task",
			Action:  editAction(id),
			Form:    form,
		})
		return
	}

	t := form.Todo()
	if _, err := h.service.UpdateTodo(r.Context(), id, &t); err != nil {
		views.WriteError(w, r, err)
		return
	}

	http.Redirect(w, r, "/todos/", http.StatusFound)
}

// ConfirmDelete handles GET /todos/{id}/delete/.
func (h *TodoHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	t, err := h.service.GetTodo(r.Context(), id)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	h.views.ConfirmDelete(w, http.StatusOK, views.DeleteData{
		Todo:   views.NewTodoView(*t, h.now()),
		Action: fmt.Sprintf("/todos/%d/delete/", id),
	})
}

// Delete handles POST /todos/{id}/delete/.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteTodo(r.Context(), id); err != nil {
		views.WriteError(w, r, err)
		return
	}

	http.Redirect(w, r, "/todos/", http.StatusFound)
}

// Toggle handles GET /todos/{id}/toggle/. After flipping the resolved flag it
// redirects to the sanitized next parameter so the toggle works from any
// referring page.
func (h *TodoHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		views.WriteError(w, r, err)
		return
	}

	if _, err := h.service.ToggleTodo(r.Context(), id); err != nil {
		views.WriteError(w, r, err)
		return
	}

	http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusFound)
}

func editAction(id int64) string {
	return fmt.Sprintf("/todos/%d/edit/", id)
}
