package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// ListTodos returns todos matching the filter, in the default ordering
	// (unresolved first, then due date ascending with unset dates last,
	// then creation time).
	ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetTodo returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo validates and creates a new todo, returning the created
	// entity with store-assigned fields (ID, timestamps).
	// Returns domain.ErrValidation if the todo fails validation.
	CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// UpdateTodo validates and applies a full-field update (title,
	// description, due date, resolved) to an existing todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	// Returns domain.ErrValidation if the todo fails validation.
	UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// ToggleTodo flips the resolved flag of an existing todo. No other field
	// is touched or validated; only UpdatedAt is refreshed.
	// Returns domain.ErrNotFound if the todo does not exist.
	ToggleTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// DeleteTodo deletes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// CountTodos returns total/active/resolved counts over the unfiltered
	// record set, independent of any list filter.
	CountTodos(ctx context.Context) (todo.Counts, error)
}
