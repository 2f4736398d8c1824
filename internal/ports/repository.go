package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

// TodoRepository defines the outbound port for todo persistence.
// Implemented by storage adapters; called by the application layer.
// Implementations own ID assignment and timestamp side effects: every
// successful Create/Update/Toggle sets UpdatedAt to the current time, and
// Create additionally sets CreatedAt. CreatedAt is never modified afterwards.
type TodoRepository interface {
	// Create persists a new todo, assigning its ID and timestamps, and
	// returns the stored entity.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if no record has the given ID.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// List returns todos matching the filter in the default total order:
	// resolved ascending, due date ascending with unset dates last,
	// creation time ascending, ID ascending.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Update replaces title, description, due date, and resolved on an
	// existing record and refreshes UpdatedAt.
	// Returns domain.ErrNotFound if no record has the given ID.
	Update(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error)

	// Toggle flips the resolved flag and refreshes UpdatedAt.
	// Returns domain.ErrNotFound if no record has the given ID.
	Toggle(ctx context.Context, id int64) (*todo.Todo, error)

	// Delete removes a record.
	// Returns domain.ErrNotFound if no record has the given ID.
	Delete(ctx context.Context, id int64) error

	// Counts returns total/active/resolved counts over all records.
	Counts(ctx context.Context) (todo.Counts, error)
}
