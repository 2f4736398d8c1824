// Package memory provides an in-memory todo repository. It backs the
// "memory" storage driver and the test suites; records do not survive a
// restart.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jsamuelsen11/todo-web/internal/domain"
	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/todo-web/internal/ports"
)

// Compile-time check that Repository implements ports.TodoRepository.
var _ ports.TodoRepository = (*Repository)(nil)

// Repository is a thread-safe in-memory implementation of
// ports.TodoRepository backed by a map guarded by an RWMutex.
type Repository struct {
	mu     sync.RWMutex
	todos  map[int64]todo.Todo
	nextID int64
	now    func() time.Time
}

// New creates an empty in-memory repository.
func New() *Repository {
	return &Repository{
		todos:  make(map[int64]todo.Todo),
		nextID: 1,
		now:    time.Now,
	}
}

// NewWithClock creates an empty repository using the given clock for
// timestamp assignment. Used by tests to control CreatedAt/UpdatedAt.
func NewWithClock(now func() time.Time) *Repository {
	r := New()
	r.now = now
	return r
}

// clone returns a copy of t detached from any caller-held pointers, so
// mutating a todo after a call cannot alias the stored record.
func clone(t todo.Todo) todo.Todo {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

// Create persists a new todo, assigning its ID and timestamps.
func (r *Repository) Create(_ context.Context, t *todo.Todo) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	stored := clone(*t)
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.nextID++

	r.todos[stored.ID] = stored

	out := clone(stored)
	return &out, nil
}

// Get returns a single todo by ID.
func (r *Repository) Get(_ context.Context, id int64) (*todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	out := clone(stored)
	return &out, nil
}

// List returns todos matching the filter in the default total order.
func (r *Repository) List(_ context.Context, filter todo.Filter) ([]todo.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]todo.Todo, 0, len(r.todos))
	for _, stored := range r.todos {
		if filter.Matches(&stored) {
			out = append(out, clone(stored))
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(&out[j])
	})
	return out, nil
}

// Update replaces the mutable fields of an existing record and refreshes
// UpdatedAt. ID and CreatedAt are preserved.
func (r *Repository) Update(_ context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	in := clone(*t)
	stored.Title = in.Title
	stored.Description = in.Description
	stored.DueDate = in.DueDate
	stored.Resolved = in.Resolved
	stored.UpdatedAt = r.now()
	r.todos[id] = stored

	out := clone(stored)
	return &out, nil
}

// Toggle flips the resolved flag and refreshes UpdatedAt.
func (r *Repository) Toggle(_ context.Context, id int64) (*todo.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.todos[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	stored.Resolved = !stored.Resolved
	stored.UpdatedAt = r.now()
	r.todos[id] = stored

	out := clone(stored)
	return &out, nil
}

// Delete removes a record.
func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return domain.ErrNotFound
	}

	delete(r.todos, id)
	return nil
}

// Counts returns total/active/resolved counts over all records.
func (r *Repository) Counts(_ context.Context) (todo.Counts, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := todo.Counts{Total: len(r.todos)}
	for _, stored := range r.todos {
		if stored.Resolved {
			counts.Resolved++
		} else {
			counts.Active++
		}
	}
	return counts, nil
}
