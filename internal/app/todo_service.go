// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and storage through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/todo-web/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by orchestrating calls to the
// todo repository. It handles validation and structured logging but contains
// no persistence logic.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService backed by the given repository.
// The logger is used for structured request/error logging.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// ListTodos returns todos matching the filter in the default ordering.
func (s *TodoService) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	todos, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListTodos"),
			slog.String("filter", filter.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return todos, nil
}

// GetTodo returns a single todo by ID.
func (s *TodoService) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return t, nil
}

// CreateTodo validates and creates a new todo, returning the created entity
// with store-assigned fields (ID, timestamps).
func (s *TodoService) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "CreateTodo"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo created", slog.Int64("todo_id", created.ID))
	return created, nil
}

// UpdateTodo validates and applies a full-field update to an existing todo.
func (s *TodoService) UpdateTodo(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, t)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "UpdateTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo updated", slog.Int64("todo_id", id))
	return updated, nil
}

// ToggleTodo flips the resolved flag of an existing todo. The toggle skips
// field validation: no user-submitted fields are involved.
func (s *TodoService) ToggleTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	toggled, err := s.repo.Toggle(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to toggle todo",
			slog.String("operation", "ToggleTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "todo toggled",
		slog.Int64("todo_id", id),
		slog.Bool("resolved", toggled.Resolved),
	)
	return toggled, nil
}

// DeleteTodo deletes a todo by ID.
func (s *TodoService) DeleteTodo(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "DeleteTodo"),
			slog.Int64("todo_id", id),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "todo deleted", slog.Int64("todo_id", id))
	return nil
}

// CountTodos returns counts over the unfiltered record set.
func (s *TodoService) CountTodos(ctx context.Context) (todo.Counts, error) {
	counts, err := s.repo.Counts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count todos",
			slog.String("operation", "CountTodos"),
			slog.Any("error", err),
		)
		return todo.Counts{}, err
	}
	return counts, nil
}
