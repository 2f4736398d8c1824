// Package sqlite provides a SQLite-backed todo repository using the pure-Go
// modernc.org/sqlite driver. Mutations are single-row statements, so
// atomicity is delegated to SQLite's own transaction guarantees.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jsamuelsen11/todo-web/internal/domain"
	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
	"github.com/jsamuelsen11/todo-web/internal/ports"
)

// Compile-time checks.
var (
	_ ports.TodoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

const (
	// dueDateLayout is the storage format for the date-only due_date column.
	dueDateLayout = "2006-01-02"

	schema = `
CREATE TABLE IF NOT EXISTS todos (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL CHECK (length(trim(title)) > 0),
	description TEXT NOT NULL DEFAULT '',
	due_date    TEXT,
	resolved    INTEGER NOT NULL DEFAULT 0,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);`

	selectColumns = "id, title, description, due_date, resolved, created_at, updated_at"

	// orderBy implements the default total order: unresolved first, due date
	// ascending with NULLs last, then creation time, then ID.
	orderBy = "ORDER BY resolved ASC, due_date IS NULL ASC, due_date ASC, created_at ASC, id ASC"
)

// Repository is a SQLite implementation of ports.TodoRepository.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if necessary) the SQLite database at path and ensures
// the todos table exists. The parent directory is created when missing.
func Open(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The modernc driver serializes writers per connection; a single pooled
	// connection avoids SQLITE_BUSY under concurrent request handlers and
	// keeps in-memory databases on one shared connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{db: db, now: time.Now}, nil
}

// Close closes the underlying database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker by pinging the connection.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// Create persists a new todo, assigning its ID and timestamps.
func (r *Repository) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	now := r.now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO todos (title, description, due_date, resolved, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, dueDateArg(t.DueDate), t.Resolved,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return nil, fmt.Errorf("inserting todo: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	return r.Get(ctx, id)
}

// Get returns a single todo by ID.
func (r *Repository) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+selectColumns+" FROM todos WHERE id = ?", id)

	t, err := scanTodo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning todo %d: %w", id, err)
	}
	return t, nil
}

// List returns todos matching the filter in the default total order.
func (r *Repository) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	query := "SELECT " + selectColumns + " FROM todos"
	var args []any

	switch filter {
	case todo.FilterActive:
		query += " WHERE resolved = ?"
		args = append(args, false)
	case todo.FilterResolved:
		query += " WHERE resolved = ?"
		args = append(args, true)
	}
	query += " " + orderBy

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo rows: %w", err)
	}
	return todos, nil
}

// Update replaces the mutable fields of an existing record and refreshes
// updated_at. created_at is never touched.
func (r *Repository) Update(ctx context.Context, id int64, t *todo.Todo) (*todo.Todo, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE todos
		 SET title = ?, description = ?, due_date = ?, resolved = ?, updated_at = ?
		 WHERE id = ?`,
		t.Title, t.Description, dueDateArg(t.DueDate), t.Resolved,
		r.now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating todo %d: %w", id, err)
	}
	if err := requireRowAffected(res); err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// Toggle flips the resolved flag and refreshes updated_at.
func (r *Repository) Toggle(ctx context.Context, id int64) (*todo.Todo, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE todos SET resolved = NOT resolved, updated_at = ? WHERE id = ?",
		r.now().UTC().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return nil, fmt.Errorf("toggling todo %d: %w", id, err)
	}
	if err := requireRowAffected(res); err != nil {
		return nil, err
	}

	return r.Get(ctx, id)
}

// Delete removes a record.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	return requireRowAffected(res)
}

// Counts returns total/active/resolved counts over all records.
func (r *Repository) Counts(ctx context.Context) (todo.Counts, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN resolved THEN 0 ELSE 1 END), 0),
		        COALESCE(SUM(CASE WHEN resolved THEN 1 ELSE 0 END), 0)
		 FROM todos`)

	var counts todo.Counts
	if err := row.Scan(&counts.Total, &counts.Active, &counts.Resolved); err != nil {
		return todo.Counts{}, fmt.Errorf("counting todos: %w", err)
	}
	return counts, nil
}

// requireRowAffected maps a zero-row mutation to domain.ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*todo.Todo, error) {
	var (
		t         todo.Todo
		dueDate   sql.NullString
		createdAt string
		updatedAt string
	)

	if err := row.Scan(&t.ID, &t.Title, &t.Description, &dueDate, &t.Resolved,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if dueDate.Valid && strings.TrimSpace(dueDate.String) != "" {
		d, err := time.ParseInLocation(dueDateLayout, dueDate.String, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing due_date %q: %w", dueDate.String, err)
		}
		t.DueDate = &d
	}

	var err error
	if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at %q: %w", updatedAt, err)
	}

	return &t, nil
}

// dueDateArg converts an optional due date to its storage representation.
func dueDateArg(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.UTC().Format(dueDateLayout)
}
