package views

import (
	"time"

	"github.com/jsamuelsen11/todo-web/internal/adapters/http/forms"
	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

// TodoView is the template-facing projection of a todo record. Due-date
// urgency flags are computed once per render against the server clock.
type TodoView struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Resolved    bool
	IsOverdue   bool
	IsToday     bool
}

// NewTodoView builds a TodoView from a domain record.
func NewTodoView(t todo.Todo, now time.Time) TodoView {
	return TodoView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Resolved:    t.Resolved,
		IsOverdue:   t.IsOverdue(now),
		IsToday:     t.IsDueToday(now),
	}
}

// ListData backs the todo list page.
type ListData struct {
	Todos  []TodoView
	Filter todo.Filter
	Counts todo.Counts
}

// NextParam returns the path of the current list view, used as the toggle
// link's next parameter so the redirect lands back on the same filter tab.
// html/template percent-encodes the value in URL query context.
func (d ListData) NextParam() string {
	return "/todos/?filter=" + d.Filter.String()
}

// FormData backs the shared create/edit form page.
type FormData struct {
	Heading string
	Action  string
	Form    *forms.TodoForm
}

// DeleteData backs the delete confirmation page.
type DeleteData struct {
	Todo   TodoView
	Action string
}
