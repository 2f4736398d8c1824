// Package forms parses and validates HTML form submissions.
//
// Validation here is presentation-level: it produces user-facing messages
// keyed by field name for template re-rendering. The domain layer enforces
// its own invariants independently.
package forms

import (
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

// dueDateLayout is the wire format of the due_date form field, matching the
// value format of <input type="date">.
const dueDateLayout = "2006-01-02"

// User-facing validation messages.
const (
	msgTitleRequired = "This field is required."
	msgInvalidDate   = "Enter a valid date."
)

// TodoForm holds the raw field values of a create/edit submission plus any
// validation errors keyed by field name. Raw strings are kept as submitted so
// that re-rendered forms preserve the user's input.
type TodoForm struct {
	Title       string
	Description string
	DueDate     string
	Resolved    bool
	Errors      map[string]string
}

// Parse reads the form fields from a POST request body. An unchecked checkbox
// is absent from the form data, so any submitted value means checked.
func Parse(r *http.Request) (*TodoForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &TodoForm{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		DueDate:     strings.TrimSpace(r.PostFormValue("due_date")),
		Resolved:    r.PostFormValue("resolved") != "",
		Errors:      map[string]string{},
	}, nil
}

// FromTodo pre-populates a form from an existing record for the edit page.
func FromTodo(t todo.Todo) *TodoForm {
	f := &TodoForm{
		Title:       t.Title,
		Description: t.Description,
		Resolved:    t.Resolved,
		Errors:      map[string]string{},
	}
	if t.DueDate != nil {
		f.DueDate = t.DueDate.Format(dueDateLayout)
	}
	return f
}

// Validate checks the submitted values and populates Errors. It returns true
// when the form is valid. Title must be non-blank; due date, when present,
// must be a parseable calendar date. Description is optional.
func (f *TodoForm) Validate() bool {
	f.Errors = map[string]string{}

	if strings.TrimSpace(f.Title) == "" {
		f.Errors["title"] = msgTitleRequired
	}
	if f.DueDate != "" {
		if _, err := time.ParseInLocation(dueDateLayout, f.DueDate, time.UTC); err != nil {
			f.Errors["due_date"] = msgInvalidDate
		}
	}

	return len(f.Errors) == 0
}

// Todo converts a validated form into a domain record. Must only be called
// after Validate has returned true; an unparseable due date is dropped.
func (f *TodoForm) Todo() todo.Todo {
	t := todo.Todo{
		Title:       strings.TrimSpace(f.Title),
		Description: f.Description,
		Resolved:    f.Resolved,
	}
	if f.DueDate != "" {
		if d, err := time.ParseInLocation(dueDateLayout, f.DueDate, time.UTC); err == nil {
			t.DueDate = &d
		}
	}
	return t
}
