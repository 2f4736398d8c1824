package todo

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/todo-web/internal/domain"
)

// Todo represents a single task record.
type Todo struct {
	ID          int64
	Title       string
	Description string
	DueDate     *time.Time
	Resolved    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsOverdue reports whether the due date is set and strictly before the
// calendar date of now.
func (t *Todo) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return DateOf(*t.DueDate).Before(DateOf(now))
}

// IsDueToday reports whether the due date is set and equal to the calendar
// date of now.
func (t *Todo) IsDueToday(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return DateOf(*t.DueDate).Equal(DateOf(now))
}

// Less orders todos by resolved ascending (unresolved first), then due date
// ascending with unset due dates last, then creation time ascending, then ID.
// This is the default ordering for every list operation.
func (t *Todo) Less(other *Todo) bool {
	if t.Resolved != other.Resolved {
		return !t.Resolved
	}
	switch {
	case t.DueDate == nil && other.DueDate != nil:
		return false
	case t.DueDate != nil && other.DueDate == nil:
		return true
	case t.DueDate != nil && other.DueDate != nil:
		a, b := DateOf(*t.DueDate), DateOf(*other.DueDate)
		if !a.Equal(b) {
			return a.Before(b)
		}
	}
	if !t.CreatedAt.Equal(other.CreatedAt) {
		return t.CreatedAt.Before(other.CreatedAt)
	}
	return t.ID < other.ID
}

// DateOf truncates a time to its calendar date at midnight UTC.
// Due dates carry no time component.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Counts holds record counts over the unfiltered set, independent of any
// list filter.
type Counts struct {
	Total    int
	Active   int
	Resolved int
}
