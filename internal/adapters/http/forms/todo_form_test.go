package forms_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-web/internal/adapters/http/forms"
	"github.com/jsamuelsen11/todo-web/internal/domain/todo"
)

func postForm(t *testing.T, values url.Values) *forms.TodoForm {
	t.Helper()

	req := httptest.NewRequest("POST", "/todos/new/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	form, err := forms.Parse(req)
	require.NoError(t, err)
	return form
}

func TestParse(t *testing.T) {
	t.Parallel()

	form := postForm(t, url.Values{
		"title":       {"Write report"},
		"description": {"Quarterly numbers"},
		"due_date":    {"2026-03-01"},
		"resolved":    {"on"},
	})

	assert.Equal(t, "Write report", form.Title)
	assert.Equal(t, "Quarterly numbers", form.Description)
	assert.Equal(t, "2026-03-01", form.DueDate)
	assert.True(t, form.Resolved)
}

func TestParse_UncheckedCheckbox(t *testing.T) {
	t.Parallel()

	form := postForm(t, url.Values{"title": {"Task"}})

	assert.False(t, form.Resolved)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		form      forms.TodoForm
		wantValid bool
		wantField string
	}{
		{
			name:      "valid full form",
			form:      forms.TodoForm{Title: "Valid Task", Description: "Some description", DueDate: "2026-12-31"},
			wantValid: true,
		},
		{
			name:      "minimal form",
			form:      forms.TodoForm{Title: "Minimal Task"},
			wantValid: true,
		},
		{
			name:      "missing title",
			form:      forms.TodoForm{Description: "Description without title"},
			wantValid: false,
			wantField: "title",
		},
		{
			name:      "whitespace title",
			form:      forms.TodoForm{Title: "   "},
			wantValid: false,
			wantField: "title",
		},
		{
			name:      "malformed due date",
			form:      forms.TodoForm{Title: "Task", DueDate: "31/12/2026"},
			wantValid: false,
			wantField: "due_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.form.Validate()

			assert.Equal(t, tt.wantValid, got)
			if tt.wantField != "" {
				assert.Contains(t, tt.form.Errors, tt.wantField)
			}
		})
	}
}

func TestTodo_Conversion(t *testing.T) {
	t.Parallel()

	form := forms.TodoForm{
		Title:       "  Trimmed  ",
		Description: "details",
		DueDate:     "2026-03-01",
		Resolved:    true,
	}
	require.True(t, form.Validate())

	got := form.Todo()

	assert.Equal(t, "Trimmed", got.Title)
	assert.Equal(t, "details", got.Description)
	assert.True(t, got.Resolved)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *got.DueDate)
}

func TestTodo_EmptyDueDate(t *testing.T) {
	t.Parallel()

	form := forms.TodoForm{Title: "Task"}
	require.True(t, form.Validate())

	assert.Nil(t, form.Todo().DueDate)
}

func TestFromTodo(t *testing.T) {
	t.Parallel()

	due := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	form := forms.FromTodo(todo.Todo{
		Title:       "Existing",
		Description: "body",
		DueDate:     &due,
		Resolved:    true,
	})

	assert.Equal(t, "Existing", form.Title)
	assert.Equal(t, "body", form.Description)
	assert.Equal(t, "2026-05-20", form.DueDate)
	assert.True(t, form.Resolved)
}

func TestFromTodo_NoDueDate(t *testing.T) {
	t.Parallel()

	form := forms.FromTodo(todo.Todo{Title: "Undated"})

	assert.Empty(t, form.DueDate)
}
