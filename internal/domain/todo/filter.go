package todo

// Filter restricts a list operation by resolved status.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterActive   Filter = "active"
	FilterResolved Filter = "resolved"
)

// ParseFilter maps a query-string value to a Filter. Empty and unrecognized
// values fall back to FilterAll, matching the list view's default.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterActive:
		return FilterActive
	case FilterResolved:
		return FilterResolved
	default:
		return FilterAll
	}
}

// Matches reports whether a todo passes the filter.
func (f Filter) Matches(t *Todo) bool {
	switch f {
	case FilterActive:
		return !t.Resolved
	case FilterResolved:
		return t.Resolved
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (f Filter) String() string {
	return string(f)
}
