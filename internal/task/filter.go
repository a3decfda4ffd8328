package task

import (
	"fmt"
	"strings"
)

// Filter selects which tasks are shown by status.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterPending
	FilterOverdue
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending, FilterOverdue}

// String returns the filter name.
func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterCompleted:
		return "Completed"
	case FilterPending:
		return "Pending"
	case FilterOverdue:
		return "Overdue"
	default:
		return fmt.Sprintf("Filter(%d)", int(f))
	}
}

// Label returns the text shown in the filter selector.
func (f Filter) Label() string {
	return f.String() + " Tasks"
}

// Match reports whether t passes the filter on the given calendar date.
func (f Filter) Match(t Task, today string) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	case FilterOverdue:
		return t.IsOverdue(today)
	default:
		return true
	}
}

// Next returns the following filter, wrapping around.
func (f Filter) Next() Filter {
	return Filters[(f.index()+1)%len(Filters)]
}

// Prev returns the preceding filter, wrapping around.
func (f Filter) Prev() Filter {
	return Filters[(f.index()+len(Filters)-1)%len(Filters)]
}

func (f Filter) index() int {
	for i, v := range Filters {
		if v == f {
			return i
		}
	}
	return 0
}

// ParseFilter validates and normalizes a filter name.
func ParseFilter(value string) (Filter, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	for _, f := range Filters {
		if strings.ToLower(f.String()) == name {
			return f, nil
		}
	}
	return FilterAll, fmt.Errorf("invalid filter %q (valid: all, completed, pending, overdue)", value)
}

// MatchesSearch reports whether the task title contains query, ignoring case.
// An empty query matches every task.
func MatchesSearch(t Task, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}
