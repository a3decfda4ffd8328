// Package task holds the dashboard's in-memory task state and the filters
// derived from it.
package task

import (
	"strings"
	"time"
)

// DateLayout is the format of due dates and of the current calendar date
// they are compared against.
const DateLayout = "2006-01-02"

// Task is a committed to-do item.
type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     string // YYYY-MM-DD or empty
	Completed   bool
}

// HasDueDate reports whether the task carries a due date.
func (t Task) HasDueDate() bool {
	return t.DueDate != ""
}

// IsOverdue reports whether the task is still open and its due date is
// strictly before today. Dates are zero-padded so a string comparison orders
// them correctly.
func (t Task) IsOverdue(today string) bool {
	return !t.Completed && t.DueDate != "" && t.DueDate < today
}

// Draft holds the values typed for the next task before it is added.
type Draft struct {
	Title       string
	Description string
	DueDate     string
}

// IsEmpty reports whether the draft has no title worth committing.
func (d Draft) IsEmpty() bool {
	return strings.TrimSpace(d.Title) == ""
}

// toTask converts the draft into an open task with the given identifier.
func (d Draft) toTask(id int64) Task {
	return Task{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		Completed:   false,
	}
}

// Today formats t as a calendar date in UTC.
func Today(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
