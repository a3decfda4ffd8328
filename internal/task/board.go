package task

import (
	"strings"

	"github.com/pablasso/taskdash/internal/util"
)

// IDGenerator issues identifiers for new tasks.
type IDGenerator interface {
	Next() int64
}

// Board is the dashboard state: tasks in insertion order, the draft being
// typed, the active filter and search, and at most one task awaiting delete
// confirmation. It is driven from a single event loop and is not safe for
// concurrent use.
type Board struct {
	tasks   []Task
	draft   Draft
	filter  Filter
	search  string
	pending *int64
	ids     IDGenerator
}

// NewBoard creates an empty board with a monotonic identifier source.
func NewBoard() *Board {
	return NewBoardWithIDs(util.NewIDSource())
}

// NewBoardWithIDs creates an empty board using ids for new tasks.
func NewBoardWithIDs(ids IDGenerator) *Board {
	if ids == nil {
		ids = util.NewIDSource()
	}
	return &Board{ids: ids}
}

// Tasks returns a copy of all tasks in insertion order.
func (b *Board) Tasks() []Task {
	out := make([]Task, len(b.tasks))
	copy(out, b.tasks)
	return out
}

// Len returns the number of tasks.
func (b *Board) Len() int {
	return len(b.tasks)
}

// Get returns the task with the given identifier.
func (b *Board) Get(id int64) (Task, bool) {
	if i := b.indexOf(id); i >= 0 {
		return b.tasks[i], true
	}
	return Task{}, false
}

// Draft returns the staged values for the next task.
func (b *Board) Draft() Draft {
	return b.draft
}

// SetDraft replaces the staged values for the next task.
func (b *Board) SetDraft(d Draft) {
	b.draft = d
}

// Submit adds the current draft. See Add.
func (b *Board) Submit() (Task, bool) {
	return b.Add(b.draft)
}

// Add appends a new open task built from d and clears the draft. A draft
// whose title is blank after trimming is ignored and leaves the board
// untouched.
func (b *Board) Add(d Draft) (Task, bool) {
	if d.IsEmpty() {
		return Task{}, false
	}
	t := d.toTask(b.ids.Next())
	b.tasks = append(b.tasks, t)
	b.draft = Draft{}
	return t, true
}

// Toggle flips the completion flag of the task with the given identifier.
// It returns false when no such task exists.
func (b *Board) Toggle(id int64) bool {
	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.tasks[i].Completed = !b.tasks[i].Completed
	return true
}

// RequestDelete marks a task for deletion pending confirmation. A second
// request replaces the first.
func (b *Board) RequestDelete(id int64) {
	b.pending = &id
}

// PendingDelete returns the identifier awaiting confirmation, if any.
func (b *Board) PendingDelete() (int64, bool) {
	if b.pending == nil {
		return 0, false
	}
	return *b.pending, true
}

// ConfirmDelete removes the task marked for deletion and clears the mark.
// It returns true if a task was removed.
func (b *Board) ConfirmDelete() bool {
	if b.pending == nil {
		return false
	}
	id := *b.pending
	b.pending = nil

	i := b.indexOf(id)
	if i < 0 {
		return false
	}
	b.tasks = append(b.tasks[:i:i], b.tasks[i+1:]...)
	return true
}

// CancelDelete clears the deletion mark without removing anything.
func (b *Board) CancelDelete() {
	b.pending = nil
}

// Filter returns the active status filter.
func (b *Board) Filter() Filter {
	return b.filter
}

// SetFilter changes the active status filter.
func (b *Board) SetFilter(f Filter) {
	b.filter = f
}

// Search returns the active search text.
func (b *Board) Search() string {
	return b.search
}

// SetSearch changes the active search text.
func (b *Board) SetSearch(q string) {
	b.search = q
}

// Visible returns the tasks passing the status filter and then the title
// search, in insertion order. today is the current date in DateLayout.
func (b *Board) Visible(today string) []Task {
	byStatus := make([]Task, 0, len(b.tasks))
	for _, t := range b.tasks {
		if b.filter.Match(t, today) {
			byStatus = append(byStatus, t)
		}
	}

	out := make([]Task, 0, len(byStatus))
	for _, t := range byStatus {
		if MatchesSearch(t, b.search) {
			out = append(out, t)
		}
	}
	return out
}

// Counts returns how many tasks pass each status filter, ignoring search.
func (b *Board) Counts(today string) map[Filter]int {
	counts := make(map[Filter]int, len(Filters))
	for _, f := range Filters {
		counts[f] = 0
	}
	for _, t := range b.tasks {
		for _, f := range Filters {
			if f.Match(t, today) {
				counts[f]++
			}
		}
	}
	return counts
}

// Load appends existing tasks, e.g. a demo dataset. Tasks with a blank title
// are skipped and missing identifiers are assigned.
func (b *Board) Load(tasks []Task) {
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		if t.ID == 0 {
			t.ID = b.ids.Next()
		}
		b.tasks = append(b.tasks, t)
	}
}

func (b *Board) indexOf(id int64) int {
	for i, t := range b.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
