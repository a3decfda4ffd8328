package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskdash/internal/task"
	"github.com/pablasso/taskdash/internal/tui/styles"
)

// TaskRow renders one task of the dashboard list.
type TaskRow struct {
	Task     task.Task
	Selected bool
	Overdue  bool
	Width    int
}

// ActionLabel returns the label of the completion toggle for t.
func ActionLabel(t task.Task) string {
	if t.Completed {
		return "Mark Incomplete"
	}
	return "Mark Completed"
}

// DueLabel returns the due date line for t.
func DueLabel(t task.Task) string {
	if t.DueDate == "" {
		return "Due Date: N/A"
	}
	return "Due Date: " + t.DueDate
}

// Lines returns the rendered lines of the row: the title with its actions,
// the description when present, and the due date.
func (r TaskRow) Lines() []string {
	indicator := "○"
	if r.Task.Completed {
		indicator = "✓"
	}
	if r.Selected {
		indicator = "●"
	}

	title := indicator + " " + r.Task.Title
	switch {
	case r.Selected:
		title = styles.SelectedStyle.Render(title)
	case r.Task.Completed:
		title = styles.CompletedStyle.Render(title)
	}

	action := styles.ActionStyle.Render("[" + ActionLabel(r.Task) + "]")
	if r.Task.Completed {
		action = styles.CompletedStyle.Render("[" + ActionLabel(r.Task) + "]")
	}
	actions := action + " " + styles.ErrorStyle.Render("[Delete]")

	gap := r.Width - lipgloss.Width(title) - lipgloss.Width(actions)
	if gap < 2 {
		gap = 2
	}
	lines := []string{title + strings.Repeat(" ", gap) + actions}

	if desc := flatten(r.Task.Description); desc != "" {
		lines = append(lines, "  "+desc)
	}

	due := DueLabel(r.Task)
	if r.Overdue {
		due = styles.ErrorStyle.Render(due + " (overdue)")
	} else {
		due = styles.SubtleStyle.Render(due)
	}
	lines = append(lines, "  "+due)

	return lines
}

// View renders the row as a single string.
func (r TaskRow) View() string {
	return strings.Join(r.Lines(), "\n")
}

// flatten collapses a multi-line description onto one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
