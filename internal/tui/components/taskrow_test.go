package components

import (
	"strings"
	"testing"

	"github.com/pablasso/taskdash/internal/task"
)

func TestTaskRow_Lines(t *testing.T) {
	t.Run("open task with description and due date", func(t *testing.T) {
		row := TaskRow{
			Task:  task.Task{Title: "Team meeting", Description: "weekly\nsync", DueDate: "2024-06-20"},
			Width: 80,
		}
		lines := row.Lines()

		if len(lines) != 3 {
			t.Fatalf("expected 3 lines, got %d: %v", len(lines), lines)
		}
		if !strings.Contains(lines[0], "Team meeting") || !strings.Contains(lines[0], "Mark Completed") {
			t.Errorf("unexpected title line: %s", lines[0])
		}
		if !strings.Contains(lines[0], "Delete") {
			t.Errorf("expected delete action on title line: %s", lines[0])
		}
		if !strings.Contains(lines[1], "weekly sync") {
			t.Errorf("expected flattened description, got: %s", lines[1])
		}
		if !strings.Contains(lines[2], "Due Date: 2024-06-20") {
			t.Errorf("unexpected due line: %s", lines[2])
		}
	})

	t.Run("completed task without due date", func(t *testing.T) {
		row := TaskRow{Task: task.Task{Title: "Done", Completed: true}, Width: 60}
		lines := row.Lines()

		if len(lines) != 2 {
			t.Fatalf("expected 2 lines without description, got %d", len(lines))
		}
		if !strings.Contains(lines[0], "Mark Incomplete") {
			t.Errorf("expected Mark Incomplete, got: %s", lines[0])
		}
		if !strings.Contains(lines[1], "Due Date: N/A") {
			t.Errorf("expected N/A due date, got: %s", lines[1])
		}
	})

	t.Run("overdue marker", func(t *testing.T) {
		row := TaskRow{Task: task.Task{Title: "Late", DueDate: "2020-01-01"}, Overdue: true, Width: 60}
		if !strings.Contains(row.View(), "(overdue)") {
			t.Errorf("expected overdue marker, got: %s", row.View())
		}
	})

	t.Run("selected indicator", func(t *testing.T) {
		row := TaskRow{Task: task.Task{Title: "Pick me"}, Selected: true, Width: 60}
		if !strings.Contains(row.Lines()[0], "● Pick me") {
			t.Errorf("expected selected indicator, got: %s", row.Lines()[0])
		}
	})
}

func TestRenderScrollbar(t *testing.T) {
	if got := RenderScrollbar(3, 2, 0); strings.Contains(got, "│") {
		t.Errorf("expected hidden gutter when content fits, got %q", got)
	}

	bar := RenderScrollbar(4, 8, 4)
	lines := strings.Split(bar, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 scrollbar lines, got %d", len(lines))
	}
	if lines[3] != "█" {
		t.Errorf("expected thumb at bottom when scrolled to end, got %q", bar)
	}
}
