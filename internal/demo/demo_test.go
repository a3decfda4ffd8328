package demo

import (
	"testing"
	"time"

	"github.com/pablasso/taskdash/internal/task"
)

func TestTasks_CoversEveryFilter(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	board := task.NewBoard()
	board.Load(Tasks(now))

	counts := board.Counts(task.Today(now))
	for _, f := range task.Filters {
		if counts[f] == 0 {
			t.Errorf("expected demo data to include %s tasks", f)
		}
	}
	if board.Len() != len(Tasks(now)) {
		t.Errorf("expected every demo task to load, got %d", board.Len())
	}
}

func TestTasks_DatesAreRelative(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tasks := Tasks(now)

	if tasks[1].Title != "Pay rent" || tasks[1].DueDate != "2023-12-29" {
		t.Errorf("expected Pay rent due 2023-12-29, got %+v", tasks[1])
	}
	for _, tk := range tasks {
		if tk.ID != 0 {
			t.Errorf("expected demo tasks without ids, got %d for %q", tk.ID, tk.Title)
		}
	}
}
