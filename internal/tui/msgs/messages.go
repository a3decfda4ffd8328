// Package msgs defines shared message types passed between TUI views.
package msgs

// TaskAddedMsg is sent after a draft has been committed as a task.
type TaskAddedMsg struct {
	TaskID int64
	Title  string
}

// TaskToggledMsg is sent after a task's completion flag flipped.
type TaskToggledMsg struct {
	TaskID    int64
	Completed bool
}

// DeleteRequestedMsg asks for confirmation before removing a task.
type DeleteRequestedMsg struct {
	TaskID int64
	Title  string
}

// DeleteResolvedMsg carries the answer from the delete confirmation dialog.
type DeleteResolvedMsg struct {
	Confirmed bool
}
