package tui

import (
	"time"

	"github.com/pablasso/taskdash/internal/task"
)

// Options configures TUI startup behavior.
type Options struct {
	// Filter is the status filter selected at startup.
	Filter task.Filter

	// Tasks are loaded into the board before the first render.
	Tasks []task.Task

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// LogPath is where debug logs are written when the DEBUG environment
	// variable is set. Defaults to DefaultLogPath.
	LogPath string
}

// DefaultLogPath is the debug log file used when Options.LogPath is empty.
const DefaultLogPath = "taskdash-debug.log"
