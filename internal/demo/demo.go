// Package demo provides sample tasks for showing the dashboard without typing
// them in first.
package demo

import (
	"time"

	"github.com/pablasso/taskdash/internal/task"
)

// Tasks returns the demo dataset with due dates relative to now, so that it
// always contains pending, completed and overdue tasks.
func Tasks(now time.Time) []task.Task {
	day := func(offset int) string {
		return task.Today(now.AddDate(0, 0, offset))
	}

	return []task.Task{
		{Title: "Team meeting", Description: "Weekly sync with the platform team", DueDate: day(1)},
		{Title: "Pay rent", Description: "Transfer before the landlord asks", DueDate: day(-3)},
		{Title: "Renew passport", Description: "Photos are in the top drawer", DueDate: day(-10), Completed: true},
		{Title: "Read design doc", Description: "Leave comments on the storage section"},
		{Title: "Book dentist appointment", DueDate: day(7)},
		{Title: "File expense report", Description: "Conference travel", DueDate: day(-1)},
		{Title: "Water the plants", Completed: true},
	}
}
