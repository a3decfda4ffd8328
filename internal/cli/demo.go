package cli

import (
	"fmt"
	"time"

	"github.com/pablasso/taskdash/internal/demo"
	"github.com/pablasso/taskdash/internal/task"
	"github.com/pablasso/taskdash/internal/tui"
	"github.com/spf13/cobra"
)

var demoFilter string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Launch the dashboard with sample tasks",
	Long: `Launch the dashboard pre-filled with sample tasks.

The sample set always contains pending, completed and overdue tasks, with
due dates relative to today, so every filter has something to show.

Filters:
  all        Every task (default)
  completed  Completed tasks
  pending    Tasks not completed yet
  overdue    Open tasks whose due date has passed`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoFilter, "filter", "all",
		"Initial filter: all, completed, pending, overdue")
}

func runDemo(cmd *cobra.Command, args []string) error {
	opts, err := demoOptions(demoFilter, time.Now())
	if err != nil {
		return err
	}

	if err := runTUI(opts); err != nil {
		return fmt.Errorf("failed to run dashboard: %w", err)
	}
	return nil
}

// demoOptions builds the TUI options for the demo command.
func demoOptions(filter string, now time.Time) (tui.Options, error) {
	f, err := task.ParseFilter(filter)
	if err != nil {
		return tui.Options{}, err
	}

	return tui.Options{
		Filter: f,
		Tasks:  demo.Tasks(now),
	}, nil
}
