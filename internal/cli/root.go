package cli

import (
	"github.com/pablasso/taskdash/internal/tui"
	"github.com/pablasso/taskdash/internal/version"
	"github.com/spf13/cobra"
)

// runTUI starts the dashboard; replaced in tests.
var runTUI = tui.Run

var rootCmd = &cobra.Command{
	Use:           "taskdash",
	Short:         "Task management dashboard for the terminal",
	Long:          `Taskdash is a single-screen dashboard to add, filter, search, complete and delete tasks. Tasks live in memory and are gone when you quit.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
