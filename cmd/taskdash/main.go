package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pablasso/taskdash/internal/cli"
	"github.com/pablasso/taskdash/internal/tui"
	"github.com/pablasso/taskdash/internal/version"
)

func main() {
	// No args or only flags launch the TUI; a subcommand routes to the CLI.
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	res, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	switch {
	case res.ShowHelp:
		fmt.Print(res.HelpText)
		return
	case res.ShowVersion:
		fmt.Println(version.String())
		return
	}

	if err := tui.Run(res.Options); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
