package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pablasso/taskdash/internal/demo"
	"github.com/pablasso/taskdash/internal/task"
	"github.com/pablasso/taskdash/internal/tui"
)

type parseResult struct {
	Options     tui.Options
	ShowHelp    bool
	ShowVersion bool
	HelpText    string
}

func parseArgs(args []string) (parseResult, error) {
	return parseArgsAt(args, time.Now())
}

// parseArgsAt parses flags with now as the reference date for demo tasks.
func parseArgsAt(args []string, now time.Time) (parseResult, error) {
	fs := flag.NewFlagSet("taskdash", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	filterName := fs.String("filter", "all", "Initial filter: all|completed|pending|overdue")
	demoEnabled := fs.Bool("demo", false, "Start with sample tasks")
	showVersion := fs.Bool("version", false, "Show version information")
	showVersionShort := fs.Bool("v", false, "Show version information")

	usage := func() string {
		var b strings.Builder
		fmt.Fprintln(&b, "Usage: taskdash [flags]")
		fmt.Fprintln(&b, "       taskdash <command> [flags]")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Taskdash is a task management dashboard for the terminal.")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Commands:")
		fmt.Fprintln(&b, "  demo      Launch the dashboard with sample tasks")
		fmt.Fprintln(&b, "  version   Show version information")
		fmt.Fprintln(&b, "")
		fmt.Fprintln(&b, "Flags:")
		fs.SetOutput(&b)
		fs.PrintDefaults()
		fs.SetOutput(io.Discard)
		return b.String()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return parseResult{ShowHelp: true, HelpText: usage()}, nil
		}
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	if fs.NArg() > 0 {
		return parseResult{}, fmt.Errorf("positional args are not supported\n\n%s", usage())
	}

	if *showVersion || *showVersionShort {
		return parseResult{ShowVersion: true}, nil
	}

	filter, err := task.ParseFilter(*filterName)
	if err != nil {
		return parseResult{}, fmt.Errorf("%v\n\n%s", err, usage())
	}

	opts := tui.Options{Filter: filter}
	if *demoEnabled {
		opts.Tasks = demo.Tasks(now)
	}

	return parseResult{Options: opts}, nil
}
