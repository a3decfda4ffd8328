package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pablasso/taskdash/internal/task"
	"github.com/pablasso/taskdash/internal/tui"
)

func stubTUI(t *testing.T, err error) *[]tui.Options {
	t.Helper()

	var calls []tui.Options
	orig := runTUI
	runTUI = func(opts tui.Options) error {
		calls = append(calls, opts)
		return err
	}
	t.Cleanup(func() { runTUI = orig })
	return &calls
}

func resetDemoFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		demoFilter = "all"
		_ = demoCmd.Flags().Set("filter", "all")
	})
}

func TestDemoOptions(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	opts, err := demoOptions("overdue", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Filter != task.FilterOverdue {
		t.Errorf("expected Overdue filter, got %s", opts.Filter)
	}
	if len(opts.Tasks) == 0 {
		t.Error("expected demo tasks")
	}

	if _, err := demoOptions("someday", now); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestDemoCommand_RunsTUI(t *testing.T) {
	calls := stubTUI(t, nil)
	resetDemoFlags(t)

	rootCmd.SetArgs([]string{"demo", "--filter", "pending"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(*calls) != 1 {
		t.Fatalf("expected TUI to run once, got %d", len(*calls))
	}
	if (*calls)[0].Filter != task.FilterPending {
		t.Errorf("expected Pending filter, got %s", (*calls)[0].Filter)
	}
}

func TestDemoCommand_WrapsTUIError(t *testing.T) {
	stubTUI(t, errors.New("no terminal"))
	resetDemoFlags(t)

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	rootCmd.SetArgs([]string{"demo"})
	err := rootCmd.Execute()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to run dashboard: no terminal") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDemoCommand_InvalidFilter(t *testing.T) {
	calls := stubTUI(t, nil)
	resetDemoFlags(t)

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() { rootCmd.SetErr(nil) })

	rootCmd.SetArgs([]string{"demo", "--filter", "late"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for invalid filter")
	}
	if len(*calls) != 0 {
		t.Errorf("expected TUI not to run, got %d calls", len(*calls))
	}
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"version"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "taskdash dev") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}
