package task

import (
	"strings"
	"testing"
	"time"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input string
		want  Filter
	}{
		{"all", FilterAll},
		{"All", FilterAll},
		{"COMPLETED", FilterCompleted},
		{" pending ", FilterPending},
		{"overdue", FilterOverdue},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFilter(tc.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseFilter(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}

	if _, err := ParseFilter("late"); err == nil || !strings.Contains(err.Error(), "invalid filter") {
		t.Errorf("expected invalid filter error, got %v", err)
	}
}

func TestFilter_Cycle(t *testing.T) {
	f := FilterAll
	var seen []Filter
	for i := 0; i < len(Filters); i++ {
		seen = append(seen, f)
		f = f.Next()
	}
	if f != FilterAll {
		t.Errorf("expected cycle to wrap to All, got %s", f)
	}
	for i, want := range Filters {
		if seen[i] != want {
			t.Errorf("position %d: got %s, want %s", i, seen[i], want)
		}
	}
	if FilterAll.Prev() != FilterOverdue {
		t.Errorf("expected All.Prev() = Overdue, got %s", FilterAll.Prev())
	}
}

func TestFilter_Label(t *testing.T) {
	if FilterPending.Label() != "Pending Tasks" {
		t.Errorf("unexpected label %q", FilterPending.Label())
	}
}

func TestFilter_Match_CompletedNeverOverdue(t *testing.T) {
	done := Task{Title: "x", DueDate: "2000-01-01", Completed: true}
	if FilterOverdue.Match(done, "2024-01-01") {
		t.Error("completed task must not be overdue")
	}
	undated := Task{Title: "y"}
	if FilterOverdue.Match(undated, "2024-01-01") {
		t.Error("task without due date must not be overdue")
	}
}

func TestMatchesSearch(t *testing.T) {
	task := Task{Title: "Team meeting", Description: "weekly sync"}
	tests := []struct {
		query string
		want  bool
	}{
		{"", true},
		{"MEET", true},
		{"team m", true},
		{"sync", false},
		{"meetings", false},
	}
	for _, tc := range tests {
		if got := MatchesSearch(task, tc.query); got != tc.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestToday_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	local := time.Date(2024, 3, 1, 5, 0, 0, 0, loc)
	if got := Today(local); got != "2024-02-29" {
		t.Errorf("Today() = %q, want %q", got, "2024-02-29")
	}
}
