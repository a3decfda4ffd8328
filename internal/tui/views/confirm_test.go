package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/taskdash/internal/tui/msgs"
)

func resolvedMsg(t *testing.T, cmd tea.Cmd) msgs.DeleteResolvedMsg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(msgs.DeleteResolvedMsg)
	if !ok {
		t.Fatalf("expected msgs.DeleteResolvedMsg, got %T", cmd())
	}
	return msg
}

func TestConfirmDelete_Defaults(t *testing.T) {
	m := NewConfirmDeleteModel(42, "Pay rent")

	if m.TaskID() != 42 {
		t.Errorf("expected task id 42, got %d", m.TaskID())
	}
	if m.Result() != ConfirmPending {
		t.Errorf("expected pending result, got %d", m.Result())
	}
	if m.Selected() != ButtonDelete {
		t.Errorf("expected Delete selected, got %d", m.Selected())
	}
	if m.Init() != nil {
		t.Error("expected Init() to return nil")
	}
}

func TestConfirmDelete_Keys(t *testing.T) {
	tests := []struct {
		name      string
		keys      []tea.KeyMsg
		want      ConfirmResult
		confirmed bool
	}{
		{"y confirms", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'y'}}}, ConfirmDelete, true},
		{"enter on Delete confirms", []tea.KeyMsg{{Type: tea.KeyEnter}}, ConfirmDelete, true},
		{"n cancels", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'n'}}}, ConfirmCancel, false},
		{"esc cancels", []tea.KeyMsg{{Type: tea.KeyEsc}}, ConfirmCancel, false},
		{"enter on Cancel cancels", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, ConfirmCancel, false},
		{"switching twice returns to Delete", []tea.KeyMsg{{Type: tea.KeyTab}, {Type: tea.KeyTab}, {Type: tea.KeyEnter}}, ConfirmDelete, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewConfirmDeleteModel(1, "task")
			var cmd tea.Cmd
			for _, k := range tc.keys {
				m, cmd = m.Update(k)
			}

			if m.Result() != tc.want {
				t.Errorf("expected result %d, got %d", tc.want, m.Result())
			}
			if got := resolvedMsg(t, cmd); got.Confirmed != tc.confirmed {
				t.Errorf("expected Confirmed=%v, got %v", tc.confirmed, got.Confirmed)
			}
		})
	}
}

func TestConfirmDelete_IgnoresKeysAfterResolution(t *testing.T) {
	m := NewConfirmDeleteModel(1, "task")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd != nil {
		t.Error("expected no command once resolved")
	}
	if m.Result() != ConfirmCancel {
		t.Errorf("expected result to stay cancelled, got %d", m.Result())
	}
}

func TestConfirmDelete_View(t *testing.T) {
	m := NewConfirmDeleteModel(1, "Pay rent")
	if m.View() != "" {
		t.Error("expected empty view before sizing")
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()
	for _, want := range []string{"Are you sure you want to delete this task?", "Pay rent", "Delete", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
