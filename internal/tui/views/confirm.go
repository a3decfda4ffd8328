package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskdash/internal/tui/components"
	"github.com/pablasso/taskdash/internal/tui/msgs"
	"github.com/pablasso/taskdash/internal/tui/styles"
)

// ConfirmResult represents the outcome of the delete confirmation.
type ConfirmResult int

const (
	// ConfirmPending means no decision has been made yet.
	ConfirmPending ConfirmResult = iota
	// ConfirmDelete means the task should be removed.
	ConfirmDelete
	// ConfirmCancel means the task stays.
	ConfirmCancel
)

// ConfirmButton identifies the highlighted dialog button.
type ConfirmButton int

const (
	ButtonDelete ConfirmButton = iota
	ButtonCancel
)

// ConfirmDeleteModel is the modal dialog shown while a task is marked for
// deletion.
type ConfirmDeleteModel struct {
	taskID   int64
	title    string
	selected ConfirmButton
	result   ConfirmResult
	keys     confirmKeyMap

	width  int
	height int
}

// NewConfirmDeleteModel creates the dialog for the task with the given
// identifier and title.
func NewConfirmDeleteModel(taskID int64, title string) ConfirmDeleteModel {
	return ConfirmDeleteModel{
		taskID:   taskID,
		title:    title,
		selected: ButtonDelete,
		result:   ConfirmPending,
		keys:     newConfirmKeyMap(),
	}
}

// Init implements tea.Model.
func (m ConfirmDeleteModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmDeleteModel) Update(msg tea.Msg) (ConfirmDeleteModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.result != ConfirmPending {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			return m.resolve(ConfirmDelete)
		case key.Matches(msg, m.keys.Cancel):
			return m.resolve(ConfirmCancel)
		case key.Matches(msg, m.keys.Switch):
			if m.selected == ButtonDelete {
				m.selected = ButtonCancel
			} else {
				m.selected = ButtonDelete
			}
		case key.Matches(msg, m.keys.Choose):
			if m.selected == ButtonDelete {
				return m.resolve(ConfirmDelete)
			}
			return m.resolve(ConfirmCancel)
		}
	}
	return m, nil
}

func (m ConfirmDeleteModel) resolve(r ConfirmResult) (ConfirmDeleteModel, tea.Cmd) {
	m.result = r
	confirmed := r == ConfirmDelete
	return m, func() tea.Msg { return msgs.DeleteResolvedMsg{Confirmed: confirmed} }
}

// View implements tea.Model.
func (m ConfirmDeleteModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	deleteBtn := styles.ButtonStyle.Render("Delete")
	cancelBtn := styles.ButtonStyle.Render("Cancel")
	if m.selected == ButtonDelete {
		deleteBtn = styles.FocusedButtonStyle.Render("Delete")
	} else {
		cancelBtn = styles.FocusedButtonStyle.Render("Cancel")
	}

	var body strings.Builder
	body.WriteString(styles.TitleStyle.Render("Are you sure you want to delete this task?"))
	body.WriteString("\n")
	if m.title != "" {
		body.WriteString(styles.SubtleStyle.Render(m.title))
		body.WriteString("\n\n")
	}
	body.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, deleteBtn, "  ", cancelBtn))

	modal := styles.ModalStyle.Render(body.String())

	var b strings.Builder
	b.WriteString(lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, modal))
	b.WriteString("\n\n")
	b.WriteString(components.NewStatusBar().RenderBindings(m.width, []key.Binding{
		m.keys.Switch, m.keys.Choose, m.keys.Confirm, m.keys.Cancel,
	}))
	return b.String()
}

// SetSize updates the model dimensions.
func (m *ConfirmDeleteModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// TaskID returns the identifier of the task awaiting confirmation.
func (m ConfirmDeleteModel) TaskID() int64 {
	return m.taskID
}

// Selected returns the highlighted button.
func (m ConfirmDeleteModel) Selected() ConfirmButton {
	return m.selected
}

// Result returns the result of the interaction.
func (m ConfirmDeleteModel) Result() ConfirmResult {
	return m.result
}
