package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/taskdash/internal/task"
	"github.com/pablasso/taskdash/internal/tui/components"
	"github.com/pablasso/taskdash/internal/tui/msgs"
	"github.com/pablasso/taskdash/internal/tui/styles"
)

// Field identifies the dashboard element holding keyboard focus.
type Field int

const (
	FieldTitle Field = iota
	FieldDescription
	FieldDueDate
	FieldAdd
	FieldFilter
	FieldSearch
	FieldList
)

const fieldCount = int(FieldList) + 1

func (f Field) next() Field {
	return Field((int(f) + 1) % fieldCount)
}

func (f Field) prev() Field {
	return Field((int(f) + fieldCount - 1) % fieldCount)
}

// inForm reports whether f belongs to the new task form.
func (f Field) inForm() bool {
	return f <= FieldAdd
}

const (
	maxContentWidth    = 76
	minContentWidth    = 24
	descriptionRows    = 3
	minListHeight      = 3
	dueDatePlaceholder = "YYYY-MM-DD"
)

// DashboardModel is the single screen of the app: the new task form, the
// filter and search controls, and the task list.
type DashboardModel struct {
	board *task.Board
	now   func() time.Time

	title       textinput.Model
	description textarea.Model
	dueDate     textinput.Model
	search      textinput.Model

	focus  Field
	cursor int // index into the visible tasks
	list   components.ListViewport
	keys   dashboardKeyMap

	width  int
	height int
}

// NewDashboardModel creates the dashboard over board. now supplies the
// current time used to decide which tasks are overdue.
func NewDashboardModel(board *task.Board, now func() time.Time) DashboardModel {
	if board == nil {
		board = task.NewBoard()
	}
	if now == nil {
		now = time.Now
	}

	title := textinput.New()
	title.Placeholder = "Task Title"
	title.CharLimit = 200

	description := textarea.New()
	description.Placeholder = "Task Description"
	description.ShowLineNumbers = false
	description.CharLimit = 1000
	description.SetHeight(descriptionRows)

	dueDate := textinput.New()
	dueDate.Placeholder = dueDatePlaceholder
	dueDate.CharLimit = len(dueDatePlaceholder)
	dueDate.Width = len(dueDatePlaceholder) + 1

	search := textinput.New()
	search.Placeholder = "Search Tasks"
	search.CharLimit = 200

	m := DashboardModel{
		board:       board,
		now:         now,
		title:       title,
		description: description,
		dueDate:     dueDate,
		search:      search,
		list:        components.NewListViewport(minContentWidth, minListHeight),
		keys:        newDashboardKeyMap(),
	}
	m.setFocus(FieldTitle)
	m.loadDraft(board.Draft())
	m.search.SetValue(board.Search())
	return m
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m, cmd = m.handleKeyPress(msg)

	default:
		m, cmd = m.updateFocusedInput(msg)
	}

	m.refresh()
	return m, cmd
}

// handleKeyPress applies global bindings first and then those of the
// focused element.
func (m DashboardModel) handleKeyPress(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus(m.focus.next())
	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus(m.focus.prev())
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Leave):
		return m, m.setFocus(FieldList)
	}

	switch m.focus {
	case FieldTitle, FieldDueDate:
		if msg.Type == tea.KeyEnter {
			return m.submit()
		}
		return m.updateFocusedInput(msg)

	case FieldDescription:
		return m.updateFocusedInput(msg)

	case FieldAdd:
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace {
			return m.submit()
		}

	case FieldFilter:
		switch {
		case key.Matches(msg, m.keys.FilterPrev):
			m.board.SetFilter(m.board.Filter().Prev())
			m.cursor = 0
		case key.Matches(msg, m.keys.FilterNext):
			m.board.SetFilter(m.board.Filter().Next())
			m.cursor = 0
		}

	case FieldSearch:
		if msg.Type == tea.KeyEnter {
			return m, m.setFocus(FieldList)
		}
		return m.updateFocusedInput(msg)

	case FieldList:
		return m.handleListKeys(msg)
	}
	return m, nil
}

// handleListKeys handles keys while the task list has focus.
func (m DashboardModel) handleListKeys(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	visible := m.Visible()

	switch {
	case key.Matches(msg, m.keys.Close):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(visible) {
			t := visible[m.cursor]
			if m.board.Toggle(t.ID) {
				completed := !t.Completed
				return m, func() tea.Msg { return msgs.TaskToggledMsg{TaskID: t.ID, Completed: completed} }
			}
		}
	case key.Matches(msg, m.keys.Delete):
		if m.cursor < len(visible) {
			t := visible[m.cursor]
			m.board.RequestDelete(t.ID)
			return m, func() tea.Msg { return msgs.DeleteRequestedMsg{TaskID: t.ID, Title: t.Title} }
		}
	}
	return m, nil
}

// updateFocusedInput forwards msg to the focused text control and mirrors
// its value into the board.
func (m DashboardModel) updateFocusedInput(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case FieldTitle:
		m.title, cmd = m.title.Update(msg)
	case FieldDescription:
		m.description, cmd = m.description.Update(msg)
	case FieldDueDate:
		m.dueDate, cmd = m.dueDate.Update(msg)
	case FieldSearch:
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.board.Search() {
			m.board.SetSearch(m.search.Value())
			m.cursor = 0
		}
		return m, cmd
	default:
		return m, nil
	}

	m.board.SetDraft(m.draftFromInputs())
	return m, cmd
}

// submit commits the draft. A blank title is silently ignored.
func (m DashboardModel) submit() (DashboardModel, tea.Cmd) {
	m.board.SetDraft(m.draftFromInputs())

	t, ok := m.board.Submit()
	if !ok {
		return m, nil
	}

	m.loadDraft(m.board.Draft())
	focusCmd := m.setFocus(FieldTitle)

	added := func() tea.Msg { return msgs.TaskAddedMsg{TaskID: t.ID, Title: t.Title} }
	return m, tea.Batch(focusCmd, added)
}

func (m DashboardModel) draftFromInputs() task.Draft {
	return task.Draft{
		Title:       m.title.Value(),
		Description: m.description.Value(),
		DueDate:     m.dueDate.Value(),
	}
}

func (m *DashboardModel) loadDraft(d task.Draft) {
	m.title.SetValue(d.Title)
	m.description.SetValue(d.Description)
	m.dueDate.SetValue(d.DueDate)
}

// setFocus moves focus to f and returns the focused control's cursor command.
func (m *DashboardModel) setFocus(f Field) tea.Cmd {
	m.title.Blur()
	m.description.Blur()
	m.dueDate.Blur()
	m.search.Blur()

	m.focus = f
	m.keys.Submit.SetEnabled(f.inForm())
	m.keys.Leave.SetEnabled(f != FieldList)
	m.keys.FilterPrev.SetEnabled(f == FieldFilter)
	m.keys.FilterNext.SetEnabled(f == FieldFilter)
	for _, b := range []*key.Binding{&m.keys.Up, &m.keys.Down, &m.keys.Toggle, &m.keys.Delete, &m.keys.Close} {
		b.SetEnabled(f == FieldList)
	}

	switch f {
	case FieldTitle:
		return m.title.Focus()
	case FieldDescription:
		return m.description.Focus()
	case FieldDueDate:
		return m.dueDate.Focus()
	case FieldSearch:
		return m.search.Focus()
	}
	return nil
}

// today returns the current calendar date in task.DateLayout.
func (m DashboardModel) today() string {
	return task.Today(m.now())
}

// Visible returns the tasks currently listed.
func (m DashboardModel) Visible() []task.Task {
	return m.board.Visible(m.today())
}

// refresh rebuilds the task list lines and keeps the cursor row in view.
func (m *DashboardModel) refresh() {
	today := m.today()
	visible := m.board.Visible(today)

	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	cw := m.contentWidth()
	var lines []string
	start, end := 0, 0
	for i, t := range visible {
		row := components.TaskRow{
			Task:     t,
			Selected: m.focus == FieldList && i == m.cursor,
			Overdue:  t.IsOverdue(today),
			Width:    cw - 1,
		}
		rowLines := row.Lines()
		if i == m.cursor {
			start = len(lines)
			end = start + len(rowLines) - 1
		}
		lines = append(lines, rowLines...)
		if i < len(visible)-1 {
			lines = append(lines, "")
		}
	}

	if len(visible) == 0 {
		msg := "No tasks match the current filter."
		if m.board.Len() == 0 {
			msg = "No tasks yet. Add one above."
		}
		lines = []string{styles.SubtleStyle.Render(msg)}
	}

	m.list.SetSize(cw, m.listHeight())
	m.list.SetLines(lines)
	m.list.EnsureVisible(start, end)
}

func (m DashboardModel) contentWidth() int {
	w := m.width - 4
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < minContentWidth {
		w = minContentWidth
	}
	return w
}

// listHeight is what remains below the form and above the status bar.
func (m DashboardModel) listHeight() int {
	h := m.height - lipgloss.Height(m.renderTop()) - 2
	if h < minListHeight {
		h = minListHeight
	}
	return h
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left, m.renderTop(), m.list.View())

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n\n")
	b.WriteString(components.NewStatusBar().RenderBindings(m.width, m.statusBindings()))
	return b.String()
}

// renderTop renders everything above the task list.
func (m DashboardModel) renderTop() string {
	cw := m.contentWidth()
	var b strings.Builder

	title := styles.TitleStyle.Render("Task Management Dashboard")
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, title))
	b.WriteString("\n")

	done := m.board.Counts(m.today())[task.FilterCompleted]
	if progress := components.NewProgress(done, m.board.Len(), 10).View(); progress != "" {
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, styles.SubtleStyle.Render(progress)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.label("Task Title", FieldTitle))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(m.label("Task Description", FieldDescription))
	b.WriteString("\n")
	b.WriteString(m.description.View())
	b.WriteString("\n")
	b.WriteString(m.label("Due Date", FieldDueDate))
	b.WriteString("\n")
	b.WriteString(m.dueDate.View())
	b.WriteString("\n")

	button := styles.ButtonStyle.Render("[ Add Task ]")
	if m.focus == FieldAdd {
		button = styles.FocusedButtonStyle.Render("[ Add Task ]")
	}
	b.WriteString(button)
	b.WriteString("\n\n")

	b.WriteString(m.renderFilter())
	b.WriteString("\n")
	b.WriteString(m.label("Search Tasks", FieldSearch))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	return b.String()
}

// renderFilter renders the filter selector with per-filter counts.
func (m DashboardModel) renderFilter() string {
	selector := "◀ " + m.board.Filter().Label() + " ▶"
	if m.focus == FieldFilter {
		selector = styles.SelectedStyle.Render(selector)
	}

	counts := m.board.Counts(m.today())
	parts := make([]string, 0, len(task.Filters))
	for _, f := range task.Filters {
		parts = append(parts, fmt.Sprintf("%s %d", f, counts[f]))
	}

	return m.label("Filter", FieldFilter) + " " + selector + "  " + styles.SubtleStyle.Render(strings.Join(parts, " · "))
}

func (m DashboardModel) label(text string, f Field) string {
	if m.focus == f {
		return styles.FocusedLabelStyle.Render(text)
	}
	return styles.LabelStyle.Render(text)
}

// statusBindings returns the help shown for the current focus.
func (m DashboardModel) statusBindings() []key.Binding {
	k := m.keys
	switch {
	case m.focus == FieldList:
		return []key.Binding{k.Up, k.Toggle, k.Delete, k.NextField, k.Close}
	case m.focus == FieldFilter:
		return []key.Binding{k.FilterNext, k.NextField, k.PrevField, k.Leave, k.Quit}
	case m.focus.inForm():
		return []key.Binding{k.Submit, k.NextField, k.PrevField, k.Leave, k.Quit}
	default:
		return []key.Binding{k.NextField, k.PrevField, k.Leave, k.Quit}
	}
}

// ResolveDelete answers the pending delete request. It returns true when a
// task was removed.
func (m *DashboardModel) ResolveDelete(confirmed bool) bool {
	removed := false
	if confirmed {
		removed = m.board.ConfirmDelete()
	} else {
		m.board.CancelDelete()
	}
	m.refresh()
	return removed
}

// SetSize updates the model dimensions.
func (m *DashboardModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	cw := m.contentWidth()
	m.title.Width = cw - 3
	m.search.Width = cw - 3
	m.description.SetWidth(cw)
	m.refresh()
}

// Focus returns the element holding keyboard focus.
func (m DashboardModel) Focus() Field {
	return m.focus
}

// Cursor returns the index of the selected task among the visible tasks.
func (m DashboardModel) Cursor() int {
	return m.cursor
}

// Board returns the underlying task state.
func (m DashboardModel) Board() *task.Board {
	return m.board
}

// Draft returns the values currently typed into the form.
func (m DashboardModel) Draft() task.Draft {
	return m.draftFromInputs()
}
