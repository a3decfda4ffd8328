package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/taskdash/internal/task"
	"github.com/pablasso/taskdash/internal/tui/msgs"
	"github.com/pablasso/taskdash/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewDashboard View = iota
	ViewConfirmDelete
)

// Model is the main Bubble Tea model that orchestrates all views.
type Model struct {
	currentView View
	width       int
	height      int

	board     *task.Board
	dashboard views.DashboardModel
	confirm   views.ConfirmDeleteModel
}

// Run starts the TUI application.
func Run(opts Options) error {
	closeLog, err := setupLogging(opts.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}

// setupLogging sends the standard logger to a file when DEBUG is set and
// discards it otherwise, since Bubble Tea owns the terminal.
func setupLogging(path string) (func(), error) {
	if os.Getenv("DEBUG") == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	if path == "" {
		path = DefaultLogPath
	}
	f, err := tea.LogToFile(path, "taskdash")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}

// NewModel builds the root model from opts.
func NewModel(opts Options) Model {
	board := task.NewBoard()
	board.Load(opts.Tasks)
	board.SetFilter(opts.Filter)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return Model{
		currentView: ViewDashboard,
		board:       board,
		dashboard:   views.NewDashboardModel(board, now),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.dashboard.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dashboard.SetSize(msg.Width, msg.Height)
		m.confirm.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.TaskAddedMsg:
		log.Printf("task added: id=%d title=%q", msg.TaskID, msg.Title)
		return m, nil

	case msgs.TaskToggledMsg:
		log.Printf("task toggled: id=%d completed=%v", msg.TaskID, msg.Completed)
		return m, nil

	case msgs.DeleteRequestedMsg:
		log.Printf("delete requested: id=%d", msg.TaskID)
		m.confirm = views.NewConfirmDeleteModel(msg.TaskID, msg.Title)
		m.confirm.SetSize(m.width, m.height)
		m.currentView = ViewConfirmDelete
		return m, nil

	case msgs.DeleteResolvedMsg:
		removed := m.dashboard.ResolveDelete(msg.Confirmed)
		log.Printf("delete resolved: confirmed=%v removed=%v", msg.Confirmed, removed)
		m.currentView = ViewDashboard
		return m, nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewConfirmDelete:
		m.confirm, cmd = m.confirm.Update(msg)
	default:
		m.dashboard, cmd = m.dashboard.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if _, pending := m.board.PendingDelete(); pending && m.currentView == ViewConfirmDelete {
		return m.confirm.View()
	}
	return m.dashboard.View()
}

// CurrentView returns the active screen.
func (m Model) CurrentView() View {
	return m.currentView
}

// Board returns the task state shared by the views.
func (m Model) Board() *task.Board {
	return m.board
}
