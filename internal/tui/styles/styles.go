// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5C6BC0") // Indigo accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	successColor   = lipgloss.Color("#66BB6A") // Green for completed tasks
	actionColor    = lipgloss.Color("#42A5F5") // Blue for pending actions
	errorColor     = lipgloss.Color("#E57373") // Soft red for destructive actions

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// SelectedStyle for selected items in lists
	SelectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// LabelStyle for form field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// FocusedLabelStyle for the label of the focused form field
	FocusedLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	// ButtonStyle for unfocused buttons
	ButtonStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Padding(0, 2)

	// FocusedButtonStyle for the focused button
	FocusedButtonStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 2)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// BoxStyle for panel borders
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(1, 2)

	// ModalStyle for the delete confirmation dialog
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 4).
			Align(lipgloss.Center)

	// CompletedStyle for completed task titles
	CompletedStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ActionStyle for the "Mark Completed" action label
	ActionStyle = lipgloss.NewStyle().
			Foreground(actionColor)

	// SuccessStyle for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// ErrorStyle for error messages and destructive actions
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
