package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/pablasso/taskdash/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual help items.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	if len(items) == 0 {
		return styles.StatusBarStyle.Width(width).Render("")
	}

	content := strings.Join(items, " • ")

	return styles.StatusBarStyle.Width(width).Render(content)
}

// RenderBindings renders the help text of the enabled bindings.
func (s StatusBar) RenderBindings(width int, bindings []key.Binding) string {
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		items = append(items, strings.TrimSpace(h.Key+" "+h.Desc))
	}
	return s.Render(width, items)
}
