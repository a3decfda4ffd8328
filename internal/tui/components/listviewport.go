package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ListViewport wraps bubbles/viewport.Model to show a tall list of rendered
// lines in a fixed-height area with a scrollbar, keeping a selected range of
// lines in view.
type ListViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int // viewport height
}

// NewListViewport creates a new ListViewport with the given dimensions.
// The width includes 1 column for the scrollbar; the content area is width-1.
func NewListViewport(width, height int) ListViewport {
	vp := viewport.New(contentWidth(width), height)
	vp.SetContent("")

	return ListViewport{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

func contentWidth(width int) int {
	if width-1 < 0 {
		return 0
	}
	return width - 1
}

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (l *ListViewport) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	if l.width == width && l.height == height {
		return
	}

	l.width = width
	l.height = height
	l.viewport.Width = contentWidth(width)
	l.viewport.Height = height

	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// SetLines replaces the content, keeping the scroll offset where possible.
func (l *ListViewport) SetLines(lines []string) {
	l.lines = make([]string, len(lines))
	copy(l.lines, lines)

	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// EnsureVisible scrolls the minimum amount so that lines start..end
// (inclusive) are visible. When the range is taller than the viewport its
// first line wins.
func (l *ListViewport) EnsureVisible(start, end int) {
	if start < 0 || start >= len(l.lines) {
		return
	}
	if end < start {
		end = start
	}

	top := l.viewport.YOffset
	bottom := top + l.height - 1

	switch {
	case start < top:
		l.viewport.SetYOffset(start)
	case end > bottom:
		target := end - l.height + 1
		if target > start {
			target = start
		}
		l.viewport.SetYOffset(target)
	}
}

// View renders the content with a 1-column scrollbar on the right.
func (l ListViewport) View() string {
	content := l.viewport.View()
	scrollbar := RenderScrollbar(l.height, len(l.lines), l.viewport.YOffset)

	contentLines := strings.Split(content, "\n")
	scrollbarLines := strings.Split(scrollbar, "\n")
	cw := contentWidth(l.width)

	var b strings.Builder
	for i := 0; i < l.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		sl := ""
		if i < len(scrollbarLines) {
			sl = scrollbarLines[i]
		}

		b.WriteString(cl)
		if padding := cw - lipgloss.Width(cl); padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(sl)
	}

	return b.String()
}

// YOffset returns the index of the first visible line.
func (l ListViewport) YOffset() int {
	return l.viewport.YOffset
}

// LineCount returns the number of stored lines.
func (l ListViewport) LineCount() int {
	return len(l.lines)
}

// Height returns the visible height.
func (l ListViewport) Height() int {
	return l.height
}
