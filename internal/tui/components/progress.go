package components

import (
	"fmt"
	"strings"
)

const (
	filledChar = "■"
	emptyChar  = "□"
)

// Progress renders task completion like: ■■■■□□□□ 2/4 done
type Progress struct {
	Done  int
	Total int
	Width int // character width of the bar portion
}

// NewProgress creates a new Progress instance.
func NewProgress(done, total, width int) Progress {
	return Progress{
		Done:  done,
		Total: total,
		Width: width,
	}
}

// View returns the rendered progress bar, or "" when there is nothing to show.
func (p Progress) View() string {
	if p.Total <= 0 || p.Width <= 0 {
		return ""
	}

	done := p.Done
	if done < 0 {
		done = 0
	}
	if done > p.Total {
		done = p.Total
	}

	filled := (done * p.Width) / p.Total
	bar := strings.Repeat(filledChar, filled) + strings.Repeat(emptyChar, p.Width-filled)

	return fmt.Sprintf("%s %d/%d done", bar, done, p.Total)
}
