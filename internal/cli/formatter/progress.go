package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCycleProgress renders the season progress bar like [███░░░░░] day 23/120.
func RenderCycleProgress(day, totalDays, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if totalDays > 0 {
		pct = float64(day) / float64(totalDays)
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	return fmt.Sprintf("[%s] day %d/%d", StyleGreen.Render(bar), day, totalDays)
}
