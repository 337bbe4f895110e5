package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rushi2212/agrimitra/internal/market"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TrendArrow returns a colored arrow plus the trend word.
func TrendArrow(trend market.Trend) string {
	switch trend {
	case market.TrendRising:
		return StyleGreen.Render("↑ rising")
	case market.TrendFalling:
		return StyleRed.Render("↓ falling")
	case market.TrendVolatile:
		return StyleYellow.Render("↕ volatile")
	default:
		return StyleFg.Render("→ stable")
	}
}

// ConfidenceLabel renders a prediction confidence grade with urgency coloring.
func ConfidenceLabel(c market.Confidence) string {
	switch c {
	case market.ConfidenceHigh:
		return StyleGreen.Render("high")
	case market.ConfidenceMedium:
		return StyleYellow.Render("medium")
	default:
		return StyleRed.Render("low")
	}
}
