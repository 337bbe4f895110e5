package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/pest"
)

// DisableColor forces plain ASCII output, used when stdout is not a terminal.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// WeatherIndicator returns a colored weather risk string such as "● RAIN EXPECTED".
func WeatherIndicator(risk domain.WeatherRisk) string {
	switch risk {
	case domain.WeatherRainExpected:
		return StyleBlue.Render("● RAIN EXPECTED")
	case domain.WeatherHeatwave:
		return StyleRed.Render("● HEATWAVE")
	case domain.WeatherClear:
		return StyleGreen.Render("● CLEAR")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// PestLevelStyle returns the lipgloss style for a pest risk level.
func PestLevelStyle(level pest.Level) lipgloss.Style {
	switch level {
	case pest.LevelCritical:
		return StyleRed
	case pest.LevelHigh:
		return StyleRed
	case pest.LevelMedium:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
