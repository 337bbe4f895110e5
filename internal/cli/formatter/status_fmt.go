package formatter

import (
	"fmt"
	"strings"

	"github.com/rushi2212/agrimitra/internal/contract"
)

const statusProgressBarWidth = 10

// FormatStatus formats a StatusResponse into a styled session dashboard.
func FormatStatus(resp *contract.StatusResponse) string {
	var b strings.Builder

	headers := []string{"SESSION", "CROP", "PROGRESS", "WEATHER", "DONE", "SKIP", "LATE"}
	rows := make([][]string, 0, len(resp.Sessions))

	for _, s := range resp.Sessions {
		rows = append(rows, []string{
			Dim(shortSessionID(s.SessionID)),
			Bold(s.Crop),
			RenderCycleProgress(s.CurrentDayIndex, s.TotalDays, statusProgressBarWidth),
			WeatherIndicator(s.WeatherRisk),
			StyleGreen.Render(fmt.Sprintf("%d", s.CompletedCount)),
			StyleYellow.Render(fmt.Sprintf("%d", s.SkippedCount)),
			StyleRed.Render(fmt.Sprintf("%d", s.DelayedCount)),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	for _, s := range resp.Sessions {
		if s.LastAdvisory == "" && len(s.RiskEvents) == 0 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(Header(fmt.Sprintf("Session %s", shortSessionID(s.SessionID))) + "\n")
		if s.LastAdvisory != "" {
			b.WriteString(StyleFg.Render(s.LastAdvisory) + "\n")
		}
		for _, ev := range s.RiskEvents {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s: %s", ev.Type, ev.Reason)) + "\n")
		}
	}

	return RenderBox("Status", b.String())
}

// shortSessionID truncates a UUID to its first block for display.
func shortSessionID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
