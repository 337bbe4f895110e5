package formatter

import (
	"fmt"
	"strings"

	"github.com/rushi2212/agrimitra/internal/contract"
)

// FormatDayCycle formats a DayCycleResponse into the daily advisory card.
func FormatDayCycle(resp *contract.DayCycleResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", Bold(resp.Crop), Dim("("+resp.Location+")")))
	b.WriteString(fmt.Sprintf("Day %d  %s  %s\n",
		resp.CurrentDayIndex,
		Dim(resp.CurrentStage),
		WeatherIndicator(resp.WeatherRisk)))
	b.WriteString("\n")

	if len(resp.TodayActions) > 0 {
		b.WriteString(Header("Today's actions") + "\n")
		for _, a := range resp.TodayActions {
			b.WriteString(fmt.Sprintf("  • %s\n", StyleFg.Render(a)))
		}
	} else {
		b.WriteString(Dim("No scheduled actions today.") + "\n")
	}

	if resp.RiskEvent != nil {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", resp.RiskEvent.Reason)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Header("Advisory") + "\n")
	b.WriteString(StyleFg.Render(resp.Advisory) + "\n")

	if resp.CycleComplete {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("Season complete. Ready for harvest.") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("session %s", resp.SessionID)) + "\n")

	return RenderBox("Today", b.String())
}
