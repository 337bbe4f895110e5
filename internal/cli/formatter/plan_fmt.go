package formatter

import (
	"fmt"
	"strings"

	"github.com/rushi2212/agrimitra/internal/contract"
)

// FormatPlan formats a PlanResponse into a calendar table.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		Bold(resp.Crop),
		Dim(fmt.Sprintf("%d day season", resp.TotalDays))))

	headers := []string{"DAY", "STAGE", "ACTIONS"}
	rows := make([][]string, 0, len(resp.Calendar))
	for _, e := range resp.Calendar {
		stage := StyleBlue.Render(e.Stage)
		if e.IsRescheduled() {
			stage = StyleYellow.Render(e.Stage)
		}
		rows = append(rows, []string{
			Bold(fmt.Sprintf("%d", e.Day)),
			stage,
			StyleFg.Render(strings.Join(e.Actions, ", ")),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("session %s", resp.SessionID)) + "\n")

	return RenderBox("Crop calendar", b.String())
}
