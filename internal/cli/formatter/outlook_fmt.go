package formatter

import (
	"fmt"
	"strings"

	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/pest"
)

// FormatOutlook formats an OutlookResponse combining the price forecast
// and the pest early warning.
func FormatOutlook(resp *contract.OutlookResponse) string {
	var b strings.Builder

	b.WriteString(Bold(resp.Crop) + "\n\n")

	if resp.Market != nil {
		writeMarket(&b, resp)
		b.WriteString("\n")
	}
	if resp.PestRisk != nil {
		writePest(&b, resp)
	}
	writeWarnings(&b, resp.Warnings)

	return RenderBox("Outlook", b.String())
}

// FormatMarket formats only the price-forecast half of an outlook.
func FormatMarket(resp *contract.OutlookResponse) string {
	var b strings.Builder
	b.WriteString(Bold(resp.Crop) + "\n\n")
	if resp.Market != nil {
		writeMarket(&b, resp)
	} else {
		b.WriteString(Dim("No price forecast available.") + "\n")
	}
	writeWarnings(&b, resp.Warnings)
	return RenderBox("Market", b.String())
}

// FormatPest formats only the pest early-warning half of an outlook.
func FormatPest(resp *contract.OutlookResponse) string {
	var b strings.Builder
	b.WriteString(Bold(resp.Crop) + "\n\n")
	if resp.PestRisk != nil {
		writePest(&b, resp)
	} else {
		b.WriteString(Dim("No pest assessment available.") + "\n")
	}
	writeWarnings(&b, resp.Warnings)
	return RenderBox("Pest warning", b.String())
}

func writeMarket(b *strings.Builder, resp *contract.OutlookResponse) {
	m := resp.Market
	b.WriteString(Header("Harvest price forecast") + "\n")
	b.WriteString(fmt.Sprintf("%s %s, %s\n",
		Bold(fmt.Sprintf("₹%d-%d/quintal", m.Range.Min, m.Range.Max)),
		Dim(m.HarvestMonth.String()),
		m.State))
	b.WriteString(fmt.Sprintf("Average ₹%d  %s  confidence %s\n",
		m.AveragePrice, TrendArrow(m.Trend), ConfidenceLabel(m.Confidence)))
	b.WriteString(Dim("sources: "+strings.Join(m.Sources, ", ")) + "\n")
}

func writePest(b *strings.Builder, resp *contract.OutlookResponse) {
	p := resp.PestRisk
	b.WriteString(Header("Pest and disease warning") + "\n")
	style := PestLevelStyle(p.Level)
	b.WriteString(fmt.Sprintf("Risk %s %s\n",
		style.Render(strings.ToUpper(string(p.Level))),
		Dim(fmt.Sprintf("(score %.0f, %s day %d)", p.Score, p.Stage, p.DayOfCycle))))

	writeFindings(b, "Pests", p.Pests)
	writeFindings(b, "Diseases", p.Diseases)

	if len(p.Actions) > 0 {
		b.WriteString("\n")
		for _, a := range p.Actions {
			b.WriteString(fmt.Sprintf("  • %s\n", StyleFg.Render(a)))
		}
	}
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("\n")
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
}

func writeFindings(b *strings.Builder, label string, findings []pest.Finding) {
	if len(findings) == 0 {
		return
	}
	b.WriteString(Dim(label+":") + "\n")
	for _, f := range findings {
		style := PestLevelStyle(f.Severity)
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			style.Render("●"),
			Bold(f.Name),
			Dim(f.Reason)))
	}
}
