package formatter

import (
	"strings"
	"testing"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderCycleProgress(t *testing.T) {
	out := RenderCycleProgress(60, 120, 10)
	assert.Contains(t, out, "day 60/120")
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
}

func TestRenderCycleProgress_ClampsOverrun(t *testing.T) {
	out := RenderCycleProgress(150, 120, 8)
	assert.Equal(t, 8, strings.Count(out, filledBlock))
	assert.Equal(t, 0, strings.Count(out, emptyBlock))
}

func TestRenderCycleProgress_ZeroTotalDays(t *testing.T) {
	out := RenderCycleProgress(3, 0, 8)
	assert.Contains(t, out, "day 3/0")
	assert.Equal(t, 0, strings.Count(out, filledBlock))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"DAY", "STAGE"},
		[][]string{
			{"1", "Sowing"},
			{"96", "Harvest"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "DAY")
	assert.Contains(t, lines[2], "Sowing")
	assert.Contains(t, lines[3], "Harvest")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestWeatherIndicator(t *testing.T) {
	assert.Contains(t, WeatherIndicator(domain.WeatherClear), "CLEAR")
	assert.Contains(t, WeatherIndicator(domain.WeatherRainExpected), "RAIN EXPECTED")
	assert.Contains(t, WeatherIndicator(domain.WeatherHeatwave), "HEATWAVE")
	assert.Contains(t, WeatherIndicator(domain.WeatherRisk("?")), "UNKNOWN")
}
