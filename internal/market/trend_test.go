package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rushi2212/agrimitra/internal/testutil"
)

func TestAnalyzeTrend_TooFewPoints(t *testing.T) {
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, []int{2000, 2010, 1990})

	trend, confidence := AnalyzeTrend(points)

	assert.Equal(t, TrendStable, trend)
	assert.Equal(t, ConfidenceLow, confidence)
}

func TestAnalyzeTrend_Rising(t *testing.T) {
	// Newest first: prices climbed 50/month over the last year.
	values := make([]int, 12)
	for i := range values {
		values[i] = 2600 - 50*i
	}
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, values)

	trend, confidence := AnalyzeTrend(points)

	assert.Equal(t, TrendRising, trend)
	assert.Equal(t, ConfidenceMedium, confidence)
}

func TestAnalyzeTrend_Falling(t *testing.T) {
	values := make([]int, 12)
	for i := range values {
		values[i] = 2000 + 50*i
	}
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, values)

	trend, _ := AnalyzeTrend(points)

	assert.Equal(t, TrendFalling, trend)
}

func TestAnalyzeTrend_StableWithinThreshold(t *testing.T) {
	values := make([]int, 12)
	for i := range values {
		values[i] = 2000 + (i%2)*10
	}
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, values)

	trend, _ := AnalyzeTrend(points)

	assert.Equal(t, TrendStable, trend)
}

func TestAnalyzeTrend_VolatilityOverridesDirection(t *testing.T) {
	values := []int{3400, 1600, 3300, 1700, 3200, 1800, 3100, 1900, 3000, 2000, 2900, 2100}
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, values)

	trend, confidence := AnalyzeTrend(points)

	assert.Equal(t, TrendVolatile, trend)
	assert.Equal(t, ConfidenceLow, confidence)
}

func TestAnalyzeTrend_HighConfidenceNeedsDepthAndConsistency(t *testing.T) {
	values := make([]int, 20)
	for i := range values {
		values[i] = 2000 + (i%3)*15
	}
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, values)

	_, confidence := AnalyzeTrend(points)

	assert.Equal(t, ConfidenceHigh, confidence)
}

func TestAnalyzeTrend_FlatSeriesIsStable(t *testing.T) {
	values := make([]int, 12)
	for i := range values {
		values[i] = 2000
	}
	points := testutil.PricePoints("rice", "Maharashtra", 2026, 8, values)

	trend, _ := AnalyzeTrend(points)

	assert.Equal(t, TrendStable, trend)
}

func TestNormalizeCrop(t *testing.T) {
	assert.Equal(t, "rice", NormalizeCrop("Paddy"))
	assert.Equal(t, "rice", NormalizeCrop(" dhan "))
	assert.Equal(t, "wheat", NormalizeCrop("gehun"))
	assert.Equal(t, "jute", NormalizeCrop("Jute"))
}

func TestBasePrice(t *testing.T) {
	assert.Equal(t, 2000, BasePrice("paddy"))
	assert.Equal(t, 6000, BasePrice("kapas"))
	assert.Equal(t, 2000, BasePrice("unknown crop"))
}

func TestSeasonalFactor(t *testing.T) {
	assert.InDelta(t, 1.25, SeasonalFactor(6, "rice"), 1e-9)
	assert.InDelta(t, 0.85, SeasonalFactor(11, "rice"), 1e-9)
	assert.InDelta(t, 1.0, SeasonalFactor(2, "rice"), 1e-9)
	assert.InDelta(t, 1.2, SeasonalFactor(8, "wheat"), 1e-9)
	assert.InDelta(t, 0.88, SeasonalFactor(4, "wheat"), 1e-9)
	assert.InDelta(t, 1.1, SeasonalFactor(12, "tomato"), 1e-9)
	assert.InDelta(t, 0.95, SeasonalFactor(6, "tomato"), 1e-9)
}
