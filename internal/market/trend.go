package market

import (
	"math"

	"github.com/rushi2212/agrimitra/internal/domain"
)

// Trend classifies the direction of recent modal prices.
type Trend string

const (
	TrendRising   Trend = "rising"
	TrendFalling  Trend = "falling"
	TrendStable   Trend = "stable"
	TrendVolatile Trend = "volatile"
)

// Confidence grades how much the prediction can be trusted, from the
// consistency and depth of the underlying data.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

const (
	trendWindowMonths = 12
	minTrendPoints    = 6

	// slopeThresholdRatio is the monthly price change, as a fraction of
	// the mean, below which the trend counts as stable.
	slopeThresholdRatio = 0.015

	// volatileCV is the coefficient of variation above which volatility
	// overrides any directional trend.
	volatileCV = 0.15

	highConfidenceCV     = 0.08
	highConfidencePoints = 18
	medConfidencePoints  = 12
)

// AnalyzeTrend fits a least-squares line through the newest-first modal
// prices and classifies the slope, with volatility measured as the
// coefficient of variation over the same window.
func AnalyzeTrend(points []domain.PricePoint) (Trend, Confidence) {
	if len(points) < minTrendPoints {
		return TrendStable, ConfidenceLow
	}

	window := points
	if len(window) > trendWindowMonths {
		window = window[:trendWindowMonths]
	}
	// Reorder oldest-first so a positive slope means prices are rising.
	prices := make([]float64, len(window))
	for i, p := range window {
		prices[len(window)-1-i] = float64(p.ModalPrice)
	}

	slope, mean, ok := fitSlope(prices)
	if !ok {
		return TrendStable, ConfidenceLow
	}
	cv := variationCoefficient(prices, mean)

	trend := TrendStable
	threshold := mean * slopeThresholdRatio
	switch {
	case cv > volatileCV:
		trend = TrendVolatile
	case slope > threshold:
		trend = TrendRising
	case slope < -threshold:
		trend = TrendFalling
	}

	confidence := ConfidenceLow
	switch {
	case cv < highConfidenceCV && len(points) >= highConfidencePoints:
		confidence = ConfidenceHigh
	case cv < volatileCV && len(points) >= medConfidencePoints:
		confidence = ConfidenceMedium
	}

	return trend, confidence
}

// fitSlope returns the least-squares slope over prices indexed 0..n-1 and
// their mean. ok is false when the slope is undefined.
func fitSlope(prices []float64) (slope, mean float64, ok bool) {
	n := len(prices)
	if n < 2 {
		return 0, 0, false
	}

	xMean := float64(n-1) / 2
	for _, p := range prices {
		mean += p
	}
	mean /= float64(n)

	var num, den float64
	for i, p := range prices {
		dx := float64(i) - xMean
		num += dx * (p - mean)
		den += dx * dx
	}
	if den == 0 {
		return 0, mean, false
	}
	return num / den, mean, true
}

func variationCoefficient(prices []float64, mean float64) float64 {
	if mean <= 0 || len(prices) < 2 {
		return 0
	}
	var sum float64
	for _, p := range prices {
		d := p - mean
		sum += d * d
	}
	std := math.Sqrt(sum / float64(len(prices)-1))
	return std / mean
}
