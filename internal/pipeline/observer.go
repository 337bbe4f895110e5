package pipeline

import (
	"context"

	"github.com/rushi2212/agrimitra/internal/domain"
)

// RainProbabilityThreshold is the forecast rain probability at or above
// which the day is classified RAIN_EXPECTED.
const RainProbabilityThreshold = 70

// WeatherObserver classifies exactly one weather-risk category per day
// from the stored forecast. Rain takes priority over heatwave.
type WeatherObserver struct{}

func NewWeatherObserver() *WeatherObserver {
	return &WeatherObserver{}
}

func (o *WeatherObserver) Run(ctx context.Context, s *domain.FarmState) error {
	s.WeatherRisk = Classify(s.WeatherForecast)
	return nil
}

// Classify maps a forecast to its weather-risk category.
func Classify(f domain.WeatherForecast) domain.WeatherRisk {
	switch {
	case f.RainProbability >= RainProbabilityThreshold:
		return domain.WeatherRainExpected
	case f.Heatwave:
		return domain.WeatherHeatwave
	default:
		return domain.WeatherClear
	}
}
