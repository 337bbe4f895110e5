package pipeline

import (
	"context"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/knowledge"
)

// WeatherProvider supplies a forecast for a location. Live weather APIs
// live behind this boundary; the pipeline itself never makes network calls.
type WeatherProvider interface {
	Forecast(ctx context.Context, location string) (domain.WeatherForecast, error)
}

// StaticWeatherProvider returns a fixed forecast. Used as the default when
// no live provider is wired, and by tests to script weather.
type StaticWeatherProvider struct {
	Value domain.WeatherForecast
}

func (p StaticWeatherProvider) Forecast(ctx context.Context, location string) (domain.WeatherForecast, error) {
	return p.Value, nil
}

const defaultWeatherPattern = "monsoon"

// ContextBuilder resolves the soil profile and a weather-forecast baseline
// for the farm's location and writes them into the state.
type ContextBuilder struct {
	kb      knowledge.Store
	weather WeatherProvider
}

func NewContextBuilder(kb knowledge.Store, weather WeatherProvider) *ContextBuilder {
	if weather == nil {
		weather = StaticWeatherProvider{Value: domain.WeatherForecast{ExpectedPattern: defaultWeatherPattern}}
	}
	return &ContextBuilder{kb: kb, weather: weather}
}

func (b *ContextBuilder) Run(ctx context.Context, s *domain.FarmState) error {
	rules := b.kb.SoilRules(s.Location)

	// A missing region is not an error: fall back to the global clay profile.
	soilType := "clay"
	var regionalPH float64
	if rules.Regional != nil {
		if rules.Regional.SoilType != "" {
			soilType = rules.Regional.SoilType
		}
		regionalPH = rules.Regional.PH
	}

	profile := rules.Defaults[soilType]
	ph := regionalPH
	if ph == 0 {
		ph = midpoint(profile.PHRange)
	}
	advice := domain.CoalesceStr(profile.NitrogenAdvice, "standard")

	s.SoilContext = domain.SoilContext{Type: soilType, PH: ph, Advice: advice}

	// Only resolve a forecast when none is stored yet; the observer reads
	// whatever is current at classification time.
	if s.WeatherForecast == (domain.WeatherForecast{}) && s.Location != "" {
		forecast, err := b.weather.Forecast(ctx, s.Location)
		if err == nil {
			s.WeatherForecast = forecast
		}
	}
	s.ExpectedWeatherPattern = domain.CoalesceStr(
		s.WeatherForecast.ExpectedPattern, s.ExpectedWeatherPattern, defaultWeatherPattern)
	return nil
}

func midpoint(r []float64) float64 {
	if len(r) < 2 {
		return 6.5
	}
	return (r[0] + r[1]) / 2
}
