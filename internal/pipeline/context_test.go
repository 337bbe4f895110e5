package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/testutil"
)

func TestContextBuilder_RegionalSoilOverride(t *testing.T) {
	s := testutil.NewFarmState(testutil.WithLocation("Kolhapur"))

	b := NewContextBuilder(testKB(t), nil)
	require.NoError(t, b.Run(context.Background(), s))

	assert.Equal(t, "clay", s.SoilContext.Type)
	assert.InDelta(t, 6.8, s.SoilContext.PH, 1e-9)
	assert.Equal(t, "split application, avoid leaching", s.SoilContext.Advice)
}

func TestContextBuilder_UnknownRegionFallsBackToClay(t *testing.T) {
	s := testutil.NewFarmState(testutil.WithLocation("Nagpur"))

	b := NewContextBuilder(testKB(t), nil)
	require.NoError(t, b.Run(context.Background(), s))

	assert.Equal(t, "clay", s.SoilContext.Type)
	assert.InDelta(t, 6.75, s.SoilContext.PH, 1e-9)
}

func TestContextBuilder_KeepsStoredForecast(t *testing.T) {
	stored := domain.WeatherForecast{RainProbability: 90, ExpectedPattern: "monsoon"}
	s := testutil.NewFarmState(testutil.WithForecast(stored))

	provider := StaticWeatherProvider{Value: domain.WeatherForecast{RainProbability: 5}}
	b := NewContextBuilder(testKB(t), provider)
	require.NoError(t, b.Run(context.Background(), s))

	assert.Equal(t, stored, s.WeatherForecast)
}

func TestContextBuilder_ResolvesMissingForecast(t *testing.T) {
	s := testutil.NewFarmState()

	provider := StaticWeatherProvider{Value: domain.WeatherForecast{RainProbability: 40, ExpectedPattern: "dry"}}
	b := NewContextBuilder(testKB(t), provider)
	require.NoError(t, b.Run(context.Background(), s))

	assert.InDelta(t, 40, s.WeatherForecast.RainProbability, 1e-9)
	assert.Equal(t, "dry", s.ExpectedWeatherPattern)
}

func TestContextBuilder_DefaultPattern(t *testing.T) {
	s := testutil.NewFarmState()

	b := NewContextBuilder(testKB(t), nil)
	require.NoError(t, b.Run(context.Background(), s))

	assert.Equal(t, "monsoon", s.ExpectedWeatherPattern)
}
