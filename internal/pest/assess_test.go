package pest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, LevelLow, LevelFor(0))
	assert.Equal(t, LevelLow, LevelFor(29.9))
	assert.Equal(t, LevelMedium, LevelFor(30))
	assert.Equal(t, LevelHigh, LevelFor(60))
	assert.Equal(t, LevelCritical, LevelFor(85))
	assert.Equal(t, LevelCritical, LevelFor(100))
}

func TestScoreThreat_StageGate(t *testing.T) {
	threat := threatDB["rice"][0] // Stem Borer, vegetative stages only

	score, reason, atRisk := scoreThreat(threat, "Harvest", Conditions{
		TemperatureC: 28, HumidityPercent: 85, RainfallMM: 10,
	})

	assert.False(t, atRisk)
	assert.Zero(t, score)
	assert.Equal(t, "Not vulnerable at this stage", reason)
}

func TestScoreThreat_AllFactorsMatch(t *testing.T) {
	threat := threatDB["rice"][0] // Stem Borer, base 40

	score, reason, atRisk := scoreThreat(threat, "Vegetative", Conditions{
		TemperatureC: 28, HumidityPercent: 85, RainfallMM: 10,
	})

	assert.True(t, atRisk)
	// 0.4*40 + 0.4*40 + 0.2*40 + 10
	assert.InDelta(t, 50, score, 1e-9)
	assert.Contains(t, reason, "humidity")
	assert.Contains(t, reason, "temperature")
	assert.Contains(t, reason, "rainfall")
}

func TestScoreThreat_StageBonusAloneIsNotRisk(t *testing.T) {
	threat := threatDB["rice"][1] // Brown Planthopper, rainfall trigger 0

	// Dry cold day: only the rainfall trigger (>= 0) and stage bonus fire.
	score, _, atRisk := scoreThreat(threat, "Tillering", Conditions{
		TemperatureC: 5, HumidityPercent: 20, RainfallMM: 0,
	})

	// 0.2*35 + 10 = 17, under the risk floor.
	assert.InDelta(t, 17, score, 1e-9)
	assert.False(t, atRisk)
}

func TestAssess_RiceVegetativeMonsoonDay(t *testing.T) {
	got := Assess("rice", "Vegetative", 20, Conditions{
		TemperatureC: 27, HumidityPercent: 88, RainfallMM: 12,
	})

	assert.Equal(t, "rice", got.Crop)
	require.NotEmpty(t, got.Pests)
	require.NotEmpty(t, got.Diseases)
	assert.Greater(t, got.Score, 30.0)
	assert.NotEqual(t, LevelLow, got.Level)

	var last string
	require.NotEmpty(t, got.Actions)
	last = got.Actions[len(got.Actions)-1]
	assert.Contains(t, last, "Target diseases:")
}

func TestAssess_UnknownCropDegradesToLow(t *testing.T) {
	got := Assess("dragonfruit", "Flowering", 40, Conditions{
		TemperatureC: 30, HumidityPercent: 90, RainfallMM: 20,
	})

	assert.Equal(t, LevelLow, got.Level)
	assert.InDelta(t, 15, got.Score, 1e-9)
	assert.Empty(t, got.Pests)
	assert.Empty(t, got.Diseases)
	assert.NotEmpty(t, got.Actions)
}

func TestAssess_VariantCropNameResolves(t *testing.T) {
	got := Assess("paddy", "Vegetative", 20, Conditions{
		TemperatureC: 27, HumidityPercent: 88, RainfallMM: 12,
	})

	assert.NotEmpty(t, got.Pests)
}

func TestAssess_NoVulnerableStage(t *testing.T) {
	got := Assess("potato", "Harvest", 90, Conditions{
		TemperatureC: 20, HumidityPercent: 95, RainfallMM: 15,
	})

	assert.Empty(t, got.Pests)
	assert.Empty(t, got.Diseases)
	assert.Equal(t, LevelLow, got.Level)
	assert.Zero(t, got.Score)
}
