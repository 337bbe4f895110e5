package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/llm"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		actions []string
		event   *domain.RiskEvent
		want    string
	}{
		{
			name:    "rain block overrides actions",
			actions: []string{"Fungicide spray"},
			event:   &domain.RiskEvent{Type: domain.RiskActionBlocked, Reason: "Rain"},
			want:    msgDoNotSprayRain,
		},
		{
			name:    "plain day lists actions",
			actions: []string{"Weeding", "Water level check"},
			want:    "आज करावयाच्या कृती: Weeding, Water level check.",
		},
		{
			name: "no actions means observe",
			want: msgObserveField,
		},
		{
			name:    "heat stress does not suppress actions",
			actions: []string{"Weeding"},
			event:   &domain.RiskEvent{Type: domain.RiskHeatStress, Reason: "Heatwave"},
			want:    "आज करावयाच्या कृती: Weeding.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.actions, tt.event))
		})
	}
}

type suffixEnricher struct{ suffix string }

func (e suffixEnricher) Enrich(_ context.Context, advisory string, _ llm.AdvisoryContext) string {
	return advisory + e.suffix
}

func TestAdvisoryComposer_Run_EnrichesAdvisory(t *testing.T) {
	s := domain.NewFarmState("s1")
	s.TodayActions = []string{"Weeding"}

	composer := NewAdvisoryComposer(suffixEnricher{suffix: " अधिक माहिती."})
	require.NoError(t, composer.Run(context.Background(), s))

	assert.Equal(t, "आज करावयाच्या कृती: Weeding. अधिक माहिती.", s.LastAdvisory)
}

func TestAdvisoryComposer_Run_NilEnricherKeepsTemplate(t *testing.T) {
	s := domain.NewFarmState("s1")

	composer := NewAdvisoryComposer(nil)
	require.NoError(t, composer.Run(context.Background(), s))

	assert.Equal(t, msgObserveField, s.LastAdvisory)
}
