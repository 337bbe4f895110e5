package pipeline

import (
	"context"
	"strings"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/knowledge"
)

// defaultRainBlockedActions guarantees the rain rule is never silently
// empty when the knowledge base provides no blocked-action list.
var defaultRainBlockedActions = []string{
	"Fungicide spray",
	"First nitrogen application",
	"Second nitrogen if needed",
}

// RiskDetector cross-references today's actions against the weather-risk
// category. It emits at most one RiskEvent per day: the first matching
// action wins and scanning stops.
type RiskDetector struct {
	kb knowledge.Store
}

func NewRiskDetector(kb knowledge.Store) *RiskDetector {
	return &RiskDetector{kb: kb}
}

func (d *RiskDetector) Run(ctx context.Context, s *domain.FarmState) error {
	blocked := d.kb.ReplanningRules().RainBlockedActions
	if len(blocked) == 0 {
		blocked = defaultRainBlockedActions
	}

	event := detect(s.TodayActions, s.WeatherRisk, blocked)
	s.RiskEvent = event
	if event != nil {
		s.RiskEvents = append(s.RiskEvents, *event)
	}
	return nil
}

func detect(todayActions []string, risk domain.WeatherRisk, rainBlocked []string) *domain.RiskEvent {
	for _, action := range todayActions {
		if risk == domain.WeatherRainExpected && containsAny(action, rainBlocked) {
			return &domain.RiskEvent{Type: domain.RiskActionBlocked, Reason: "Rain"}
		}
		if risk == domain.WeatherHeatwave {
			return &domain.RiskEvent{Type: domain.RiskHeatStress, Reason: "Heatwave"}
		}
	}
	return nil
}

// containsAny matches by substring, not exact name, so "Fungicide spray
// round 2" still counts as a blocked spray.
func containsAny(action string, blocked []string) bool {
	for _, b := range blocked {
		if b != "" && strings.Contains(action, b) {
			return true
		}
	}
	return false
}
