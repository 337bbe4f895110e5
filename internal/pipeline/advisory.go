package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/llm"
)

// Farmer-facing advisory strings, in Marathi.
const (
	msgDoNotSprayRain = "आज फवारणी करू नका. पाऊस अपेक्षित आहे. उद्या परिस्थिती पाहून निर्णय घेऊ."
	msgObserveField   = "आज विशिष्ट कृती नाही. शेताचे निरीक्षण करा."
)

// AdvisoryComposer turns today's action list and any risk event into a
// short farmer-facing message. A non-empty advisory is always produced; a
// raw error is never surfaced to the farmer. When an enricher is present
// the template message is expanded through it, best effort.
type AdvisoryComposer struct {
	enricher llm.AdvisoryEnricher
}

func NewAdvisoryComposer(enricher llm.AdvisoryEnricher) *AdvisoryComposer {
	if enricher == nil {
		enricher = llm.NoopEnricher{}
	}
	return &AdvisoryComposer{enricher: enricher}
}

func (c *AdvisoryComposer) Run(ctx context.Context, s *domain.FarmState) error {
	advisory := Compose(s.TodayActions, s.RiskEvent)
	s.LastAdvisory = c.enricher.Enrich(ctx, advisory, llm.AdvisoryContext{
		Crop:         s.Crop,
		Location:     s.Location,
		Stage:        s.CurrentCropStage,
		DayIndex:     s.CurrentDayIndex,
		TodayActions: s.TodayActions,
		WeatherRisk:  string(s.WeatherRisk),
	})
	return nil
}

// Compose is the pure message function of (todayActions, riskEvent).
func Compose(todayActions []string, event *domain.RiskEvent) string {
	switch {
	case event != nil && event.Type == domain.RiskActionBlocked:
		if strings.Contains(event.Reason, "Rain") {
			return msgDoNotSprayRain
		}
		return fmt.Sprintf("आज planned कृती करू नका. कारण: %s. उद्या पुन्हा तपासा.", event.Reason)
	case len(todayActions) > 0:
		return fmt.Sprintf("आज करावयाच्या कृती: %s.", strings.Join(todayActions, ", "))
	default:
		return msgObserveField
	}
}
