package llm

import (
	"context"
	"fmt"
	"strings"
)

// AdvisoryContext carries the day-cycle facts the enricher may draw on.
type AdvisoryContext struct {
	Crop         string
	Location     string
	Stage        string
	DayIndex     int
	TodayActions []string
	WeatherRisk  string
}

// AdvisoryEnricher optionally expands a template advisory into richer
// farmer-facing guidance. Enrichment is best effort: on any failure the
// original advisory is returned unchanged.
type AdvisoryEnricher interface {
	Enrich(ctx context.Context, advisory string, actx AdvisoryContext) string
}

// NoopEnricher returns the advisory as-is. Used whenever the LLM
// subsystem is disabled.
type NoopEnricher struct{}

func (NoopEnricher) Enrich(_ context.Context, advisory string, _ AdvisoryContext) string {
	return advisory
}

type llmEnricher struct {
	client LLMClient
}

// NewEnricher returns an enricher backed by the client, or a NoopEnricher
// when the config has the subsystem disabled.
func NewEnricher(cfg LLMConfig, client LLMClient) AdvisoryEnricher {
	if !cfg.Enabled || client == nil {
		return NoopEnricher{}
	}
	return &llmEnricher{client: client}
}

const advisorySystemPrompt = `You are an agricultural advisor for smallholder farmers in Maharashtra, India.
Expand the given advisory into two or three short sentences of practical guidance.
Answer in Marathi. Keep the original advisory's meaning exactly; add only practical detail.`

func (e *llmEnricher) Enrich(ctx context.Context, advisory string, actx AdvisoryContext) string {
	prompt := fmt.Sprintf(
		"Crop: %s\nLocation: %s\nStage: %s (day %d)\nWeather risk: %s\nToday's actions: %s\nAdvisory: %s",
		actx.Crop, actx.Location, actx.Stage, actx.DayIndex,
		actx.WeatherRisk, strings.Join(actx.TodayActions, ", "), advisory,
	)

	resp, err := e.client.Generate(ctx, GenerateRequest{
		Task:         TaskAdvisory,
		SystemPrompt: advisorySystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil || strings.TrimSpace(resp.Text) == "" {
		return advisory
	}
	return strings.TrimSpace(resp.Text)
}
