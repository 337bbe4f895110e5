package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type scriptedClient struct {
	text string
	err  error
}

func (c *scriptedClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &GenerateResponse{Text: c.text, Model: "test"}, nil
}

func (c *scriptedClient) Available(ctx context.Context) bool { return true }

func TestNewEnricher_DisabledConfigYieldsNoop(t *testing.T) {
	cfg := DefaultConfig()

	enricher := NewEnricher(cfg, &scriptedClient{text: "ignored"})

	got := enricher.Enrich(context.Background(), "original", AdvisoryContext{})
	assert.Equal(t, "original", got)
}

func TestEnrich_ReturnsModelText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	enricher := NewEnricher(cfg, &scriptedClient{text: "  richer advisory  "})

	got := enricher.Enrich(context.Background(), "original", AdvisoryContext{Crop: "rice"})
	assert.Equal(t, "richer advisory", got)
}

func TestEnrich_FallsBackOnError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	enricher := NewEnricher(cfg, &scriptedClient{err: errors.New("down")})

	got := enricher.Enrich(context.Background(), "original", AdvisoryContext{})
	assert.Equal(t, "original", got)
}

func TestEnrich_FallsBackOnEmptyText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = true

	enricher := NewEnricher(cfg, &scriptedClient{text: "   "})

	got := enricher.Enrich(context.Background(), "original", AdvisoryContext{})
	assert.Equal(t, "original", got)
}
