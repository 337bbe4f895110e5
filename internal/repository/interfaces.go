package repository

import (
	"context"
	"time"

	"github.com/rushi2212/agrimitra/internal/domain"
)

// FarmStateRepo is the session-scoped durable store for FarmState.
// Save has full-record overwrite semantics: stages read-modify-write the
// whole record, never patch individual fields.
type FarmStateRepo interface {
	// Load returns the stored state for the session, or a fresh default
	// state when no row exists or the stored record is unreadable. Corrupt
	// state is recoverable by replanning, so it never propagates as an error.
	Load(ctx context.Context, sessionID string) (*domain.FarmState, error)

	// Save upserts the full state row.
	Save(ctx context.Context, state *domain.FarmState) error

	// Delete removes a session's state.
	Delete(ctx context.Context, sessionID string) error

	// ListSessions returns all known session IDs.
	ListSessions(ctx context.Context) ([]string, error)
}

// PriceRepo is the cache of scraped mandi price points.
type PriceRepo interface {
	SavePoints(ctx context.Context, points []domain.PricePoint) error
	// ListRecent returns up to monthsBack points for crop/state, newest first.
	ListRecent(ctx context.Context, crop, state string, monthsBack int) ([]domain.PricePoint, error)
	// PruneStale deletes points fetched before the cutoff, returning the count.
	PruneStale(ctx context.Context, before time.Time) (int64, error)
}
