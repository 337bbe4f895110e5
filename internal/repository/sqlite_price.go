package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rushi2212/agrimitra/internal/db"
	"github.com/rushi2212/agrimitra/internal/domain"
)

// SQLitePriceRepo implements PriceRepo over the market_prices table.
type SQLitePriceRepo struct {
	db db.DBTX
}

func NewSQLitePriceRepo(dbtx db.DBTX) *SQLitePriceRepo {
	return &SQLitePriceRepo{db: dbtx}
}

func (r *SQLitePriceRepo) SavePoints(ctx context.Context, points []domain.PricePoint) error {
	query := `INSERT INTO market_prices (id, crop, state, month, year, min_price, max_price, modal_price, source, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, p := range points {
		id := p.ID
		if id == "" {
			id = uuid.New().String()
		}
		fetchedAt := p.FetchedAt
		if fetchedAt.IsZero() {
			fetchedAt = time.Now().UTC()
		}
		if _, err := r.db.ExecContext(ctx, query,
			id, p.Crop, p.State, p.Month, p.Year,
			p.MinPrice, p.MaxPrice, p.ModalPrice, p.Source,
			fetchedAt.Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("inserting price point %s/%s %d-%02d: %w", p.Crop, p.State, p.Year, p.Month, err)
		}
	}
	return nil
}

func (r *SQLitePriceRepo) ListRecent(ctx context.Context, crop, state string, monthsBack int) ([]domain.PricePoint, error) {
	query := `SELECT id, crop, state, month, year, min_price, max_price, modal_price, source, fetched_at
		FROM market_prices
		WHERE crop = ? AND state = ?
		ORDER BY year DESC, month DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, crop, state, monthsBack)
	if err != nil {
		return nil, fmt.Errorf("listing price points: %w", err)
	}
	defer rows.Close()

	var points []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		var fetchedAt string
		if err := rows.Scan(&p.ID, &p.Crop, &p.State, &p.Month, &p.Year,
			&p.MinPrice, &p.MaxPrice, &p.ModalPrice, &p.Source, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning price point: %w", err)
		}
		p.FetchedAt = parseTime(fetchedAt)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price points: %w", err)
	}
	return points, nil
}

func (r *SQLitePriceRepo) PruneStale(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM market_prices WHERE fetched_at < ?`, before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("pruning stale prices: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned prices: %w", err)
	}
	return n, nil
}
