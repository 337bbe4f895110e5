package market

import (
	"context"
	"fmt"
	"time"

	"github.com/rushi2212/agrimitra/internal/db"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/repository"
)

const (
	historyMonths = 24

	// recentFallbackMonths is used when no historical point matches the
	// harvest month.
	recentFallbackMonths = 3

	// baselineSpread widens the baseline estimate into a range when no
	// data exists at all.
	baselineSpread = 0.15
)

// PriceSource fetches fresh price points for a crop and state. Scrapers
// and API clients live behind this boundary.
type PriceSource interface {
	Fetch(ctx context.Context, crop, state string, monthsBack int) ([]domain.PricePoint, error)
}

// PriceRange bounds the predicted harvest price in INR per quintal.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Prediction is the harvest-time price outlook for one crop and state.
type Prediction struct {
	Crop         string     `json:"crop"`
	State        string     `json:"state"`
	HarvestMonth time.Month `json:"harvest_month"`
	Range        PriceRange `json:"predicted_price_range"`
	AveragePrice int        `json:"average_price"`
	Trend        Trend      `json:"trend"`
	Confidence   Confidence `json:"confidence"`
	Sources      []string   `json:"data_sources"`
	UpdatedAt    time.Time  `json:"last_updated"`
}

// Predictor forecasts harvest prices from cached mandi history, refreshing
// the cache from a PriceSource when it runs dry.
type Predictor struct {
	prices repository.PriceRepo
	source PriceSource
	uow    db.UnitOfWork
	now    func() time.Time
}

func NewPredictor(prices repository.PriceRepo, source PriceSource, uow db.UnitOfWork) *Predictor {
	return &Predictor{prices: prices, source: source, uow: uow, now: time.Now}
}

// Predict returns the price outlook for the crop's harvest month. A dry
// cache plus a dry source degrades to a baseline estimate rather than an
// error, so the advisory flow always has a number to show.
func (p *Predictor) Predict(ctx context.Context, crop, state string, harvestMonth time.Month) (*Prediction, error) {
	crop = NormalizeCrop(crop)

	history, err := p.prices.ListRecent(ctx, crop, state, historyMonths)
	if err != nil {
		return nil, fmt.Errorf("loading price history: %w", err)
	}

	if len(history) == 0 && p.source != nil {
		fetched, fetchErr := p.source.Fetch(ctx, crop, state, historyMonths)
		if fetchErr == nil && len(fetched) > 0 {
			// One transaction per refresh so a partial fetch never leaves
			// a half-written month behind.
			err = p.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
				return repository.NewSQLitePriceRepo(tx).SavePoints(ctx, fetched)
			})
			if err != nil {
				return nil, fmt.Errorf("caching fetched prices: %w", err)
			}
			history = fetched
		}
	}

	if len(history) == 0 {
		return p.baseline(crop, state, harvestMonth), nil
	}

	harvest := filterByMonth(history, harvestMonth)
	if len(harvest) == 0 {
		harvest = history
		if len(harvest) > recentFallbackMonths {
			harvest = harvest[:recentFallbackMonths]
		}
	}

	var sum, minPrice, maxPrice int
	for i, pt := range harvest {
		sum += pt.ModalPrice
		if i == 0 || pt.MinPrice < minPrice {
			minPrice = pt.MinPrice
		}
		if pt.MaxPrice > maxPrice {
			maxPrice = pt.MaxPrice
		}
	}

	trend, confidence := AnalyzeTrend(history)
	return &Prediction{
		Crop:         crop,
		State:        state,
		HarvestMonth: harvestMonth,
		Range:        PriceRange{Min: minPrice, Max: maxPrice},
		AveragePrice: sum / len(harvest),
		Trend:        trend,
		Confidence:   confidence,
		Sources:      []string{"agmarknet", "historical_pattern_analysis"},
		UpdatedAt:    p.now().UTC(),
	}, nil
}

func (p *Predictor) baseline(crop, state string, harvestMonth time.Month) *Prediction {
	base := BasePrice(crop)
	return &Prediction{
		Crop:         crop,
		State:        state,
		HarvestMonth: harvestMonth,
		Range: PriceRange{
			Min: int(float64(base) * (1 - baselineSpread)),
			Max: int(float64(base) * (1 + baselineSpread)),
		},
		AveragePrice: base,
		Trend:        TrendStable,
		Confidence:   ConfidenceLow,
		Sources:      []string{"baseline_estimate"},
		UpdatedAt:    p.now().UTC(),
	}
}

func filterByMonth(points []domain.PricePoint, month time.Month) []domain.PricePoint {
	var out []domain.PricePoint
	for _, p := range points {
		if time.Month(p.Month) == month {
			out = append(out, p)
		}
	}
	return out
}
