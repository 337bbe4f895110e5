package market

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/rushi2212/agrimitra/internal/domain"
)

// SyntheticSource generates plausible monthly price points from the crop's
// baseline and seasonal pattern. It stands in when no live scraper is
// configured, and keeps offline runs working end to end. Seeded per month
// so repeated fetches produce identical histories.
type SyntheticSource struct {
	Now func() time.Time
}

func (s SyntheticSource) Fetch(ctx context.Context, crop, state string, monthsBack int) ([]domain.PricePoint, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	base := float64(BasePrice(crop))
	cursor := now().UTC()
	points := make([]domain.PricePoint, 0, monthsBack)
	for i := 0; i < monthsBack; i++ {
		month := cursor.AddDate(0, -i, 0)
		rng := rand.New(rand.NewSource(month.Truncate(24 * time.Hour).Unix()))
		variation := 0.85 + rng.Float64()*0.30

		modal := int(base * SeasonalFactor(int(month.Month()), crop) * variation)
		points = append(points, domain.PricePoint{
			ID:         uuid.New().String(),
			Crop:       NormalizeCrop(crop),
			State:      state,
			Month:      int(month.Month()),
			Year:       month.Year(),
			MinPrice:   modal * 9 / 10,
			MaxPrice:   modal * 11 / 10,
			ModalPrice: modal,
			Source:     "synthetic",
			FetchedAt:  now().UTC(),
		})
	}
	return points, nil
}
