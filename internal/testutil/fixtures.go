package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/rushi2212/agrimitra/internal/domain"
)

// FarmStateOption mutates a fixture state.
type FarmStateOption func(*domain.FarmState)

func WithCrop(crop string) FarmStateOption {
	return func(s *domain.FarmState) { s.Crop = crop }
}

func WithLocation(location string) FarmStateOption {
	return func(s *domain.FarmState) { s.Location = location }
}

func WithDayIndex(day int) FarmStateOption {
	return func(s *domain.FarmState) { s.CurrentDayIndex = day }
}

func WithCalendar(c domain.Calendar) FarmStateOption {
	return func(s *domain.FarmState) { s.CropCalendar = c }
}

func WithForecast(f domain.WeatherForecast) FarmStateOption {
	return func(s *domain.FarmState) { s.WeatherForecast = f }
}

func WithRiskEvent(ev domain.RiskEvent) FarmStateOption {
	return func(s *domain.FarmState) { s.RiskEvent = &ev }
}

// NewFarmState builds a rice/Kolhapur fixture with a random session id.
func NewFarmState(opts ...FarmStateOption) *domain.FarmState {
	s := domain.NewFarmState(uuid.New().String())
	s.Crop = "rice"
	s.Location = "Kolhapur"
	s.SowingDate = "2026-06-15"
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RiceCalendar is the three-stage calendar used across pipeline tests.
func RiceCalendar() domain.Calendar {
	return domain.Calendar{
		{Day: 1, Stage: "Sowing", Actions: []string{"Seed soaking", "Field puddling"}},
		{Day: 6, Stage: "Vegetative", Actions: []string{"First nitrogen application", "Fungicide spray"}},
		{Day: 61, Stage: "Harvest", Actions: []string{"Drain field"}},
	}
}

// PricePoints builds monthsBack descending monthly points ending at the
// given year/month, with modal prices from the values slice (newest first).
func PricePoints(crop, state string, year, month int, values []int) []domain.PricePoint {
	points := make([]domain.PricePoint, 0, len(values))
	y, m := year, month
	for _, v := range values {
		points = append(points, domain.PricePoint{
			ID:         uuid.New().String(),
			Crop:       crop,
			State:      state,
			Month:      m,
			Year:       y,
			MinPrice:   v - 200,
			MaxPrice:   v + 200,
			ModalPrice: v,
			Source:     "test",
			FetchedAt:  time.Now().UTC(),
		})
		m--
		if m == 0 {
			m = 12
			y--
		}
	}
	return points
}
