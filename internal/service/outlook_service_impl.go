package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/market"
	"github.com/rushi2212/agrimitra/internal/pest"
	"github.com/rushi2212/agrimitra/internal/repository"
)

type outlookService struct {
	states   repository.FarmStateRepo
	market   *market.Predictor
	observer UseCaseObserver
}

func NewOutlookService(
	states repository.FarmStateRepo,
	predictor *market.Predictor,
	observers ...UseCaseObserver,
) OutlookService {
	return &outlookService{
		states:   states,
		market:   predictor,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *outlookService) GetOutlook(ctx context.Context, req contract.OutlookRequest) (*contract.OutlookResponse, error) {
	start := time.Now()
	resp, err := s.getOutlook(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "outlook",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"session_id": req.SessionID},
	})
	return resp, err
}

func (s *outlookService) getOutlook(ctx context.Context, req contract.OutlookRequest) (*contract.OutlookResponse, error) {
	sessions, err := s.states.ListSessions(ctx)
	if err != nil {
		return nil, &contract.OutlookError{Code: contract.OutlookErrInternal, Message: err.Error()}
	}
	if !containsString(sessions, req.SessionID) {
		return nil, &contract.OutlookError{
			Code:    contract.OutlookErrUnknownSession,
			Message: fmt.Sprintf("no session %q", req.SessionID),
		}
	}

	state, err := s.states.Load(ctx, req.SessionID)
	if err != nil {
		return nil, &contract.OutlookError{Code: contract.OutlookErrInternal, Message: err.Error()}
	}

	resp := &contract.OutlookResponse{
		GeneratedAt: time.Now().UTC(),
		SessionID:   state.SessionID,
		Crop:        state.Crop,
	}

	harvestMonth := req.HarvestMonth
	if harvestMonth == 0 {
		harvestMonth = harvestMonthFor(state, time.Now().UTC())
	}

	// Price lookup may hit the network; the pest pass is local. Fan out
	// and fold failures into warnings so one dead source never blanks the
	// whole outlook.
	g, gctx := errgroup.WithContext(ctx)
	var marketWarning string
	g.Go(func() error {
		prediction, predErr := s.market.Predict(gctx, state.Crop, req.MarketState, harvestMonth)
		if predErr != nil {
			marketWarning = fmt.Sprintf("market prediction unavailable: %v", predErr)
			return nil
		}
		resp.Market = prediction
		return nil
	})
	g.Go(func() error {
		assessment := pest.Assess(state.Crop, state.CurrentCropStage, state.CurrentDayIndex, req.Conditions)
		resp.PestRisk = &assessment
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, &contract.OutlookError{Code: contract.OutlookErrInternal, Message: err.Error()}
	}
	if marketWarning != "" {
		resp.Warnings = append(resp.Warnings, marketWarning)
	}
	return resp, nil
}

// harvestMonthFor projects the calendar's last day onto the sowing date.
// An unparseable or missing sowing date falls back to the current month.
func harvestMonthFor(state *domain.FarmState, now time.Time) time.Month {
	sowing, err := time.Parse("2006-01-02", state.SowingDate)
	if err != nil || state.MaxCalendarDay() == 0 {
		return now.Month()
	}
	return sowing.AddDate(0, 0, state.MaxCalendarDay()).Month()
}
