package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/repository"
)

type statusService struct {
	states   repository.FarmStateRepo
	observer UseCaseObserver
}

func NewStatusService(states repository.FarmStateRepo, observers ...UseCaseObserver) StatusService {
	return &statusService{
		states:   states,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statusService) GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	start := time.Now()
	resp, err := s.getStatus(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "status",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"session_id": req.SessionID},
	})
	return resp, err
}

func (s *statusService) getStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error) {
	sessions, err := s.states.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	scope := sessions
	if req.SessionID != "" {
		if !containsString(sessions, req.SessionID) {
			return nil, &contract.StatusError{
				Code:    contract.StatusErrUnknownSession,
				Message: fmt.Sprintf("no session %q", req.SessionID),
			}
		}
		scope = []string{req.SessionID}
	}

	views := make([]contract.SessionStatusView, 0, len(scope))
	for _, id := range scope {
		state, err := s.states.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading session %s: %w", id, err)
		}
		views = append(views, buildSessionView(state, req.IncludeHistory))
	}

	return &contract.StatusResponse{
		GeneratedAt: time.Now().UTC(),
		Sessions:    views,
	}, nil
}

func buildSessionView(state *domain.FarmState, includeHistory bool) contract.SessionStatusView {
	view := contract.SessionStatusView{
		SessionID:       state.SessionID,
		Crop:            state.Crop,
		Location:        state.Location,
		SowingDate:      state.SowingDate,
		CurrentDayIndex: state.CurrentDayIndex,
		CurrentStage:    state.CurrentCropStage,
		TotalDays:       state.MaxCalendarDay(),
		CycleComplete:   state.CycleComplete(),
		WeatherRisk:     state.WeatherRisk,
		LastAdvisory:    state.LastAdvisory,
		CompletedCount:  len(state.CompletedActions),
		SkippedCount:    len(state.SkippedActions),
		DelayedCount:    len(state.DelayedActions),
		RiskEventCount:  len(state.RiskEvents),
		Confidence:      state.ConfidenceScores,
	}
	if includeHistory {
		view.Calendar = state.CropCalendar
		view.RiskEvents = state.RiskEvents
	}
	return view
}

func containsString(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
