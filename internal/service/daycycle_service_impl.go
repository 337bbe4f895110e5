package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/pipeline"
	"github.com/rushi2212/agrimitra/internal/repository"
)

type dayCycleService struct {
	orch     *pipeline.Orchestrator
	states   repository.FarmStateRepo
	observer UseCaseObserver
}

func NewDayCycleService(
	orch *pipeline.Orchestrator,
	states repository.FarmStateRepo,
	observers ...UseCaseObserver,
) DayCycleService {
	return &dayCycleService{
		orch:     orch,
		states:   states,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dayCycleService) RunDay(ctx context.Context, req contract.DayCycleRequest) (*contract.DayCycleResponse, error) {
	start := time.Now()
	resp, err := s.runDay(ctx, req)

	event := UseCaseEvent{
		Name:      "day_cycle",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"session_id": req.SessionID, "crop": req.Crop},
	}
	if resp != nil {
		event.Fields["day_index"] = resp.CurrentDayIndex
	}
	s.observer.ObserveUseCase(ctx, event)

	return resp, err
}

func (s *dayCycleService) runDay(ctx context.Context, req contract.DayCycleRequest) (*contract.DayCycleResponse, error) {
	days := req.Days
	if days == 0 {
		days = 1
	}
	if days < 0 {
		return nil, &contract.DayCycleError{
			Code:    contract.DayCycleErrInvalidDays,
			Message: fmt.Sprintf("days must be positive, got %d", req.Days),
		}
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	state, err := s.states.Load(ctx, sessionID)
	if err != nil {
		return nil, &contract.DayCycleError{Code: contract.DayCycleErrInternal, Message: err.Error()}
	}

	if err := applyIdentity(state, req); err != nil {
		return nil, err
	}

	advanced, err := s.orch.AdvanceDays(ctx, state, days, req.Response)
	if err != nil {
		return nil, &contract.DayCycleError{Code: contract.DayCycleErrInternal, Message: err.Error()}
	}

	return &contract.DayCycleResponse{
		GeneratedAt:     time.Now().UTC(),
		SessionID:       state.SessionID,
		Crop:            state.Crop,
		Location:        state.Location,
		DaysAdvanced:    advanced,
		CurrentDayIndex: state.CurrentDayIndex,
		CurrentStage:    state.CurrentCropStage,
		TodayActions:    state.TodayActions,
		WeatherRisk:     state.WeatherRisk,
		Advisory:        state.LastAdvisory,
		RiskEvent:       state.RiskEvent,
		CycleComplete:   state.CycleComplete(),
	}, nil
}

// applyIdentity folds the request's crop and location into the state. A
// session with no crop and no location, stored or supplied, has nothing to
// plan against; changing the crop mid-cycle discards the old calendar so
// the next run replans from day zero.
func applyIdentity(state *domain.FarmState, req contract.DayCycleRequest) error {
	crop := strings.ToLower(strings.TrimSpace(req.Crop))
	loc := strings.TrimSpace(req.Location)
	if state.Crop == "" && crop == "" && state.Location == "" && loc == "" {
		return &contract.DayCycleError{
			Code:    contract.DayCycleErrMissingIdentity,
			Message: "a crop or location is required for a new session",
		}
	}

	if crop != "" && crop != state.Crop {
		if state.Crop != "" {
			state.CropCalendar = nil
			state.CurrentDayIndex = 0
			state.CurrentCropStage = ""
		}
		state.Crop = crop
	}
	if loc != "" {
		state.Location = loc
	}
	if req.SowingDate != "" {
		state.SowingDate = req.SowingDate
	}
	return nil
}

type planService struct {
	orch     *pipeline.Orchestrator
	states   repository.FarmStateRepo
	observer UseCaseObserver
}

func NewPlanService(
	orch *pipeline.Orchestrator,
	states repository.FarmStateRepo,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		orch:     orch,
		states:   states,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	start := time.Now()
	resp, err := s.plan(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "plan",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"session_id": req.SessionID, "crop": req.Crop},
	})
	return resp, err
}

func (s *planService) plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	state, err := s.states.Load(ctx, sessionID)
	if err != nil {
		return nil, &contract.PlanError{Code: contract.PlanErrInternal, Message: err.Error()}
	}

	if crop := strings.ToLower(strings.TrimSpace(req.Crop)); crop != "" {
		state.Crop = crop
	}
	if loc := strings.TrimSpace(req.Location); loc != "" {
		state.Location = loc
	}
	if req.SowingDate != "" {
		state.SowingDate = req.SowingDate
	}
	if state.Crop == "" {
		return nil, &contract.PlanError{
			Code:    contract.PlanErrMissingIdentity,
			Message: "crop is required to build a calendar",
		}
	}

	if err := s.orch.BuildPlan(ctx, state); err != nil {
		return nil, &contract.PlanError{Code: contract.PlanErrInternal, Message: err.Error()}
	}

	return &contract.PlanResponse{
		GeneratedAt:  time.Now().UTC(),
		SessionID:    state.SessionID,
		Crop:         state.Crop,
		CurrentStage: state.CurrentCropStage,
		TotalDays:    state.MaxCalendarDay(),
		Calendar:     state.CropCalendar,
	}, nil
}
