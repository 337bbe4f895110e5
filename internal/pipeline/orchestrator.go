package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rushi2212/agrimitra/internal/db"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/knowledge"
	"github.com/rushi2212/agrimitra/internal/llm"
	"github.com/rushi2212/agrimitra/internal/repository"
)

// Stage names the states of the day-cycle machine.
type Stage string

const (
	StageIntent   Stage = "intent"
	StageContext  Stage = "context"
	StagePlan     Stage = "plan"
	StageExecute  Stage = "execute"
	StageObserve  Stage = "observe"
	StageDetect   Stage = "detect"
	StageReplan   Stage = "replan"
	StageAdvise   Stage = "advise"
	StageFeedback Stage = "feedback"
	StageDone     Stage = "done"
)

// transitions is the legal edge set of the machine: one conditional fork
// after detection (replan iff a risk event is active), one conditional
// fast-path from context straight to execution when a calendar already
// exists, and a single day per iteration ending after feedback.
var transitions = map[Stage][]Stage{
	StageIntent:   {StageContext},
	StageContext:  {StagePlan, StageExecute},
	StagePlan:     {StageExecute},
	StageExecute:  {StageObserve},
	StageObserve:  {StageDetect},
	StageDetect:   {StageReplan, StageAdvise},
	StageReplan:   {StageAdvise},
	StageAdvise:   {StageFeedback},
	StageFeedback: {StageDone},
}

// IsValidTransition checks whether from -> to is a legal edge.
func IsValidTransition(from, to Stage) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// Orchestrator wires the nine stages into the directed day-cycle graph,
// persisting the state after every mutating stage so partial progress
// survives a crash mid-pipeline.
type Orchestrator struct {
	intent    *IntentValidator
	context   *ContextBuilder
	planner   *CalendarPlanner
	executor  *DailyExecutor
	observer  *WeatherObserver
	detector  *RiskDetector
	replanner *CalendarReplanner
	advisor   *AdvisoryComposer
	feedback  *FeedbackRecorder

	states repository.FarmStateRepo
	uow    db.UnitOfWork
	log    *slog.Logger
}

// Config carries the orchestrator's injectable collaborators. Weather,
// Trigger, Enricher and Logger are optional.
type Config struct {
	Knowledge knowledge.Store
	States    repository.FarmStateRepo
	UoW       db.UnitOfWork
	Weather   WeatherProvider
	Trigger   ReplanTrigger
	Enricher  llm.AdvisoryEnricher
	Logger    *slog.Logger
}

func NewOrchestrator(cfg Config) *Orchestrator {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{
		intent:    NewIntentValidator(cfg.Knowledge),
		context:   NewContextBuilder(cfg.Knowledge, cfg.Weather),
		planner:   NewCalendarPlanner(cfg.Knowledge),
		executor:  NewDailyExecutor(),
		observer:  NewWeatherObserver(),
		detector:  NewRiskDetector(cfg.Knowledge),
		replanner: NewCalendarReplanner(cfg.Knowledge, cfg.Trigger),
		advisor:   NewAdvisoryComposer(cfg.Enricher),
		feedback:  NewFeedbackRecorder(),
		states:    cfg.States,
		uow:       cfg.UoW,
		log:       logger,
	}
}

// Next resolves the successor stage for the current state. Pure function
// of (stage, state) so every edge is unit-testable in isolation.
func (o *Orchestrator) Next(stage Stage, s *domain.FarmState) Stage {
	switch stage {
	case StageIntent:
		return StageContext
	case StageContext:
		// An existing calendar is never re-overwritten by a routine
		// day-cycle; replanting goes through a fresh or cleared state.
		if len(s.CropCalendar) == 0 {
			return StagePlan
		}
		return StageExecute
	case StagePlan:
		return StageExecute
	case StageExecute:
		return StageObserve
	case StageObserve:
		return StageDetect
	case StageDetect:
		if s.RiskEvent != nil {
			return StageReplan
		}
		return StageAdvise
	case StageReplan:
		return StageAdvise
	case StageAdvise:
		return StageFeedback
	default:
		return StageDone
	}
}

// RunDay advances the state machine through one full simulated day,
// starting at intent validation.
func (o *Orchestrator) RunDay(ctx context.Context, s *domain.FarmState, response domain.FarmerResponse) error {
	return o.runFrom(ctx, StageIntent, s, response)
}

// AdvanceDays repeats the Execute..Feedback subsequence for up to n days,
// preserving single-day-per-iteration semantics. It stops early at cycle
// end. The farmer response applies to the first day only. Returns the
// number of days actually advanced.
func (o *Orchestrator) AdvanceDays(ctx context.Context, s *domain.FarmState, n int, response domain.FarmerResponse) (int, error) {
	advanced := 0
	for i := 0; i < n; i++ {
		start := StageExecute
		if i == 0 {
			start = StageIntent
		}
		if err := o.runFrom(ctx, start, s, response); err != nil {
			return advanced, err
		}
		advanced++
		response = ""
		if s.CycleComplete() {
			break
		}
	}
	return advanced, nil
}

// BuildPlan runs only the planning prefix of the machine, forcing a full
// calendar rebuild even when one already exists. The day does not advance.
func (o *Orchestrator) BuildPlan(ctx context.Context, s *domain.FarmState) error {
	for _, stage := range []Stage{StageIntent, StageContext, StagePlan} {
		if err := o.runStage(ctx, stage, s, ""); err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
	}
	return nil
}

func (o *Orchestrator) runFrom(ctx context.Context, start Stage, s *domain.FarmState, response domain.FarmerResponse) error {
	stage := start
	for stage != StageDone {
		if err := o.runStage(ctx, stage, s, response); err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
		next := o.Next(stage, s)
		if next != StageDone && !IsValidTransition(stage, next) {
			return fmt.Errorf("illegal transition %s -> %s", stage, next)
		}
		stage = next
	}
	return nil
}

func (o *Orchestrator) runStage(ctx context.Context, stage Stage, s *domain.FarmState, response domain.FarmerResponse) error {
	switch stage {
	case StageIntent:
		if !o.intent.Validate(s) {
			// Advisory only: catalog gaps never block a farmer.
			o.log.Info("intent not in catalog", "crop", s.Crop, "location", s.Location)
		}
		return nil
	case StageContext:
		if err := o.context.Run(ctx, s); err != nil {
			return err
		}
	case StagePlan:
		if err := o.planner.Run(ctx, s); err != nil {
			return err
		}
	case StageExecute:
		if err := o.executor.Run(ctx, s); err != nil {
			return err
		}
	case StageObserve:
		if err := o.observer.Run(ctx, s); err != nil {
			return err
		}
	case StageDetect:
		if err := o.detector.Run(ctx, s); err != nil {
			return err
		}
	case StageReplan:
		if err := o.replanner.Run(ctx, s); err != nil {
			return err
		}
	case StageAdvise:
		if err := o.advisor.Run(ctx, s); err != nil {
			return err
		}
	case StageFeedback:
		// Commit point of the day-cycle: logs, counters, pointer and the
		// cleared event land in one transaction.
		return o.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			o.feedback.Record(s, response)
			return repository.NewSQLiteFarmStateRepo(tx).Save(ctx, s)
		})
	default:
		return fmt.Errorf("unknown stage %q", stage)
	}

	// Write-through: durable after every mutating stage.
	return o.states.Save(ctx, s)
}
