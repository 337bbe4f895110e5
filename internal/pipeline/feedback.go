package pipeline

import (
	"github.com/rushi2212/agrimitra/internal/domain"
)

// FeedbackRecorder commits the day's outcome and advances the day pointer.
// This is the sole place in the system where the pointer increments, and
// the transient risk event is always cleared here.
type FeedbackRecorder struct{}

func NewFeedbackRecorder() *FeedbackRecorder {
	return &FeedbackRecorder{}
}

// Record classifies today's actions into the skipped/completed/delayed logs
// based on the farmer's response and any active block, then advances the
// day by exactly one.
func (f *FeedbackRecorder) Record(s *domain.FarmState, response domain.FarmerResponse) {
	day := s.CurrentDayIndex
	blocked := s.RiskEvent != nil && s.RiskEvent.Type == domain.RiskActionBlocked

	switch {
	case response == domain.ResponseDidNotSpray || blocked:
		for _, a := range s.TodayActions {
			s.SkippedActions = append(s.SkippedActions, domain.ActionRecord{Action: a, Day: day, Reason: "blocked"})
		}
		s.ConfidenceScores[domain.ConfidenceSpraySkip] += domain.ConfidenceStep
	case response == domain.ResponseCompleted:
		for _, a := range s.TodayActions {
			s.CompletedActions = append(s.CompletedActions, domain.ActionRecord{Action: a, Day: day})
		}
		s.ConfidenceScores[domain.ConfidenceCompletion] += domain.ConfidenceStep
	default:
		for _, a := range s.TodayActions {
			s.DelayedActions = append(s.DelayedActions, domain.ActionRecord{Action: a, Day: day})
		}
	}

	s.CurrentDayIndex = day + 1
	s.RiskEvent = nil
}
