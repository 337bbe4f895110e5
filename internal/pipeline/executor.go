package pipeline

import (
	"context"

	"github.com/rushi2212/agrimitra/internal/domain"
)

// DailyExecutor is a read-only projection of the calendar at the current
// day pointer: it fills in today's action list and stage name. Every entry
// at the pointer contributes its actions, so a rescheduled entry sharing a
// day with an original one drops nothing. When no entry matches the pointer
// exactly, the latest stage that has started supplies the stage name and
// the action list stays empty.
type DailyExecutor struct{}

func NewDailyExecutor() *DailyExecutor {
	return &DailyExecutor{}
}

func (e *DailyExecutor) Run(ctx context.Context, s *domain.FarmState) error {
	s.TodayActions = nil

	if entries := s.CropCalendar.EntriesAt(s.CurrentDayIndex); len(entries) > 0 {
		for _, entry := range entries {
			s.TodayActions = append(s.TodayActions, entry.Actions...)
		}
		s.CurrentCropStage = entries[len(entries)-1].Stage
		return nil
	}
	if entry, ok := s.CropCalendar.LatestStarted(s.CurrentDayIndex); ok {
		s.CurrentCropStage = entry.Stage
	}
	return nil
}
