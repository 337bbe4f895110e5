package pipeline

import (
	"context"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/knowledge"
)

const (
	// rescheduleOffsetDays is the preferred gap before retrying a blocked
	// action, clamped to the knowledge base's delay tolerance.
	rescheduleOffsetDays = 2

	defaultDelayToleranceDays = 3

	monitoringStage       = "Monitoring"
	defaultFallbackAction = "Field scouting"
)

// ReplanTrigger decides which risk events rewrite the calendar.
type ReplanTrigger func(domain.RiskEvent) bool

// RainBlockTrigger is the default: only rain-blocked actions are
// rescheduled. Heat stress is detected but passes through unrewritten.
func RainBlockTrigger(ev domain.RiskEvent) bool {
	return ev.Type == domain.RiskActionBlocked && ev.Reason == "Rain"
}

// CalendarReplanner rewrites the remaining calendar after a risk event.
// Already-elapsed days are never touched. Blocked actions move to a
// bounded reschedule day as a new entry marked "(rescheduled)"; the
// vacated day keeps its unblocked actions or becomes a monitoring day so
// no day is ever left without purpose.
type CalendarReplanner struct {
	kb      knowledge.Store
	trigger ReplanTrigger
}

func NewCalendarReplanner(kb knowledge.Store, trigger ReplanTrigger) *CalendarReplanner {
	if trigger == nil {
		trigger = RainBlockTrigger
	}
	return &CalendarReplanner{kb: kb, trigger: trigger}
}

func (r *CalendarReplanner) Run(ctx context.Context, s *domain.FarmState) error {
	if s.RiskEvent == nil || !r.trigger(*s.RiskEvent) {
		return nil
	}

	rules := r.kb.ReplanningRules()
	tolerance := rules.SprayDelayToleranceDays
	if tolerance <= 0 {
		tolerance = defaultDelayToleranceDays
	}

	currentDay := s.CurrentDayIndex
	rescheduleDay := currentDay + rescheduleOffsetDays
	if rescheduleDay > currentDay+tolerance {
		rescheduleDay = currentDay + tolerance
	}

	past, remaining := s.CropCalendar.SplitAt(currentDay)
	blockedToday := map[string]bool{}
	for _, a := range s.TodayActions {
		blockedToday[a] = true
	}

	var updated domain.Calendar
	for _, entry := range remaining {
		if entry.Day != currentDay {
			updated = append(updated, entry)
			continue
		}

		var moved, kept []string
		for _, a := range entry.Actions {
			if blockedToday[a] {
				moved = append(moved, a+domain.RescheduledSuffix)
			} else {
				kept = append(kept, a)
			}
		}

		if len(moved) > 0 {
			// Added as a separate entry even when the reschedule day
			// already has one; day-key duplication is accepted only for
			// this rescheduled insertion.
			updated = append(updated, domain.CalendarEntry{
				Day:                rescheduleDay,
				Stage:              entry.Stage,
				Actions:            moved,
				Dependencies:       entry.Dependencies,
				WeatherConstraints: entry.WeatherConstraints,
			})
		}

		today := domain.CalendarEntry{Day: currentDay, Stage: entry.Stage, Actions: kept}
		if len(kept) == 0 {
			today.Stage = monitoringStage
			today.Actions = []string{r.fallbackAction(entry.Actions, rules)}
		}
		updated = append(updated, today)
	}

	updated.SortByDay()
	s.CropCalendar = append(past, updated...)
	return nil
}

// fallbackAction picks the knowledge base's alternative for the first
// blocked action when one is defined, else the default scouting action.
func (r *CalendarReplanner) fallbackAction(blocked []string, rules knowledge.ReplanningRules) string {
	for _, a := range blocked {
		if alt, ok := rules.AlternativeActions[a]; ok && alt != "" {
			return alt
		}
	}
	return defaultFallbackAction
}
