package pipeline

import (
	"context"

	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/rushi2212/agrimitra/internal/knowledge"
)

// CalendarPlanner builds the entire calendar from sowing to harvest out of
// the crop's lifecycle stage model. Planning is a full overwrite: any prior
// calendar is discarded and the day pointer resets to zero. A crop with no
// stage model degrades to an empty calendar, which downstream stages must
// treat as "no plan available" rather than an error.
type CalendarPlanner struct {
	kb knowledge.Store
}

func NewCalendarPlanner(kb knowledge.Store) *CalendarPlanner {
	return &CalendarPlanner{kb: kb}
}

func (p *CalendarPlanner) Run(ctx context.Context, s *domain.FarmState) error {
	lifecycle := p.kb.CropLifecycle(s.Crop)
	if len(lifecycle) == 0 {
		s.CropCalendar = domain.Calendar{}
		s.CurrentDayIndex = 0
		s.CurrentCropStage = ""
		return nil
	}

	calendar := make(domain.Calendar, 0, len(lifecycle))
	for _, block := range lifecycle {
		calendar = append(calendar, domain.CalendarEntry{
			Day:                block.DayStart,
			Stage:              block.Stage,
			Actions:            append([]string(nil), block.Actions...),
			Dependencies:       append([]string(nil), block.Dependencies...),
			WeatherConstraints: append([]string(nil), block.WeatherConstraints...),
		})
	}
	calendar.SortByDay()

	// Calendar and pointer are replaced together; the write-through save
	// after this stage persists them as one record.
	s.CropCalendar = calendar
	s.CurrentDayIndex = 0
	s.CurrentCropStage = lifecycle[0].Stage
	return nil
}
