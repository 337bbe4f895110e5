package domain

import "time"

// SoilContext is the resolved soil profile for the farm's location.
type SoilContext struct {
	Type   string  `json:"type"`
	PH     float64 `json:"ph"`
	Advice string  `json:"advice"`
}

// WeatherForecast is the stored forecast snapshot the observer classifies.
// RainProbability is a percentage in [0, 100].
type WeatherForecast struct {
	RainProbability float64 `json:"rain_probability"`
	Heatwave        bool    `json:"heatwave"`
	ExpectedPattern string  `json:"expectedPattern,omitempty"`
}

// WeatherRecord is one observed day in the weather history.
type WeatherRecord struct {
	Date            string  `json:"date"`
	RainProbability float64 `json:"rain_probability"`
	TemperatureC    float64 `json:"temperature_c"`
	HumidityPct     float64 `json:"humidity_percent"`
	RainfallMM      float64 `json:"rainfall_mm"`
}

// FarmState is the mutable, persisted record of one farm's planning run.
// It is owned exclusively by the pipeline for the duration of a day-cycle
// and saved after every stage that mutates it.
type FarmState struct {
	SessionID  string `json:"sessionId"`
	Crop       string `json:"crop"`
	Location   string `json:"location"`
	SowingDate string `json:"sowingDate"`

	SoilContext     SoilContext     `json:"soilContext"`
	WeatherForecast WeatherForecast `json:"weatherForecast"`
	WeatherHistory  []WeatherRecord `json:"weatherHistory"`

	CropCalendar     Calendar `json:"cropCalendar"`
	CurrentDayIndex  int      `json:"currentDayIndex"`
	CurrentCropStage string   `json:"currentCropStage"`

	CompletedActions []ActionRecord `json:"completedActions"`
	SkippedActions   []ActionRecord `json:"skippedActions"`
	DelayedActions   []ActionRecord `json:"delayedActions"`

	RiskEvents       []RiskEvent        `json:"riskEvents"`
	ConfidenceScores map[string]float64 `json:"confidenceScores"`

	// Day-cycle transients. RiskEvent is the current day's event, cleared by
	// the feedback stage; TodayActions and WeatherRisk are recomputed each day.
	TodayActions []string    `json:"todayActions,omitempty"`
	WeatherRisk  WeatherRisk `json:"weatherRisk,omitempty"`
	RiskEvent    *RiskEvent  `json:"riskEvent,omitempty"`
	LastAdvisory string      `json:"last_advisory,omitempty"`

	ExpectedWeatherPattern string `json:"expectedWeatherPattern,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewFarmState returns a fresh state for a session with all collection
// fields initialized.
func NewFarmState(sessionID string) *FarmState {
	now := time.Now().UTC()
	s := &FarmState{SessionID: sessionID, CreatedAt: now, UpdatedAt: now}
	s.Normalize()
	return s
}

// Normalize defaults nil collection fields so the pipeline never has to
// distinguish missing from empty. Called at every load boundary.
func (s *FarmState) Normalize() {
	if s.WeatherHistory == nil {
		s.WeatherHistory = []WeatherRecord{}
	}
	if s.CropCalendar == nil {
		s.CropCalendar = Calendar{}
	}
	if s.CompletedActions == nil {
		s.CompletedActions = []ActionRecord{}
	}
	if s.SkippedActions == nil {
		s.SkippedActions = []ActionRecord{}
	}
	if s.DelayedActions == nil {
		s.DelayedActions = []ActionRecord{}
	}
	if s.RiskEvents == nil {
		s.RiskEvents = []RiskEvent{}
	}
	if s.ConfidenceScores == nil {
		s.ConfidenceScores = map[string]float64{}
	}
	if s.CurrentDayIndex < 0 {
		s.CurrentDayIndex = 0
	}
	if s.WeatherRisk == "" {
		s.WeatherRisk = WeatherClear
	}
}

// MaxCalendarDay returns the last planned day, or 0 with no calendar.
func (s *FarmState) MaxCalendarDay() int {
	return s.CropCalendar.MaxDay()
}

// CycleComplete reports whether the day pointer has reached the end of the
// planned calendar. An empty calendar counts as complete.
func (s *FarmState) CycleComplete() bool {
	return s.CurrentDayIndex >= s.MaxCalendarDay()
}
