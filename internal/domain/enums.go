package domain

type WeatherRisk string

const (
	WeatherClear        WeatherRisk = "CLEAR"
	WeatherRainExpected WeatherRisk = "RAIN_EXPECTED"
	WeatherHeatwave     WeatherRisk = "HEATWAVE"
)

type RiskEventType string

const (
	RiskActionBlocked RiskEventType = "ACTION_BLOCKED"
	RiskHeatStress    RiskEventType = "HEAT_STRESS"
)

// FarmerResponse is the optional outcome signal supplied with a day-cycle
// invocation. Any value other than the two known ones means "delayed/unknown".
type FarmerResponse string

const (
	ResponseCompleted   FarmerResponse = "completed"
	ResponseDidNotSpray FarmerResponse = "did_not_spray"
)

// Confidence score categories nudged by farmer compliance patterns.
const (
	ConfidenceSpraySkip  = "spray_skip"
	ConfidenceCompletion = "completion"
)

// ConfidenceStep is the fixed increment applied to a confidence counter
// when the matching outcome is recorded.
const ConfidenceStep = 0.1
