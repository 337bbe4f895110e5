package domain

// RiskEvent is a detected conflict between a planned action and forecast
// weather. At most one is active per day; the historical log may hold many.
type RiskEvent struct {
	Type   RiskEventType `json:"type"`
	Reason string        `json:"reason"`
}

// ActionRecord is one entry in the completed/skipped/delayed logs.
type ActionRecord struct {
	Action string `json:"action"`
	Day    int    `json:"day"`
	Reason string `json:"reason,omitempty"`
}
