package app

import (
	"time"

	"github.com/rushi2212/agrimitra/internal/domain"
)

type DayCycleRequest struct {
	SessionID string
	Crop      string
	Location  string
	// SowingDate is ISO-8601 (YYYY-MM-DD), recorded verbatim.
	SowingDate string
	// Response is the farmer's outcome signal for today's actions.
	Response domain.FarmerResponse
	// Days advances the cycle by up to this many days in one call.
	Days int
}

func NewDayCycleRequest(sessionID string) DayCycleRequest {
	return DayCycleRequest{
		SessionID: sessionID,
		Days:      1,
	}
}

type DayCycleResponse struct {
	GeneratedAt     time.Time
	SessionID       string
	Crop            string
	Location        string
	DaysAdvanced    int
	CurrentDayIndex int
	CurrentStage    string
	TodayActions    []string
	WeatherRisk     domain.WeatherRisk
	Advisory        string
	RiskEvent       *domain.RiskEvent
	CycleComplete   bool
}

type DayCycleErrorCode string

const (
	DayCycleErrMissingIdentity DayCycleErrorCode = "MISSING_IDENTITY"
	DayCycleErrInvalidDays     DayCycleErrorCode = "INVALID_DAYS"
	DayCycleErrInternal        DayCycleErrorCode = "INTERNAL_ERROR"
)

type DayCycleError struct {
	Code    DayCycleErrorCode
	Message string
}

func (e *DayCycleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
