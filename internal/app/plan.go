package app

import (
	"time"

	"github.com/rushi2212/agrimitra/internal/domain"
)

// PlanRequest forces a fresh calendar for the session, discarding any
// existing plan and resetting the day pointer.
type PlanRequest struct {
	SessionID  string
	Crop       string
	Location   string
	SowingDate string
}

type PlanResponse struct {
	GeneratedAt  time.Time
	SessionID    string
	Crop         string
	CurrentStage string
	TotalDays    int
	Calendar     domain.Calendar
}

type PlanErrorCode string

const (
	PlanErrMissingIdentity PlanErrorCode = "MISSING_IDENTITY"
	PlanErrInternal        PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
