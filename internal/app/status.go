package app

import (
	"time"

	"github.com/rushi2212/agrimitra/internal/domain"
)

type StatusRequest struct {
	// SessionID scopes the view to one session; empty lists all sessions.
	SessionID      string
	IncludeHistory bool
}

func NewStatusRequest(sessionID string) StatusRequest {
	return StatusRequest{
		SessionID:      sessionID,
		IncludeHistory: true,
	}
}

type SessionStatusView struct {
	SessionID       string
	Crop            string
	Location        string
	SowingDate      string
	CurrentDayIndex int
	CurrentStage    string
	TotalDays       int
	CycleComplete   bool
	WeatherRisk     domain.WeatherRisk
	LastAdvisory    string
	CompletedCount  int
	SkippedCount    int
	DelayedCount    int
	RiskEventCount  int
	Confidence      map[string]float64
	Calendar        domain.Calendar
	RiskEvents      []domain.RiskEvent
}

type StatusResponse struct {
	GeneratedAt time.Time
	Sessions    []SessionStatusView
}

type StatusErrorCode string

const (
	StatusErrUnknownSession StatusErrorCode = "UNKNOWN_SESSION"
)

type StatusError struct {
	Code    StatusErrorCode
	Message string
}

func (e *StatusError) Error() string {
	return string(e.Code) + ": " + e.Message
}
