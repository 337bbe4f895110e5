package app

import (
	"time"

	"github.com/rushi2212/agrimitra/internal/market"
	"github.com/rushi2212/agrimitra/internal/pest"
)

type OutlookRequest struct {
	SessionID string
	// MarketState is the Indian state used for mandi price lookups.
	MarketState  string
	HarvestMonth time.Month
	Conditions   pest.Conditions
}

func NewOutlookRequest(sessionID string) OutlookRequest {
	return OutlookRequest{
		SessionID:   sessionID,
		MarketState: "Maharashtra",
		Conditions: pest.Conditions{
			TemperatureC:    27,
			HumidityPercent: 75,
		},
	}
}

// OutlookResponse pairs the harvest price forecast with today's pest and
// disease early warning. Either half may be missing when its source
// failed; Warnings records why.
type OutlookResponse struct {
	GeneratedAt time.Time
	SessionID   string
	Crop        string
	Market      *market.Prediction
	PestRisk    *pest.Assessment
	Warnings    []string
}

type OutlookErrorCode string

const (
	OutlookErrUnknownSession OutlookErrorCode = "UNKNOWN_SESSION"
	OutlookErrInternal       OutlookErrorCode = "INTERNAL_ERROR"
)

type OutlookError struct {
	Code    OutlookErrorCode
	Message string
}

func (e *OutlookError) Error() string {
	return string(e.Code) + ": " + e.Message
}
