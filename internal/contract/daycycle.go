package contract

import "github.com/rushi2212/agrimitra/internal/app"

type DayCycleRequest = app.DayCycleRequest

func NewDayCycleRequest(sessionID string) DayCycleRequest {
	return app.NewDayCycleRequest(sessionID)
}

type DayCycleResponse = app.DayCycleResponse

type DayCycleErrorCode = app.DayCycleErrorCode

const (
	DayCycleErrMissingIdentity DayCycleErrorCode = app.DayCycleErrMissingIdentity
	DayCycleErrInvalidDays     DayCycleErrorCode = app.DayCycleErrInvalidDays
	DayCycleErrInternal        DayCycleErrorCode = app.DayCycleErrInternal
)

type DayCycleError = app.DayCycleError
