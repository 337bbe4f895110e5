package contract

import "github.com/rushi2212/agrimitra/internal/app"

type OutlookRequest = app.OutlookRequest

func NewOutlookRequest(sessionID string) OutlookRequest {
	return app.NewOutlookRequest(sessionID)
}

type OutlookResponse = app.OutlookResponse

type OutlookErrorCode = app.OutlookErrorCode

const (
	OutlookErrUnknownSession OutlookErrorCode = app.OutlookErrUnknownSession
	OutlookErrInternal       OutlookErrorCode = app.OutlookErrInternal
)

type OutlookError = app.OutlookError
