package contract

import "github.com/rushi2212/agrimitra/internal/app"

type StatusRequest = app.StatusRequest

func NewStatusRequest(sessionID string) StatusRequest {
	return app.NewStatusRequest(sessionID)
}

type SessionStatusView = app.SessionStatusView

type StatusResponse = app.StatusResponse

type StatusErrorCode = app.StatusErrorCode

const (
	StatusErrUnknownSession StatusErrorCode = app.StatusErrUnknownSession
)

type StatusError = app.StatusError
