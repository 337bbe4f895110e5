package contract

import "github.com/rushi2212/agrimitra/internal/app"

type PlanRequest = app.PlanRequest

type PlanResponse = app.PlanResponse

type PlanErrorCode = app.PlanErrorCode

const (
	PlanErrMissingIdentity PlanErrorCode = app.PlanErrMissingIdentity
	PlanErrInternal        PlanErrorCode = app.PlanErrInternal
)

type PlanError = app.PlanError
