package app

import "context"

type DayCycleUseCase interface {
	RunDay(ctx context.Context, req DayCycleRequest) (*DayCycleResponse, error)
}

type PlanUseCase interface {
	Plan(ctx context.Context, req PlanRequest) (*PlanResponse, error)
}

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type OutlookUseCase interface {
	GetOutlook(ctx context.Context, req OutlookRequest) (*OutlookResponse, error)
}
