package service

import (
	"context"

	"github.com/rushi2212/agrimitra/internal/contract"
)

type DayCycleService interface {
	RunDay(ctx context.Context, req contract.DayCycleRequest) (*contract.DayCycleResponse, error)
}

type PlanService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type StatusService interface {
	GetStatus(ctx context.Context, req contract.StatusRequest) (*contract.StatusResponse, error)
}

type OutlookService interface {
	GetOutlook(ctx context.Context, req contract.OutlookRequest) (*contract.OutlookResponse, error)
}
