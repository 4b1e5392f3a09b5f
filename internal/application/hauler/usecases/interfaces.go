package usecases

import (
	"context"

	"harbormaster/internal/application/hauler/dto"
)

type CreateHaulerExecutor interface {
	Execute(ctx context.Context, req dto.CreateHaulerRequest) (*dto.HaulerResponse, error)
}

type GetHaulerExecutor interface {
	ExecuteBySID(ctx context.Context, sid string) (*dto.HaulerResponse, error)
}

type ListHaulersExecutor interface {
	Execute(ctx context.Context, req dto.ListHaulersRequest) (*dto.ListHaulersResult, error)
}

type UpdateHaulerExecutor interface {
	ExecuteBySID(ctx context.Context, sid string, req dto.UpdateHaulerRequest) (*dto.HaulerResponse, error)
}
