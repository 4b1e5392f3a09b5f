package usecases

import (
	"context"

	"harbormaster/internal/application/ship/dto"
)

type CreateShipExecutor interface {
	Execute(ctx context.Context, req dto.CreateShipRequest) (*dto.ShipResponse, error)
}

type GetShipExecutor interface {
	ExecuteBySID(ctx context.Context, sid string) (*dto.ShipResponse, error)
}

type ListShipsExecutor interface {
	Execute(ctx context.Context, req dto.ListShipsRequest) (*dto.ListShipsResult, error)
}

type UpdateShipExecutor interface {
	ExecuteBySID(ctx context.Context, sid string, req dto.UpdateShipRequest) (*dto.ShipResponse, error)
}
