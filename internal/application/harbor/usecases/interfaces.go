package usecases

import (
	"context"

	"harbormaster/internal/application/harbor/dto"
)

type GetDockWithShipsExecutor interface {
	ExecuteBySID(ctx context.Context, sid string) (*dto.DockWithShipsResponse, error)
}

type GetHaulerWithShipsExecutor interface {
	ExecuteBySID(ctx context.Context, sid string) (*dto.HaulerWithShipsResponse, error)
}
