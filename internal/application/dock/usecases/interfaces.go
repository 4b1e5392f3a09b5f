package usecases

import (
	"context"

	"harbormaster/internal/application/dock/dto"
)

// Executor interfaces let the HTTP handlers depend on behavior instead of
// concrete use cases, so tests can substitute stubs.

type CreateDockExecutor interface {
	Execute(ctx context.Context, req dto.CreateDockRequest) (*dto.DockResponse, error)
}

type GetDockExecutor interface {
	ExecuteBySID(ctx context.Context, sid string) (*dto.DockResponse, error)
}

type ListDocksExecutor interface {
	Execute(ctx context.Context, req dto.ListDocksRequest) (*dto.ListDocksResult, error)
}

type UpdateDockExecutor interface {
	ExecuteBySID(ctx context.Context, sid string, req dto.UpdateDockRequest) (*dto.DockResponse, error)
}

type UpdateDockStatusExecutor interface {
	ActivateBySID(ctx context.Context, sid string) (*dto.DockResponse, error)
	DeactivateBySID(ctx context.Context, sid string) (*dto.DockResponse, error)
}
