package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/shared/logger"
)

// UpdateDockStatusUseCase opens and closes docks to new assignments.
// Deactivating a dock does not displace ships already berthed there.
type UpdateDockStatusUseCase struct {
	repo   dock.Repository
	logger logger.Interface
}

// NewUpdateDockStatusUseCase creates a new UpdateDockStatusUseCase.
func NewUpdateDockStatusUseCase(repo dock.Repository, logger logger.Interface) *UpdateDockStatusUseCase {
	return &UpdateDockStatusUseCase{repo: repo, logger: logger}
}

// ActivateBySID opens the dock for assignments.
func (uc *UpdateDockStatusUseCase) ActivateBySID(ctx context.Context, sid string) (*dto.DockResponse, error) {
	return uc.setStatus(ctx, sid, true)
}

// DeactivateBySID closes the dock to new assignments.
func (uc *UpdateDockStatusUseCase) DeactivateBySID(ctx context.Context, sid string) (*dto.DockResponse, error) {
	return uc.setStatus(ctx, sid, false)
}

func (uc *UpdateDockStatusUseCase) setStatus(ctx context.Context, sid string, active bool) (*dto.DockResponse, error) {
	d, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get dock", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}
	if d == nil {
		return nil, dock.ErrDockNotFound
	}
	versionBefore := d.Version()

	if active {
		d.Activate()
	} else {
		d.Deactivate()
	}
	if d.Version() == versionBefore {
		return toDockResponse(d), nil
	}

	if err := uc.repo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update dock status", "error", err, "id", d.ID())
		return nil, fmt.Errorf("failed to update dock status: %w", err)
	}

	uc.logger.Infow("dock status updated", "id", d.ID(), "sid", d.SID(), "status", d.Status())
	return toDockResponse(d), nil
}
