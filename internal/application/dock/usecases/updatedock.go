package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
)

// UpdateDockUseCase handles dock updates. Capacity reductions are checked
// against current occupancy through the assignment engine before applying,
// under the dock's serialization lock so a concurrent assignment cannot
// slip between the check and the commit.
type UpdateDockUseCase struct {
	repo   dock.Repository
	engine *assignment.Engine
	guard  *assignment.Guard
	logger logger.Interface
}

// NewUpdateDockUseCase creates a new UpdateDockUseCase.
func NewUpdateDockUseCase(
	repo dock.Repository,
	engine *assignment.Engine,
	guard *assignment.Guard,
	logger logger.Interface,
) *UpdateDockUseCase {
	return &UpdateDockUseCase{repo: repo, engine: engine, guard: guard, logger: logger}
}

// ExecuteBySID updates a dock by its public ID.
func (uc *UpdateDockUseCase) ExecuteBySID(ctx context.Context, sid string, req dto.UpdateDockRequest) (*dto.DockResponse, error) {
	d, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get dock", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}
	if d == nil {
		return nil, dock.ErrDockNotFound
	}
	versionBefore := d.Version()

	if req.Capacity != nil {
		return uc.updateWithCapacity(ctx, d, req)
	}

	if err := uc.applyFieldUpdates(ctx, d, req); err != nil {
		return nil, err
	}
	if d.Version() == versionBefore {
		return toDockResponse(d), nil
	}

	if err := uc.repo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update dock", "error", err, "id", d.ID())
		return nil, fmt.Errorf("failed to update dock: %w", err)
	}

	uc.logger.Infow("dock updated", "id", d.ID(), "sid", d.SID())
	return toDockResponse(d), nil
}

// updateWithCapacity applies an update that changes capacity. The dock lock
// is held across the shrink check and the commit.
func (uc *UpdateDockUseCase) updateWithCapacity(ctx context.Context, d *dock.Dock, req dto.UpdateDockRequest) (*dto.DockResponse, error) {
	if *req.Capacity <= 0 {
		return nil, errors.NewValidationError("dock capacity must be a positive integer")
	}
	versionBefore := d.Version()

	release := uc.guard.Acquire(assignment.Key{Kind: assignment.KindDock, ID: d.ID()})
	defer release()

	if *req.Capacity < d.Capacity() {
		if err := uc.engine.CanShrink(ctx, assignment.KindDock, d.ID(), *req.Capacity); err != nil {
			return nil, err
		}
	}

	if err := d.UpdateCapacity(*req.Capacity); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.applyFieldUpdates(ctx, d, req); err != nil {
		return nil, err
	}
	if d.Version() == versionBefore {
		return toDockResponse(d), nil
	}

	if err := uc.repo.Update(ctx, d); err != nil {
		uc.logger.Errorw("failed to update dock", "error", err, "id", d.ID())
		return nil, fmt.Errorf("failed to update dock: %w", err)
	}

	uc.logger.Infow("dock updated", "id", d.ID(), "sid", d.SID(), "capacity", d.Capacity())
	return toDockResponse(d), nil
}

func (uc *UpdateDockUseCase) applyFieldUpdates(ctx context.Context, d *dock.Dock, req dto.UpdateDockRequest) error {
	if req.Location != nil {
		exists, err := uc.repo.ExistsByLocation(ctx, *req.Location)
		if err != nil {
			uc.logger.Errorw("failed to check dock location existence", "error", err)
			return fmt.Errorf("failed to check location existence: %w", err)
		}
		if exists && *req.Location != d.Location() {
			return dock.ErrDockLocationExists
		}
		if err := d.UpdateLocation(*req.Location); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if req.Notes != nil {
		d.UpdateNotes(*req.Notes)
	}
	return nil
}
