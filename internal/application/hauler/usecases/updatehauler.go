package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/hauler/dto"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
)

// UpdateHaulerUseCase handles hauler updates. Capacity reductions follow
// the same shrink rule as docks: rejected unless current occupancy fits
// under the new capacity.
type UpdateHaulerUseCase struct {
	repo   hauler.Repository
	engine *assignment.Engine
	guard  *assignment.Guard
	logger logger.Interface
}

// NewUpdateHaulerUseCase creates a new UpdateHaulerUseCase.
func NewUpdateHaulerUseCase(
	repo hauler.Repository,
	engine *assignment.Engine,
	guard *assignment.Guard,
	logger logger.Interface,
) *UpdateHaulerUseCase {
	return &UpdateHaulerUseCase{repo: repo, engine: engine, guard: guard, logger: logger}
}

// ExecuteBySID updates a hauler by its public ID.
func (uc *UpdateHaulerUseCase) ExecuteBySID(ctx context.Context, sid string, req dto.UpdateHaulerRequest) (*dto.HaulerResponse, error) {
	h, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get hauler", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get hauler: %w", err)
	}
	if h == nil {
		return nil, hauler.ErrHaulerNotFound
	}
	versionBefore := h.Version()

	if req.Name != nil {
		if err := h.UpdateName(*req.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, errors.NewValidationError("hauler capacity must be a positive integer")
		}

		release := uc.guard.Acquire(assignment.Key{Kind: assignment.KindHauler, ID: h.ID()})
		defer release()

		if *req.Capacity < h.Capacity() {
			if err := uc.engine.CanShrink(ctx, assignment.KindHauler, h.ID(), *req.Capacity); err != nil {
				return nil, err
			}
		}
		if err := h.UpdateCapacity(*req.Capacity); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	// No effective change, nothing to persist.
	if h.Version() == versionBefore {
		return toHaulerResponse(h), nil
	}

	if err := uc.repo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update hauler", "error", err, "id", h.ID())
		return nil, fmt.Errorf("failed to update hauler: %w", err)
	}

	uc.logger.Infow("hauler updated", "id", h.ID(), "sid", h.SID())
	return toHaulerResponse(h), nil
}
