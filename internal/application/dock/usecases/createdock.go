package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
)

// CreateDockUseCase handles the creation of a new dock.
type CreateDockUseCase struct {
	repo   dock.Repository
	logger logger.Interface
}

// NewCreateDockUseCase creates a new CreateDockUseCase.
func NewCreateDockUseCase(repo dock.Repository, logger logger.Interface) *CreateDockUseCase {
	return &CreateDockUseCase{repo: repo, logger: logger}
}

// Execute creates a new dock.
func (uc *CreateDockUseCase) Execute(ctx context.Context, req dto.CreateDockRequest) (*dto.DockResponse, error) {
	if req.Capacity <= 0 {
		return nil, errors.NewValidationError("dock capacity must be a positive integer")
	}

	exists, err := uc.repo.ExistsByLocation(ctx, req.Location)
	if err != nil {
		uc.logger.Errorw("failed to check dock location existence", "error", err, "location", req.Location)
		return nil, fmt.Errorf("failed to check location existence: %w", err)
	}
	if exists {
		return nil, dock.ErrDockLocationExists
	}

	d, err := dock.NewDock(req.Location, req.Capacity, req.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, d); err != nil {
		uc.logger.Errorw("failed to save dock", "error", err, "location", req.Location)
		return nil, fmt.Errorf("failed to save dock: %w", err)
	}

	uc.logger.Infow("dock created",
		"id", d.ID(),
		"sid", d.SID(),
		"location", d.Location(),
		"capacity", d.Capacity(),
	)

	return toDockResponse(d), nil
}
