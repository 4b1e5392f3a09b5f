package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/hauler/dto"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
)

// CreateHaulerUseCase handles the creation of a new hauler.
type CreateHaulerUseCase struct {
	repo   hauler.Repository
	logger logger.Interface
}

// NewCreateHaulerUseCase creates a new CreateHaulerUseCase.
func NewCreateHaulerUseCase(repo hauler.Repository, logger logger.Interface) *CreateHaulerUseCase {
	return &CreateHaulerUseCase{repo: repo, logger: logger}
}

// Execute creates a new hauler.
func (uc *CreateHaulerUseCase) Execute(ctx context.Context, req dto.CreateHaulerRequest) (*dto.HaulerResponse, error) {
	if req.Capacity <= 0 {
		return nil, errors.NewValidationError("hauler capacity must be a positive integer")
	}

	h, err := hauler.NewHauler(req.Name, req.Capacity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, h); err != nil {
		uc.logger.Errorw("failed to save hauler", "error", err, "name", req.Name)
		return nil, fmt.Errorf("failed to save hauler: %w", err)
	}

	uc.logger.Infow("hauler created", "id", h.ID(), "sid", h.SID(), "name", h.Name(), "capacity", h.Capacity())
	return toHaulerResponse(h), nil
}

func toHaulerResponse(h *hauler.Hauler) *dto.HaulerResponse {
	return &dto.HaulerResponse{
		SID:       h.SID(),
		Name:      h.Name(),
		Capacity:  h.Capacity(),
		CreatedAt: h.CreatedAt(),
		UpdatedAt: h.UpdatedAt(),
	}
}
