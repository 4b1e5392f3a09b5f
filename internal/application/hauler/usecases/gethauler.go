package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/hauler/dto"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/shared/logger"
)

// GetHaulerUseCase retrieves a single hauler.
type GetHaulerUseCase struct {
	repo   hauler.Repository
	logger logger.Interface
}

// NewGetHaulerUseCase creates a new GetHaulerUseCase.
func NewGetHaulerUseCase(repo hauler.Repository, logger logger.Interface) *GetHaulerUseCase {
	return &GetHaulerUseCase{repo: repo, logger: logger}
}

// ExecuteBySID retrieves a hauler by its public ID.
func (uc *GetHaulerUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.HaulerResponse, error) {
	h, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get hauler", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get hauler: %w", err)
	}
	if h == nil {
		return nil, hauler.ErrHaulerNotFound
	}

	return toHaulerResponse(h), nil
}
