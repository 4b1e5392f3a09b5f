package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/shared/logger"
)

// GetDockUseCase retrieves a single dock.
type GetDockUseCase struct {
	repo   dock.Repository
	logger logger.Interface
}

// NewGetDockUseCase creates a new GetDockUseCase.
func NewGetDockUseCase(repo dock.Repository, logger logger.Interface) *GetDockUseCase {
	return &GetDockUseCase{repo: repo, logger: logger}
}

// ExecuteBySID retrieves a dock by its public ID.
func (uc *GetDockUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.DockResponse, error) {
	d, err := uc.repo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get dock", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}
	if d == nil {
		return nil, dock.ErrDockNotFound
	}

	return toDockResponse(d), nil
}
