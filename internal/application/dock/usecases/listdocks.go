package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/dock/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/logger"
)

// ListDocksUseCase lists docks with filtering and pagination.
type ListDocksUseCase struct {
	repo   dock.Repository
	logger logger.Interface
}

// NewListDocksUseCase creates a new ListDocksUseCase.
func NewListDocksUseCase(repo dock.Repository, logger logger.Interface) *ListDocksUseCase {
	return &ListDocksUseCase{repo: repo, logger: logger}
}

// Execute lists docks.
func (uc *ListDocksUseCase) Execute(ctx context.Context, req dto.ListDocksRequest) (*dto.ListDocksResult, error) {
	filter := dock.ListFilter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	if req.Status != nil {
		status := dock.Status(*req.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid dock status: %s", *req.Status))
		}
		filter.Status = &status
	}

	docks, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list docks", "error", err)
		return nil, fmt.Errorf("failed to list docks: %w", err)
	}

	items := make([]dto.DockResponse, 0, len(docks))
	for _, d := range docks {
		items = append(items, *toDockResponse(d))
	}

	return &dto.ListDocksResult{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
