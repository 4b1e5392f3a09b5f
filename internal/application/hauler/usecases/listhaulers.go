package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/hauler/dto"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/shared/logger"
)

// ListHaulersUseCase lists haulers with pagination.
type ListHaulersUseCase struct {
	repo   hauler.Repository
	logger logger.Interface
}

// NewListHaulersUseCase creates a new ListHaulersUseCase.
func NewListHaulersUseCase(repo hauler.Repository, logger logger.Interface) *ListHaulersUseCase {
	return &ListHaulersUseCase{repo: repo, logger: logger}
}

// Execute lists haulers.
func (uc *ListHaulersUseCase) Execute(ctx context.Context, req dto.ListHaulersRequest) (*dto.ListHaulersResult, error) {
	haulers, total, err := uc.repo.List(ctx, hauler.ListFilter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list haulers", "error", err)
		return nil, fmt.Errorf("failed to list haulers: %w", err)
	}

	items := make([]dto.HaulerResponse, 0, len(haulers))
	for _, h := range haulers {
		items = append(items, *toHaulerResponse(h))
	}

	return &dto.ListHaulersResult{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
