package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/id"
	"harbormaster/internal/shared/logger"
)

// ListShipsUseCase handles listing ships with optional dock/hauler filters.
type ListShipsUseCase struct {
	ships   ship.Repository
	docks   dock.Repository
	haulers hauler.Repository
	logger  logger.Interface
}

// NewListShipsUseCase creates a new ListShipsUseCase.
func NewListShipsUseCase(ships ship.Repository, docks dock.Repository, haulers hauler.Repository, logger logger.Interface) *ListShipsUseCase {
	return &ListShipsUseCase{
		ships:   ships,
		docks:   docks,
		haulers: haulers,
		logger:  logger,
	}
}

// Execute lists ships matching the request filters, ordered by insertion.
func (uc *ListShipsUseCase) Execute(ctx context.Context, req dto.ListShipsRequest) (*dto.ListShipsResult, error) {
	filter := ship.ListFilter{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	if req.DockSID != nil && *req.DockSID != "" {
		if err := id.ValidatePrefix(*req.DockSID, id.PrefixDock); err != nil {
			return nil, errors.NewValidationError("invalid dock ID format, expected dk_xxxxx")
		}
		d, err := uc.docks.GetBySID(ctx, *req.DockSID)
		if err != nil {
			uc.logger.Errorw("failed to get dock", "error", err, "sid", *req.DockSID)
			return nil, fmt.Errorf("failed to get dock: %w", err)
		}
		if d == nil {
			return nil, dock.ErrDockNotFound
		}
		dockID := d.ID()
		filter.DockID = &dockID
	}

	if req.HaulerSID != nil && *req.HaulerSID != "" {
		if err := id.ValidatePrefix(*req.HaulerSID, id.PrefixHauler); err != nil {
			return nil, errors.NewValidationError("invalid hauler ID format, expected hl_xxxxx")
		}
		h, err := uc.haulers.GetBySID(ctx, *req.HaulerSID)
		if err != nil {
			uc.logger.Errorw("failed to get hauler", "error", err, "sid", *req.HaulerSID)
			return nil, fmt.Errorf("failed to get hauler: %w", err)
		}
		if h == nil {
			return nil, hauler.ErrHaulerNotFound
		}
		haulerID := h.ID()
		filter.HaulerID = &haulerID
	}

	ships, total, err := uc.ships.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list ships", "error", err)
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}

	dockSIDs, haulerSIDs, err := resolveResourceSIDs(ctx, uc.docks, uc.haulers, ships)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ShipResponse, 0, len(ships))
	for _, s := range ships {
		items = append(items, *toShipResponse(s, dockSIDs, haulerSIDs))
	}

	return &dto.ListShipsResult{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
