package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/harbor/dto"
	shipdto "harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/logger"
)

// GetHaulerWithShipsUseCase assembles the hauler occupancy view.
type GetHaulerWithShipsUseCase struct {
	haulers hauler.Repository
	ships   ship.Repository
	logger  logger.Interface
}

// NewGetHaulerWithShipsUseCase creates a new GetHaulerWithShipsUseCase.
func NewGetHaulerWithShipsUseCase(haulers hauler.Repository, ships ship.Repository, logger logger.Interface) *GetHaulerWithShipsUseCase {
	return &GetHaulerWithShipsUseCase{
		haulers: haulers,
		ships:   ships,
		logger:  logger,
	}
}

// ExecuteBySID retrieves the occupancy view for a hauler by its public ID.
func (uc *GetHaulerWithShipsUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.HaulerWithShipsResponse, error) {
	h, err := uc.haulers.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get hauler", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get hauler: %w", err)
	}
	if h == nil {
		return nil, hauler.ErrHaulerNotFound
	}

	assigned, err := uc.ships.ListByHaulerID(ctx, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to list ships for hauler", "error", err, "hauler_id", h.ID())
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}

	items := make([]shipdto.ShipResponse, 0, len(assigned))
	haulerSID := h.SID()
	for _, s := range assigned {
		items = append(items, shipdto.ShipResponse{
			SID:       s.SID(),
			Name:      s.Name(),
			Type:      s.Type(),
			HaulerSID: &haulerSID,
			Manifest:  s.Manifest(),
			CreatedAt: s.CreatedAt(),
			UpdatedAt: s.UpdatedAt(),
		})
	}

	free := h.Capacity() - len(assigned)
	if free < 0 {
		free = 0
	}

	return &dto.HaulerWithShipsResponse{
		ID:           h.SID(),
		Name:         h.Name(),
		Capacity:     h.Capacity(),
		Occupancy:    len(assigned),
		FreeCapacity: free,
		Ships:        items,
	}, nil
}
