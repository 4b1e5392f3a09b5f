package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/logger"
)

// GetShipUseCase handles retrieving a single ship.
type GetShipUseCase struct {
	ships   ship.Repository
	docks   dock.Repository
	haulers hauler.Repository
	logger  logger.Interface
}

// NewGetShipUseCase creates a new GetShipUseCase.
func NewGetShipUseCase(ships ship.Repository, docks dock.Repository, haulers hauler.Repository, logger logger.Interface) *GetShipUseCase {
	return &GetShipUseCase{
		ships:   ships,
		docks:   docks,
		haulers: haulers,
		logger:  logger,
	}
}

// ExecuteBySID retrieves a ship by its public ID.
func (uc *GetShipUseCase) ExecuteBySID(ctx context.Context, sid string) (*dto.ShipResponse, error) {
	s, err := uc.ships.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get ship", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}
	if s == nil {
		return nil, ship.ErrShipNotFound
	}

	dockSIDs, haulerSIDs, err := resolveResourceSIDs(ctx, uc.docks, uc.haulers, []*ship.Ship{s})
	if err != nil {
		return nil, err
	}
	return toShipResponse(s, dockSIDs, haulerSIDs), nil
}
