package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/id"
	"harbormaster/internal/shared/logger"
)

// CreateShipUseCase handles ship creation. A ship may be created
// unassigned, or pre-assigned to a dock and/or hauler when the target has
// free capacity at creation time.
type CreateShipUseCase struct {
	ships   ship.Repository
	docks   dock.Repository
	haulers hauler.Repository
	engine  *assignment.Engine
	guard   *assignment.Guard
	logger  logger.Interface
}

// NewCreateShipUseCase creates a new CreateShipUseCase.
func NewCreateShipUseCase(
	ships ship.Repository,
	docks dock.Repository,
	haulers hauler.Repository,
	engine *assignment.Engine,
	guard *assignment.Guard,
	logger logger.Interface,
) *CreateShipUseCase {
	return &CreateShipUseCase{
		ships:   ships,
		docks:   docks,
		haulers: haulers,
		engine:  engine,
		guard:   guard,
		logger:  logger,
	}
}

// Execute creates a new ship.
func (uc *CreateShipUseCase) Execute(ctx context.Context, req dto.CreateShipRequest) (*dto.ShipResponse, error) {
	s, err := ship.NewShip(req.Name, req.Type, req.Manifest)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	targetDock, err := uc.resolveDock(ctx, req.DockSID)
	if err != nil {
		return nil, err
	}
	targetHauler, err := uc.resolveHauler(ctx, req.HaulerSID)
	if err != nil {
		return nil, err
	}

	dockSIDs := map[uint]string{}
	haulerSIDs := map[uint]string{}

	if targetDock != nil || targetHauler != nil {
		keys := make([]assignment.Key, 0, 2)
		if targetDock != nil {
			keys = append(keys, assignment.Key{Kind: assignment.KindDock, ID: targetDock.ID()})
		}
		if targetHauler != nil {
			keys = append(keys, assignment.Key{Kind: assignment.KindHauler, ID: targetHauler.ID()})
		}
		release := uc.guard.Acquire(keys...)
		defer release()

		if targetDock != nil {
			if err := uc.engine.CanAssign(ctx, assignment.KindDock, targetDock.ID(), nil); err != nil {
				return nil, err
			}
			if err := s.AssignToDock(targetDock.ID()); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			dockSIDs[targetDock.ID()] = targetDock.SID()
		}
		if targetHauler != nil {
			if err := uc.engine.CanAssign(ctx, assignment.KindHauler, targetHauler.ID(), nil); err != nil {
				return nil, err
			}
			if err := s.AssignToHauler(targetHauler.ID()); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			haulerSIDs[targetHauler.ID()] = targetHauler.SID()
		}

		if err := uc.ships.Create(ctx, s); err != nil {
			uc.logger.Errorw("failed to save ship", "error", err, "name", req.Name)
			return nil, fmt.Errorf("failed to save ship: %w", err)
		}
	} else {
		if err := uc.ships.Create(ctx, s); err != nil {
			uc.logger.Errorw("failed to save ship", "error", err, "name", req.Name)
			return nil, fmt.Errorf("failed to save ship: %w", err)
		}
	}

	uc.logger.Infow("ship created",
		"id", s.ID(),
		"sid", s.SID(),
		"name", s.Name(),
		"docked", s.IsDocked(),
	)

	return toShipResponse(s, dockSIDs, haulerSIDs), nil
}

func (uc *CreateShipUseCase) resolveDock(ctx context.Context, sid *string) (*dock.Dock, error) {
	if sid == nil || *sid == "" {
		return nil, nil
	}
	if err := id.ValidatePrefix(*sid, id.PrefixDock); err != nil {
		return nil, errors.NewValidationError("invalid dock ID format, expected dk_xxxxx")
	}
	d, err := uc.docks.GetBySID(ctx, *sid)
	if err != nil {
		uc.logger.Errorw("failed to get dock", "error", err, "sid", *sid)
		return nil, fmt.Errorf("failed to get dock: %w", err)
	}
	if d == nil {
		return nil, fmt.Errorf("dock %s: %w", *sid, assignment.ErrResourceNotFound)
	}
	return d, nil
}

func (uc *CreateShipUseCase) resolveHauler(ctx context.Context, sid *string) (*hauler.Hauler, error) {
	if sid == nil || *sid == "" {
		return nil, nil
	}
	if err := id.ValidatePrefix(*sid, id.PrefixHauler); err != nil {
		return nil, errors.NewValidationError("invalid hauler ID format, expected hl_xxxxx")
	}
	h, err := uc.haulers.GetBySID(ctx, *sid)
	if err != nil {
		uc.logger.Errorw("failed to get hauler", "error", err, "sid", *sid)
		return nil, fmt.Errorf("failed to get hauler: %w", err)
	}
	if h == nil {
		return nil, fmt.Errorf("hauler %s: %w", *sid, assignment.ErrResourceNotFound)
	}
	return h, nil
}
