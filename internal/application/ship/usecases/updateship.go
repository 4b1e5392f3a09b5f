package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
	"harbormaster/internal/shared/db"
	"harbormaster/internal/shared/errors"
	"harbormaster/internal/shared/id"
	"harbormaster/internal/shared/logger"
)

// UpdateShipUseCase handles ship updates including reassignment. A move is
// evaluated as release-from-old, acquire-at-new: the old resource needs no
// residual check, and the target's occupancy excludes the moving ship. The
// locks of every involved resource are held across the check-then-commit
// window, and the commit runs in a transaction so a rejected update leaves
// prior state untouched.
type UpdateShipUseCase struct {
	ships   ship.Repository
	docks   dock.Repository
	haulers hauler.Repository
	engine  *assignment.Engine
	guard   *assignment.Guard
	tx      *db.TransactionManager
	logger  logger.Interface
}

// NewUpdateShipUseCase creates a new UpdateShipUseCase.
func NewUpdateShipUseCase(
	ships ship.Repository,
	docks dock.Repository,
	haulers hauler.Repository,
	engine *assignment.Engine,
	guard *assignment.Guard,
	tx *db.TransactionManager,
	logger logger.Interface,
) *UpdateShipUseCase {
	return &UpdateShipUseCase{
		ships:   ships,
		docks:   docks,
		haulers: haulers,
		engine:  engine,
		guard:   guard,
		tx:      tx,
		logger:  logger,
	}
}

// ExecuteBySID updates a ship by its public ID.
func (uc *UpdateShipUseCase) ExecuteBySID(ctx context.Context, sid string, req dto.UpdateShipRequest) (*dto.ShipResponse, error) {
	s, err := uc.ships.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get ship", "error", err, "sid", sid)
		return nil, fmt.Errorf("failed to get ship: %w", err)
	}
	if s == nil {
		return nil, ship.ErrShipNotFound
	}
	versionBefore := s.Version()

	if req.Name != nil {
		if err := s.UpdateName(*req.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if req.Type != nil {
		if err := s.UpdateType(*req.Type); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if req.Manifest != nil {
		s.UpdateManifest(req.Manifest)
	}

	targetDock, dockChange, err := uc.resolveDockChange(ctx, req.DockSID)
	if err != nil {
		return nil, err
	}
	targetHauler, haulerChange, err := uc.resolveHaulerChange(ctx, req.HaulerSID)
	if err != nil {
		return nil, err
	}

	if dockChange || haulerChange {
		keys := lockKeys(s, targetDock, targetHauler)
		release := uc.guard.Acquire(keys...)
		defer release()

		if dockChange {
			if targetDock == nil {
				s.ReleaseDock()
			} else {
				if err := uc.engine.CanAssign(ctx, assignment.KindDock, targetDock.ID(), s.DockID()); err != nil {
					return nil, err
				}
				if err := s.AssignToDock(targetDock.ID()); err != nil {
					return nil, errors.NewValidationError(err.Error())
				}
			}
		}
		if haulerChange {
			if targetHauler == nil {
				s.ReleaseHauler()
			} else {
				if err := uc.engine.CanAssign(ctx, assignment.KindHauler, targetHauler.ID(), s.HaulerID()); err != nil {
					return nil, err
				}
				if err := s.AssignToHauler(targetHauler.ID()); err != nil {
					return nil, errors.NewValidationError(err.Error())
				}
			}
		}
	}

	// No-op updates (idempotent reassignment included) skip persistence:
	// the aggregate did not bump its version, so there is nothing to write.
	if s.Version() != versionBefore {
		err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.ships.Update(txCtx, s)
		})
		if err != nil {
			uc.logger.Errorw("failed to update ship", "error", err, "id", s.ID())
			return nil, fmt.Errorf("failed to update ship: %w", err)
		}

		uc.logger.Infow("ship updated", "id", s.ID(), "sid", s.SID(), "docked", s.IsDocked())
	}

	dockSIDs, haulerSIDs, err := resolveResourceSIDs(ctx, uc.docks, uc.haulers, []*ship.Ship{s})
	if err != nil {
		return nil, err
	}
	return toShipResponse(s, dockSIDs, haulerSIDs), nil
}

// resolveDockChange interprets the dock field of an update request:
// nil means no change, empty string releases the berth, anything else
// names the new target dock.
func (uc *UpdateShipUseCase) resolveDockChange(ctx context.Context, sid *string) (*dock.Dock, bool, error) {
	if sid == nil {
		return nil, false, nil
	}
	if *sid == "" {
		return nil, true, nil
	}
	if err := id.ValidatePrefix(*sid, id.PrefixDock); err != nil {
		return nil, false, errors.NewValidationError("invalid dock ID format, expected dk_xxxxx")
	}
	d, err := uc.docks.GetBySID(ctx, *sid)
	if err != nil {
		uc.logger.Errorw("failed to get dock", "error", err, "sid", *sid)
		return nil, false, fmt.Errorf("failed to get dock: %w", err)
	}
	if d == nil {
		return nil, false, fmt.Errorf("dock %s: %w", *sid, assignment.ErrResourceNotFound)
	}
	return d, true, nil
}

func (uc *UpdateShipUseCase) resolveHaulerChange(ctx context.Context, sid *string) (*hauler.Hauler, bool, error) {
	if sid == nil {
		return nil, false, nil
	}
	if *sid == "" {
		return nil, true, nil
	}
	if err := id.ValidatePrefix(*sid, id.PrefixHauler); err != nil {
		return nil, false, errors.NewValidationError("invalid hauler ID format, expected hl_xxxxx")
	}
	h, err := uc.haulers.GetBySID(ctx, *sid)
	if err != nil {
		uc.logger.Errorw("failed to get hauler", "error", err, "sid", *sid)
		return nil, false, fmt.Errorf("failed to get hauler: %w", err)
	}
	if h == nil {
		return nil, false, fmt.Errorf("hauler %s: %w", *sid, assignment.ErrResourceNotFound)
	}
	return h, true, nil
}

// lockKeys collects the serialization keys for every resource involved in
// a reassignment: the ship's current dock and hauler plus the targets.
func lockKeys(s *ship.Ship, targetDock *dock.Dock, targetHauler *hauler.Hauler) []assignment.Key {
	keys := make([]assignment.Key, 0, 4)
	if s.DockID() != nil {
		keys = append(keys, assignment.Key{Kind: assignment.KindDock, ID: *s.DockID()})
	}
	if targetDock != nil {
		keys = append(keys, assignment.Key{Kind: assignment.KindDock, ID: targetDock.ID()})
	}
	if s.HaulerID() != nil {
		keys = append(keys, assignment.Key{Kind: assignment.KindHauler, ID: *s.HaulerID()})
	}
	if targetHauler != nil {
		keys = append(keys, assignment.Key{Kind: assignment.KindHauler, ID: targetHauler.ID()})
	}
	return keys
}
