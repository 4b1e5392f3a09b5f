package usecases

import (
	"context"
	"fmt"

	"harbormaster/internal/application/ship/dto"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
)

func toShipResponse(s *ship.Ship, dockSIDs, haulerSIDs map[uint]string) *dto.ShipResponse {
	resp := &dto.ShipResponse{
		SID:       s.SID(),
		Name:      s.Name(),
		Type:      s.Type(),
		Manifest:  s.Manifest(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}

	if s.DockID() != nil {
		if sid, ok := dockSIDs[*s.DockID()]; ok {
			resp.DockSID = &sid
		}
	}
	if s.HaulerID() != nil {
		if sid, ok := haulerSIDs[*s.HaulerID()]; ok {
			resp.HaulerSID = &sid
		}
	}
	return resp
}

// resolveResourceSIDs batch-maps the dock and hauler IDs referenced by the
// given ships to their public IDs.
func resolveResourceSIDs(
	ctx context.Context,
	docks dock.Repository,
	haulers hauler.Repository,
	ships []*ship.Ship,
) (map[uint]string, map[uint]string, error) {
	dockIDs := make([]uint, 0, len(ships))
	haulerIDs := make([]uint, 0, len(ships))
	for _, s := range ships {
		if s.DockID() != nil {
			dockIDs = append(dockIDs, *s.DockID())
		}
		if s.HaulerID() != nil {
			haulerIDs = append(haulerIDs, *s.HaulerID())
		}
	}

	dockSIDs := map[uint]string{}
	if len(dockIDs) > 0 {
		var err error
		dockSIDs, err = docks.GetSIDsByIDs(ctx, dockIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve dock SIDs: %w", err)
		}
	}

	haulerSIDs := map[uint]string{}
	if len(haulerIDs) > 0 {
		var err error
		haulerSIDs, err = haulers.GetSIDsByIDs(ctx, haulerIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve hauler SIDs: %w", err)
		}
	}

	return dockSIDs, haulerSIDs, nil
}
