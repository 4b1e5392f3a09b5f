// Package common provides application-layer collaborators shared by the
// dock, hauler, and ship use cases.
package common

import (
	"context"
	"fmt"

	"harbormaster/internal/domain/assignment"
	"harbormaster/internal/domain/dock"
	"harbormaster/internal/domain/hauler"
	"harbormaster/internal/domain/ship"
)

// AssignmentRegistry adapts the three repositories into the registry views
// the assignment engine reads: occupancy counts and capacities.
type AssignmentRegistry struct {
	ships   ship.Repository
	docks   dock.Repository
	haulers hauler.Repository
}

// NewAssignmentRegistry creates the registry adapter.
func NewAssignmentRegistry(ships ship.Repository, docks dock.Repository, haulers hauler.Repository) *AssignmentRegistry {
	return &AssignmentRegistry{ships: ships, docks: docks, haulers: haulers}
}

// CountOccupants implements assignment.OccupancyCounter.
func (r *AssignmentRegistry) CountOccupants(ctx context.Context, kind assignment.ResourceKind, resourceID uint) (int64, error) {
	switch kind {
	case assignment.KindDock:
		return r.ships.CountByDockID(ctx, resourceID)
	case assignment.KindHauler:
		return r.ships.CountByHaulerID(ctx, resourceID)
	default:
		return 0, fmt.Errorf("unknown resource kind: %s", kind)
	}
}

// ResourceCapacity implements assignment.CapacityReader. Inactive docks
// exist but refuse new assignments; haulers have no inactive state.
func (r *AssignmentRegistry) ResourceCapacity(ctx context.Context, kind assignment.ResourceKind, resourceID uint) (int, bool, error) {
	switch kind {
	case assignment.KindDock:
		d, err := r.docks.GetByID(ctx, resourceID)
		if err != nil {
			return 0, false, fmt.Errorf("failed to get dock: %w", err)
		}
		if d == nil {
			return 0, false, fmt.Errorf("dock %d: %w", resourceID, assignment.ErrResourceNotFound)
		}
		return d.Capacity(), d.IsActive(), nil
	case assignment.KindHauler:
		h, err := r.haulers.GetByID(ctx, resourceID)
		if err != nil {
			return 0, false, fmt.Errorf("failed to get hauler: %w", err)
		}
		if h == nil {
			return 0, false, fmt.Errorf("hauler %d: %w", resourceID, assignment.ErrResourceNotFound)
		}
		return h.Capacity(), true, nil
	default:
		return 0, false, fmt.Errorf("unknown resource kind: %s", kind)
	}
}
