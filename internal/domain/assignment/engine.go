// Package assignment implements the capacity rule governing ship
// placement: no dock or hauler may ever hold more ships than its declared
// capacity. The engine is stateless; it evaluates rules against registry
// snapshots supplied through two narrow read interfaces.
package assignment

import (
	"context"
	"fmt"
)

// ResourceKind identifies which capacity-bounded registry a check targets.
type ResourceKind string

const (
	KindDock   ResourceKind = "dock"
	KindHauler ResourceKind = "hauler"
)

// OccupancyCounter reports how many ships currently reference a resource.
type OccupancyCounter interface {
	CountOccupants(ctx context.Context, kind ResourceKind, resourceID uint) (int64, error)
}

// CapacityReader reports a resource's declared capacity and whether it
// accepts new assignments. Implementations return ErrResourceNotFound when
// the resource does not exist.
type CapacityReader interface {
	ResourceCapacity(ctx context.Context, kind ResourceKind, resourceID uint) (capacity int, acceptsAssignments bool, err error)
}

// Engine evaluates assignment and capacity-change legality. It holds no
// state of its own; every answer is computed from the registries.
type Engine struct {
	occupants OccupancyCounter
	resources CapacityReader
}

// NewEngine creates an Engine over the given registry views.
func NewEngine(occupants OccupancyCounter, resources CapacityReader) *Engine {
	return &Engine{occupants: occupants, resources: resources}
}

// Occupancy returns the number of ships currently referencing the resource.
func (e *Engine) Occupancy(ctx context.Context, kind ResourceKind, resourceID uint) (int64, error) {
	count, err := e.occupants.CountOccupants(ctx, kind, resourceID)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s occupants: %w", kind, err)
	}
	return count, nil
}

// CanAssign decides whether a ship may be assigned to the resource.
// currentID is the resource of the same kind the ship occupies now, if any.
//
// A no-op reassignment (ship already on the target) always passes without
// touching occupancy. A move counts the target's occupancy while the ship
// still references its old resource, so the mover is never double-counted:
// release from the old resource needs no check, and acquisition at the
// target uses an occupancy that excludes the ship itself.
func (e *Engine) CanAssign(ctx context.Context, kind ResourceKind, resourceID uint, currentID *uint) error {
	capacity, accepts, err := e.resources.ResourceCapacity(ctx, kind, resourceID)
	if err != nil {
		return err
	}

	if currentID != nil && *currentID == resourceID {
		return nil
	}

	if !accepts {
		return fmt.Errorf("%s %d: %w", kind, resourceID, ErrResourceInactive)
	}

	occupancy, err := e.Occupancy(ctx, kind, resourceID)
	if err != nil {
		return err
	}
	if occupancy >= int64(capacity) {
		return fmt.Errorf("%s %d is at capacity %d: %w", kind, resourceID, capacity, ErrCapacityExceeded)
	}
	return nil
}

// CanShrink decides whether the resource's capacity may be lowered to
// newCapacity without stranding existing assignments above the limit.
func (e *Engine) CanShrink(ctx context.Context, kind ResourceKind, resourceID uint, newCapacity int) error {
	occupancy, err := e.Occupancy(ctx, kind, resourceID)
	if err != nil {
		return err
	}
	if occupancy > int64(newCapacity) {
		return fmt.Errorf("%s %d has %d occupants, cannot shrink to %d: %w",
			kind, resourceID, occupancy, newCapacity, ErrCapacityViolation)
	}
	return nil
}
