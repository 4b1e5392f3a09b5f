// Package hauler provides the hauler aggregate: a tow service with a
// bounded number of ship slots, governed by the same capacity rule as docks.
package hauler

import (
	"fmt"
	"time"

	"harbormaster/internal/shared/constants"
	"harbormaster/internal/shared/id"
)

// Hauler is the aggregate root for a capacity-bounded tow service.
type Hauler struct {
	id        uint
	sid       string // public ID: hl_xxxxxxxx
	name      string
	capacity  int
	createdAt time.Time
	updatedAt time.Time
	version   int
}

// NewHauler creates a hauler with a fresh public ID.
func NewHauler(name string, capacity int) (*Hauler, error) {
	if name == "" {
		return nil, fmt.Errorf("hauler name is required")
	}
	if len(name) > constants.MaxNameLength {
		return nil, fmt.Errorf("hauler name exceeds %d characters", constants.MaxNameLength)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("hauler capacity must be a positive integer")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixHauler)
	if err != nil {
		return nil, fmt.Errorf("failed to generate hauler SID: %w", err)
	}

	now := time.Now()
	return &Hauler{
		sid:       sid,
		name:      name,
		capacity:  capacity,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// Reconstruct rebuilds a hauler from persisted state.
func Reconstruct(
	haulerID uint,
	sid string,
	name string,
	capacity int,
	createdAt, updatedAt time.Time,
	version int,
) (*Hauler, error) {
	if haulerID == 0 {
		return nil, fmt.Errorf("hauler ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("hauler SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("hauler name is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("hauler capacity must be a positive integer")
	}

	return &Hauler{
		id:        haulerID,
		sid:       sid,
		name:      name,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}, nil
}

// ID returns the internal hauler ID.
func (h *Hauler) ID() uint { return h.id }

// SID returns the public hauler ID.
func (h *Hauler) SID() string { return h.sid }

// Name returns the hauler name.
func (h *Hauler) Name() string { return h.name }

// Capacity returns the maximum permitted occupancy.
func (h *Hauler) Capacity() int { return h.capacity }

// CreatedAt returns the creation timestamp.
func (h *Hauler) CreatedAt() time.Time { return h.createdAt }

// UpdatedAt returns the last update timestamp.
func (h *Hauler) UpdatedAt() time.Time { return h.updatedAt }

// Version returns the aggregate version for optimistic locking.
func (h *Hauler) Version() int { return h.version }

// SetID assigns the ID after persistence. It may be set only once.
func (h *Hauler) SetID(haulerID uint) error {
	if h.id != 0 {
		return fmt.Errorf("hauler ID is already set")
	}
	if haulerID == 0 {
		return fmt.Errorf("hauler ID cannot be zero")
	}
	h.id = haulerID
	return nil
}

// UpdateName changes the hauler name.
func (h *Hauler) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("hauler name cannot be empty")
	}
	if len(name) > constants.MaxNameLength {
		return fmt.Errorf("hauler name exceeds %d characters", constants.MaxNameLength)
	}
	if h.name == name {
		return nil
	}
	h.name = name
	h.touch()
	return nil
}

// UpdateCapacity changes the hauler capacity. Callers must have already
// verified the shrink rule through the assignment engine.
func (h *Hauler) UpdateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("hauler capacity must be a positive integer")
	}
	if h.capacity == capacity {
		return nil
	}
	h.capacity = capacity
	h.touch()
	return nil
}

func (h *Hauler) touch() {
	h.updatedAt = time.Now()
	h.version++
}
