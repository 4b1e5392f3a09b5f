// Package dock provides the dock aggregate: a berth area with a bounded
// number of ship slots.
package dock

import (
	"fmt"
	"time"

	"harbormaster/internal/shared/constants"
	"harbormaster/internal/shared/id"
)

// Status represents the dock lifecycle status.
type Status string

const (
	// StatusActive indicates the dock accepts ship assignments.
	StatusActive Status = "active"
	// StatusInactive indicates the dock is closed to new assignments.
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is a known value.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Dock is the aggregate root for a capacity-bounded berth area.
// The capacity invariant (ships berthed <= capacity) is enforced by the
// assignment engine before any mutation that references a dock commits.
type Dock struct {
	id        uint
	sid       string // public ID: dk_xxxxxxxx
	location  string
	notes     string // markdown harbor notes
	capacity  int
	status    Status
	createdAt time.Time
	updatedAt time.Time
	version   int
}

// NewDock creates a dock with a fresh public ID.
func NewDock(location string, capacity int, notes string) (*Dock, error) {
	if location == "" {
		return nil, fmt.Errorf("dock location is required")
	}
	if len(location) > constants.MaxLocationLength {
		return nil, fmt.Errorf("dock location exceeds %d characters", constants.MaxLocationLength)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("dock capacity must be a positive integer")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixDock)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dock SID: %w", err)
	}

	now := time.Now()
	return &Dock{
		sid:       sid,
		location:  location,
		notes:     notes,
		capacity:  capacity,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// Reconstruct rebuilds a dock from persisted state.
func Reconstruct(
	dockID uint,
	sid string,
	location string,
	notes string,
	capacity int,
	status string,
	createdAt, updatedAt time.Time,
	version int,
) (*Dock, error) {
	if dockID == 0 {
		return nil, fmt.Errorf("dock ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("dock SID is required")
	}
	if location == "" {
		return nil, fmt.Errorf("dock location is required")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("dock capacity must be a positive integer")
	}

	dockStatus := Status(status)
	if !dockStatus.IsValid() {
		return nil, fmt.Errorf("invalid dock status: %s", status)
	}

	return &Dock{
		id:        dockID,
		sid:       sid,
		location:  location,
		notes:     notes,
		capacity:  capacity,
		status:    dockStatus,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}, nil
}

// ID returns the internal dock ID.
func (d *Dock) ID() uint { return d.id }

// SID returns the public dock ID.
func (d *Dock) SID() string { return d.sid }

// Location returns the dock location.
func (d *Dock) Location() string { return d.location }

// Notes returns the markdown harbor notes.
func (d *Dock) Notes() string { return d.notes }

// Capacity returns the maximum permitted occupancy.
func (d *Dock) Capacity() int { return d.capacity }

// Status returns the dock status.
func (d *Dock) Status() Status { return d.status }

// CreatedAt returns the creation timestamp.
func (d *Dock) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last update timestamp.
func (d *Dock) UpdatedAt() time.Time { return d.updatedAt }

// Version returns the aggregate version for optimistic locking.
func (d *Dock) Version() int { return d.version }

// IsActive reports whether the dock accepts new assignments.
func (d *Dock) IsActive() bool { return d.status == StatusActive }

// SetID assigns the ID after persistence. It may be set only once.
func (d *Dock) SetID(dockID uint) error {
	if d.id != 0 {
		return fmt.Errorf("dock ID is already set")
	}
	if dockID == 0 {
		return fmt.Errorf("dock ID cannot be zero")
	}
	d.id = dockID
	return nil
}

// UpdateLocation changes the dock location.
func (d *Dock) UpdateLocation(location string) error {
	if location == "" {
		return fmt.Errorf("dock location cannot be empty")
	}
	if len(location) > constants.MaxLocationLength {
		return fmt.Errorf("dock location exceeds %d characters", constants.MaxLocationLength)
	}
	if d.location == location {
		return nil
	}
	d.location = location
	d.touch()
	return nil
}

// UpdateNotes changes the harbor notes.
func (d *Dock) UpdateNotes(notes string) {
	if d.notes == notes {
		return
	}
	d.notes = notes
	d.touch()
}

// UpdateCapacity changes the dock capacity. Callers must have already
// verified the shrink rule through the assignment engine.
func (d *Dock) UpdateCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("dock capacity must be a positive integer")
	}
	if d.capacity == capacity {
		return nil
	}
	d.capacity = capacity
	d.touch()
	return nil
}

// Activate opens the dock for assignments.
func (d *Dock) Activate() {
	if d.status == StatusActive {
		return
	}
	d.status = StatusActive
	d.touch()
}

// Deactivate closes the dock to new assignments. Ships already berthed
// stay where they are.
func (d *Dock) Deactivate() {
	if d.status == StatusInactive {
		return
	}
	d.status = StatusInactive
	d.touch()
}

func (d *Dock) touch() {
	d.updatedAt = time.Now()
	d.version++
}
