// Package ship provides the ship aggregate: a vessel that may occupy at
// most one dock and at most one hauler at a time via weak references.
package ship

import (
	"encoding/json"
	"fmt"
	"time"

	"harbormaster/internal/shared/constants"
	"harbormaster/internal/shared/id"
)

// Ship is the aggregate root for a vessel. The dock and hauler references
// confer no ownership; they merely name the resource the ship occupies.
type Ship struct {
	id        uint
	sid       string // public ID: sh_xxxxxxxx
	name      string
	shipType  string
	dockID    *uint
	haulerID  *uint
	manifest  json.RawMessage // free-form cargo manifest
	createdAt time.Time
	updatedAt time.Time
	version   int
}

// NewShip creates an unassigned ship with a fresh public ID. Assignment at
// creation time goes through AssignToDock/AssignToHauler after the engine
// checks pass.
func NewShip(name, shipType string, manifest json.RawMessage) (*Ship, error) {
	if name == "" {
		return nil, fmt.Errorf("ship name is required")
	}
	if len(name) > constants.MaxNameLength {
		return nil, fmt.Errorf("ship name exceeds %d characters", constants.MaxNameLength)
	}
	if shipType == "" {
		return nil, fmt.Errorf("ship type is required")
	}
	if len(shipType) > constants.MaxShipTypeLength {
		return nil, fmt.Errorf("ship type exceeds %d characters", constants.MaxShipTypeLength)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixShip)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ship SID: %w", err)
	}

	now := time.Now()
	return &Ship{
		sid:       sid,
		name:      name,
		shipType:  shipType,
		manifest:  manifest,
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// Reconstruct rebuilds a ship from persisted state.
func Reconstruct(
	shipID uint,
	sid string,
	name string,
	shipType string,
	dockID *uint,
	haulerID *uint,
	manifest json.RawMessage,
	createdAt, updatedAt time.Time,
	version int,
) (*Ship, error) {
	if shipID == 0 {
		return nil, fmt.Errorf("ship ID cannot be zero")
	}
	if sid == "" {
		return nil, fmt.Errorf("ship SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("ship name is required")
	}
	if shipType == "" {
		return nil, fmt.Errorf("ship type is required")
	}

	return &Ship{
		id:        shipID,
		sid:       sid,
		name:      name,
		shipType:  shipType,
		dockID:    dockID,
		haulerID:  haulerID,
		manifest:  manifest,
		createdAt: createdAt,
		updatedAt: updatedAt,
		version:   version,
	}, nil
}

// ID returns the internal ship ID.
func (s *Ship) ID() uint { return s.id }

// SID returns the public ship ID.
func (s *Ship) SID() string { return s.sid }

// Name returns the ship name.
func (s *Ship) Name() string { return s.name }

// Type returns the ship type.
func (s *Ship) Type() string { return s.shipType }

// DockID returns the occupied dock's internal ID, or nil when undocked.
func (s *Ship) DockID() *uint { return s.dockID }

// HaulerID returns the assigned hauler's internal ID, or nil when unassigned.
func (s *Ship) HaulerID() *uint { return s.haulerID }

// Manifest returns the cargo manifest document.
func (s *Ship) Manifest() json.RawMessage { return s.manifest }

// CreatedAt returns the creation timestamp.
func (s *Ship) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns the last update timestamp.
func (s *Ship) UpdatedAt() time.Time { return s.updatedAt }

// Version returns the aggregate version for optimistic locking.
func (s *Ship) Version() int { return s.version }

// IsDocked reports whether the ship occupies a dock.
func (s *Ship) IsDocked() bool { return s.dockID != nil }

// SetID assigns the ID after persistence. It may be set only once.
func (s *Ship) SetID(shipID uint) error {
	if s.id != 0 {
		return fmt.Errorf("ship ID is already set")
	}
	if shipID == 0 {
		return fmt.Errorf("ship ID cannot be zero")
	}
	s.id = shipID
	return nil
}

// UpdateName changes the ship name.
func (s *Ship) UpdateName(name string) error {
	if name == "" {
		return fmt.Errorf("ship name cannot be empty")
	}
	if len(name) > constants.MaxNameLength {
		return fmt.Errorf("ship name exceeds %d characters", constants.MaxNameLength)
	}
	if s.name == name {
		return nil
	}
	s.name = name
	s.touch()
	return nil
}

// UpdateType changes the ship type.
func (s *Ship) UpdateType(shipType string) error {
	if shipType == "" {
		return fmt.Errorf("ship type cannot be empty")
	}
	if len(shipType) > constants.MaxShipTypeLength {
		return fmt.Errorf("ship type exceeds %d characters", constants.MaxShipTypeLength)
	}
	if s.shipType == shipType {
		return nil
	}
	s.shipType = shipType
	s.touch()
	return nil
}

// UpdateManifest replaces the cargo manifest document.
func (s *Ship) UpdateManifest(manifest json.RawMessage) {
	s.manifest = manifest
	s.touch()
}

// AssignToDock points the ship at a dock. A no-op when already berthed
// there, so idempotent reassignment never bumps the version.
func (s *Ship) AssignToDock(dockID uint) error {
	if dockID == 0 {
		return fmt.Errorf("dock ID cannot be zero")
	}
	if s.dockID != nil && *s.dockID == dockID {
		return nil
	}
	s.dockID = &dockID
	s.touch()
	return nil
}

// ReleaseDock clears the dock reference.
func (s *Ship) ReleaseDock() {
	if s.dockID == nil {
		return
	}
	s.dockID = nil
	s.touch()
}

// AssignToHauler points the ship at a hauler. A no-op when already assigned.
func (s *Ship) AssignToHauler(haulerID uint) error {
	if haulerID == 0 {
		return fmt.Errorf("hauler ID cannot be zero")
	}
	if s.haulerID != nil && *s.haulerID == haulerID {
		return nil
	}
	s.haulerID = &haulerID
	s.touch()
	return nil
}

// ReleaseHauler clears the hauler reference.
func (s *Ship) ReleaseHauler() {
	if s.haulerID == nil {
		return
	}
	s.haulerID = nil
	s.touch()
}

func (s *Ship) touch() {
	s.updatedAt = time.Now()
	s.version++
}
