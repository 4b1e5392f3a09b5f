package dto

import (
	"encoding/json"
	"time"
)

// CreateShipRequest carries the fields to create a ship. DockID and
// HaulerID are public resource IDs; when set, the ship is pre-assigned
// subject to the capacity rule.
type CreateShipRequest struct {
	Name      string          `json:"name" validate:"required,max=100"`
	Type      string          `json:"type" validate:"required,max=50"`
	DockSID   *string         `json:"dock_id,omitempty"`
	HaulerSID *string         `json:"hauler_id,omitempty"`
	Manifest  json.RawMessage `json:"manifest,omitempty"`
}

// UpdateShipRequest carries the optional fields to update on a ship.
// For DockSID and HaulerSID, nil leaves the assignment unchanged and an
// empty string releases it.
type UpdateShipRequest struct {
	Name      *string         `json:"name,omitempty"`
	Type      *string         `json:"type,omitempty"`
	DockSID   *string         `json:"dock_id,omitempty"`
	HaulerSID *string         `json:"hauler_id,omitempty"`
	Manifest  json.RawMessage `json:"manifest,omitempty"`
}

// ShipResponse represents a ship in API responses.
type ShipResponse struct {
	SID       string          `json:"id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	DockSID   *string         `json:"dock_id,omitempty"`
	HaulerSID *string         `json:"hauler_id,omitempty"`
	Manifest  json.RawMessage `json:"manifest,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ListShipsRequest carries list filters. DockSID and HaulerSID are public
// resource IDs.
type ListShipsRequest struct {
	DockSID   *string
	HaulerSID *string
	Search    string
	Page      int
	PageSize  int
}

// ListShipsResult is a paginated ship listing.
type ListShipsResult struct {
	Items    []ShipResponse
	Total    int64
	Page     int
	PageSize int
}
