package dto

import (
	shipdto "harbormaster/internal/application/ship/dto"
)

// DockWithShipsResponse is the dock occupancy view: the dock, its berthed
// ships in insertion order, and the derived free capacity.
type DockWithShipsResponse struct {
	ID           string                 `json:"id"`
	Location     string                 `json:"location"`
	Notes        string                 `json:"notes,omitempty"`
	NotesHTML    string                 `json:"notes_html,omitempty"`
	Capacity     int                    `json:"capacity"`
	Status       string                 `json:"status"`
	Occupancy    int                    `json:"occupancy"`
	FreeCapacity int                    `json:"free_capacity"`
	Ships        []shipdto.ShipResponse `json:"ships"`
}

// HaulerWithShipsResponse is the hauler occupancy view.
type HaulerWithShipsResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Capacity     int                    `json:"capacity"`
	Occupancy    int                    `json:"occupancy"`
	FreeCapacity int                    `json:"free_capacity"`
	Ships        []shipdto.ShipResponse `json:"ships"`
}
