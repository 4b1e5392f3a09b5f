package dto

import "time"

// CreateDockRequest carries the fields to create a dock.
type CreateDockRequest struct {
	Location string `json:"location" validate:"required,max=200"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Notes    string `json:"notes,omitempty" validate:"max=5000"`
}

// UpdateDockRequest carries the optional fields to update on a dock.
type UpdateDockRequest struct {
	Location *string `json:"location,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// DockResponse represents a dock in API responses.
type DockResponse struct {
	SID       string    `json:"id"`
	Location  string    `json:"location"`
	Notes     string    `json:"notes,omitempty"`
	Capacity  int       `json:"capacity"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListDocksRequest carries list filters.
type ListDocksRequest struct {
	Status   *string
	Search   string
	Page     int
	PageSize int
}

// ListDocksResult is a paginated dock listing.
type ListDocksResult struct {
	Items    []DockResponse
	Total    int64
	Page     int
	PageSize int
}
