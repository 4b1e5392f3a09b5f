package dto

import "time"

// CreateHaulerRequest carries the fields to create a hauler.
type CreateHaulerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
}

// UpdateHaulerRequest carries the optional fields to update on a hauler.
type UpdateHaulerRequest struct {
	Name     *string `json:"name,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

// HaulerResponse represents a hauler in API responses.
type HaulerResponse struct {
	SID       string    `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListHaulersRequest carries list filters.
type ListHaulersRequest struct {
	Search   string
	Page     int
	PageSize int
}

// ListHaulersResult is a paginated hauler listing.
type ListHaulersResult struct {
	Items    []HaulerResponse
	Total    int64
	Page     int
	PageSize int
}
