package dock

import "context"

// Repository defines the persistence contract for docks. Any storage-backed
// adapter (the GORM implementation, test fakes) implements this interface.
type Repository interface {
	// Create persists a new dock and assigns its ID.
	Create(ctx context.Context, d *Dock) error

	// Update persists changes with an optimistic version check.
	// Returns ErrVersionConflict when a concurrent update won.
	Update(ctx context.Context, d *Dock) error

	// GetByID retrieves a dock by internal ID. Returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Dock, error)

	// GetBySID retrieves a dock by public ID. Returns nil when absent.
	GetBySID(ctx context.Context, sid string) (*Dock, error)

	// List retrieves docks in insertion order with optional filters.
	List(ctx context.Context, filter ListFilter) ([]*Dock, int64, error)

	// GetSIDsByIDs maps internal dock IDs to public IDs for batch lookups.
	GetSIDsByIDs(ctx context.Context, ids []uint) (map[uint]string, error)

	// ExistsByLocation checks whether a dock at the location exists.
	ExistsByLocation(ctx context.Context, location string) (bool, error)
}

// ListFilter holds list query options.
type ListFilter struct {
	Status   *Status
	Search   string
	Page     int
	PageSize int
}
