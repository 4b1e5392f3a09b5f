package hauler

import "context"

// Repository defines the persistence contract for haulers.
type Repository interface {
	// Create persists a new hauler and assigns its ID.
	Create(ctx context.Context, h *Hauler) error

	// Update persists changes with an optimistic version check.
	// Returns ErrVersionConflict when a concurrent update won.
	Update(ctx context.Context, h *Hauler) error

	// GetByID retrieves a hauler by internal ID. Returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Hauler, error)

	// GetBySID retrieves a hauler by public ID. Returns nil when absent.
	GetBySID(ctx context.Context, sid string) (*Hauler, error)

	// GetSIDsByIDs maps internal hauler IDs to public IDs for batch lookups.
	GetSIDsByIDs(ctx context.Context, ids []uint) (map[uint]string, error)

	// List retrieves haulers in insertion order.
	List(ctx context.Context, filter ListFilter) ([]*Hauler, int64, error)
}

// ListFilter holds list query options.
type ListFilter struct {
	Search   string
	Page     int
	PageSize int
}
