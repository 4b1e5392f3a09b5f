package ship

import "context"

// Repository defines the persistence contract for ships. The count methods
// back the assignment engine's occupancy reads.
type Repository interface {
	// Create persists a new ship and assigns its ID.
	Create(ctx context.Context, s *Ship) error

	// Update persists changes with an optimistic version check.
	// Returns ErrVersionConflict when a concurrent update won.
	Update(ctx context.Context, s *Ship) error

	// GetByID retrieves a ship by internal ID. Returns nil when absent.
	GetByID(ctx context.Context, id uint) (*Ship, error)

	// GetBySID retrieves a ship by public ID. Returns nil when absent.
	GetBySID(ctx context.Context, sid string) (*Ship, error)

	// List retrieves ships in insertion order with optional filters.
	List(ctx context.Context, filter ListFilter) ([]*Ship, int64, error)

	// ListByDockID retrieves all ships berthed at a dock, in insertion order.
	ListByDockID(ctx context.Context, dockID uint) ([]*Ship, error)

	// ListByHaulerID retrieves all ships assigned to a hauler.
	ListByHaulerID(ctx context.Context, haulerID uint) ([]*Ship, error)

	// CountByDockID counts ships currently berthed at a dock.
	CountByDockID(ctx context.Context, dockID uint) (int64, error)

	// CountByHaulerID counts ships currently assigned to a hauler.
	CountByHaulerID(ctx context.Context, haulerID uint) (int64, error)
}

// ListFilter holds list query options.
type ListFilter struct {
	DockID   *uint
	HaulerID *uint
	Search   string
	Page     int
	PageSize int
}
