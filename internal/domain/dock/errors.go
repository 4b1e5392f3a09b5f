package dock

import "errors"

var (
	// ErrDockNotFound indicates the dock was not found.
	ErrDockNotFound = errors.New("dock not found")

	// ErrDockLocationExists indicates a dock at the location already exists.
	ErrDockLocationExists = errors.New("dock location already exists")

	// ErrDockInactive indicates the dock is closed to new assignments.
	ErrDockInactive = errors.New("dock is inactive")

	// ErrVersionConflict indicates an optimistic locking conflict.
	ErrVersionConflict = errors.New("version conflict: dock was modified")
)
