package ship

import "errors"

var (
	// ErrShipNotFound indicates the ship was not found.
	ErrShipNotFound = errors.New("ship not found")

	// ErrVersionConflict indicates an optimistic locking conflict.
	ErrVersionConflict = errors.New("version conflict: ship was modified")
)
