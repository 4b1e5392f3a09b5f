package hauler

import "errors"

var (
	// ErrHaulerNotFound indicates the hauler was not found.
	ErrHaulerNotFound = errors.New("hauler not found")

	// ErrVersionConflict indicates an optimistic locking conflict.
	ErrVersionConflict = errors.New("version conflict: hauler was modified")
)
