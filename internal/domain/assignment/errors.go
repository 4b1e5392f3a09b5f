package assignment

import "errors"

var (
	// ErrResourceNotFound indicates the referenced dock or hauler does not exist.
	ErrResourceNotFound = errors.New("assigned resource not found")

	// ErrResourceInactive indicates the resource is closed to new assignments.
	ErrResourceInactive = errors.New("resource does not accept assignments")

	// ErrCapacityExceeded indicates an assignment would exceed the
	// resource's capacity.
	ErrCapacityExceeded = errors.New("resource capacity exceeded")

	// ErrCapacityViolation indicates a capacity shrink would leave existing
	// assignments above the new limit.
	ErrCapacityViolation = errors.New("capacity below current occupancy")
)
