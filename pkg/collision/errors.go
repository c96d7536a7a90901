package collision

import "errors"

var (
	// ErrNilCollider is returned when registering a nil collider
	ErrNilCollider = errors.New("collider is nil")
	// ErrDuplicateCollider is returned when a collider ID is already registered
	ErrDuplicateCollider = errors.New("collider already registered")
)
