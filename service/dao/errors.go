package dao

import "errors"

// Sentinel errors shared by report DAOs; match them with errors.Is.
var (
	// ErrNotFound is returned when the requested report does not exist.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidID indicates that the supplied id is empty.
	ErrInvalidID = errors.New("dao: invalid id")

	// ErrNilEntity is returned when the caller attempts to persist a nil pointer.
	ErrNilEntity = errors.New("dao: nil entity")
)
