package storage

import "errors"

// Repositories return these instead of driver errors so services can map them
// without importing pgx.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrConflict       = errors.New("resource conflict (e.g., duplicate key)")
	ErrDuplicateEmail = errors.New("duplicate email")
)
