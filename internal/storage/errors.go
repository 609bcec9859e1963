package storage

import "errors"

// Storage errors for the ingest-once stores.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when attempting to insert a record with a
	// key that already exists. Position batches and analysis snapshots are
	// ingest-once; updates are not allowed.
	ErrDuplicateKey = errors.New("duplicate key: ingest-once store does not allow updates")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
