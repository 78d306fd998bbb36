package storage

import "errors"

// Record store errors.
var (
	// ErrNotFound is returned when a ticker has no stored records.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a (ticker, year) pair is already stored.
	// Stores are insert-only within a run.
	ErrDuplicateKey = errors.New("duplicate key: ticker-year already stored")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
