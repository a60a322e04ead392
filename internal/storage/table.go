package storage

import "context"

// Table loads and saves a whole keyed table of T values.
type Table[T any] interface {
	// Load returns the complete table. A table that does not exist yet is
	// returned empty, never as an error.
	Load(ctx context.Context) (map[string]T, error)

	// Save replaces the stored table with data, all or nothing.
	Save(ctx context.Context, data map[string]T) error

	// Location describes where the table lives, for logs and messages.
	Location() string
}
