// Package common defines sentinel errors and small helpers shared by the
// storage, services and cli layers. Callers should use errors.Is to match
// these values; lower layers wrap them with context via fmt.Errorf("%w").
package common

import "errors"

var (
	// Lookup errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Persistence errors.
	ErrCorrupted = errors.New("corrupted data")
	ErrLoad      = errors.New("load error")
	ErrSave      = errors.New("save error")

	// Store-level mutation errors.
	ErrAddFailed = errors.New("add error")

	// Session / input errors.
	ErrNoSession  = errors.New("no user in session")
	ErrValidation = errors.New("validation error")

	// Unexpected internal failures (e.g. a malformed password hash).
	ErrInternal = errors.New("internal error")
)
