// Package storage defines the sentinel errors shared by storage
// implementations and their callers.
package storage

import "errors"

var (
	// ErrNotFound is returned when a record does not exist or is owned
	// by another user. Callers must not distinguish the two cases.
	ErrNotFound = errors.New("record not found")

	// ErrEmailTaken is returned when registering with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already registered")
)
