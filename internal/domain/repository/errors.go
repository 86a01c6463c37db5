package repository

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist
	// (or has been soft-deleted, for user lookups).
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned by UserRepository.Create when a live user
	// with the same email already exists. The storage layer enforces this
	// atomically, so concurrent signups cannot both succeed.
	ErrEmailTaken = errors.New("email already registered")
)
