package repositories

import "errors"

// Sentinel outcomes the handlers map onto HTTP statuses. Anything else
// coming out of a repository is a store error.
var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a conditional write lost: zero rows matched
	// where exactly one was required. For slot claims this covers both
	// "already claimed" and "no such slot" -- the single conditional
	// UPDATE cannot tell them apart, and splitting the cases would need
	// a separate read.
	ErrConflict = errors.New("conflict")
	// ErrNoEffect means the row may exist but nothing changed.
	ErrNoEffect = errors.New("no rows changed")
)
