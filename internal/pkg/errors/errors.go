// Package errors holds the sentinel failures shared across the persistence
// engine. Callers classify with errors.Is.
package errors

import "errors"

var (
	// ErrConstraintViolation is a sentinel for rows rejected by the store
	// (foreign key, uniqueness, not-null, check).
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrSessionAcquisition is a sentinel for a factory that cannot produce
	// an isolated session.
	ErrSessionAcquisition = errors.New("session acquisition")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSessionReleased is a sentinel for use of a session after release.
	ErrSessionReleased = errors.New("session released")
)
