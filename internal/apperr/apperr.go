// Package apperr defines the error kinds every domain package wraps its
// sentinels around. The HTTP layer maps kinds to status codes, so a handler
// never needs to know which package a failure came from.
package apperr

import "errors"

var (
	// ErrNotFound: a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: a uniqueness or business-rule violation.
	ErrConflict = errors.New("conflict")

	// ErrValidation: a malformed input value.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidState: an illegal state transition.
	ErrInvalidState = errors.New("invalid state")
)

// IsNotFound reports whether err is classified as a not-found failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict reports whether err is classified as a conflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation reports whether err is classified as a validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsInvalidState reports whether err is classified as an illegal transition.
func IsInvalidState(err error) bool { return errors.Is(err, ErrInvalidState) }
