package courier

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	ErrCourierNotFound = fmt.Errorf("courier not found: %w", apperr.ErrNotFound)
	ErrAlreadyCourier  = fmt.Errorf("user is already a courier: %w", apperr.ErrConflict)
	ErrInvalidType     = fmt.Errorf("invalid courier type: %w", apperr.ErrValidation)

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
