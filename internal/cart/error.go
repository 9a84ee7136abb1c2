package cart

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	// -- Validation & Input --
	ErrInvalidQuantity = fmt.Errorf("quantity must be at least 1: %w", apperr.ErrValidation)

	// -- Resource State --
	ErrCartNotFound     = fmt.Errorf("cart not found: %w", apperr.ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item not found: %w", apperr.ErrNotFound)

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
