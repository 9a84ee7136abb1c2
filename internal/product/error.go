package product

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	ErrProductNotFound = fmt.Errorf("product not found: %w", apperr.ErrNotFound)
	ErrComboNotFound   = fmt.Errorf("product combo not found: %w", apperr.ErrNotFound)
	ErrComboNameTaken  = fmt.Errorf("combo name already exists: %w", apperr.ErrConflict)
	ErrMissingName     = fmt.Errorf("product name is required: %w", apperr.ErrValidation)
	ErrNegativePrice   = fmt.Errorf("price must not be negative: %w", apperr.ErrValidation)

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
