package category

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", apperr.ErrNotFound)
	ErrNameTaken        = fmt.Errorf("category name already exists: %w", apperr.ErrConflict)
	ErrMissingName      = fmt.Errorf("category name is required: %w", apperr.ErrValidation)

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
