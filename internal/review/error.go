package review

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

const PgForeignKeyViolation = "23503"

var (
	ErrRatingOutOfRange = fmt.Errorf("rating must be between 1 and 5: %w", apperr.ErrValidation)
	ErrStoreNotFound    = fmt.Errorf("store not found: %w", apperr.ErrNotFound)
	ErrCourierNotFound  = fmt.Errorf("courier not found: %w", apperr.ErrNotFound)
)
