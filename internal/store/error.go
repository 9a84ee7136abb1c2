package store

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	ErrStoreNotFound       = fmt.Errorf("store not found: %w", apperr.ErrNotFound)
	ErrContactInfoNotFound = fmt.Errorf("contact info not found: %w", apperr.ErrNotFound)
	ErrMissingName         = fmt.Errorf("store name is required: %w", apperr.ErrValidation)
	ErrMissingAddress      = fmt.Errorf("store address is required: %w", apperr.ErrValidation)
)
