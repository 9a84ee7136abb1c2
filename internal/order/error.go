package order

import (
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	ErrOrderNotFound      = fmt.Errorf("order not found: %w", apperr.ErrNotFound)
	ErrCartNotFound       = fmt.Errorf("cart not found: %w", apperr.ErrNotFound)
	ErrCartEmpty          = fmt.Errorf("cart is empty: %w", apperr.ErrConflict)
	ErrCourierUnavailable = fmt.Errorf("courier not available: %w", apperr.ErrNotFound)
	ErrMissingAddress     = fmt.Errorf("delivery address is required: %w", apperr.ErrValidation)
	ErrUnknownStatus      = fmt.Errorf("unknown order status: %w", apperr.ErrValidation)
	ErrInvalidTransition  = fmt.Errorf("illegal status transition: %w", apperr.ErrInvalidState)
	ErrNotAssignable      = fmt.Errorf("order is not pending: %w", apperr.ErrInvalidState)
)
