package user

import (
	"errors"
	"fmt"

	"mealdash-be/internal/apperr"
)

var (
	// -- Resource State --
	ErrUserNotFound         = fmt.Errorf("user not found: %w", apperr.ErrNotFound)
	ErrUsernameTaken        = fmt.Errorf("username already taken: %w", apperr.ErrConflict)
	ErrRefreshTokenNotFound = fmt.Errorf("refresh token not found: %w", apperr.ErrNotFound)

	// -- Validation & Input --
	ErrInvalidRole     = fmt.Errorf("invalid role: %w", apperr.ErrValidation)
	ErrMissingUsername = fmt.Errorf("username is required: %w", apperr.ErrValidation)
	ErrMissingPassword = fmt.Errorf("password is required: %w", apperr.ErrValidation)

	// -- Authentication --
	ErrInvalidCredentials = errors.New("invalid username or password")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
