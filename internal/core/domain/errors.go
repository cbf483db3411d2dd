package domain

import "errors"

var (
	// ErrNotFound covers both an absent entity and a role mismatch on
	// lookup (e.g. assigning a non-manager account as manager).
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the principal's role or scope excludes the action.
	ErrForbidden = errors.New("access forbidden")
	// ErrConflict surfaces a uniqueness-constraint violation on a mutation.
	ErrConflict = errors.New("conflict")
	// ErrValidation covers malformed input such as a missing required field.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountExists      = errors.New("account already exists")
)
