package credential

import (
	"errors"
)

var (
	// ErrTooShort is returned when the new password is shorter than MinLength.
	ErrTooShort = errors.New("password must be at least 6 characters")

	// ErrMismatch is returned when the confirmation does not equal the new password.
	ErrMismatch = errors.New("password confirmation does not match")

	// ErrEmpty is returned when the new password is empty.
	ErrEmpty = errors.New("password cannot be empty")
)
