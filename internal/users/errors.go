package users

import (
	"errors"
)

var (
	// ErrMissingUsername is returned when a registration has no username.
	ErrMissingUsername = errors.New("username is required")

	// ErrMissingContactMethod is returned when a registration carries none of
	// phone, email or telegram.
	ErrMissingContactMethod = errors.New("at least one contact method is required")

	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrNotFound is returned when no user matches the given username or id.
	ErrNotFound = errors.New("user not found")
)
