package domain

import "errors"

var (
	// ErrInvalidInput covers malformed or out-of-policy request fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserExists is returned on a username uniqueness violation,
	// both at registration and on rename.
	ErrUserExists = errors.New("username already taken")

	// ErrUserNotFound is returned when an identity lookup by id misses.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is the single rejection for both an unknown
	// username and a wrong password, so login responses cannot be used
	// to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when an authenticated caller is neither
	// the owner of the target identity nor an admin.
	ErrForbidden = errors.New("access forbidden")
)
