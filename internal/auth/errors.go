package auth

import "errors"

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotProvisioned is returned when a valid token maps to no user row
	ErrUserNotProvisioned = errors.New("user not provisioned")
)
