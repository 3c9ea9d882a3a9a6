package repository

import "errors"

// ErrNotFound is returned when the requested document or row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidToken is returned for any session token that fails verification.
var ErrInvalidToken = errors.New("invalid or expired token")
