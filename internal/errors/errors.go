package errors

import (
	"errors"
)

var (
	ErrEmailAlreadyInUse     = errors.New("email already in use")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired refresh token")

	// ErrRotationConflict is returned by the store when a concurrent refresh
	// already rotated the presented token. It never reaches clients; the
	// service reports it as ErrInvalidOrExpiredToken.
	ErrRotationConflict = errors.New("refresh token already rotated")

	ErrInvalidUnits = errors.New("units must be metric or imperial")
)
