package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Principal errors
var (
	ErrPrincipalNotFound  = errors.New("principal not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrPasscodeMismatch   = errors.New("old passcode is incorrect")
	ErrInvalidPasscode    = errors.New("passcode must be between 4 and 6 characters")
	ErrUnknownRole        = errors.New("unknown principal role")
)

// Profile errors
var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDuplicateProfile = errors.New("username or email already exists")
)
