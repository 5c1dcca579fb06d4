// Package common defines sentinel errors and small utilities shared across
// the PhotoHub server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Validation errors.
	ErrFieldsRequired   = errors.New("required fields missing")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrUsernameTaken    = errors.New("username already in use")
	ErrEmailTaken       = errors.New("email already in use")

	// Auth errors. Unknown account and wrong password both collapse into
	// ErrInvalidCredentials so callers cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
