package domain

import "errors"

// Error kinds reported by the store layer. Repositories wrap the driver error with one of these,
// so callers can match the kind with errors.Is while the cause stays in the chain.
var (
	ErrConnection     = errors.New("failed to acquire a database connection")
	ErrQuery          = errors.New("query failed")
	ErrTransaction    = errors.New("failed to begin or commit transaction")
	ErrDataConversion = errors.New("failed to convert stored data")
	// ErrNotFound is returned when an update or delete affected zero rows.
	ErrNotFound = errors.New("not found")
)

// ErrInvalidInput is returned when the request is invalid (e.g. an inverted time range).
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidReference is returned when a write points at a team or employee that does not exist.
var ErrInvalidReference = errors.New("invalid reference")

// ErrPasswordMismatch is returned by a PasswordHasher when the password does not match the hash.
var ErrPasswordMismatch = errors.New("password mismatch")

// ErrInvalidSession is returned when a session token cannot be trusted.
var ErrInvalidSession = errors.New("invalid session")
