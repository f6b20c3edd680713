// Package common contains sentinel errors shared across the server components.
package common

import "errors"

var (
	// ErrorNotFound is returned when a requested record does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorInternal hides unexpected store or infrastructure failures.
	ErrorInternal = errors.New("internal error")

	// ErrorUnauthorized is returned when a request carries no credential
	// or a credential that does not match a stored one.
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken is returned when a bearer token fails signature
	// or structural verification.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned when a bearer token is well-formed and
	// correctly signed but past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrEmailTaken is returned when registering with an email that
	// already has a user record.
	ErrEmailTaken = errors.New("email already registered")

	// ErrMissingFields is returned when a registration request omits
	// name, email, or password.
	ErrMissingFields = errors.New("missing required fields")
)
