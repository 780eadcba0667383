// Package common defines shared constants and sentinel errors used across
// authdesk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound = errors.New("not found")

	// Conflict errors. The message is part of the storage contract and is
	// shown to the user verbatim.
	ErrEmailAlreadyRegistered = errors.New("This email is already registered")
)
