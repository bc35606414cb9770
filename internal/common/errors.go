// Package common defines shared constants and sentinel errors used across
// the site's layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal         = errors.New("internal error")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Credential conflicts on registration. The pre-insert check reports
	// them in priority order: both, then username, then email. The unique
	// indexes remain the authority when two registrations race.
	ErrUsernameTaken         = errors.New("username already taken")
	ErrEmailTaken            = errors.New("email already taken")
	ErrUsernameAndEmailTaken = errors.New("username and email already taken")

	// Auth errors.
	ErrNoSuchEmail  = errors.New("no user with this email")
	ErrBadPassword  = errors.New("incorrect password")
	ErrInvalidToken = errors.New("invalid token")
)
