// Package apperrors defines sentinel errors shared across the seeder.
package apperrors

import "errors"

var (
	ErrUnknownEnv      = errors.New("unknown environment")
	ErrTenantAborted   = errors.New("tenant seeding aborted")
	ErrNoTenantScope   = errors.New("no tenant scope in context")
	ErrInvalidRegistry = errors.New("invalid fixture registry")
)
