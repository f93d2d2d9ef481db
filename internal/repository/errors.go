// Package repository defines sentinel errors reused across the entity
// repositories.  Handlers compare against these with errors.Is to pick
// the HTTP status for a failure instead of inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when registering an email that is already
// taken within the tenant.  Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrUserNotFound is returned when no account matches the
// (tenant_id, email) pair.  Login treats it the same as a bad password.
var ErrUserNotFound = errors.New("user not found")
