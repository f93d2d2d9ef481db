package utils

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh collision-resistant identifier for a created
// entity.  Uniqueness across concurrent creates rests entirely on the
// randomness of v4 UUIDs; the store enforces no constraint.
func NewID() string {
	return uuid.NewString()
}

// TimestampUTC returns the current UTC time formatted as ISO 8601, the
// form every created_at attribute is stored in.
func TimestampUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
