package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// NewID returns a prefixed opaque identifier such as "profile_1f8a3c92be04".
// The suffix is the first 12 hex characters of a random UUID.
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:12]
}

// NewSessionToken returns an opaque, unguessable session token of the form
// "session_<32 hex chars>".
func NewSessionToken() string {
	u := uuid.New()
	return "session_" + hex.EncodeToString(u[:])
}
