package domain

import "time"

// Session is an opaque bearer credential mapping to a user with an absolute
// expiry. One user may hold multiple concurrent sessions; logout deletes a
// single session row.
type Session struct {
	Token     string    `json:"session_token" db:"token"`
	UserID    string    `json:"user_id" db:"user_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// IsExpired reports whether the session expiry is in the past. Timestamps
// are compared in UTC.
func (s *Session) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt.UTC())
}
