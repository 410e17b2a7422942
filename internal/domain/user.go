package domain

import "time"

// User represents an account in the system. PasswordHash is empty for
// accounts created through the external session exchange.
type User struct {
	ID           string    `json:"user_id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Picture      *string   `json:"picture" db:"picture"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Profile represents a viewing persona owned by one account. Profile-scoped
// data (watch history, list, ratings, reviews) always hangs off a profile,
// never directly off a user.
type Profile struct {
	ID        string    `json:"profile_id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Avatar    string    `json:"avatar" db:"avatar"`
	IsKid     bool      `json:"is_kid" db:"is_kid"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MaxProfilesPerUser caps the number of profiles an account may hold.
const MaxProfilesPerUser = 5
