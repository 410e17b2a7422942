package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when trying to create a user with an existing email
	ErrDuplicateEmail = errors.New("user with this email already exists")

	// ErrDuplicateSession is returned when trying to create a session with an existing token
	ErrDuplicateSession = errors.New("session with this token already exists")

	// ErrDuplicateListEntry is returned when adding an anime that is already on the profile's list
	ErrDuplicateListEntry = errors.New("anime already in list")
)
