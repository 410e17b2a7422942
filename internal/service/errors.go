package service

import "errors"

// Authorization failure taxonomy. The first three all surface to callers as
// a generic 401; they stay distinct here so logs and tests can tell them
// apart.
var (
	// ErrUnauthenticated is returned when no credential was supplied
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidSession is returned when the supplied token matches no session
	ErrInvalidSession = errors.New("invalid session")

	// ErrSessionExpired is returned when the session's expiry is in the past
	ErrSessionExpired = errors.New("session expired")

	// ErrAccountNotFound is returned when a valid session points at a
	// deleted account. This is a data-integrity fault, not a credential
	// problem.
	ErrAccountNotFound = errors.New("account not found")
)

var (
	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when signing up with a registered email
	ErrEmailTaken = errors.New("email already registered")

	// ErrExternalAuthFailure is returned when the session-exchange provider
	// call fails, times out, or returns an unusable body
	ErrExternalAuthFailure = errors.New("external authentication failed")
)

var (
	// ErrProfileNotFound covers both a missing profile and a profile owned
	// by another account; the two are deliberately indistinguishable.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileLimitExceeded is returned when creating a profile beyond the cap
	ErrProfileLimitExceeded = errors.New("maximum number of profiles reached")

	// ErrDuplicateListEntry is returned when adding an anime already on the list
	ErrDuplicateListEntry = errors.New("already in list")

	// ErrResourceNotFound is returned for missing catalog or list resources
	ErrResourceNotFound = errors.New("resource not found")
)
