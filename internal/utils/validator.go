package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail reports whether the address looks deliverable.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword requires at least 8 characters with one uppercase letter,
// one lowercase letter and one digit.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}

	return hasUpper && hasLower && hasDigit
}

// SanitizeEmail lowercases and trims an address so lookups and the unique
// index see one canonical form.
func SanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
