package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"a@x.com", "user.name+tag@example.co.uk", "UPPER@EXAMPLE.COM"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "a@b", "@example.com", "a b@example.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		password string
		valid    bool
	}{
		{"Password123", true},
		{"Pw123!abc", true},
		{"short1A", false},
		{"alllowercase1", false},
		{"ALLUPPERCASE1", false},
		{"NoNumbersHere", false},
	}

	for _, tt := range tests {
		if got := ValidatePassword(tt.password); got != tt.valid {
			t.Errorf("ValidatePassword(%q) = %v, want %v", tt.password, got, tt.valid)
		}
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  User@Example.COM "); got != "user@example.com" {
		t.Errorf("Expected 'user@example.com', got %q", got)
	}
}
