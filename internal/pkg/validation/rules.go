// Package validation holds the field rules shared by the request handlers.
package validation

import (
	"regexp"
	"strings"
)

// Minimum lengths enforced before any handler logic runs.
const (
	MinPasswordLength = 6
	MinFullnameLength = 2
	MinUsernameLength = 3
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail canonicalizes an email address before it is compared against
// or written to the store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether the address is syntactically valid.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(NormalizeEmail(email))
}

// MeetsMinLength reports whether the trimmed value has at least min characters.
func MeetsMinLength(value string, min int) bool {
	return len(strings.TrimSpace(value)) >= min
}
