// Package validate holds the stateless credential checks applied before any
// hashing or persistence work. Everything here is pure so the whole contract
// is table-testable.
package validate

import (
	"regexp"
	"unicode/utf8"
)

// emailPattern requires a non-empty local part, an @, and a domain with at
// least one dot. No whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	digitPattern = regexp.MustCompile(`[0-9]`)
	upperPattern = regexp.MustCompile(`[A-Z]`)
	lowerPattern = regexp.MustCompile(`[a-z]`)
)

// PasswordResult carries every failed strength check, in check order, so a
// caller can surface all problems at once instead of one per attempt.
type PasswordResult struct {
	IsValid bool
	Errors  []string
}

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailPattern.MatchString(s)
}

// Password runs the strength checks independently and in a fixed order:
// length, uppercase, lowercase, digit.
func Password(s string) PasswordResult {
	var errs []string

	// Length counts characters, not bytes, so multibyte passwords are not
	// given credit for their encoding width.
	if utf8.RuneCountInString(s) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	if !upperPattern.MatchString(s) {
		errs = append(errs, "Password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(s) {
		errs = append(errs, "Password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(s) {
		errs = append(errs, "Password must contain at least one number")
	}

	return PasswordResult{IsValid: len(errs) == 0, Errors: errs}
}
