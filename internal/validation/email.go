// Package validation contains input validation rules shared by handlers.
package validation

import (
	"errors"
	"regexp"
)

// emailPattern matches the local@domain.tld shape: runs of characters that are
// neither whitespace nor "@" around a single "@" and a final dot segment.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrInvalidEmail is returned when an email does not match the expected shape.
var ErrInvalidEmail = errors.New("invalid email format")

// ValidateEmail checks the email against the shape rule used at signup.
// Uniqueness is intentionally not enforced here or anywhere else.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
