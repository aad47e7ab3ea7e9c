// Package validation holds the pure, storage-independent checks applied to
// registration and login input. Every function here is synchronous and
// side-effect free.
package validation

import (
	"regexp"
	"unicode"
)

var (
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
	nameRe     = regexp.MustCompile(`^[A-Za-z\s]+$`)
)

// Error is a client-input violation. The message is user-facing and names
// the first rule the input broke.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func invalid(msg string) error {
	return &Error{Message: msg}
}

// Email reports whether s has a local@domain.tld shape with a 2+ letter
// final label.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// PasswordStrength requires length >= 8 with at least one uppercase letter,
// one lowercase letter, and one digit. No special-character or maximum
// length rule.
func PasswordStrength(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// UsernamePartial accepts the empty string or word characters only. Used
// incrementally while a username is being typed, so a lone non-word
// character is rejected outright.
func UsernamePartial(s string) bool {
	return s == "" || usernameRe.MatchString(s)
}

// NamePartial accepts the empty string or letters and whitespace only.
func NamePartial(s string) bool {
	return s == "" || nameRe.MatchString(s)
}

type SignupForm struct {
	Username        string
	Email           string
	FirstName       string
	LastName        string
	Password        string
	ConfirmPassword string
}

// Signup runs the registration-level checks in order and stops at the first
// failure. Each rule carries its own message.
func (f SignupForm) Validate() error {
	if len(f.Username) < 3 {
		return invalid("Username must be at least 3 characters")
	}
	if !usernameRe.MatchString(f.Username) {
		return invalid("Username may only contain letters, numbers, and underscores")
	}
	if !Email(f.Email) {
		return invalid("Invalid email format")
	}
	if len(f.FirstName) < 2 {
		return invalid("First name is required and must be at least 2 characters")
	}
	if !nameRe.MatchString(f.FirstName) {
		return invalid("First name may only contain letters and spaces")
	}
	if len(f.LastName) < 2 {
		return invalid("Last name is required and must be at least 2 characters")
	}
	if !nameRe.MatchString(f.LastName) {
		return invalid("Last name may only contain letters and spaces")
	}
	if !PasswordStrength(f.Password) {
		return invalid("Password must be at least 8 characters, include uppercase, lowercase, and number")
	}
	if f.Password != f.ConfirmPassword {
		return invalid("Passwords do not match")
	}
	return nil
}
