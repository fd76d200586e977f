package utils

import (
	"errors"
	"strings"
)

// MinPasswordLength matches the server's signup rule.
const MinPasswordLength = 6

var (
	ErrPasswordTooShort = errors.New("password must be at least 6 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrFieldRequired    = errors.New("this field is required")
)

// ValidatePassword checks the new password and its confirmation before any
// network call is made; failures surface inline on the form.
func ValidatePassword(password, confirmation string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}

// RequireFields returns an error naming the first empty field.
func RequireFields(fields map[string]string, order ...string) error {
	for _, name := range order {
		if strings.TrimSpace(fields[name]) == "" {
			return errors.New(name + " is required")
		}
	}
	return nil
}
