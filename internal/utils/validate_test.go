package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret1", "secret1"))
	assert.ErrorIs(t, ValidatePassword("short", "short"), ErrPasswordTooShort)
	assert.ErrorIs(t, ValidatePassword("secret1", "secret2"), ErrPasswordMismatch)
	assert.ErrorIs(t, ValidatePassword("", ""), ErrPasswordTooShort)
}

func TestRequireFields(t *testing.T) {
	fields := map[string]string{
		"name":  "Jane",
		"email": "",
		"phone": "  ",
	}

	assert.NoError(t, RequireFields(fields, "name"))

	err := RequireFields(fields, "name", "email", "phone")
	assert.EqualError(t, err, "email is required")

	err = RequireFields(fields, "phone")
	assert.EqualError(t, err, "phone is required", "whitespace counts as empty")
}
