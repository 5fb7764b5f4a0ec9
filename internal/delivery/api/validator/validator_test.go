package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactRequest struct {
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"e164phone"`
	DateOfBirth string `validate:"isodate"`
}

func TestCustomValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&contactRequest{
		Email:       "anna@example.com",
		PhoneNumber: "+491701234567",
		DateOfBirth: "2001-04-12",
	})

	assert.NoError(t, err)
}

func TestCustomValidator_CustomTags(t *testing.T) {
	v := New()

	err := v.Validate(&contactRequest{
		Email:       "anna@example.com",
		PhoneNumber: "0170 1234567",
		DateOfBirth: "2001-02-30",
	})

	require.Error(t, err)
	described := Describe(err)
	assert.Contains(t, described, "PhoneNumber: e164phone")
	assert.Contains(t, described, "DateOfBirth: isodate")
}

func TestCustomValidator_Required(t *testing.T) {
	v := New()

	err := v.Validate(&contactRequest{PhoneNumber: "+491701234567", DateOfBirth: "2001-04-12"})

	require.Error(t, err)
	assert.Equal(t, "Email: required", Describe(err))
}

func TestFirstField(t *testing.T) {
	v := New()

	err := v.Validate(&contactRequest{Email: "anna@example.com", PhoneNumber: "0170", DateOfBirth: "bad"})

	field, ok := FirstField(err)
	require.True(t, ok)
	assert.Equal(t, "PhoneNumber", field)

	_, ok = FirstField(assert.AnError)
	assert.False(t, ok)
}
