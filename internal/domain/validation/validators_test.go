package validation

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAllowList struct {
	accomodations map[string]bool
	transports    map[string]bool
	err           error
}

func (s *stubAllowList) AccomodationExists(_ context.Context, name string) (bool, error) {
	return s.accomodations[name], s.err
}

func (s *stubAllowList) ModeOfTransportExists(_ context.Context, name string) (bool, error) {
	return s.transports[name], s.err
}

func TestIsValidEmailAddress(t *testing.T) {
	assert.True(t, IsValidEmailAddress("max.mustermann@example.de"))
	assert.True(t, IsValidEmailAddress("a+b@sub.domain.org"))
	assert.False(t, IsValidEmailAddress("max@example"))
	assert.False(t, IsValidEmailAddress("max example@example.de"))
	assert.False(t, IsValidEmailAddress(""))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("+491701234567"))
	assert.True(t, IsValidPhoneNumber("+12"))
	assert.False(t, IsValidPhoneNumber("01701234567"))
	assert.False(t, IsValidPhoneNumber("+0123456"))
	assert.False(t, IsValidPhoneNumber("+1234567890123456"))
	assert.False(t, IsValidPhoneNumber("+49 170 1234567"))
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"2000-01-31", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2024-02-30", false},
		{"2024-13-01", false},
		{"2024-1-01", false},
		{"01.01.2000", false},
		{"2000-01-01T00:00:00Z", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDate(tt.in))
		})
	}
}

func TestIsValidPostalAddress(t *testing.T) {
	for _, code := range []string{"1", "10115", "99999"} {
		assert.True(t, IsValidPostalAddress("Hauptstr. 1", "Berlin", code, "DE"), code)
	}

	for _, code := range []string{"0", "100000", "-5", "abc", ""} {
		assert.False(t, IsValidPostalAddress("Hauptstr. 1", "Berlin", code, "DE"), code)
	}

	assert.False(t, IsValidPostalAddress("", "Berlin", "10115", "DE"))
	assert.False(t, IsValidPostalAddress("Hauptstr. 1", "", "10115", "DE"))
	assert.False(t, IsValidPostalAddress("Hauptstr. 1", "Berlin", "10115", ""))
}

func TestIsValidBreakfastPreferences(t *testing.T) {
	assert.True(t, IsValidBreakfastPreferences(map[string]any{"tuesday": true, "friday": false}))
	assert.True(t, IsValidBreakfastPreferences(map[string]any{
		"tuesday": true, "wednesday": true, "thursday": false, "friday": true,
	}))

	assert.False(t, IsValidBreakfastPreferences(map[string]any{}))
	assert.False(t, IsValidBreakfastPreferences(map[string]any{"monday": true}))
	assert.False(t, IsValidBreakfastPreferences(map[string]any{"tuesday": "true"}))
	assert.False(t, IsValidBreakfastPreferences([]any{true, false}))
	assert.False(t, IsValidBreakfastPreferences(nil))
	assert.False(t, IsValidBreakfastPreferences("tuesday"))
}

func TestStrToBool(t *testing.T) {
	v, err := StrToBool("true")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = StrToBool("FALSE")
	require.NoError(t, err)
	assert.False(t, v)

	v, err = StrToBool("True")
	require.NoError(t, err)
	assert.True(t, v)

	for _, in := range []string{"yes", "1", "", "on"} {
		_, err := StrToBool(in)
		assert.ErrorIs(t, err, ErrInvalidBooleanString, in)
	}
}

func TestIsValidAccomodation(t *testing.T) {
	ctx := context.Background()
	allowList := &stubAllowList{accomodations: map[string]bool{"Turnhalle": true}}

	ok, err := IsValidAccomodation(ctx, allowList, "Turnhalle")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsValidAccomodation(ctx, allowList, "Hotel")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = IsValidAccomodation(ctx, allowList, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsValidModeOfTransport_PropagatesStoreError(t *testing.T) {
	storeErr := errors.New("connection refused")
	allowList := &stubAllowList{err: storeErr}

	ok, err := IsValidModeOfTransport(context.Background(), allowList, "Zug")

	assert.False(t, ok)
	assert.ErrorIs(t, err, storeErr)
}
