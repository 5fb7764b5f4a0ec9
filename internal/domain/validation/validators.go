// Package validation holds the field predicates used by the registration form and the completeness check.
package validation

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/TimDev9492/chad-website/internal/errors"
)

const dateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ErrInvalidBooleanString is returned by StrToBool for anything but "true" or "false".
var ErrInvalidBooleanString = errors.New("invalid boolean string")

var breakfastDays = map[string]struct{}{
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
}

// AllowList answers whether a free-text choice is one of the stored options.
type AllowList interface {
	AccomodationExists(ctx context.Context, name string) (bool, error)
	ModeOfTransportExists(ctx context.Context, name string) (bool, error)
}

func IsValidEmailAddress(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhoneNumber accepts E.164 numbers such as +491701234567.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidDate accepts YYYY-MM-DD only if it names a real calendar day.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}

	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}

	return parsed.Format(dateLayout) == s
}

// IsValidPostalAddress requires every field and a numeric postal code in (0, 100000).
func IsValidPostalAddress(street, city, postalCode, countryISO string) bool {
	if strings.TrimSpace(street) == "" || strings.TrimSpace(city) == "" || strings.TrimSpace(countryISO) == "" {
		return false
	}

	code, err := strconv.Atoi(strings.TrimSpace(postalCode))
	if err != nil {
		return false
	}

	return code > 0 && code < 100000
}

// IsValidBreakfastPreferences checks a decoded JSON value: a non-empty object whose keys are
// event weekdays and whose values are booleans.
func IsValidBreakfastPreferences(v any) bool {
	prefs, ok := v.(map[string]any)
	if !ok || len(prefs) == 0 {
		return false
	}

	for day, value := range prefs {
		if _, known := breakfastDays[day]; !known {
			return false
		}
		if _, isBool := value.(bool); !isBool {
			return false
		}
	}

	return true
}

// StrToBool parses "true"/"false" case-insensitively.
func StrToBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidBooleanString, "%q", s)
	}
}

// IsValidAccomodation looks the choice up in the stored allow-list. Store errors are returned, not swallowed.
func IsValidAccomodation(ctx context.Context, allowList AllowList, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}

	ok, err := allowList.AccomodationExists(ctx, name)
	if err != nil {
		return false, errors.Wrap(err, "failed to look up accomodation")
	}

	return ok, nil
}

// IsValidModeOfTransport looks the choice up in the stored allow-list. Store errors are returned, not swallowed.
func IsValidModeOfTransport(ctx context.Context, allowList AllowList, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, nil
	}

	ok, err := allowList.ModeOfTransportExists(ctx, name)
	if err != nil {
		return false, errors.Wrap(err, "failed to look up mode of transport")
	}

	return ok, nil
}
