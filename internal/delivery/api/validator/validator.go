// Package validator plugs go-playground/validator into echo.
package validator

import (
	"strings"

	"github.com/TimDev9492/chad-website/internal/domain/validation"
	"github.com/TimDev9492/chad-website/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New returns a validator with the custom tags isodate and e164phone registered.
func New() *CustomValidator {
	v := playground.New(playground.WithRequiredStructEnabled())

	// The tags are static, registration can only fail on programmer error.
	mustRegister(v, "isodate", func(fl playground.FieldLevel) bool {
		return validation.IsValidDate(fl.Field().String())
	})
	mustRegister(v, "e164phone", func(fl playground.FieldLevel) bool {
		return validation.IsValidPhoneNumber(fl.Field().String())
	})

	return &CustomValidator{validate: v}
}

// Validate checks i against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe flattens validation errors into "field: tag" pairs for the error details.
func Describe(err error) string {
	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "invalid input"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		parts = append(parts, fieldErr.Field()+": "+fieldErr.Tag())
	}

	return strings.Join(parts, ", ")
}

// FirstField returns the struct field name of the first failed rule.
func FirstField(err error) (string, bool) {
	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "", false
	}

	return validationErrs[0].StructField(), true
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}
