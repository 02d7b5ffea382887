// Package validation provides custom validation rules for the application.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/qrbadge/internal/errors"
)

var (
	// hexColorRegex matches "#" followed by exactly 3 or 6 hex digits.
	hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	// digitsRegex matches strings composed only of ASCII digits, with no
	// whitespace tolerance on either side.
	digitsRegex = regexp.MustCompile(`^\d+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// HexColor validates hex color format ("#RGB" or "#RRGGBB").
var HexColor = validation.NewStringRuleWithError(
	func(s string) bool {
		return hexColorRegex.MatchString(s)
	},
	validation.NewError("validation_hex_color", "must be a hex color like #000000"),
)

// Digits validates that a string contains ASCII digits only.
var Digits = validation.NewStringRuleWithError(
	func(s string) bool {
		return digitsRegex.MatchString(s)
	},
	validation.NewError("validation_digits", "must contain digits only"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// MinTrimmedLength validates that a string has at least Min runes after
// trimming surrounding whitespace.
type MinTrimmedLength struct {
	Min int
}

// Validate checks if the value meets the configured minimum trimmed length.
func (m MinTrimmedLength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_min_trimmed_length", "must be a string")
	}

	if len([]rune(strings.TrimSpace(s))) < m.Min {
		return validation.NewError(
			"validation_min_trimmed_length",
			fmt.Sprintf("must be at least %d characters", m.Min),
		)
	}

	return nil
}
