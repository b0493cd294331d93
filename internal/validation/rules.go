// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/integrations/internal/errors"
)

// webhookSecretChars is the set of characters accepted in a webhook path
// secret. Generated secrets draw from the same set.
const webhookSecretChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*_-"

// knownPlatforms lists the integration platforms with dedicated secret
// handling. Platforms outside this list are still accepted and treated
// generically.
var knownPlatforms = map[string]bool{
	"slack":   true,
	"teams":   true,
	"outlook": true,
	"generic": true,
}

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// IsKnownPlatform reports whether the platform has dedicated handling.
func IsKnownPlatform(platform string) bool {
	return knownPlatforms[platform]
}

// WebhookSecret validates the shape of a webhook path secret: 16 to 128
// characters from the generation alphabet. Length bounds are wider than the
// generated length so externally provisioned secrets keep working.
var WebhookSecret = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_webhook_secret_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if len(s) < 16 || len(s) > 128 {
		return validation.NewError(
			"validation_webhook_secret_length",
			"must be between 16 and 128 characters",
		)
	}
	for _, r := range s {
		if !strings.ContainsRune(webhookSecretChars, r) {
			return validation.NewError(
				"validation_webhook_secret_charset",
				"must contain only letters, digits and !@#$%^&*_- characters",
			)
		}
	}
	return nil
})

// Platform validates an integration platform identifier: lowercase letters,
// digits and hyphens only.
var Platform = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, r := range s {
			isLower := r >= 'a' && r <= 'z'
			isDigit := r >= '0' && r <= '9'
			if !isLower && !isDigit && r != '-' {
				return false
			}
		}
		return s != ""
	},
	validation.NewError("validation_platform", "must contain only lowercase letters, digits and hyphens"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
