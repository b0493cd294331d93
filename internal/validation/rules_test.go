package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/integrations/internal/errors"
)

func TestWebhookSecret(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		shouldErr bool
		errMsg    string
	}{
		{
			name:      "valid generated secret",
			secret:    "Ab3$xY9!Qw_r-T5zAb3$xY9!Qw_r-T5z",
			shouldErr: false,
		},
		{
			name:      "valid minimum length",
			secret:    "abcdefgh12345678",
			shouldErr: false,
		},
		{
			name:      "empty is skipped",
			secret:    "",
			shouldErr: false,
		},
		{
			name:      "too short",
			secret:    "abc123",
			shouldErr: true,
			errMsg:    "between 16 and 128",
		},
		{
			name:      "too long",
			secret:    strings.Repeat("a", 129),
			shouldErr: true,
			errMsg:    "between 16 and 128",
		},
		{
			name:      "invalid character",
			secret:    "abcdefgh1234567 ",
			shouldErr: true,
			errMsg:    "must contain only",
		},
		{
			name:      "unicode rejected",
			secret:    "abcdefgh12345é78",
			shouldErr: true,
			errMsg:    "must contain only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WebhookSecret.Validate(tt.secret)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPlatform(t *testing.T) {
	tests := []struct {
		name      string
		platform  string
		shouldErr bool
	}{
		{name: "slack", platform: "slack", shouldErr: false},
		{name: "teams", platform: "teams", shouldErr: false},
		{name: "hyphenated", platform: "pager-duty", shouldErr: false},
		{name: "digits", platform: "s3", shouldErr: false},
		{name: "uppercase", platform: "Slack", shouldErr: true},
		{name: "whitespace", platform: "sla ck", shouldErr: true},
		{name: "slash", platform: "slack/v2", shouldErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Platform.Validate(tt.platform)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsKnownPlatform(t *testing.T) {
	assert.True(t, IsKnownPlatform("slack"))
	assert.True(t, IsKnownPlatform("teams"))
	assert.True(t, IsKnownPlatform("outlook"))
	assert.True(t, IsKnownPlatform("generic"))
	assert.False(t, IsKnownPlatform("pager-duty"))
	assert.False(t, IsKnownPlatform(""))
}

func TestNotBlank(t *testing.T) {
	assert.NoError(t, NotBlank.Validate("value"))
	assert.Error(t, NotBlank.Validate("   "))
	assert.Error(t, NotBlank.Validate("\t\n"))
}

func TestNoWhitespace(t *testing.T) {
	assert.NoError(t, NoWhitespace.Validate("value"))
	assert.Error(t, NoWhitespace.Validate(" value"))
	assert.Error(t, NoWhitespace.Validate("value "))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		err := WrapValidationError(errors.New("name: must not be blank"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "must not be blank")
	})
}
