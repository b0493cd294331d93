// Package service provides supporting services for the integration domain.
package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	appvalidation "github.com/allisson/integrations/internal/validation"
)

// webhookSecretChars is the generation alphabet: alphanumerics plus a small
// set of URL-safe symbols. Distinct from encryption key material.
const webhookSecretChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*_-"

// WebhookSecretLength is the length of generated webhook secrets.
const WebhookSecretLength = 32

// SecretGenerator generates and validates webhook path secrets.
type SecretGenerator interface {
	Generate() (string, error)
	Validate(secret string) error
}

type webhookSecretGenerator struct{}

// NewWebhookSecretGenerator creates a generator producing cryptographically
// secure random webhook secrets.
func NewWebhookSecretGenerator() SecretGenerator {
	return &webhookSecretGenerator{}
}

// Generate creates a 32-character random secret drawn from the generation
// alphabet.
func (g *webhookSecretGenerator) Generate() (string, error) {
	secret := make([]byte, WebhookSecretLength)
	charsLen := big.NewInt(int64(len(webhookSecretChars)))

	for i := 0; i < WebhookSecretLength; i++ {
		n, err := rand.Int(rand.Reader, charsLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random character: %w", err)
		}
		secret[i] = webhookSecretChars[n.Int64()]
	}

	return string(secret), nil
}

// Validate checks length and charset. Accepts a wider length range than
// Generate produces so externally provisioned secrets keep working.
func (g *webhookSecretGenerator) Validate(secret string) error {
	return appvalidation.WebhookSecret.Validate(secret)
}
