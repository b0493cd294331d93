// Package domain defines the core domain models for third-party app
// integrations. An integration carries a generic configuration map plus a
// secret bundle that is encrypted before it ever reaches the persistence
// layer; only the encrypted form survives a reload.
package domain

import (
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	appvalidation "github.com/allisson/integrations/internal/validation"
)

// WebhookSecretField is the bundle field holding the secret embedded in the
// integration's webhook URL.
const WebhookSecretField = "webhookSecret"

// AppIntegration represents a tenant's configured third-party integration.
type AppIntegration struct {
	// ID is the unique identifier for the integration.
	ID uuid.UUID `json:"id"`
	// TenantID identifies the owning tenant.
	TenantID string `json:"tenant_id"`
	// Platform names the third-party platform (e.g., "slack", "teams").
	Platform string `json:"platform"`
	// Name is the tenant-facing display name.
	Name string `json:"name"`
	// Enabled controls whether webhook deliveries are accepted.
	Enabled bool `json:"enabled"`
	// Configuration holds non-sensitive settings. Secret fields submitted
	// here are extracted into Secrets before persistence.
	Configuration map[string]string `json:"configuration"`
	// Secrets holds the decrypted credential bundle in memory only.
	Secrets cryptoDomain.SecretBundle `json:"-"`
	// SecretsEncrypted is the persisted ciphertext form of Secrets.
	SecretsEncrypted string `json:"-"`
	// CreatedAt is the UTC timestamp when the integration was created.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAppIntegration creates an integration with a generated UUIDv7 and UTC
// timestamps. Configuration and Secrets maps are copied so the caller's maps
// stay untouched.
func NewAppIntegration(
	tenantID, platform, name string,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*AppIntegration, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	cfg := make(map[string]string, len(configuration))
	for k, v := range configuration {
		cfg[k] = v
	}

	now := time.Now().UTC()
	return &AppIntegration{
		ID:            id,
		TenantID:      tenantID,
		Platform:      platform,
		Name:          name,
		Enabled:       true,
		Configuration: cfg,
		Secrets:       secrets.Clone(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// WebhookSecret returns the integration's webhook secret, or empty when the
// bundle has none (e.g., after a degraded decrypt).
func (i *AppIntegration) WebhookSecret() string {
	return i.Secrets[WebhookSecretField]
}

// Validate checks the integration's caller-supplied fields.
func (i *AppIntegration) Validate() error {
	err := validation.ValidateStruct(i,
		validation.Field(&i.TenantID, validation.Required, appvalidation.NotBlank),
		validation.Field(&i.Platform, validation.Required, appvalidation.Platform),
		validation.Field(&i.Name, validation.Required, appvalidation.NotBlank, validation.Length(1, 255)),
	)
	if err != nil {
		return appvalidation.WrapValidationError(err)
	}

	if secret, ok := i.Secrets[WebhookSecretField]; ok {
		if err := appvalidation.WebhookSecret.Validate(secret); err != nil {
			return appvalidation.WrapValidationError(err)
		}
	}

	return nil
}
