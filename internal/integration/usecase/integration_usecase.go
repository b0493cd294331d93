package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	cryptoService "github.com/allisson/integrations/internal/crypto/service"
	"github.com/allisson/integrations/internal/database"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
	integrationService "github.com/allisson/integrations/internal/integration/service"
	"github.com/allisson/integrations/internal/metrics"
)

// integrationUseCase implements the IntegrationUseCase interface.
type integrationUseCase struct {
	txManager       database.TxManager
	integrationRepo IntegrationRepository
	cipher          cryptoService.BundleCipher
	ring            *cryptoDomain.KeyRing
	secretGenerator integrationService.SecretGenerator
	businessMetrics metrics.BusinessMetrics
	logger          *slog.Logger
}

// NewIntegrationUseCase creates a new integration use case instance with the provided dependencies.
func NewIntegrationUseCase(
	txManager database.TxManager,
	integrationRepo IntegrationRepository,
	cipher cryptoService.BundleCipher,
	ring *cryptoDomain.KeyRing,
	secretGenerator integrationService.SecretGenerator,
	businessMetrics metrics.BusinessMetrics,
	logger *slog.Logger,
) IntegrationUseCase {
	return &integrationUseCase{
		txManager:       txManager,
		integrationRepo: integrationRepo,
		cipher:          cipher,
		ring:            ring,
		secretGenerator: secretGenerator,
		businessMetrics: businessMetrics,
		logger:          logger,
	}
}

// Create extracts legacy secrets, ensures a webhook secret, encrypts, and persists.
func (u *integrationUseCase) Create(
	ctx context.Context,
	tenantID, platform, name string,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*integrationDomain.AppIntegration, error) {
	extracted, remaining := integrationDomain.ExtractLegacySecrets(platform, configuration)
	extracted = extracted.Merge(secrets)

	integration, err := integrationDomain.NewAppIntegration(tenantID, platform, name, remaining, extracted)
	if err != nil {
		return nil, err
	}

	if err := integration.Validate(); err != nil {
		return nil, err
	}

	if integration.WebhookSecret() == "" {
		secret, err := u.secretGenerator.Generate()
		if err != nil {
			return nil, err
		}
		integration.Secrets[integrationDomain.WebhookSecretField] = secret
	}

	if err := u.encryptSecrets(integration); err != nil {
		return nil, err
	}

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.integrationRepo.Create(txCtx, integration)
	})
	if err != nil {
		return nil, err
	}

	return integration, nil
}

// Update re-runs the extraction and encryption path, preserving the existing
// webhook secret unless the caller supplies a replacement. Secret rotation is
// an explicit action, never a side effect of an unrelated update.
func (u *integrationUseCase) Update(
	ctx context.Context,
	integrationID uuid.UUID,
	name string,
	enabled bool,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*integrationDomain.AppIntegration, error) {
	existing, err := u.GetByID(ctx, integrationID)
	if err != nil {
		return nil, err
	}

	extracted, remaining := integrationDomain.ExtractLegacySecrets(existing.Platform, configuration)
	extracted = extracted.Merge(secrets)

	if extracted[integrationDomain.WebhookSecretField] == "" {
		if existingSecret := existing.WebhookSecret(); existingSecret != "" {
			extracted[integrationDomain.WebhookSecretField] = existingSecret
		} else {
			// Existing secret lost to a degraded decrypt; issue a fresh one
			// so the webhook URL can be reprovisioned.
			secret, err := u.secretGenerator.Generate()
			if err != nil {
				return nil, err
			}
			extracted[integrationDomain.WebhookSecretField] = secret
		}
	}

	existing.Name = name
	existing.Enabled = enabled
	existing.Configuration = remaining
	existing.Secrets = extracted
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := u.encryptSecrets(existing); err != nil {
		return nil, err
	}

	err = u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.integrationRepo.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	return existing, nil
}

// GetByID retrieves an integration with its decrypted secret bundle.
func (u *integrationUseCase) GetByID(
	ctx context.Context,
	integrationID uuid.UUID,
) (*integrationDomain.AppIntegration, error) {
	integration, err := u.integrationRepo.GetByID(ctx, integrationID)
	if err != nil {
		return nil, err
	}

	u.decryptSecrets(ctx, integration)
	return integration, nil
}

// ListByTenant retrieves a page of the tenant's integrations with decrypted bundles.
func (u *integrationUseCase) ListByTenant(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*integrationDomain.AppIntegration, error) {
	integrations, err := u.integrationRepo.ListByTenant(ctx, tenantID, offset, limit)
	if err != nil {
		return nil, err
	}

	for _, integration := range integrations {
		u.decryptSecrets(ctx, integration)
	}
	return integrations, nil
}

// Delete removes the integration; the encrypted blob goes with the row.
func (u *integrationUseCase) Delete(ctx context.Context, integrationID uuid.UUID) error {
	return u.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return u.integrationRepo.Delete(txCtx, integrationID)
	})
}

// encryptSecrets encrypts the bundle under the ring's active key and stores
// the blob on the integration. Plaintext secrets never reach the repository
// without the corresponding ciphertext being set.
func (u *integrationUseCase) encryptSecrets(integration *integrationDomain.AppIntegration) error {
	entry, found := u.ring.Active()
	if !found {
		return cryptoDomain.ErrKeyNotFound
	}

	blob, err := u.cipher.Encrypt(integration.Secrets, entry)
	if err != nil {
		return err
	}

	integration.SecretsEncrypted = blob.String()
	return nil
}

// decryptSecrets populates the integration's Secrets from its encrypted blob.
// A blob that references a missing key or fails authentication degrades to an
// empty bundle with a log line and an operational counter; one stranded or
// tampered record must not break a read or list endpoint.
func (u *integrationUseCase) decryptSecrets(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
) {
	integration.Secrets = cryptoDomain.SecretBundle{}

	if integration.SecretsEncrypted == "" {
		return
	}

	blob, err := cryptoDomain.NewEncryptedBlob(integration.SecretsEncrypted)
	if err == nil {
		var bundle cryptoDomain.SecretBundle
		bundle, err = u.cipher.Decrypt(blob, u.ring)
		if err == nil {
			integration.Secrets = bundle
			return
		}
	}

	u.logger.Warn("failed to decrypt integration secrets",
		slog.String("integration_id", integration.ID.String()),
		slog.String("key_id", blob.KeyID),
		slog.Any("error", err),
	)
	u.businessMetrics.RecordOperation(ctx, "crypto", "secret_decrypt", "error")
}
