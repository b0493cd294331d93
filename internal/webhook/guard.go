// Package webhook guards inbound webhook deliveries. The guard checks the
// secret embedded in the webhook URL before any payload deserialization or
// platform-specific verification runs.
package webhook

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/google/uuid"

	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
	integrationUsecase "github.com/allisson/integrations/internal/integration/usecase"
)

// SecretGuard validates an inbound webhook's embedded secret against the
// integration's stored webhook secret.
type SecretGuard interface {
	// Validate loads the integration and compares its decrypted webhook
	// secret with the supplied one in constant time. ok is false when the
	// integration does not exist, is disabled, has no usable secret, or the
	// secrets differ; callers must render all of those identically so probing
	// ids cannot be told apart from probing secrets.
	Validate(
		ctx context.Context,
		integrationID uuid.UUID,
		suppliedSecret string,
	) (*integrationDomain.AppIntegration, bool)
}

type secretGuard struct {
	integrations integrationUsecase.IntegrationUseCase
	logger       *slog.Logger
}

// NewSecretGuard creates a SecretGuard backed by the integration use case.
func NewSecretGuard(
	integrations integrationUsecase.IntegrationUseCase,
	logger *slog.Logger,
) SecretGuard {
	return &secretGuard{
		integrations: integrations,
		logger:       logger,
	}
}

// Validate implements the SecretGuard contract. Mismatches are routine
// scanning traffic, so they log at debug only.
func (g *secretGuard) Validate(
	ctx context.Context,
	integrationID uuid.UUID,
	suppliedSecret string,
) (*integrationDomain.AppIntegration, bool) {
	integration, err := g.integrations.GetByID(ctx, integrationID)
	if err != nil {
		g.logger.Debug("webhook integration lookup failed",
			slog.String("integration_id", integrationID.String()),
			slog.Any("error", err),
		)
		return nil, false
	}

	if !integration.Enabled {
		g.logger.Debug("webhook delivery for disabled integration",
			slog.String("integration_id", integrationID.String()),
		)
		return nil, false
	}

	storedSecret := integration.WebhookSecret()
	if storedSecret == "" {
		// Degraded decrypt or never provisioned; treat like a mismatch.
		g.logger.Debug("webhook secret unavailable",
			slog.String("integration_id", integrationID.String()),
		)
		return nil, false
	}

	if subtle.ConstantTimeCompare([]byte(storedSecret), []byte(suppliedSecret)) != 1 {
		g.logger.Debug("webhook secret mismatch",
			slog.String("integration_id", integrationID.String()),
		)
		return nil, false
	}

	return integration, true
}
