// Package usecase defines the interfaces and implementations for integration
// management use cases. Use cases orchestrate the legacy secret extraction,
// encryption, and persistence so that plaintext credentials never reach the
// repository layer.
package usecase

import (
	"context"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

// IntegrationRepository defines the interface for AppIntegration persistence operations.
type IntegrationRepository interface {
	Create(ctx context.Context, integration *integrationDomain.AppIntegration) error
	Update(ctx context.Context, integration *integrationDomain.AppIntegration) error
	GetByID(ctx context.Context, integrationID uuid.UUID) (*integrationDomain.AppIntegration, error)
	ListByTenant(
		ctx context.Context,
		tenantID string,
		offset, limit int,
	) ([]*integrationDomain.AppIntegration, error)
	Delete(ctx context.Context, integrationID uuid.UUID) error
}

// IntegrationUseCase defines the interface for integration management business logic.
//
// Security Note: returned integrations carry the decrypted Secrets bundle in
// memory. Callers exposing them over HTTP must mask the bundle first.
type IntegrationUseCase interface {
	// Create extracts legacy secret fields from the configuration, merges
	// them with explicitly supplied secrets, ensures a webhook secret exists,
	// encrypts the bundle, and persists the integration.
	Create(
		ctx context.Context,
		tenantID, platform, name string,
		configuration map[string]string,
		secrets cryptoDomain.SecretBundle,
	) (*integrationDomain.AppIntegration, error)
	// Update follows the same encryption path as Create and preserves the
	// existing webhook secret unless the caller supplies a replacement.
	Update(
		ctx context.Context,
		integrationID uuid.UUID,
		name string,
		enabled bool,
		configuration map[string]string,
		secrets cryptoDomain.SecretBundle,
	) (*integrationDomain.AppIntegration, error)
	// GetByID returns the integration with its decrypted secret bundle. A
	// record whose blob cannot be decrypted is returned with empty Secrets
	// rather than failing the request.
	GetByID(ctx context.Context, integrationID uuid.UUID) (*integrationDomain.AppIntegration, error)
	// ListByTenant returns a page of the tenant's integrations with decrypted
	// bundles, degrading per record like GetByID.
	ListByTenant(
		ctx context.Context,
		tenantID string,
		offset, limit int,
	) ([]*integrationDomain.AppIntegration, error)
	Delete(ctx context.Context, integrationID uuid.UUID) error
}
