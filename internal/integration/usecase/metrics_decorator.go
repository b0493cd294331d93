package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
	"github.com/allisson/integrations/internal/metrics"
)

// integrationUseCaseWithMetrics decorates IntegrationUseCase with metrics instrumentation.
type integrationUseCaseWithMetrics struct {
	next    IntegrationUseCase
	metrics metrics.BusinessMetrics
}

// NewIntegrationUseCaseWithMetrics wraps an IntegrationUseCase with metrics recording.
func NewIntegrationUseCaseWithMetrics(
	useCase IntegrationUseCase,
	m metrics.BusinessMetrics,
) IntegrationUseCase {
	return &integrationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record reports the operation's count and duration with its final status.
func (i *integrationUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	i.metrics.RecordOperation(ctx, "integration", operation, status)
	i.metrics.RecordDuration(ctx, "integration", operation, time.Since(start), status)
}

// Create records metrics for integration creation.
func (i *integrationUseCaseWithMetrics) Create(
	ctx context.Context,
	tenantID, platform, name string,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*integrationDomain.AppIntegration, error) {
	start := time.Now()
	integration, err := i.next.Create(ctx, tenantID, platform, name, configuration, secrets)
	i.record(ctx, "integration_create", start, err)
	return integration, err
}

// Update records metrics for integration updates.
func (i *integrationUseCaseWithMetrics) Update(
	ctx context.Context,
	integrationID uuid.UUID,
	name string,
	enabled bool,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*integrationDomain.AppIntegration, error) {
	start := time.Now()
	integration, err := i.next.Update(ctx, integrationID, name, enabled, configuration, secrets)
	i.record(ctx, "integration_update", start, err)
	return integration, err
}

// GetByID records metrics for integration retrieval.
func (i *integrationUseCaseWithMetrics) GetByID(
	ctx context.Context,
	integrationID uuid.UUID,
) (*integrationDomain.AppIntegration, error) {
	start := time.Now()
	integration, err := i.next.GetByID(ctx, integrationID)
	i.record(ctx, "integration_get", start, err)
	return integration, err
}

// ListByTenant records metrics for integration listing.
func (i *integrationUseCaseWithMetrics) ListByTenant(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*integrationDomain.AppIntegration, error) {
	start := time.Now()
	integrations, err := i.next.ListByTenant(ctx, tenantID, offset, limit)
	i.record(ctx, "integration_list", start, err)
	return integrations, err
}

// Delete records metrics for integration deletion.
func (i *integrationUseCaseWithMetrics) Delete(ctx context.Context, integrationID uuid.UUID) error {
	start := time.Now()
	err := i.next.Delete(ctx, integrationID)
	i.record(ctx, "integration_delete", start, err)
	return err
}
