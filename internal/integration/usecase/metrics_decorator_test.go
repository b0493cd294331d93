package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

// recordingMetrics captures recorded operations for assertions.
type recordingMetrics struct {
	operations []string
	statuses   []string
	durations  int
}

func (r *recordingMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	r.operations = append(r.operations, domain+"/"+operation)
	r.statuses = append(r.statuses, status)
}

func (r *recordingMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	r.durations++
}

// stubUseCase returns canned values so the decorator's pass-through can be checked.
type stubUseCase struct {
	integration *integrationDomain.AppIntegration
	err         error
}

func (s *stubUseCase) Create(
	ctx context.Context,
	tenantID, platform, name string,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*integrationDomain.AppIntegration, error) {
	return s.integration, s.err
}

func (s *stubUseCase) Update(
	ctx context.Context,
	integrationID uuid.UUID,
	name string,
	enabled bool,
	configuration map[string]string,
	secrets cryptoDomain.SecretBundle,
) (*integrationDomain.AppIntegration, error) {
	return s.integration, s.err
}

func (s *stubUseCase) GetByID(
	ctx context.Context,
	integrationID uuid.UUID,
) (*integrationDomain.AppIntegration, error) {
	return s.integration, s.err
}

func (s *stubUseCase) ListByTenant(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*integrationDomain.AppIntegration, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []*integrationDomain.AppIntegration{s.integration}, nil
}

func (s *stubUseCase) Delete(ctx context.Context, integrationID uuid.UUID) error {
	return s.err
}

func TestIntegrationUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()
	integration := &integrationDomain.AppIntegration{ID: uuid.Must(uuid.NewV7())}

	t.Run("records success for each operation", func(t *testing.T) {
		rec := &recordingMetrics{}
		decorated := NewIntegrationUseCaseWithMetrics(&stubUseCase{integration: integration}, rec)

		_, err := decorated.Create(ctx, "tenant-1", "slack", "Alerts", nil, nil)
		require.NoError(t, err)
		_, err = decorated.Update(ctx, integration.ID, "Alerts", true, nil, nil)
		require.NoError(t, err)
		_, err = decorated.GetByID(ctx, integration.ID)
		require.NoError(t, err)
		_, err = decorated.ListByTenant(ctx, "tenant-1", 0, 50)
		require.NoError(t, err)
		require.NoError(t, decorated.Delete(ctx, integration.ID))

		assert.Equal(t, []string{
			"integration/integration_create",
			"integration/integration_update",
			"integration/integration_get",
			"integration/integration_list",
			"integration/integration_delete",
		}, rec.operations)
		for _, status := range rec.statuses {
			assert.Equal(t, "success", status)
		}
		assert.Equal(t, 5, rec.durations)
	})

	t.Run("records error status and passes the error through", func(t *testing.T) {
		rec := &recordingMetrics{}
		decorated := NewIntegrationUseCaseWithMetrics(&stubUseCase{err: assert.AnError}, rec)

		_, err := decorated.GetByID(ctx, integration.ID)
		assert.Equal(t, assert.AnError, err)
		assert.Equal(t, []string{"integration/integration_get"}, rec.operations)
		assert.Equal(t, []string{"error"}, rec.statuses)
	})
}
