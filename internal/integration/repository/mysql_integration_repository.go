package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/allisson/integrations/internal/database"
	apperrors "github.com/allisson/integrations/internal/errors"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

// MySQLIntegrationRepository implements AppIntegration persistence for MySQL databases.
type MySQLIntegrationRepository struct {
	db *sql.DB
}

// NewMySQLIntegrationRepository creates a new MySQL AppIntegration repository instance.
func NewMySQLIntegrationRepository(db *sql.DB) *MySQLIntegrationRepository {
	return &MySQLIntegrationRepository{db: db}
}

// Create inserts a new integration into the MySQL database.
func (m *MySQLIntegrationRepository) Create(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
) error {
	querier := database.GetTx(ctx, m.db)

	configuration, err := marshalConfiguration(integration.Configuration)
	if err != nil {
		return err
	}

	query := `INSERT INTO integrations
			  (id, tenant_id, platform, name, enabled, configuration, secrets_encrypted, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		integration.ID.String(),
		integration.TenantID,
		integration.Platform,
		integration.Name,
		integration.Enabled,
		configuration,
		integration.SecretsEncrypted,
		integration.CreatedAt,
		integration.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create integration")
	}
	return nil
}

// Update persists changes to an existing integration.
func (m *MySQLIntegrationRepository) Update(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
) error {
	querier := database.GetTx(ctx, m.db)

	configuration, err := marshalConfiguration(integration.Configuration)
	if err != nil {
		return err
	}

	query := `UPDATE integrations
			  SET name = ?, enabled = ?, configuration = ?, secrets_encrypted = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		integration.Name,
		integration.Enabled,
		configuration,
		integration.SecretsEncrypted,
		integration.UpdatedAt,
		integration.ID.String(),
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update integration")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to update integration")
	}
	if rows == 0 {
		return integrationDomain.ErrIntegrationNotFound
	}
	return nil
}

// GetByID retrieves an integration by its id.
func (m *MySQLIntegrationRepository) GetByID(
	ctx context.Context,
	integrationID uuid.UUID,
) (*integrationDomain.AppIntegration, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, tenant_id, platform, name, enabled, configuration, secrets_encrypted, created_at, updated_at
			  FROM integrations
			  WHERE id = ?
			  LIMIT 1`

	row := querier.QueryRowContext(ctx, query, integrationID.String())
	integration, err := scanIntegration(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, integrationDomain.ErrIntegrationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get integration by id")
	}

	return integration, nil
}

// ListByTenant retrieves a page of the tenant's integrations ordered by creation time.
func (m *MySQLIntegrationRepository) ListByTenant(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*integrationDomain.AppIntegration, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, tenant_id, platform, name, enabled, configuration, secrets_encrypted, created_at, updated_at
			  FROM integrations
			  WHERE tenant_id = ?
			  ORDER BY created_at ASC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list integrations")
	}
	defer func() {
		_ = rows.Close()
	}()

	var integrations []*integrationDomain.AppIntegration
	for rows.Next() {
		integration, err := scanIntegration(rows.Scan)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan integration")
		}
		integrations = append(integrations, integration)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list integrations")
	}

	return integrations, nil
}

// Delete removes an integration and its encrypted blob in one statement.
func (m *MySQLIntegrationRepository) Delete(ctx context.Context, integrationID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM integrations WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, integrationID.String())
	if err != nil {
		return apperrors.Wrap(err, "failed to delete integration")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to delete integration")
	}
	if rows == 0 {
		return integrationDomain.ErrIntegrationNotFound
	}
	return nil
}
