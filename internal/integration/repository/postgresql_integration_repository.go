// Package repository implements data persistence for app integrations.
// Repositories support both PostgreSQL and MySQL; the configuration map is
// stored as a JSON column and the secret bundle only as its encrypted blob.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/allisson/integrations/internal/database"
	apperrors "github.com/allisson/integrations/internal/errors"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

// PostgreSQLIntegrationRepository implements AppIntegration persistence for PostgreSQL databases.
type PostgreSQLIntegrationRepository struct {
	db *sql.DB
}

// NewPostgreSQLIntegrationRepository creates a new PostgreSQL AppIntegration repository instance.
func NewPostgreSQLIntegrationRepository(db *sql.DB) *PostgreSQLIntegrationRepository {
	return &PostgreSQLIntegrationRepository{db: db}
}

// Create inserts a new integration into the PostgreSQL database.
func (p *PostgreSQLIntegrationRepository) Create(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
) error {
	querier := database.GetTx(ctx, p.db)

	configuration, err := marshalConfiguration(integration.Configuration)
	if err != nil {
		return err
	}

	query := `INSERT INTO integrations
			  (id, tenant_id, platform, name, enabled, configuration, secrets_encrypted, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = querier.ExecContext(
		ctx,
		query,
		integration.ID,
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
func (p *PostgreSQLIntegrationRepository) Update(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
) error {
	querier := database.GetTx(ctx, p.db)

	configuration, err := marshalConfiguration(integration.Configuration)
	if err != nil {
		return err
	}

	query := `UPDATE integrations
			  SET name = $1, enabled = $2, configuration = $3, secrets_encrypted = $4, updated_at = $5
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		integration.Name,
		integration.Enabled,
		configuration,
		integration.SecretsEncrypted,
		integration.UpdatedAt,
		integration.ID,
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
func (p *PostgreSQLIntegrationRepository) GetByID(
	ctx context.Context,
	integrationID uuid.UUID,
) (*integrationDomain.AppIntegration, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, tenant_id, platform, name, enabled, configuration, secrets_encrypted, created_at, updated_at
			  FROM integrations
			  WHERE id = $1
			  LIMIT 1`

	row := querier.QueryRowContext(ctx, query, integrationID)
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
func (p *PostgreSQLIntegrationRepository) ListByTenant(
	ctx context.Context,
	tenantID string,
	offset, limit int,
) ([]*integrationDomain.AppIntegration, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, tenant_id, platform, name, enabled, configuration, secrets_encrypted, created_at, updated_at
			  FROM integrations
			  WHERE tenant_id = $1
			  ORDER BY created_at ASC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, tenantID, offset, limit)
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
func (p *PostgreSQLIntegrationRepository) Delete(ctx context.Context, integrationID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM integrations WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, integrationID)
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

// marshalConfiguration serializes the configuration map for storage.
func marshalConfiguration(configuration map[string]string) (string, error) {
	if configuration == nil {
		configuration = map[string]string{}
	}
	data, err := json.Marshal(configuration)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to serialize configuration")
	}
	return string(data), nil
}

// scanIntegration reads one integration row using the provided scan function.
func scanIntegration(scan func(dest ...any) error) (*integrationDomain.AppIntegration, error) {
	var integration integrationDomain.AppIntegration
	var configuration string

	err := scan(
		&integration.ID,
		&integration.TenantID,
		&integration.Platform,
		&integration.Name,
		&integration.Enabled,
		&configuration,
		&integration.SecretsEncrypted,
		&integration.CreatedAt,
		&integration.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(configuration), &integration.Configuration); err != nil {
		return nil, apperrors.Wrap(err, "failed to deserialize configuration")
	}

	return &integration, nil
}
