package dto

import (
	"time"

	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

// IntegrationResponse contains the integration data returned by the API.
// Secrets are always masked; the raw values and the encrypted blob never
// appear in a response.
type IntegrationResponse struct {
	ID            string            `json:"id"`
	TenantID      string            `json:"tenant_id"`
	Platform      string            `json:"platform"`
	Name          string            `json:"name"`
	Enabled       bool              `json:"enabled"`
	Configuration map[string]string `json:"configuration"`
	Secrets       map[string]string `json:"secrets"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ListIntegrationsResponse contains a paginated list of integrations.
type ListIntegrationsResponse struct {
	Integrations []*IntegrationResponse `json:"integrations"`
	Offset       int                    `json:"offset"`
	Limit        int                    `json:"limit"`
}

// MapIntegrationToResponse converts a domain integration to its API
// representation, masking every secret field on the way out.
func MapIntegrationToResponse(integration *integrationDomain.AppIntegration) *IntegrationResponse {
	return &IntegrationResponse{
		ID:            integration.ID.String(),
		TenantID:      integration.TenantID,
		Platform:      integration.Platform,
		Name:          integration.Name,
		Enabled:       integration.Enabled,
		Configuration: integration.Configuration,
		Secrets:       integrationDomain.MaskBundle(integration.Secrets),
		CreatedAt:     integration.CreatedAt,
		UpdatedAt:     integration.UpdatedAt,
	}
}

// MapIntegrationsToListResponse converts a page of domain integrations to the
// list API representation.
func MapIntegrationsToListResponse(
	integrations []*integrationDomain.AppIntegration,
	offset, limit int,
) *ListIntegrationsResponse {
	responses := make([]*IntegrationResponse, 0, len(integrations))
	for _, integration := range integrations {
		responses = append(responses, MapIntegrationToResponse(integration))
	}
	return &ListIntegrationsResponse{
		Integrations: responses,
		Offset:       offset,
		Limit:        limit,
	}
}
