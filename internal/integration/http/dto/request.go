// Package dto provides data transfer objects for integration HTTP request and
// response handling. Responses never carry plaintext secret values; secrets are
// masked before they leave the process.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/integrations/internal/validation"
)

// CreateIntegrationRequest contains the parameters for creating an integration.
// Secret material may arrive in two places: the dedicated secrets map, or mixed
// into configuration the way older clients send it. The use case separates the
// two before anything is persisted.
type CreateIntegrationRequest struct {
	TenantID      string            `json:"tenant_id" binding:"required"`
	Platform      string            `json:"platform" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	Configuration map[string]string `json:"configuration"`
	Secrets       map[string]string `json:"secrets"`
}

// Validate checks if the create integration request is valid.
func (r *CreateIntegrationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Platform,
			validation.Required,
			customValidation.Platform,
		),
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}

// UpdateIntegrationRequest contains the parameters for updating an integration.
// PUT semantics: name, enabled, configuration and secrets replace the stored
// values. Tenant and platform are immutable after creation.
type UpdateIntegrationRequest struct {
	Name          string            `json:"name" binding:"required"`
	Enabled       bool              `json:"enabled"`
	Configuration map[string]string `json:"configuration"`
	Secrets       map[string]string `json:"secrets"`
}

// Validate checks if the update integration request is valid.
func (r *UpdateIntegrationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	)
}
