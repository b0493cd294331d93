// Package http provides HTTP handlers for integration management operations.
// Integration secrets are encrypted at rest and masked in every response.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/integrations/internal/httputil"
	"github.com/allisson/integrations/internal/integration/http/dto"
	integrationUsecase "github.com/allisson/integrations/internal/integration/usecase"
	customValidation "github.com/allisson/integrations/internal/validation"
)

// IntegrationHandler handles HTTP requests for integration management.
type IntegrationHandler struct {
	integrationUseCase integrationUsecase.IntegrationUseCase
	logger             *slog.Logger
}

// NewIntegrationHandler creates a new integration handler with required dependencies.
func NewIntegrationHandler(
	integrationUseCase integrationUsecase.IntegrationUseCase,
	logger *slog.Logger,
) *IntegrationHandler {
	return &IntegrationHandler{
		integrationUseCase: integrationUseCase,
		logger:             logger,
	}
}

// CreateHandler creates a new integration.
// POST /v1/integrations
// Returns 201 Created with masked secrets.
func (h *IntegrationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateIntegrationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	integration, err := h.integrationUseCase.Create(
		c.Request.Context(),
		req.TenantID,
		req.Platform,
		req.Name,
		req.Configuration,
		req.Secrets,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIntegrationToResponse(integration))
}

// UpdateHandler updates an existing integration.
// PUT /v1/integrations/:id
// Returns 200 OK with masked secrets.
func (h *IntegrationHandler) UpdateHandler(c *gin.Context) {
	integrationID, err := parseIntegrationID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateIntegrationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	integration, err := h.integrationUseCase.Update(
		c.Request.Context(),
		integrationID,
		req.Name,
		req.Enabled,
		req.Configuration,
		req.Secrets,
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIntegrationToResponse(integration))
}

// GetHandler retrieves an integration by id.
// GET /v1/integrations/:id
// Returns 200 OK with masked secrets. Records whose secrets cannot be
// decrypted are returned with empty secrets rather than failing.
func (h *IntegrationHandler) GetHandler(c *gin.Context) {
	integrationID, err := parseIntegrationID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	integration, err := h.integrationUseCase.GetByID(c.Request.Context(), integrationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIntegrationToResponse(integration))
}

// ListHandler lists integrations for a tenant with pagination.
// GET /v1/integrations?tenant_id=&offset=&limit=
// Returns 200 OK with masked secrets.
func (h *IntegrationHandler) ListHandler(c *gin.Context) {
	tenantID := c.Query("tenant_id")
	if tenantID == "" {
		httputil.HandleValidationErrorGin(
			c,
			fmt.Errorf("tenant_id query parameter is required"),
			h.logger,
		)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	integrations, err := h.integrationUseCase.ListByTenant(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapIntegrationsToListResponse(integrations, offset, limit))
}

// DeleteHandler deletes an integration and its encrypted secrets.
// DELETE /v1/integrations/:id
// Returns 204 No Content.
func (h *IntegrationHandler) DeleteHandler(c *gin.Context) {
	integrationID, err := parseIntegrationID(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.integrationUseCase.Delete(c.Request.Context(), integrationID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseIntegrationID extracts and parses the id path parameter.
func parseIntegrationID(c *gin.Context) (uuid.UUID, error) {
	integrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid integration id: %w", err)
	}
	return integrationID, nil
}
