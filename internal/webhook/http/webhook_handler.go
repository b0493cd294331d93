// Package http provides the HTTP handler for inbound webhook deliveries.
package http

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/integrations/internal/httputil"
	"github.com/allisson/integrations/internal/webhook"
)

// maxWebhookBodyBytes bounds how much of an unauthenticated delivery body is
// read before the signature check.
const maxWebhookBodyBytes = 1 << 20 // 1 MiB

// WebhookHandler handles inbound webhook deliveries. The URL secret is
// validated before the payload is deserialized, and every rejection renders
// the same 404 so probing ids cannot be told apart from probing secrets.
type WebhookHandler struct {
	guard     webhook.SecretGuard
	verifiers *webhook.VerifierRegistry
	logger    *slog.Logger
}

// NewWebhookHandler creates a new webhook handler with required dependencies.
func NewWebhookHandler(
	guard webhook.SecretGuard,
	verifiers *webhook.VerifierRegistry,
	logger *slog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		guard:     guard,
		verifiers: verifiers,
		logger:    logger,
	}
}

// ReceiveHandler accepts a webhook delivery.
// POST /webhooks/:platform/:id/:secret
// Returns 202 Accepted on success and an indistinguishable 404 on any
// rejection: unknown id, disabled integration, wrong secret, platform
// mismatch, or failed signature verification.
func (h *WebhookHandler) ReceiveHandler(c *gin.Context) {
	platform := c.Param("platform")

	integrationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	integration, ok := h.guard.Validate(c.Request.Context(), integrationID, c.Param("secret"))
	if !ok {
		h.renderNotFound(c)
		return
	}

	if integration.Platform != platform {
		h.logger.Debug("webhook platform mismatch",
			slog.String("integration_id", integrationID.String()),
			slog.String("url_platform", platform),
		)
		h.renderNotFound(c)
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.renderNotFound(c)
		return
	}

	delivery := webhook.Delivery{
		Headers: webhook.NormalizeHeaderKeys(flattenHeaders(c.Request.Header)),
		Body:    body,
	}

	if err := h.verifiers.Resolve(platform).Verify(c.Request.Context(), integration, delivery); err != nil {
		h.logger.Debug("webhook signature verification failed",
			slog.String("integration_id", integrationID.String()),
			slog.String("platform", platform),
			slog.Any("error", err),
		)
		h.renderNotFound(c)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// renderNotFound writes the single 404 body shared by every rejection path.
// The shape matches httputil's not-found mapping so webhook 404s are also
// indistinguishable from plain unknown routes under /v1.
func (h *WebhookHandler) renderNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httputil.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found",
	})
}

// flattenHeaders keeps the first value of each header, which is all the
// platform verifiers consume.
func flattenHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for key, values := range header {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}
