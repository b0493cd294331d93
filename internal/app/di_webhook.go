package app

import (
	"fmt"

	"github.com/allisson/integrations/internal/webhook"
	webhookHTTP "github.com/allisson/integrations/internal/webhook/http"
)

// SecretGuard returns the webhook secret guard.
func (c *Container) SecretGuard() (webhook.SecretGuard, error) {
	var err error
	c.secretGuardInit.Do(func() {
		c.secretGuard, err = c.initSecretGuard()
		if err != nil {
			c.initErrors["secretGuard"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["secretGuard"]; exists {
		return nil, storedErr
	}
	return c.secretGuard, nil
}

// VerifierRegistry returns the platform verifier registry.
func (c *Container) VerifierRegistry() *webhook.VerifierRegistry {
	c.verifierRegistryInit.Do(func() {
		c.verifierRegistry = webhook.NewVerifierRegistry()
	})
	return c.verifierRegistry
}

// WebhookHandler returns the HTTP handler for inbound webhook deliveries.
func (c *Container) WebhookHandler() (*webhookHTTP.WebhookHandler, error) {
	var err error
	c.webhookHandlerInit.Do(func() {
		c.webhookHandler, err = c.initWebhookHandler()
		if err != nil {
			c.initErrors["webhookHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["webhookHandler"]; exists {
		return nil, storedErr
	}
	return c.webhookHandler, nil
}

// initSecretGuard creates the webhook secret guard.
func (c *Container) initSecretGuard() (webhook.SecretGuard, error) {
	integrationUseCase, err := c.IntegrationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get integration use case for secret guard: %w", err)
	}

	return webhook.NewSecretGuard(integrationUseCase, c.Logger()), nil
}

// initWebhookHandler creates the webhook HTTP handler.
func (c *Container) initWebhookHandler() (*webhookHTTP.WebhookHandler, error) {
	secretGuard, err := c.SecretGuard()
	if err != nil {
		return nil, fmt.Errorf("failed to get secret guard for webhook handler: %w", err)
	}

	return webhookHTTP.NewWebhookHandler(secretGuard, c.VerifierRegistry(), c.Logger()), nil
}
