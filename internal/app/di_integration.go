package app

import (
	"fmt"

	integrationHTTP "github.com/allisson/integrations/internal/integration/http"
	integrationRepository "github.com/allisson/integrations/internal/integration/repository"
	integrationService "github.com/allisson/integrations/internal/integration/service"
	integrationUsecase "github.com/allisson/integrations/internal/integration/usecase"
)

// SecretGenerator returns the webhook secret generator.
func (c *Container) SecretGenerator() integrationService.SecretGenerator {
	c.secretGeneratorInit.Do(func() {
		c.secretGenerator = integrationService.NewWebhookSecretGenerator()
	})
	return c.secretGenerator
}

// IntegrationRepository returns the integration repository based on database driver.
func (c *Container) IntegrationRepository() (integrationUsecase.IntegrationRepository, error) {
	var err error
	c.integrationRepoInit.Do(func() {
		c.integrationRepo, err = c.initIntegrationRepository()
		if err != nil {
			c.initErrors["integrationRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["integrationRepo"]; exists {
		return nil, storedErr
	}
	return c.integrationRepo, nil
}

// IntegrationUseCase returns the integration use case.
func (c *Container) IntegrationUseCase() (integrationUsecase.IntegrationUseCase, error) {
	var err error
	c.integrationUseCaseInit.Do(func() {
		c.integrationUseCase, err = c.initIntegrationUseCase()
		if err != nil {
			c.initErrors["integrationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["integrationUseCase"]; exists {
		return nil, storedErr
	}
	return c.integrationUseCase, nil
}

// IntegrationHandler returns the HTTP handler for integration management.
func (c *Container) IntegrationHandler() (*integrationHTTP.IntegrationHandler, error) {
	var err error
	c.integrationHandlerInit.Do(func() {
		c.integrationHandler, err = c.initIntegrationHandler()
		if err != nil {
			c.initErrors["integrationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["integrationHandler"]; exists {
		return nil, storedErr
	}
	return c.integrationHandler, nil
}

// initIntegrationRepository creates the integration repository based on the database driver.
func (c *Container) initIntegrationRepository() (integrationUsecase.IntegrationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for integration repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return integrationRepository.NewPostgreSQLIntegrationRepository(db), nil
	case "mysql":
		return integrationRepository.NewMySQLIntegrationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initIntegrationUseCase creates the integration use case with all its dependencies.
func (c *Container) initIntegrationUseCase() (integrationUsecase.IntegrationUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for integration use case: %w", err)
	}

	integrationRepo, err := c.IntegrationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get integration repository for integration use case: %w", err)
	}

	bundleCipher, err := c.BundleCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get bundle cipher for integration use case: %w", err)
	}

	keyRing, err := c.KeyRing()
	if err != nil {
		return nil, fmt.Errorf("failed to get key ring for integration use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for integration use case: %w", err)
	}

	baseUseCase := integrationUsecase.NewIntegrationUseCase(
		txManager,
		integrationRepo,
		bundleCipher,
		keyRing,
		c.SecretGenerator(),
		businessMetrics,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		return integrationUsecase.NewIntegrationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initIntegrationHandler creates the integration HTTP handler.
func (c *Container) initIntegrationHandler() (*integrationHTTP.IntegrationHandler, error) {
	integrationUseCase, err := c.IntegrationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get integration use case for integration handler: %w", err)
	}

	return integrationHTTP.NewIntegrationHandler(integrationUseCase, c.Logger()), nil
}
