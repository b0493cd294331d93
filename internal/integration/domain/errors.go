// Package domain defines core domain models and errors for integrations.
package domain

import (
	"github.com/allisson/integrations/internal/errors"
)

// Integration-specific error definitions.
var (
	// ErrIntegrationNotFound indicates the integration does not exist.
	ErrIntegrationNotFound = errors.Wrap(errors.ErrNotFound, "integration not found")
)
