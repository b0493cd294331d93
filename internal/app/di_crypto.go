package app

import (
	"fmt"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	cryptoService "github.com/allisson/integrations/internal/crypto/service"
)

// KeyRing returns the key ring loaded from environment variables. A malformed
// ring is a fatal startup error; nothing is served without usable keys.
func (c *Container) KeyRing() (*cryptoDomain.KeyRing, error) {
	var err error
	c.keyRingInit.Do(func() {
		c.keyRing, err = c.initKeyRing()
		if err != nil {
			c.initErrors["keyRing"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["keyRing"]; exists {
		return nil, storedErr
	}
	return c.keyRing, nil
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// BundleCipher returns the secret bundle cipher configured with the write algorithm.
func (c *Container) BundleCipher() (cryptoService.BundleCipher, error) {
	var err error
	c.bundleCipherInit.Do(func() {
		c.bundleCipher, err = c.initBundleCipher()
		if err != nil {
			c.initErrors["bundleCipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bundleCipher"]; exists {
		return nil, storedErr
	}
	return c.bundleCipher, nil
}

// initKeyRing loads the key ring from environment variables.
func (c *Container) initKeyRing() (*cryptoDomain.KeyRing, error) {
	keyRing, err := cryptoDomain.LoadKeyRingFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load key ring: %w", err)
	}
	return keyRing, nil
}

// initBundleCipher creates the bundle cipher with the configured algorithm
// for new encryptions. Existing blobs self-describe, so reads are unaffected
// by this setting.
func (c *Container) initBundleCipher() (cryptoService.BundleCipher, error) {
	algorithm, err := cryptoDomain.ParseAlgorithm(c.config.SecretsAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("invalid secrets algorithm %q: %w", c.config.SecretsAlgorithm, err)
	}

	return cryptoService.NewBundleCipher(c.AEADManager(), algorithm), nil
}
