package service

import (
	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

// AEADManagerService builds AEAD cipher instances from ring keys. Both
// supported algorithms take 32-byte keys, so the size check lives here
// rather than in each cipher constructor.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher returns an AEAD for the given key and algorithm.
// Returns ErrInvalidKeySize for non-32-byte keys and ErrUnsupportedAlgorithm
// for algorithms outside the supported set.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	if len(key) != 32 {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	switch alg {
	case cryptoDomain.AESGCM:
		return NewAESGCM(key)
	case cryptoDomain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, cryptoDomain.ErrUnsupportedAlgorithm
	}
}
