// Package service provides the cryptographic services for secret bundle
// protection: AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) and the bundle
// cipher that turns plaintext bundles into self-describing encrypted blobs.
package service

import (
	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// BundleCipher defines the interface for encrypting and decrypting secret
// bundles against a key ring.
type BundleCipher interface {
	// Encrypt serializes and encrypts a bundle under the given ring entry.
	Encrypt(bundle cryptoDomain.SecretBundle, entry *cryptoDomain.KeyRingEntry) (cryptoDomain.EncryptedBlob, error)

	// Decrypt resolves the blob's key id in the ring, then decrypts and
	// authenticates the bundle.
	Decrypt(blob cryptoDomain.EncryptedBlob, ring *cryptoDomain.KeyRing) (cryptoDomain.SecretBundle, error)
}
