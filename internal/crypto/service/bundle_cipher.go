package service

import (
	"encoding/json"
	"fmt"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

// BundleCipherService implements the BundleCipher interface.
//
// Encryption serializes the bundle to JSON, encrypts it under the supplied
// ring entry with the configured algorithm, and tags the resulting blob with
// the entry's id. Decryption resolves the blob's key id in the ring, so a
// blob written under a now-retired key keeps decrypting as long as the key
// stays in the ring, while new writes use whatever entry the caller passes
// (normally the ring's active one). This is what makes key rotation
// non-disruptive: no re-encryption sweep is required for reads to keep
// working.
//
// The service holds no mutable state; both operations are safe for unlimited
// concurrent invocation.
type BundleCipherService struct {
	aeadManager AEADManager
	algorithm   cryptoDomain.Algorithm
}

// NewBundleCipher creates a BundleCipherService that encrypts new blobs with
// the given algorithm. Decryption always follows the algorithm recorded in
// the blob itself.
func NewBundleCipher(aeadManager AEADManager, algorithm cryptoDomain.Algorithm) *BundleCipherService {
	return &BundleCipherService{
		aeadManager: aeadManager,
		algorithm:   algorithm,
	}
}

// Encrypt serializes the bundle and encrypts it under entry's key.
//
// Failure is possible only on serialization or RNG errors; both are treated
// as fatal by callers rather than retried. Every call generates a fresh
// random nonce, so two encryptions of the same bundle never produce the
// same blob.
func (s *BundleCipherService) Encrypt(
	bundle cryptoDomain.SecretBundle,
	entry *cryptoDomain.KeyRingEntry,
) (cryptoDomain.EncryptedBlob, error) {
	plaintext, err := json.Marshal(bundle)
	if err != nil {
		return cryptoDomain.EncryptedBlob{}, fmt.Errorf("failed to serialize secret bundle: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	aead, err := s.aeadManager.CreateCipher(entry.Key, s.algorithm)
	if err != nil {
		return cryptoDomain.EncryptedBlob{}, err
	}

	ciphertext, nonce, err := aead.Encrypt(plaintext, nil)
	if err != nil {
		return cryptoDomain.EncryptedBlob{}, fmt.Errorf("failed to encrypt secret bundle: %w", err)
	}

	return cryptoDomain.EncryptedBlob{
		KeyID:      entry.ID,
		Algorithm:  s.algorithm,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// Decrypt resolves the blob's key id in the ring and decrypts the bundle.
//
// Returns ErrKeyNotFound when the blob references an id absent from the ring
// (stranded data) and ErrDecryptionFailed when authentication fails (tampered
// or corrupted blob, wrong key). Callers must treat both as per-record
// conditions and degrade gracefully rather than failing the whole request.
func (s *BundleCipherService) Decrypt(
	blob cryptoDomain.EncryptedBlob,
	ring *cryptoDomain.KeyRing,
) (cryptoDomain.SecretBundle, error) {
	entry, found := ring.Lookup(blob.KeyID)
	if !found {
		return nil, fmt.Errorf("%w: %s", cryptoDomain.ErrKeyNotFound, blob.KeyID)
	}

	aead, err := s.aeadManager.CreateCipher(entry.Key, blob.Algorithm)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Decrypt(blob.Ciphertext, blob.Nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}
	defer cryptoDomain.Zero(plaintext)

	var bundle cryptoDomain.SecretBundle
	if err := json.Unmarshal(plaintext, &bundle); err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return bundle, nil
}
