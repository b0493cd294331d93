package service

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

func TestAEADManagerService_CreateCipher(t *testing.T) {
	manager := NewAEADManager()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	t.Run("creates AES-GCM cipher", func(t *testing.T) {
		aead, err := manager.CreateCipher(key, cryptoDomain.AESGCM)
		require.NoError(t, err)
		assert.IsType(t, &AESGCMCipher{}, aead)
	})

	t.Run("creates ChaCha20-Poly1305 cipher", func(t *testing.T) {
		aead, err := manager.CreateCipher(key, cryptoDomain.ChaCha20)
		require.NoError(t, err)
		assert.IsType(t, &ChaCha20Poly1305Cipher{}, aead)
	})

	t.Run("rejects invalid key size", func(t *testing.T) {
		_, err := manager.CreateCipher(make([]byte, 16), cryptoDomain.AESGCM)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeySize)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := manager.CreateCipher(key, cryptoDomain.Algorithm("des"))
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedAlgorithm)
	})
}

func TestAEADEncryptDecrypt(t *testing.T) {
	manager := NewAEADManager()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	for _, alg := range []cryptoDomain.Algorithm{cryptoDomain.AESGCM, cryptoDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			aead, err := manager.CreateCipher(key, alg)
			require.NoError(t, err)

			plaintext := []byte("integration credentials")
			aad := []byte("integration-id")

			ciphertext, nonce, err := aead.Encrypt(plaintext, aad)
			require.NoError(t, err)
			assert.Len(t, nonce, 12)

			decrypted, err := aead.Decrypt(ciphertext, nonce, aad)
			require.NoError(t, err)
			assert.Equal(t, plaintext, decrypted)

			// mismatched AAD fails authentication
			_, err = aead.Decrypt(ciphertext, nonce, []byte("other-id"))
			assert.Error(t, err)
		})
	}
}
