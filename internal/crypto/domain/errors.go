package domain

import (
	"github.com/allisson/integrations/internal/errors"
)

// Cryptographic operation error definitions.
//
// Runtime errors (ErrKeyNotFound, ErrDecryptionFailed) are recoverable
// per-record: callers degrade the affected record instead of failing the
// request. Key ring loading errors are fatal at startup: serving traffic
// with broken key material is worse than not serving.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	// Supported algorithms: aes-gcm (AES-256-GCM), chacha20-poly1305 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeySize indicates a key is not exactly 32 bytes (AES-256 requirement).
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrKeyNotFound indicates a blob references a key id absent from the ring,
	// typically after over-eager key removal. Data encrypted under that id is
	// stranded until the key is restored to the ring.
	ErrKeyNotFound = errors.New("key id not present in key ring")

	// ErrDecryptionFailed indicates the authentication check failed during
	// decryption: tampered ciphertext, corrupted blob, or wrong key material.
	// The specific cause is not disclosed to avoid aiding attackers.
	ErrDecryptionFailed = errors.New("decryption failed")
)

// Key ring loading errors. All of these abort process startup.
var (
	// ErrKeyRingKeysNotSet indicates the KEYRING_KEYS environment variable is not configured.
	ErrKeyRingKeysNotSet = errors.New("KEYRING_KEYS environment variable not set")

	// ErrActiveKeyIDNotSet indicates the KEYRING_ACTIVE_KEY_ID environment variable is not configured.
	ErrActiveKeyIDNotSet = errors.New("KEYRING_ACTIVE_KEY_ID environment variable not set")

	// ErrInvalidKeyRingFormat indicates a KEYRING_KEYS entry is not in "id:base64key" format.
	ErrInvalidKeyRingFormat = errors.New("invalid key ring entry format")

	// ErrInvalidKeyBase64 indicates a key ring entry's key material is not valid base64.
	ErrInvalidKeyBase64 = errors.New("invalid base64 key material")

	// ErrActiveKeyNotFound indicates KEYRING_ACTIVE_KEY_ID references an id
	// absent from KEYRING_KEYS.
	ErrActiveKeyNotFound = errors.New("active key id not present in key ring")
)

// Encrypted blob parsing errors.
var (
	// ErrInvalidBlobFormat indicates the blob string is not in
	// "keyID:algorithm:nonce:ciphertext" format.
	ErrInvalidBlobFormat = errors.New("invalid encrypted blob format")

	// ErrEmptyBlobKeyID indicates the blob's key id segment is empty.
	ErrEmptyBlobKeyID = errors.New("encrypted blob key id is empty")

	// ErrInvalidBlobBase64 indicates the blob's nonce or ciphertext segment is not valid base64.
	ErrInvalidBlobBase64 = errors.New("invalid base64 in encrypted blob")
)
