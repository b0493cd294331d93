package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncryptedBlob is the persisted representation of an encrypted secret bundle.
//
// The blob is self-describing: it carries the id of the key that encrypted it
// and the AEAD algorithm used, so decryption is an O(1) ring lookup rather
// than try-all-keys, and key rotation never breaks existing records.
//
// Serialized form: "keyID:algorithm:nonce-base64:ciphertext-base64"
type EncryptedBlob struct {
	KeyID      string
	Algorithm  Algorithm
	Nonce      []byte
	Ciphertext []byte
}

// NewEncryptedBlob parses an EncryptedBlob from its string representation.
//
// The input must be in the format "keyID:algorithm:nonce-base64:ciphertext-base64"
// where keyID is non-empty, algorithm is one of the supported AEAD modes, and
// the last two segments are standard base64.
//
// Returns:
//   - ErrInvalidBlobFormat if the string does not have 4 colon-separated parts
//   - ErrEmptyBlobKeyID if the key id segment is empty
//   - ErrUnsupportedAlgorithm if the algorithm segment is unknown
//   - ErrInvalidBlobBase64 if a base64 segment fails to decode
func NewEncryptedBlob(content string) (EncryptedBlob, error) {
	parts := strings.Split(content, ":")
	if len(parts) != 4 {
		return EncryptedBlob{}, fmt.Errorf(
			"%w: expected 'keyID:algorithm:nonce:ciphertext', got %d parts",
			ErrInvalidBlobFormat,
			len(parts),
		)
	}

	keyID := parts[0]
	if keyID == "" {
		return EncryptedBlob{}, ErrEmptyBlobKeyID
	}

	alg, err := ParseAlgorithm(parts[1])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, parts[1])
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: nonce: %v", ErrInvalidBlobBase64, err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: ciphertext: %v", ErrInvalidBlobBase64, err)
	}

	return EncryptedBlob{
		KeyID:      keyID,
		Algorithm:  alg,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}, nil
}

// String serializes the blob to "keyID:algorithm:nonce-base64:ciphertext-base64".
// Round-trips with NewEncryptedBlob.
func (eb EncryptedBlob) String() string {
	return fmt.Sprintf(
		"%s:%s:%s:%s",
		eb.KeyID,
		eb.Algorithm,
		base64.StdEncoding.EncodeToString(eb.Nonce),
		base64.StdEncoding.EncodeToString(eb.Ciphertext),
	)
}
