package domain

// Algorithm represents the AEAD algorithm used to encrypt secret bundles.
//
// Both supported algorithms provide authenticated encryption: a tampered
// ciphertext fails authentication on decrypt instead of producing garbage
// plaintext. Unauthenticated modes are deliberately not supported.
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	// 256-bit key, 12-byte nonce, 16-byte authentication tag. Preferred on
	// CPUs with AES-NI hardware acceleration.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption
	// algorithm. 256-bit key, 12-byte nonce, 16-byte authentication tag.
	// Constant-time in software, preferred where AES-NI is unavailable.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// ParseAlgorithm converts a configuration string to an Algorithm.
// Returns ErrUnsupportedAlgorithm for anything other than the two AEAD modes.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
