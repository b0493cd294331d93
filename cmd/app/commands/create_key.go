package commands

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

// RunCreateKey generates a cryptographically secure 32-byte key for the
// secret encryption key ring and prints it as a ready-to-paste KEYRING_KEYS
// entry. Key material is zeroed from memory after encoding.
//
// If keyID is empty, a default id in the format "key-YYYY-MM-DD" is used.
//
// Key rotation: append the new entry to KEYRING_KEYS, point
// KEYRING_ACTIVE_KEY_ID at the new id and restart. Keep the old entries in
// the list so existing blobs stay decryptable.
func RunCreateKey(w io.Writer, keyID string) error {
	if keyID == "" {
		keyID = fmt.Sprintf("key-%s", time.Now().Format("2006-01-02"))
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(key)
	cryptoDomain.Zero(key)

	fmt.Fprintln(w, "# Key Ring Configuration")
	fmt.Fprintln(w, "# Copy these environment variables to your .env file or secrets manager")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "KEYRING_KEYS=\"%s:%s\"\n", keyID, encodedKey)
	fmt.Fprintf(w, "KEYRING_ACTIVE_KEY_ID=\"%s\"\n", keyID)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "# For key rotation, append the new entry and switch the active id:")
	fmt.Fprintf(w, "# KEYRING_KEYS=\"%s:%s,new-key:base64-encoded-key\"\n", keyID, encodedKey)
	fmt.Fprintln(w, "# KEYRING_ACTIVE_KEY_ID=\"new-key\"")

	return nil
}
