// Package domain defines the core cryptographic domain models for secret
// bundle encryption.
//
// A flat key ring holds named 32-byte symmetric keys, one marked active. New
// encryptions always use the active key; retired keys stay in the ring so
// data written before a rotation remains decryptable. Removing an id from
// the ring permanently strands blobs encrypted under it, which surfaces as
// ErrKeyNotFound on read.
package domain

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"sync"
)

// KeyRingEntry represents a single named symmetric key in the ring.
//
// Fields:
//   - ID: Unique identifier for the key (e.g., "prod-2026-01")
//   - Key: The raw 32-byte key material
type KeyRingEntry struct {
	ID  string
	Key []byte
}

// KeyRing manages the set of symmetric keys a process knows, with one
// designated as active for new encryptions.
//
// The ring is loaded once at process start and treated as immutable for the
// process lifetime; lookups need no locking beyond the sync.Map's own.
//
// Key rotation workflow:
//  1. Add a new key entry to KEYRING_KEYS
//  2. Point KEYRING_ACTIVE_KEY_ID at the new id and restart
//  3. New blobs are encrypted under the new key
//  4. Old blobs keep decrypting under their original (now retired) keys
//  5. Optionally re-encrypt old records out-of-band, then retire the old id
type KeyRing struct {
	activeID string
	keys     sync.Map
}

// ActiveKeyID returns the id of the key used for new encryptions.
func (k *KeyRing) ActiveKeyID() string {
	return k.activeID
}

// Active returns the entry used for new encryptions. The loader guarantees
// the active id resolves, so a false return only happens on a hand-built
// ring that skipped validation.
func (k *KeyRing) Active() (*KeyRingEntry, bool) {
	return k.Lookup(k.activeID)
}

// Lookup retrieves a key entry by its id. This is the only runtime-reachable
// operation besides Active: decryption resolves the key id embedded in each
// blob through it.
func (k *KeyRing) Lookup(id string) (*KeyRingEntry, bool) {
	if entry, ok := k.keys.Load(id); ok {
		return entry.(*KeyRingEntry), ok
	}

	return nil, false
}

// Close securely clears all key material from the ring.
func (k *KeyRing) Close() {
	k.keys.Range(func(key, value interface{}) bool {
		if entry, ok := value.(*KeyRingEntry); ok {
			Zero(entry.Key)
		}
		return true
	})
	k.activeID = ""
	k.keys.Clear()
}

// NewKeyRing builds a ring from entries with the given active id. It applies
// the same invariants as LoadKeyRingFromEnv: every key must be 32 bytes and
// the active id must resolve.
func NewKeyRing(entries []*KeyRingEntry, activeID string) (*KeyRing, error) {
	ring := &KeyRing{activeID: activeID}

	for _, entry := range entries {
		if len(entry.Key) != 32 {
			return nil, fmt.Errorf("%w: key %s must be 32 bytes, got %d", ErrInvalidKeySize, entry.ID, len(entry.Key))
		}
		ring.keys.Store(entry.ID, entry)
	}

	if _, ok := ring.Lookup(activeID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrActiveKeyNotFound, activeID)
	}

	return ring, nil
}

// LoadKeyRingFromEnv loads the key ring from environment variables.
//
// Configuration:
//   - KEYRING_KEYS: Comma-separated list of entries in format "id:base64key"
//   - KEYRING_ACTIVE_KEY_ID: Id of the key used for new encryptions
//
// Format example:
//
//	KEYRING_KEYS="2025-11:YWJjZGVmZ2hpamtsbW5vcHFyc3R1dnd4eXoxMjM0NTY3OA==,2026-01:MTIzNDU2Nzg5MGFiY2RlZmdoaWprbG1ub3BxcnN0dXZ3eA=="
//	KEYRING_ACTIVE_KEY_ID="2026-01"
//
// Every key must decode to exactly 32 bytes and the active id must be present
// in the list. Any violation is a fatal startup error: the process must not
// serve traffic with broken key material.
func LoadKeyRingFromEnv() (*KeyRing, error) {
	raw := os.Getenv("KEYRING_KEYS")
	if raw == "" {
		return nil, ErrKeyRingKeysNotSet
	}

	active := os.Getenv("KEYRING_ACTIVE_KEY_ID")
	if active == "" {
		return nil, ErrActiveKeyIDNotSet
	}

	ring := &KeyRing{activeID: active}

	parts := strings.SplitSeq(raw, ",")
	for part := range parts {
		p := strings.SplitN(strings.TrimSpace(part), ":", 2)
		if len(p) != 2 {
			ring.Close()
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeyRingFormat, part)
		}
		id := p[0]
		key, err := base64.StdEncoding.DecodeString(p[1])
		if err != nil {
			ring.Close()
			return nil, fmt.Errorf("%w for %s: %v", ErrInvalidKeyBase64, id, err)
		}
		if len(key) != 32 {
			Zero(key)
			ring.Close()
			return nil, fmt.Errorf(
				"%w: key %s must be 32 bytes, got %d",
				ErrInvalidKeySize,
				id,
				len(key),
			)
		}
		ring.keys.Store(id, &KeyRingEntry{ID: id, Key: key})
	}

	if _, ok := ring.Lookup(active); !ok {
		ring.Close()
		return nil, fmt.Errorf("%w: KEYRING_ACTIVE_KEY_ID=%s", ErrActiveKeyNotFound, active)
	}

	return ring, nil
}
