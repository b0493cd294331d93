package domain

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyRing_ActiveKeyID(t *testing.T) {
	ring := &KeyRing{activeID: "2026-01"}
	assert.Equal(t, "2026-01", ring.ActiveKeyID())
}

func TestKeyRing_Lookup(t *testing.T) {
	ring := &KeyRing{}
	entry := &KeyRingEntry{ID: "test-key", Key: make([]byte, 32)}
	ring.keys.Store("test-key", entry)

	tests := []struct {
		name      string
		keyID     string
		wantFound bool
	}{
		{name: "existing key", keyID: "test-key", wantFound: true},
		{name: "non-existing key", keyID: "retired-and-removed", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ring.Lookup(tt.keyID)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, entry, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestKeyRing_Close(t *testing.T) {
	ring := &KeyRing{activeID: "k1"}
	ring.keys.Store("k1", &KeyRingEntry{ID: "k1", Key: make([]byte, 32)})
	ring.keys.Store("k2", &KeyRingEntry{ID: "k2", Key: make([]byte, 32)})

	ring.Close()

	assert.Equal(t, "", ring.activeID)
	_, found1 := ring.Lookup("k1")
	_, found2 := ring.Lookup("k2")
	assert.False(t, found1)
	assert.False(t, found2)
}

func TestNewKeyRing(t *testing.T) {
	t.Run("valid ring", func(t *testing.T) {
		ring, err := NewKeyRing([]*KeyRingEntry{
			{ID: "k1", Key: make([]byte, 32)},
			{ID: "k2", Key: make([]byte, 32)},
		}, "k2")
		require.NoError(t, err)

		assert.Equal(t, "k2", ring.ActiveKeyID())
		active, found := ring.Active()
		assert.True(t, found)
		assert.Equal(t, "k2", active.ID)
	})

	t.Run("rejects wrong key size", func(t *testing.T) {
		_, err := NewKeyRing([]*KeyRingEntry{{ID: "k1", Key: make([]byte, 16)}}, "k1")
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("rejects missing active id", func(t *testing.T) {
		_, err := NewKeyRing([]*KeyRingEntry{{ID: "k1", Key: make([]byte, 32)}}, "k9")
		assert.ErrorIs(t, err, ErrActiveKeyNotFound)
	})
}

func TestLoadKeyRingFromEnv(t *testing.T) {
	key1 := base64.StdEncoding.EncodeToString(make([]byte, 32))
	key2 := base64.StdEncoding.EncodeToString([]byte("12345678901234567890123456789012"))

	tests := []struct {
		name         string
		keys         string
		activeKeyID  string
		wantErr      error
		validateFunc func(*testing.T, *KeyRing)
	}{
		{
			name:        "valid single key",
			keys:        "k1:" + key1,
			activeKeyID: "k1",
			validateFunc: func(t *testing.T, ring *KeyRing) {
				assert.Equal(t, "k1", ring.ActiveKeyID())
				entry, found := ring.Lookup("k1")
				assert.True(t, found)
				assert.Len(t, entry.Key, 32)
			},
		},
		{
			name:        "valid multiple keys with retired entry",
			keys:        "k1:" + key1 + ",k2:" + key2,
			activeKeyID: "k2",
			validateFunc: func(t *testing.T, ring *KeyRing) {
				assert.Equal(t, "k2", ring.ActiveKeyID())
				_, found := ring.Lookup("k1")
				assert.True(t, found)
				active, found := ring.Active()
				assert.True(t, found)
				assert.Equal(t, "k2", active.ID)
			},
		},
		{
			name:        "whitespace around entries",
			keys:        " k1:" + key1 + " , k2:" + key2 + " ",
			activeKeyID: "k1",
			validateFunc: func(t *testing.T, ring *KeyRing) {
				_, found := ring.Lookup("k2")
				assert.True(t, found)
			},
		},
		{
			name:        "missing keys",
			keys:        "",
			activeKeyID: "k1",
			wantErr:     ErrKeyRingKeysNotSet,
		},
		{
			name:        "missing active key id",
			keys:        "k1:" + key1,
			activeKeyID: "",
			wantErr:     ErrActiveKeyIDNotSet,
		},
		{
			name:        "malformed entry",
			keys:        "k1-without-separator",
			activeKeyID: "k1",
			wantErr:     ErrInvalidKeyRingFormat,
		},
		{
			name:        "invalid base64",
			keys:        "k1:not-base-64!!!",
			activeKeyID: "k1",
			wantErr:     ErrInvalidKeyBase64,
		},
		{
			name:        "wrong key size",
			keys:        "k1:" + base64.StdEncoding.EncodeToString(make([]byte, 16)),
			activeKeyID: "k1",
			wantErr:     ErrInvalidKeySize,
		},
		{
			name:        "active key not in ring",
			keys:        "k1:" + key1,
			activeKeyID: "k2",
			wantErr:     ErrActiveKeyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KEYRING_KEYS", tt.keys)
			t.Setenv("KEYRING_ACTIVE_KEY_ID", tt.activeKeyID)

			ring, err := LoadKeyRingFromEnv()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.validateFunc(t, ring)
		})
	}
}
