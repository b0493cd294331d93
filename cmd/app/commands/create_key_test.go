package commands

import (
	"bytes"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyringEntryPattern = regexp.MustCompile(`KEYRING_KEYS="([^:]+):([A-Za-z0-9+/=]+)"`)

func TestRunCreateKey(t *testing.T) {
	t.Run("generates a 32-byte key with the given id", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, RunCreateKey(&out, "prod-2026-01"))

		matches := keyringEntryPattern.FindStringSubmatch(out.String())
		require.Len(t, matches, 3)
		assert.Equal(t, "prod-2026-01", matches[1])

		key, err := base64.StdEncoding.DecodeString(matches[2])
		require.NoError(t, err)
		assert.Len(t, key, 32)

		assert.Contains(t, out.String(), `KEYRING_ACTIVE_KEY_ID="prod-2026-01"`)
	})

	t.Run("defaults the key id to the current date", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, RunCreateKey(&out, ""))

		matches := keyringEntryPattern.FindStringSubmatch(out.String())
		require.Len(t, matches, 3)
		assert.Regexp(t, `^key-\d{4}-\d{2}-\d{2}$`, matches[1])
	})

	t.Run("generates a different key each run", func(t *testing.T) {
		var first, second bytes.Buffer

		require.NoError(t, RunCreateKey(&first, "k1"))
		require.NoError(t, RunCreateKey(&second, "k1"))

		assert.NotEqual(t, first.String(), second.String())
	})
}
