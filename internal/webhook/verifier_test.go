package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

func slackSign(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(body)
	return "v0=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifierRegistry_Resolve(t *testing.T) {
	registry := NewVerifierRegistry()

	t.Run("slack has a dedicated verifier", func(t *testing.T) {
		assert.IsType(t, &slackVerifier{}, registry.Resolve("slack"))
	})

	t.Run("unknown platforms pass through", func(t *testing.T) {
		verifier := registry.Resolve("pager-duty")
		assert.IsType(t, passThroughVerifier{}, verifier)
		assert.NoError(t, verifier.Verify(context.Background(), nil, Delivery{}))
	})

	t.Run("registered verifier replaces the default", func(t *testing.T) {
		registry.Register("slack", passThroughVerifier{})
		assert.IsType(t, passThroughVerifier{}, registry.Resolve("slack"))
	})
}

func TestSlackVerifier(t *testing.T) {
	ctx := context.Background()
	signingSecret := "slack-signing-secret"
	body := []byte(`{"type":"event_callback"}`)

	integration := &integrationDomain.AppIntegration{
		Secrets: cryptoDomain.SecretBundle{"signingSecret": signingSecret},
	}

	verifier := &slackVerifier{}

	t.Run("accepts a valid signature", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		delivery := Delivery{
			Headers: map[string]string{
				"X-Slack-Request-Timestamp": timestamp,
				"X-Slack-Signature":         slackSign(signingSecret, timestamp, body),
			},
			Body: body,
		}
		assert.NoError(t, verifier.Verify(ctx, integration, delivery))
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().Unix(), 10)
		delivery := Delivery{
			Headers: map[string]string{
				"X-Slack-Request-Timestamp": timestamp,
				"X-Slack-Signature":         slackSign(signingSecret, timestamp, body),
			},
			Body: []byte(`{"type":"tampered"}`),
		}
		assert.Error(t, verifier.Verify(ctx, integration, delivery))
	})

	t.Run("rejects a stale timestamp", func(t *testing.T) {
		timestamp := strconv.FormatInt(time.Now().Add(-time.Hour).Unix(), 10)
		delivery := Delivery{
			Headers: map[string]string{
				"X-Slack-Request-Timestamp": timestamp,
				"X-Slack-Signature":         slackSign(signingSecret, timestamp, body),
			},
			Body: body,
		}
		assert.Error(t, verifier.Verify(ctx, integration, delivery))
	})

	t.Run("rejects missing headers", func(t *testing.T) {
		assert.Error(t, verifier.Verify(ctx, integration, Delivery{Body: body}))
	})

	t.Run("rejects when signing secret is unavailable", func(t *testing.T) {
		degraded := &integrationDomain.AppIntegration{Secrets: cryptoDomain.SecretBundle{}}
		require.Error(t, verifier.Verify(ctx, degraded, Delivery{Body: body}))
	})
}

func TestNormalizeHeaderKeys(t *testing.T) {
	headers := NormalizeHeaderKeys(map[string]string{
		"x-slack-signature":         "sig",
		"X-SLACK-REQUEST-TIMESTAMP": "123",
	})

	assert.Equal(t, "sig", headers["X-Slack-Signature"])
	assert.Equal(t, "123", headers["X-Slack-Request-Timestamp"])
}
