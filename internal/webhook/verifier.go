package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	integrationDomain "github.com/allisson/integrations/internal/integration/domain"
)

// Delivery is the raw material a platform verifier works with. The body is
// passed as bytes; deserialization happens only after both the secret guard
// and the verifier accept the request.
type Delivery struct {
	Headers map[string]string
	Body    []byte
}

// Verifier runs a platform-specific signature check as the second,
// independent validation layer after the secret guard.
type Verifier interface {
	Verify(ctx context.Context, integration *integrationDomain.AppIntegration, delivery Delivery) error
}

// VerifierRegistry resolves the verifier for a platform. Platforms without a
// registered verifier fall back to a pass-through: the URL secret is their
// only authentication layer.
type VerifierRegistry struct {
	verifiers map[string]Verifier
}

// NewVerifierRegistry creates a registry with the built-in platform verifiers.
func NewVerifierRegistry() *VerifierRegistry {
	return &VerifierRegistry{
		verifiers: map[string]Verifier{
			"slack": &slackVerifier{},
		},
	}
}

// Register adds or replaces the verifier for a platform.
func (r *VerifierRegistry) Register(platform string, verifier Verifier) {
	r.verifiers[platform] = verifier
}

// Resolve returns the verifier for the platform, or a pass-through.
func (r *VerifierRegistry) Resolve(platform string) Verifier {
	if verifier, ok := r.verifiers[platform]; ok {
		return verifier
	}
	return passThroughVerifier{}
}

// passThroughVerifier accepts every delivery.
type passThroughVerifier struct{}

func (passThroughVerifier) Verify(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
	delivery Delivery,
) error {
	return nil
}

// slackVerifier implements Slack's v0 signing scheme: the signature is an
// HMAC-SHA256 over "v0:{timestamp}:{body}" keyed by the signing secret.
type slackVerifier struct{}

// slackTimestampTolerance bounds replay of captured requests.
const slackTimestampTolerance = 5 * time.Minute

func (slackVerifier) Verify(
	ctx context.Context,
	integration *integrationDomain.AppIntegration,
	delivery Delivery,
) error {
	signingSecret := integration.Secrets["signingSecret"]
	if signingSecret == "" {
		return fmt.Errorf("integration has no signing secret")
	}

	timestamp := delivery.Headers["X-Slack-Request-Timestamp"]
	signature := delivery.Headers["X-Slack-Signature"]
	if timestamp == "" || signature == "" {
		return fmt.Errorf("missing slack signature headers")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid slack timestamp: %w", err)
	}
	if d := time.Since(time.Unix(ts, 0)); d > slackTimestampTolerance || d < -slackTimestampTolerance {
		return fmt.Errorf("slack timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(signingSecret))
	fmt.Fprintf(mac, "v0:%s:", timestamp)
	mac.Write(delivery.Body)
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("slack signature mismatch")
	}
	return nil
}

// NormalizeHeaderKeys returns a copy of headers with canonicalized keys so
// verifiers can look them up case-insensitively.
func NormalizeHeaderKeys(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[normalizeHeaderKey(k)] = v
	}
	return out
}

func normalizeHeaderKey(k string) string {
	parts := strings.Split(strings.ToLower(k), "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "-")
}
