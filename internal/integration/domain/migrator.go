package domain

import (
	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

// legacySecretFields maps each platform to the configuration fields that are
// actually credentials. Older clients submitted these inside the generic
// configuration map; extraction moves them into the encrypted bundle.
var legacySecretFields = map[string][]string{
	"slack":   {"signingSecret", "botToken", "incomingWebhookUrl"},
	"teams":   {"appPassword"},
	"outlook": {"clientSecret"},
	"generic": {"secret"},
}

// genericPlatform is the fallback for platforms without a dedicated entry.
const genericPlatform = "generic"

// ExtractLegacySecrets moves known secret fields for the platform out of the
// configuration map into a secret bundle. Input maps are never mutated; both
// return values are fresh maps. Running it on already-extracted data is a
// no-op, so both create and update paths can call it unconditionally and any
// client still sending the old shape self-heals.
func ExtractLegacySecrets(
	platform string,
	configuration map[string]string,
) (cryptoDomain.SecretBundle, map[string]string) {
	fields, ok := legacySecretFields[platform]
	if !ok {
		fields = legacySecretFields[genericPlatform]
	}

	bundle := cryptoDomain.SecretBundle{}
	remaining := make(map[string]string, len(configuration))
	for k, v := range configuration {
		remaining[k] = v
	}

	for _, field := range fields {
		if value, present := remaining[field]; present {
			bundle[field] = value
			delete(remaining, field)
		}
	}

	return bundle, remaining
}
