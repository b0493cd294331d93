package domain

import (
	cryptoDomain "github.com/allisson/integrations/internal/crypto/domain"
)

// shortSecretMask replaces values too short to partially reveal.
const shortSecretMask = "****"

// MaskBundle returns a display-safe copy of the bundle. Values longer than 8
// characters keep their first and last 4 characters around a constant mask;
// shorter values collapse to the mask alone so near-complete secrets never
// leak. Applied only at the API response boundary; internal consumers use
// the unmasked bundle.
func MaskBundle(bundle cryptoDomain.SecretBundle) cryptoDomain.SecretBundle {
	masked := make(cryptoDomain.SecretBundle, len(bundle))
	for field, value := range bundle {
		masked[field] = MaskValue(value)
	}
	return masked
}

// MaskValue masks a single secret value.
func MaskValue(value string) string {
	if len(value) <= 8 {
		return shortSecretMask
	}
	return value[:4] + shortSecretMask + value[len(value)-4:]
}
