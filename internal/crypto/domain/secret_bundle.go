package domain

// SecretBundle is the in-memory, plaintext set of named credential fields for
// one integration (e.g. signingSecret, botToken, webhookSecret).
//
// The field set is platform-dependent and open-ended, so it stays a semantic
// string mapping rather than a fixed struct; unknown fields pass through
// unmodified. A bundle lives only for the duration of a request and is never
// persisted; the encrypted blob is the only form that survives a reload.
type SecretBundle map[string]string

// Clone returns an independent copy of the bundle.
func (b SecretBundle) Clone() SecretBundle {
	if b == nil {
		return SecretBundle{}
	}
	out := make(SecretBundle, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}

// Merge returns a new bundle with other's fields layered over b's. Neither
// input is mutated.
func (b SecretBundle) Merge(other SecretBundle) SecretBundle {
	out := b.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// IsEmpty reports whether the bundle has no fields.
func (b SecretBundle) IsEmpty() bool {
	return len(b) == 0
}
