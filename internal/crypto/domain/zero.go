package domain

// Zero overwrites key material with zeros. The ring calls it on Close and
// the create-key command calls it after printing a generated key.
func Zero(b []byte) {
	clear(b)
}
