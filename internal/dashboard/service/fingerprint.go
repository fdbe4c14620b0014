package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// fingerprintLength is the number of hex characters kept from the digest.
const fingerprintLength = 16

// Fingerprint derives the deduplication key of a task from its title and details.
// Case and whitespace differences do not change the result.
func Fingerprint(title, details string) string {
	sum := sha256.Sum256([]byte(normalizeText(title) + "|" + normalizeText(details)))
	return hex.EncodeToString(sum[:])[:fingerprintLength]
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
