package fixture

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of a fixture body.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars) —
// plenty to detect an edited or truncated fixture, short enough to print
// on one line next to the filename.
func Fingerprint(body []byte) string {
	sum := blake2b.Sum256(body)
	return hex.EncodeToString(sum[:10])
}
