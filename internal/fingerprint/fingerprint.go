// Package fingerprint derives short stable identifiers from serialized
// payloads. The core uses them to key render-memo entries by profile
// content.
package fingerprint

import (
	"crypto/sha256"
	"fmt"
)

// Sum returns "<prefix>:" followed by the first 16 hex chars of the
// SHA-256 of b.
func Sum(prefix string, b []byte) string {
	sum := sha256.Sum256(b)
	return fmt.Sprintf("%s:%x", prefix, sum[:8])
}
