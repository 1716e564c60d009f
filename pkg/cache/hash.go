package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// PreviewKey returns the key for a preview of dot rendered as format.
func PreviewKey(dot []byte, format string) string {
	return "preview:" + format + ":" + Hash(dot)
}
