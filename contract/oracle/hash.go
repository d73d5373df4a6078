package oracle

import (
	"crypto/subtle"
	"encoding/hex"

	"lukechampine.com/blake3"
)

// HashSize is the digest width of every hash the oracle produces.
const HashSize = 32

// ComputeHash digests arbitrary evidence bytes with BLAKE3-256.
// Example payload: ComputeHash([]byte("git diff --stat"))
func ComputeHash(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// VerifyHash recomputes the digest and compares in constant time.
func VerifyHash(data, hash []byte) bool {
	if len(hash) != HashSize {
		return false
	}
	sum := blake3.Sum256(data)
	return subtle.ConstantTimeCompare(sum[:], hash) == 1
}

func hashHex(b []byte) string {
	return hex.EncodeToString(b)
}
