package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeRunID computes a deterministic run_id for an analysis snapshot.
// Formula: SHA256(start|end|profit|generated_at_ms)
// Returns hex-encoded hash (64 characters).
func ComputeRunID(start, end string, profit float64, generatedAtMs int64) string {
	data := fmt.Sprintf("%s|%s|%g|%d", start, end, profit, generatedAtMs)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
