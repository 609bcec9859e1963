package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/leongold/hades/internal/domain"
)

// ComputeBatchID computes a deterministic batch_id using SHA256 over the
// batch metadata and every position's timing and profit. Re-ingesting the
// same results log therefore produces the same ID and is rejected as a
// duplicate instead of double-counting.
// Returns hex-encoded hash (64 characters).
func ComputeBatchID(symbol string, stdDev float64, positions []domain.Position) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%g|%d", symbol, stdDev, len(positions))
	for _, p := range positions {
		fmt.Fprintf(h, "|%d|%d|%g", p.OpenTimestamp, p.CloseTimestamp, p.Profit)
	}
	return hex.EncodeToString(h.Sum(nil))
}
