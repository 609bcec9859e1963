package ingestion

import (
	"context"
	"fmt"
	"os"

	"github.com/leongold/hades/internal/storage"
)

// Runner loads results logs into a position batch store.
type Runner struct {
	store storage.PositionBatchStore
}

// NewRunner creates a new ingestion runner.
func NewRunner(store storage.PositionBatchStore) *Runner {
	return &Runner{store: store}
}

// LoadFile parses the results log at path and inserts every batch
// atomically. Returns the number of batches loaded. Re-ingesting an already
// loaded log fails with storage.ErrDuplicateKey rather than double-counting.
func (r *Runner) LoadFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open results log: %w", err)
	}
	defer f.Close()

	batches, err := ParseResults(f)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := r.store.InsertBulk(ctx, batches); err != nil {
		return 0, fmt.Errorf("store position batches: %w", err)
	}

	return len(batches), nil
}
