package storage

import (
	"context"

	"github.com/leongold/hades/internal/domain"
)

// PositionBatchStore provides access to raw position batch storage.
type PositionBatchStore interface {
	// Insert adds a new batch. Returns ErrDuplicateKey if batch_id exists.
	Insert(ctx context.Context, b *domain.PositionBatch) error

	// InsertBulk adds multiple batches atomically. Fails entire batch on any duplicate.
	InsertBulk(ctx context.Context, batches []*domain.PositionBatch) error

	// GetByID retrieves a batch by its ID. Returns ErrNotFound if not exists.
	GetByID(ctx context.Context, batchID string) (*domain.PositionBatch, error)

	// GetBySymbol retrieves all batches for a symbol, ordered by first open timestamp ASC, batch_id ASC.
	GetBySymbol(ctx context.Context, symbol string) ([]*domain.PositionBatch, error)

	// GetAll retrieves all batches, ordered by first open timestamp ASC, batch_id ASC.
	GetAll(ctx context.Context) ([]*domain.PositionBatch, error)
}

// AnalysisStore provides access to persisted analysis snapshots.
type AnalysisStore interface {
	// Insert adds a new snapshot. Returns ErrDuplicateKey if run_id exists.
	Insert(ctx context.Context, s *domain.AnalysisSnapshot) error

	// GetByRunID retrieves a snapshot by its run ID. Returns ErrNotFound if not exists.
	GetByRunID(ctx context.Context, runID string) (*domain.AnalysisSnapshot, error)

	// GetAll retrieves all snapshots, ordered by generated_at ASC, run_id ASC.
	GetAll(ctx context.Context) ([]*domain.AnalysisSnapshot, error)
}
