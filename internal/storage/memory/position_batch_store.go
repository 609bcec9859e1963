package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/storage"
)

// PositionBatchStore is an in-memory implementation of storage.PositionBatchStore.
type PositionBatchStore struct {
	mu   sync.RWMutex
	data map[string]*domain.PositionBatch // keyed by batch_id
}

// NewPositionBatchStore creates a new in-memory position batch store.
func NewPositionBatchStore() *PositionBatchStore {
	return &PositionBatchStore{
		data: make(map[string]*domain.PositionBatch),
	}
}

var _ storage.PositionBatchStore = (*PositionBatchStore)(nil)

// Insert adds a new batch. Returns ErrDuplicateKey if batch_id exists.
func (s *PositionBatchStore) Insert(_ context.Context, b *domain.PositionBatch) error {
	if b == nil || b.BatchID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[b.BatchID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[b.BatchID] = cloneBatch(b)
	return nil
}

// InsertBulk adds multiple batches atomically. Fails entire batch on any duplicate.
func (s *PositionBatchStore) InsertBulk(_ context.Context, batches []*domain.PositionBatch) error {
	if len(batches) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// First pass: check for duplicates (existing + intra-batch)
	seen := make(map[string]struct{}, len(batches))
	for _, b := range batches {
		if b == nil || b.BatchID == "" {
			return storage.ErrInvalidInput
		}
		if _, exists := s.data[b.BatchID]; exists {
			return storage.ErrDuplicateKey
		}
		if _, exists := seen[b.BatchID]; exists {
			return storage.ErrDuplicateKey
		}
		seen[b.BatchID] = struct{}{}
	}

	// Second pass: insert all
	for _, b := range batches {
		s.data[b.BatchID] = cloneBatch(b)
	}

	return nil
}

// GetByID retrieves a batch by its ID. Returns ErrNotFound if not exists.
func (s *PositionBatchStore) GetByID(_ context.Context, batchID string) (*domain.PositionBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, exists := s.data[batchID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return cloneBatch(b), nil
}

// GetBySymbol retrieves all batches for a symbol, ordered by first open
// timestamp ASC, batch_id ASC.
func (s *PositionBatchStore) GetBySymbol(_ context.Context, symbol string) ([]*domain.PositionBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*domain.PositionBatch
	for _, b := range s.data {
		if b.Symbol == symbol {
			result = append(result, cloneBatch(b))
		}
	}

	sortBatches(result)
	return result, nil
}

// GetAll retrieves all batches, ordered by first open timestamp ASC, batch_id ASC.
func (s *PositionBatchStore) GetAll(_ context.Context) ([]*domain.PositionBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.PositionBatch, 0, len(s.data))
	for _, b := range s.data {
		result = append(result, cloneBatch(b))
	}

	sortBatches(result)
	return result, nil
}

func sortBatches(batches []*domain.PositionBatch) {
	sort.Slice(batches, func(i, j int) bool {
		ti, tj := firstOpenTimestamp(batches[i]), firstOpenTimestamp(batches[j])
		if ti != tj {
			return ti < tj
		}
		return batches[i].BatchID < batches[j].BatchID
	})
}

func firstOpenTimestamp(b *domain.PositionBatch) int64 {
	if len(b.Positions) == 0 {
		return 0
	}
	return b.Positions[0].OpenTimestamp
}

// cloneBatch copies a batch including its positions slice, so callers can
// never mutate stored data through a returned pointer.
func cloneBatch(b *domain.PositionBatch) *domain.PositionBatch {
	clone := *b
	clone.Positions = make([]domain.Position, len(b.Positions))
	copy(clone.Positions, b.Positions)
	return &clone
}
