package memory

import (
	"context"
	"maps"
	"sort"
	"sync"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/storage"
)

// AnalysisStore is an in-memory implementation of storage.AnalysisStore.
type AnalysisStore struct {
	mu   sync.RWMutex
	data map[string]*domain.AnalysisSnapshot // keyed by run_id
}

// NewAnalysisStore creates a new in-memory analysis snapshot store.
func NewAnalysisStore() *AnalysisStore {
	return &AnalysisStore{
		data: make(map[string]*domain.AnalysisSnapshot),
	}
}

var _ storage.AnalysisStore = (*AnalysisStore)(nil)

// Insert adds a new snapshot. Returns ErrDuplicateKey if run_id exists.
func (s *AnalysisStore) Insert(_ context.Context, snapshot *domain.AnalysisSnapshot) error {
	if snapshot == nil || snapshot.RunID == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.data[snapshot.RunID]; exists {
		return storage.ErrDuplicateKey
	}

	s.data[snapshot.RunID] = cloneSnapshot(snapshot)
	return nil
}

// GetByRunID retrieves a snapshot by its run ID. Returns ErrNotFound if not exists.
func (s *AnalysisStore) GetByRunID(_ context.Context, runID string) (*domain.AnalysisSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, exists := s.data[runID]
	if !exists {
		return nil, storage.ErrNotFound
	}

	return cloneSnapshot(snapshot), nil
}

// GetAll retrieves all snapshots, ordered by generated_at ASC, run_id ASC.
func (s *AnalysisStore) GetAll(_ context.Context) ([]*domain.AnalysisSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.AnalysisSnapshot, 0, len(s.data))
	for _, snapshot := range s.data {
		result = append(result, cloneSnapshot(snapshot))
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].GeneratedAt != result[j].GeneratedAt {
			return result[i].GeneratedAt < result[j].GeneratedAt
		}
		return result[i].RunID < result[j].RunID
	})

	return result, nil
}

// cloneSnapshot copies a snapshot including its symbol maps.
func cloneSnapshot(s *domain.AnalysisSnapshot) *domain.AnalysisSnapshot {
	clone := *s
	clone.SymbolToProfit = maps.Clone(s.SymbolToProfit)
	clone.SymbolToExecN = maps.Clone(s.SymbolToExecN)
	clone.SymbolToExecAvgN = maps.Clone(s.SymbolToExecAvgN)
	return &clone
}
