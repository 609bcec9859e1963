package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/storage"
)

// PositionBatchStore implements storage.PositionBatchStore using PostgreSQL.
// A batch spans two tables: position_batches holds the metadata, positions
// holds the per-position rows keyed by (batch_id, position_index) so input
// order survives a round trip.
type PositionBatchStore struct {
	pool *Pool
}

// NewPositionBatchStore creates a new PositionBatchStore.
func NewPositionBatchStore(pool *Pool) *PositionBatchStore {
	return &PositionBatchStore{pool: pool}
}

// Compile-time interface check.
var _ storage.PositionBatchStore = (*PositionBatchStore)(nil)

const insertBatchSQL = `
	INSERT INTO position_batches (batch_id, symbol, std_dev)
	VALUES ($1, $2, $3)
`

const insertPositionSQL = `
	INSERT INTO positions (
		batch_id, position_index,
		open_bsi, open_price, open_timestamp,
		close_bsi, close_price, close_timestamp,
		profit
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

// Insert adds a new batch. Returns ErrDuplicateKey if batch_id exists.
func (s *PositionBatchStore) Insert(ctx context.Context, b *domain.PositionBatch) error {
	return s.InsertBulk(ctx, []*domain.PositionBatch{b})
}

// InsertBulk adds multiple batches atomically. Fails entire batch on any duplicate.
func (s *PositionBatchStore) InsertBulk(ctx context.Context, batches []*domain.PositionBatch) error {
	if len(batches) == 0 {
		return nil
	}
	for _, b := range batches {
		if b == nil || b.BatchID == "" {
			return storage.ErrInvalidInput
		}
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, b := range batches {
		if _, err := tx.Exec(ctx, insertBatchSQL, b.BatchID, b.Symbol, b.StdDev); err != nil {
			if isDuplicateKeyError(err) {
				return storage.ErrDuplicateKey
			}
			return fmt.Errorf("insert position batch: %w", err)
		}

		for i, p := range b.Positions {
			_, err := tx.Exec(ctx, insertPositionSQL,
				b.BatchID, i,
				p.OpenBSI, p.OpenPrice, p.OpenTimestamp,
				p.CloseBSI, p.ClosePrice, p.CloseTimestamp,
				p.Profit,
			)
			if err != nil {
				if isDuplicateKeyError(err) {
					return storage.ErrDuplicateKey
				}
				return fmt.Errorf("insert position: %w", err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByID retrieves a batch by its ID. Returns ErrNotFound if not exists.
func (s *PositionBatchStore) GetByID(ctx context.Context, batchID string) (*domain.PositionBatch, error) {
	b := &domain.PositionBatch{BatchID: batchID}

	query := `SELECT symbol, std_dev FROM position_batches WHERE batch_id = $1`
	if err := s.pool.QueryRow(ctx, query, batchID).Scan(&b.Symbol, &b.StdDev); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("select position batch: %w", err)
	}

	positions, err := s.loadPositions(ctx, batchID)
	if err != nil {
		return nil, err
	}
	b.Positions = positions
	return b, nil
}

// GetBySymbol retrieves all batches for a symbol, ordered by first open
// timestamp ASC, batch_id ASC.
func (s *PositionBatchStore) GetBySymbol(ctx context.Context, symbol string) ([]*domain.PositionBatch, error) {
	return s.loadBatches(ctx,
		`SELECT batch_id, symbol, std_dev FROM position_batches WHERE symbol = $1`, symbol)
}

// GetAll retrieves all batches, ordered by first open timestamp ASC, batch_id ASC.
func (s *PositionBatchStore) GetAll(ctx context.Context) ([]*domain.PositionBatch, error) {
	return s.loadBatches(ctx,
		`SELECT batch_id, symbol, std_dev FROM position_batches`)
}

func (s *PositionBatchStore) loadBatches(ctx context.Context, query string, args ...any) ([]*domain.PositionBatch, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select position batches: %w", err)
	}
	defer rows.Close()

	var result []*domain.PositionBatch
	for rows.Next() {
		b := &domain.PositionBatch{}
		if err := rows.Scan(&b.BatchID, &b.Symbol, &b.StdDev); err != nil {
			return nil, fmt.Errorf("scan position batch: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate position batches: %w", err)
	}

	for _, b := range result {
		positions, err := s.loadPositions(ctx, b.BatchID)
		if err != nil {
			return nil, err
		}
		b.Positions = positions
	}

	sort.Slice(result, func(i, j int) bool {
		ti, tj := firstOpenTimestamp(result[i]), firstOpenTimestamp(result[j])
		if ti != tj {
			return ti < tj
		}
		return result[i].BatchID < result[j].BatchID
	})

	return result, nil
}

func (s *PositionBatchStore) loadPositions(ctx context.Context, batchID string) ([]domain.Position, error) {
	query := `
		SELECT open_bsi, open_price, open_timestamp,
		       close_bsi, close_price, close_timestamp,
		       profit
		FROM positions
		WHERE batch_id = $1
		ORDER BY position_index ASC
	`

	rows, err := s.pool.Query(ctx, query, batchID)
	if err != nil {
		return nil, fmt.Errorf("select positions: %w", err)
	}
	defer rows.Close()

	var positions []domain.Position
	for rows.Next() {
		var p domain.Position
		err := rows.Scan(
			&p.OpenBSI, &p.OpenPrice, &p.OpenTimestamp,
			&p.CloseBSI, &p.ClosePrice, &p.CloseTimestamp,
			&p.Profit,
		)
		if err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate positions: %w", err)
	}

	return positions, nil
}

func firstOpenTimestamp(b *domain.PositionBatch) int64 {
	if len(b.Positions) == 0 {
		return 0
	}
	return b.Positions[0].OpenTimestamp
}
