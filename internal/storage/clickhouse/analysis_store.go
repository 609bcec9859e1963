package clickhouse

import (
	"context"
	"fmt"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/storage"
)

// AnalysisStore implements storage.AnalysisStore using ClickHouse.
type AnalysisStore struct {
	conn *Conn
}

// NewAnalysisStore creates a new AnalysisStore.
func NewAnalysisStore(conn *Conn) *AnalysisStore {
	return &AnalysisStore{conn: conn}
}

// Compile-time interface check.
var _ storage.AnalysisStore = (*AnalysisStore)(nil)

const snapshotColumns = `
	run_id, generated_at,
	start_date, end_date, symbols_n, days_n, profit, exec_n, daily_exec_n, daily_exec_symbol_n,
	won_n, total_won, average_win,
	lost_n, total_lost, average_loss,
	risk_free_monthly_rate, excess_average, excess_std_dev, sharpe_ratio,
	symbol_to_profit, symbol_to_exec_n, symbol_to_exec_avg_n
`

// Insert adds a new snapshot. Returns ErrDuplicateKey if run_id exists.
func (s *AnalysisStore) Insert(ctx context.Context, snap *domain.AnalysisSnapshot) error {
	// MergeTree doesn't enforce uniqueness, so check before inserting to keep
	// append-only semantics.
	exists, err := s.exists(ctx, snap.RunID)
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return storage.ErrDuplicateKey
	}

	query := `
		INSERT INTO analysis_runs (` + snapshotColumns + `) VALUES (
			?, ?,
			?, ?, ?, ?, ?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?, ?,
			?, ?, ?
		)
	`

	err = s.conn.Exec(ctx, query,
		snap.RunID, snap.GeneratedAt,
		snap.Start, snap.End, int32(snap.SymbolsN), int32(snap.DaysN), snap.Profit,
		int32(snap.ExecN), snap.DailyExecN, snap.DailyExecSymbolN,
		int32(snap.WonN), snap.TotalWon, snap.AverageWin,
		int32(snap.LostN), snap.TotalLost, snap.AverageLoss,
		snap.RiskFreeMonthlyRate, snap.ExcessAverage, snap.ExcessStdDev, snap.SharpeRatio,
		snap.SymbolToProfit, snap.SymbolToExecN, snap.SymbolToExecAvgN,
	)
	if err != nil {
		return fmt.Errorf("insert analysis snapshot: %w", err)
	}
	return nil
}

// GetByRunID retrieves a snapshot by its run ID. Returns ErrNotFound if not exists.
func (s *AnalysisStore) GetByRunID(ctx context.Context, runID string) (*domain.AnalysisSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM analysis_runs
		WHERE run_id = ?
		LIMIT 1
	`

	row := s.conn.QueryRow(ctx, query, runID)

	snap, err := scanSnapshot(row)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	return snap, nil
}

// GetAll retrieves all snapshots, ordered by generated_at ASC, run_id ASC.
func (s *AnalysisStore) GetAll(ctx context.Context) ([]*domain.AnalysisSnapshot, error) {
	query := `
		SELECT ` + snapshotColumns + `
		FROM analysis_runs
		ORDER BY generated_at ASC, run_id ASC
	`

	rows, err := s.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query all: %w", err)
	}
	defer rows.Close()

	var snapshots []*domain.AnalysisSnapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}

	return snapshots, nil
}

// exists checks if a snapshot with the given run ID exists.
func (s *AnalysisStore) exists(ctx context.Context, runID string) (bool, error) {
	query := `SELECT count(*) FROM analysis_runs WHERE run_id = ?`

	var count uint64
	if err := s.conn.QueryRow(ctx, query, runID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// rowScanner covers both driver.Row and driver.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanSnapshot scans one analysis_runs row. Count columns are stored as
// Int32, so they go through typed temporaries.
func scanSnapshot(row rowScanner) (*domain.AnalysisSnapshot, error) {
	var (
		snap                                domain.AnalysisSnapshot
		symbolsN, daysN, execN, wonN, lostN int32
	)

	err := row.Scan(
		&snap.RunID, &snap.GeneratedAt,
		&snap.Start, &snap.End, &symbolsN, &daysN, &snap.Profit,
		&execN, &snap.DailyExecN, &snap.DailyExecSymbolN,
		&wonN, &snap.TotalWon, &snap.AverageWin,
		&lostN, &snap.TotalLost, &snap.AverageLoss,
		&snap.RiskFreeMonthlyRate, &snap.ExcessAverage, &snap.ExcessStdDev, &snap.SharpeRatio,
		&snap.SymbolToProfit, &snap.SymbolToExecN, &snap.SymbolToExecAvgN,
	)
	if err != nil {
		return nil, err
	}

	snap.SymbolsN = int(symbolsN)
	snap.DaysN = int(daysN)
	snap.ExecN = int(execN)
	snap.WonN = int(wonN)
	snap.LostN = int(lostN)
	return &snap, nil
}
