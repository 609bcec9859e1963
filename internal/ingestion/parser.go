package ingestion

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/leongold/hades/internal/domain"
	"github.com/leongold/hades/internal/idhash"
)

// ErrMalformedRecord is returned when a results-log record cannot be decoded
// into a valid position batch. Malformed input is rejected here, at the
// boundary, and never reaches the analysis core.
var ErrMalformedRecord = errors.New("malformed result record")

// positionArity is the number of elements in one raw position tuple:
// open bsi, open price, open timestamp, close bsi, close price,
// close timestamp, profit.
const positionArity = 7

// batchRecord is the wire shape of one results-log line.
type batchRecord struct {
	Symbol    string      `json:"symbol"`
	StdDev    *float64    `json:"std_dev"`
	Positions [][]float64 `json:"positions"`
}

// ParseResults reads a results log (one JSON batch object per line, blank
// lines ignored) and returns the decoded batches in input order. Errors
// carry the 1-based line number of the offending record.
func ParseResults(r io.Reader) ([]*domain.PositionBatch, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var batches []*domain.PositionBatch
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		batch, err := parseBatchLine([]byte(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		batches = append(batches, batch)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read results log: %w", err)
	}

	return batches, nil
}

// parseBatchLine decodes and validates a single batch record.
func parseBatchLine(data []byte) (*domain.PositionBatch, error) {
	var rec batchRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	if rec.Symbol == "" {
		return nil, fmt.Errorf("%w: missing symbol", ErrMalformedRecord)
	}
	if rec.StdDev == nil {
		return nil, fmt.Errorf("%w: missing std_dev", ErrMalformedRecord)
	}

	positions := make([]domain.Position, len(rec.Positions))
	for i, tuple := range rec.Positions {
		p, err := parsePositionTuple(tuple)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		positions[i] = p
	}

	return &domain.PositionBatch{
		BatchID:   idhash.ComputeBatchID(rec.Symbol, *rec.StdDev, positions),
		Symbol:    rec.Symbol,
		StdDev:    *rec.StdDev,
		Positions: positions,
	}, nil
}

func parsePositionTuple(tuple []float64) (domain.Position, error) {
	if len(tuple) != positionArity {
		return domain.Position{}, fmt.Errorf("%w: has %d fields, want %d", ErrMalformedRecord, len(tuple), positionArity)
	}

	openTS, err := epochSeconds(tuple[2])
	if err != nil {
		return domain.Position{}, fmt.Errorf("open timestamp: %w", err)
	}
	closeTS, err := epochSeconds(tuple[5])
	if err != nil {
		return domain.Position{}, fmt.Errorf("close timestamp: %w", err)
	}
	if closeTS < openTS {
		return domain.Position{}, fmt.Errorf("%w: closes before it opens", ErrMalformedRecord)
	}

	return domain.Position{
		OpenBSI:        tuple[0],
		OpenPrice:      tuple[1],
		OpenTimestamp:  openTS,
		CloseBSI:       tuple[3],
		ClosePrice:     tuple[4],
		CloseTimestamp: closeTS,
		Profit:         tuple[6],
	}, nil
}

// epochSeconds validates that a decoded JSON number is an integral epoch
// timestamp.
func epochSeconds(v float64) (int64, error) {
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: timestamp %v is not an integer", ErrMalformedRecord, v)
	}
	return int64(v), nil
}
