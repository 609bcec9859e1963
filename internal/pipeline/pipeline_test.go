package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/leongold/hades/internal/storage/memory"
)

func fixtureStore(t *testing.T) *memory.PositionBatchStore {
	t.Helper()
	store := memory.NewPositionBatchStore()
	if err := LoadFixtures(context.Background(), store); err != nil {
		t.Fatalf("LoadFixtures failed: %v", err)
	}
	return store
}

func TestPipeline_Run(t *testing.T) {
	outputDir := t.TempDir()
	var console bytes.Buffer

	p := NewPipeline(fixtureStore(t), 0.12, outputDir).WithConsole(&console)

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.General.SymbolsN != 2 {
		t.Errorf("SymbolsN mismatch: got %d", report.General.SymbolsN)
	}

	// JSON artifact exists and holds the same report
	data, err := os.ReadFile(filepath.Join(outputDir, AnalysisFileName))
	if err != nil {
		t.Fatalf("Read artifact: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Artifact is not valid JSON: %v", err)
	}
	for _, section := range []string{"general", "winning_trades", "losing_trades", "sharpe_ratio", "symbol_data"} {
		if _, ok := decoded[section]; !ok {
			t.Errorf("Artifact missing section %q", section)
		}
	}

	// Console summary was written
	if !bytes.Contains(console.Bytes(), []byte("general data:")) {
		t.Errorf("Console summary missing:\n%s", console.String())
	}
}

func TestPipeline_RunArchivesSnapshot(t *testing.T) {
	analysisStore := memory.NewAnalysisStore()
	var console bytes.Buffer

	fixed := time.Date(2023, time.November, 14, 12, 0, 0, 0, time.UTC)
	p := NewPipeline(fixtureStore(t), 0.12, t.TempDir()).
		WithConsole(&console).
		WithAnalysisStore(analysisStore).
		WithClock(func() time.Time { return fixed })

	report, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	snapshots, err := analysisStore.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("Expected 1 archived snapshot, got %d", len(snapshots))
	}

	snap := snapshots[0]
	if snap.GeneratedAt != fixed.UnixMilli() {
		t.Errorf("GeneratedAt mismatch: got %d", snap.GeneratedAt)
	}
	if snap.Profit != report.General.Profit {
		t.Errorf("Profit mismatch: snapshot %f, report %f", snap.Profit, report.General.Profit)
	}
}

func TestPipeline_RunDeterministic(t *testing.T) {
	store := fixtureStore(t)
	var c1, c2 bytes.Buffer

	r1, err := NewPipeline(store, 0.12, t.TempDir()).WithConsole(&c1).Run(context.Background())
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	r2, err := NewPipeline(store, 0.12, t.TempDir()).WithConsole(&c2).Run(context.Background())
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if !reflect.DeepEqual(r1, r2) {
		t.Error("Runs over unchanged store produced different reports")
	}
	if c1.String() != c2.String() {
		t.Error("Runs over unchanged store produced different console output")
	}
}

func TestLoadFixtures_SecondLoadRejected(t *testing.T) {
	store := memory.NewPositionBatchStore()
	ctx := context.Background()

	if err := LoadFixtures(ctx, store); err != nil {
		t.Fatalf("First load failed: %v", err)
	}
	if err := LoadFixtures(ctx, store); err == nil {
		t.Error("Expected duplicate error on second fixture load")
	}
}
