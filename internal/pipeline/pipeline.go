package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/leongold/hades/internal/reporting"
	"github.com/leongold/hades/internal/storage"
)

// AnalysisFileName is the name of the JSON artifact written on every run.
const AnalysisFileName = "analysis.json"

// Pipeline runs a full analysis: generate the report, write the JSON
// artifact, print the console summary, and optionally archive a snapshot.
type Pipeline struct {
	generator     *reporting.Generator
	analysisStore storage.AnalysisStore // optional
	outputDir     string
	console       io.Writer
}

// NewPipeline creates a pipeline over the given position batch store.
func NewPipeline(batchStore storage.PositionBatchStore, riskFreeMonthlyRate float64, outputDir string) *Pipeline {
	return &Pipeline{
		generator: reporting.NewGenerator(batchStore, riskFreeMonthlyRate),
		outputDir: outputDir,
		console:   os.Stdout,
	}
}

// WithAnalysisStore enables archiving of each completed run.
func (p *Pipeline) WithAnalysisStore(store storage.AnalysisStore) *Pipeline {
	p.analysisStore = store
	return p
}

// WithConsole redirects the console summary.
func (p *Pipeline) WithConsole(w io.Writer) *Pipeline {
	p.console = w
	return p
}

// WithClock sets a custom clock for deterministic snapshots.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.generator.WithClock(now)
	return p
}

// Run executes the analysis. Any failure aborts the run before artifacts
// are written.
func (p *Pipeline) Run(ctx context.Context) (*reporting.Report, error) {
	report, err := p.generator.Generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}

	data, err := reporting.RenderJSON(report)
	if err != nil {
		return nil, fmt.Errorf("render json: %w", err)
	}

	if err := os.MkdirAll(p.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(p.outputDir, AnalysisFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", AnalysisFileName, err)
	}

	if _, err := io.WriteString(p.console, reporting.RenderText(report)); err != nil {
		return nil, fmt.Errorf("write console summary: %w", err)
	}

	if p.analysisStore != nil {
		snapshot := p.generator.Snapshot(report)
		if err := p.analysisStore.Insert(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("archive analysis run: %w", err)
		}
	}

	return report, nil
}
