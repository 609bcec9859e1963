package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/leongold/hades/internal/config"
	"github.com/leongold/hades/internal/ingestion"
	"github.com/leongold/hades/internal/pipeline"
	"github.com/leongold/hades/internal/storage"
	chstore "github.com/leongold/hades/internal/storage/clickhouse"
	"github.com/leongold/hades/internal/storage/memory"
	"github.com/leongold/hades/internal/storage/migrations"
	pgstore "github.com/leongold/hades/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	resultsPath := flag.String("results", "", "Path to position results file")
	outputDir := flag.String("output-dir", "", "Directory for the JSON analysis artifact")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (empty for in-memory)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string for run archiving (empty to disable)")
	riskFreeRate := flag.Float64("risk-free-rate", config.DefaultRiskFreeMonthlyRate, "Monthly risk-free rate for the Sharpe ratio")
	useFixtures := flag.Bool("use-fixtures", false, "Analyze built-in demo data instead of a results file")

	flag.Parse()

	logger := log.New(os.Stdout, "[analyze] ", log.LstdFlags)

	// .env is optional
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatalf("Load config: %v", err)
	}

	// Flags win over env, env wins over file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "results":
			cfg.ResultsPath = *resultsPath
		case "output-dir":
			cfg.OutputDir = *outputDir
		case "postgres-dsn":
			cfg.PostgresDSN = *postgresDSN
		case "clickhouse-dsn":
			cfg.ClickhouseDSN = *clickhouseDSN
		case "risk-free-rate":
			cfg.RiskFreeMonthlyRate = *riskFreeRate
		}
	})

	ctx := context.Background()

	batchStore, cleanup, err := openBatchStore(ctx, cfg, *useFixtures, logger)
	if err != nil {
		logger.Fatalf("Open position store: %v", err)
	}
	defer cleanup()

	p := pipeline.NewPipeline(batchStore, cfg.RiskFreeMonthlyRate, cfg.OutputDir)

	if cfg.ClickhouseDSN != "" {
		conn, err := migrations.RunClickhouseMigrations(ctx, cfg.ClickhouseDSN)
		if err != nil {
			logger.Fatalf("ClickHouse migrations: %v", err)
		}
		defer conn.Close()
		p.WithAnalysisStore(chstore.NewAnalysisStore(conn))
		logger.Printf("Archiving analysis runs to ClickHouse")
	}

	if _, err := p.Run(ctx); err != nil {
		logger.Fatalf("Analysis failed: %v", err)
	}

	logger.Printf("Wrote %s", filepath.Join(cfg.OutputDir, pipeline.AnalysisFileName))
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openBatchStore picks the position source: demo fixtures, Postgres, or a
// results file loaded into memory.
func openBatchStore(ctx context.Context, cfg *config.Config, useFixtures bool, logger *log.Logger) (storage.PositionBatchStore, func(), error) {
	if useFixtures {
		store := memory.NewPositionBatchStore()
		if err := pipeline.LoadFixtures(ctx, store); err != nil {
			return nil, nil, err
		}
		logger.Printf("Loaded fixture positions")
		return store, func() {}, nil
	}

	if cfg.PostgresDSN != "" {
		pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Printf("Reading positions from PostgreSQL")
		return pgstore.NewPositionBatchStore(pool), pool.Close, nil
	}

	store := memory.NewPositionBatchStore()
	runner := ingestion.NewRunner(store)
	n, err := runner.LoadFile(ctx, cfg.ResultsPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Printf("Loaded %d batches from %s", n, cfg.ResultsPath)
	return store, func() {}, nil
}
