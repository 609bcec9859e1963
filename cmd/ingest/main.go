package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/leongold/hades/internal/config"
	"github.com/leongold/hades/internal/ingestion"
	"github.com/leongold/hades/internal/storage/migrations"
	pgstore "github.com/leongold/hades/internal/storage/postgres"
)

// Loads a position results file into PostgreSQL so later analyze runs can
// read from the database instead of re-parsing the file.
func main() {
	resultsPath := flag.String("results", "", "Path to position results file")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string")

	flag.Parse()

	logger := log.New(os.Stdout, "[ingest] ", log.LstdFlags)

	// .env is optional
	_ = godotenv.Load()

	cfg := config.Default()
	if err := cfg.ApplyEnv(); err != nil {
		logger.Fatalf("Apply env: %v", err)
	}
	if *resultsPath != "" {
		cfg.ResultsPath = *resultsPath
	}
	if *postgresDSN != "" {
		cfg.PostgresDSN = *postgresDSN
	}
	if cfg.PostgresDSN == "" {
		logger.Fatal("No PostgreSQL DSN specified. Use --postgres-dsn or HADES_POSTGRES_DSN")
	}

	ctx := context.Background()

	pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Fatalf("Connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
		logger.Fatalf("Run migrations: %v", err)
	}

	runner := ingestion.NewRunner(pgstore.NewPositionBatchStore(pool))
	n, err := runner.LoadFile(ctx, cfg.ResultsPath)
	if err != nil {
		logger.Fatalf("Ingest %s: %v", cfg.ResultsPath, err)
	}

	logger.Printf("Ingested %d batches from %s", n, cfg.ResultsPath)
}
