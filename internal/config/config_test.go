package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.RiskFreeMonthlyRate != DefaultRiskFreeMonthlyRate {
		t.Errorf("RiskFreeMonthlyRate mismatch: got %f", cfg.RiskFreeMonthlyRate)
	}
	if cfg.ResultsPath == "" || cfg.OutputDir == "" {
		t.Errorf("Expected non-empty path defaults, got %+v", cfg)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
risk_free_monthly_rate: 0.05
results_path: /data/results.txt
clickhouse_dsn: clickhouse://localhost:9000/hades
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.RiskFreeMonthlyRate != 0.05 {
		t.Errorf("RiskFreeMonthlyRate mismatch: got %f", cfg.RiskFreeMonthlyRate)
	}
	if cfg.ResultsPath != "/data/results.txt" {
		t.Errorf("ResultsPath mismatch: got %s", cfg.ResultsPath)
	}
	if cfg.ClickhouseDSN != "clickhouse://localhost:9000/hades" {
		t.Errorf("ClickhouseDSN mismatch: got %s", cfg.ClickhouseDSN)
	}
	// Untouched keys keep their defaults
	if cfg.OutputDir != Default().OutputDir {
		t.Errorf("OutputDir changed: got %s", cfg.OutputDir)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("Write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HADES_RISK_FREE_MONTHLY_RATE", "0.08")
	t.Setenv("HADES_POSTGRES_DSN", "postgres://localhost:5432/hades")

	cfg := Default()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}

	if cfg.RiskFreeMonthlyRate != 0.08 {
		t.Errorf("RiskFreeMonthlyRate mismatch: got %f", cfg.RiskFreeMonthlyRate)
	}
	if cfg.PostgresDSN != "postgres://localhost:5432/hades" {
		t.Errorf("PostgresDSN mismatch: got %s", cfg.PostgresDSN)
	}
}

func TestApplyEnv_InvalidRate(t *testing.T) {
	t.Setenv("HADES_RISK_FREE_MONTHLY_RATE", "not-a-number")

	cfg := Default()
	if err := cfg.ApplyEnv(); err == nil {
		t.Error("Expected error for unparseable rate")
	}
}
