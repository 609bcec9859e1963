package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultRiskFreeMonthlyRate is the fallback monthly risk-free rate used for
// the Sharpe ratio when no rate is configured.
const DefaultRiskFreeMonthlyRate = 0.12

// Config holds runtime settings for the analysis commands.
type Config struct {
	// RiskFreeMonthlyRate is the monthly risk-free rate subtracted from each
	// monthly profit bucket.
	RiskFreeMonthlyRate float64 `yaml:"risk_free_monthly_rate"`

	// ResultsPath is the path to the position results file to ingest.
	ResultsPath string `yaml:"results_path"`

	// OutputDir is the directory the JSON analysis artifact is written to.
	OutputDir string `yaml:"output_dir"`

	// PostgresDSN, when set, selects the Postgres-backed position store.
	PostgresDSN string `yaml:"postgres_dsn"`

	// ClickhouseDSN, when set, enables archiving of analysis runs.
	ClickhouseDSN string `yaml:"clickhouse_dsn"`
}

// Default returns a config with sane defaults.
func Default() *Config {
	return &Config{
		RiskFreeMonthlyRate: DefaultRiskFreeMonthlyRate,
		ResultsPath:         "results.txt",
		OutputDir:           ".",
	}
}

// Load reads a YAML config file on top of defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overrides settings from HADES_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HADES_RISK_FREE_MONTHLY_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parse HADES_RISK_FREE_MONTHLY_RATE: %w", err)
		}
		c.RiskFreeMonthlyRate = rate
	}
	if v := os.Getenv("HADES_RESULTS_PATH"); v != "" {
		c.ResultsPath = v
	}
	if v := os.Getenv("HADES_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("HADES_POSTGRES_DSN"); v != "" {
		c.PostgresDSN = v
	}
	if v := os.Getenv("HADES_CLICKHOUSE_DSN"); v != "" {
		c.ClickhouseDSN = v
	}
	return nil
}
