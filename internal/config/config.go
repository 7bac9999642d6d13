package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	LogLevel   string `yaml:"log_level"`
	DataSource struct {
		SymbolSuffix string `yaml:"symbol_suffix"` // Yahoo suffix for plain equity symbols
		Benchmark    string `yaml:"benchmark"`     // index series for market regime
		Proxy        string `yaml:"proxy"`
	} `yaml:"data_source"`
	Scan struct {
		Workers         int     `yaml:"workers"`
		DailyBars       int     `yaml:"daily_bars"`
		ConfidenceFloor float64 `yaml:"confidence_floor"`
		LiquidityFloor  float64 `yaml:"liquidity_floor"`
		LargeCapFloor   float64 `yaml:"large_cap_floor"`
	} `yaml:"scan"`
	Schedule struct {
		DailyCron    string `yaml:"daily_cron"`    // trend + dip + canslim after close
		IntradayCron string `yaml:"intraday_cron"` // AI scan during market hours
	} `yaml:"schedule"`
	Universe struct {
		Index   string   `yaml:"index"`
		Symbols []string `yaml:"symbols"` // extra symbols merged into the index list
	} `yaml:"universe"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("SCAN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.Workers = n
		}
	}
	if v := os.Getenv("CONFIDENCE_FLOOR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scan.ConfidenceFloor = f
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_INTRADAY"); v != "" {
		cfg.Schedule.IntradayCron = v
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.DataSource.SymbolSuffix == "" {
		cfg.DataSource.SymbolSuffix = ".NS"
	}
	if cfg.DataSource.Benchmark == "" {
		cfg.DataSource.Benchmark = "^NSEI"
	}
	if cfg.Scan.Workers == 0 {
		cfg.Scan.Workers = 8
	}
	if cfg.Scan.DailyBars == 0 {
		cfg.Scan.DailyBars = 300
	}
	if cfg.Scan.ConfidenceFloor == 0 {
		cfg.Scan.ConfidenceFloor = 0.60
	}
	if cfg.Scan.LiquidityFloor == 0 {
		cfg.Scan.LiquidityFloor = 5e7
	}
	if cfg.Scan.LargeCapFloor == 0 {
		cfg.Scan.LargeCapFloor = 2e10
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 16 * * 1-5"
	}
	if cfg.Schedule.IntradayCron == "" {
		cfg.Schedule.IntradayCron = "0 30 13 * * 1-5"
	}
	if cfg.Universe.Index == "" {
		cfg.Universe.Index = "NIFTY50"
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Scan.Workers <= 0 {
		return fmt.Errorf("scan.workers must be positive")
	}
	if c.Scan.ConfidenceFloor < 0 || c.Scan.ConfidenceFloor > 1 {
		return fmt.Errorf("scan.confidence_floor must be within [0, 1]")
	}
	if c.Scan.DailyBars < 200 {
		return fmt.Errorf("scan.daily_bars must be at least 200 for the dip evaluator")
	}
	if c.Scan.LiquidityFloor <= 0 || c.Scan.LargeCapFloor <= 0 {
		return fmt.Errorf("scan floors must be positive")
	}
	return nil
}
