package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the tuning knobs of the Tomasulo pipeline simulator.
type Config struct {
	// Result-bus count: max STATE UPDATE events per cycle (R in spec terms).
	ResultBuses int `yaml:"resultBuses"`

	// Functional-unit counts per class.
	ALUUnits    int `yaml:"aluUnits"`    // class 0
	BranchUnits int `yaml:"branchUnits"` // class 1
	MemUnits    int `yaml:"memUnits"`    // class 2

	// Fetch rate: instructions pulled from the trace per cycle (F).
	FetchWidth int `yaml:"fetchWidth"`

	// Trace ingestion.
	TracePath   string `yaml:"tracePath"`
	TraceFormat string `yaml:"traceFormat"` // "text", "csv", or "yaml"

	// Diagnostic stream.
	ProgressInterval int64 `yaml:"progressInterval"` // cycles between progress lines, 0 disables
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// validateConfig checks if the configuration is valid.
func validateConfig(cfg *Config) error {
	if cfg.ResultBuses <= 0 {
		return fmt.Errorf("result bus count must be positive")
	}
	if cfg.ALUUnits <= 0 {
		return fmt.Errorf("ALU unit count must be positive")
	}
	if cfg.BranchUnits <= 0 {
		return fmt.Errorf("branch unit count must be positive")
	}
	if cfg.MemUnits <= 0 {
		return fmt.Errorf("memory unit count must be positive")
	}
	if cfg.FetchWidth <= 0 {
		return fmt.Errorf("fetch width must be positive")
	}

	validFormats := map[string]bool{"text": true, "csv": true, "yaml": true}
	if cfg.TraceFormat != "" && !validFormats[cfg.TraceFormat] {
		return fmt.Errorf("unsupported trace format: %s", cfg.TraceFormat)
	}

	return nil
}

// RSSize returns the derived reservation-station capacity, 2*(k0+k1+k2).
func (c *Config) RSSize() int {
	return 2 * (c.ALUUnits + c.BranchUnits + c.MemUnits)
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		ResultBuses: 8,
		ALUUnits:    1,
		BranchUnits: 2,
		MemUnits:    3,
		FetchWidth:  4,

		TracePath:   "workloads/default.trace",
		TraceFormat: "text",

		ProgressInterval: 10000,
	}
}
