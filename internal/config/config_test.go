package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	content := `
resultBuses: 2
aluUnits: 3
branchUnits: 2
memUnits: 1
fetchWidth: 6
tracePath: "workloads/test.trace"
traceFormat: "csv"
`
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	cfg, err := LoadConfig(tmpfile.Name())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.ResultBuses != 2 {
		t.Errorf("Expected ResultBuses = 2, got %d", cfg.ResultBuses)
	}
	if cfg.ALUUnits != 3 {
		t.Errorf("Expected ALUUnits = 3, got %d", cfg.ALUUnits)
	}
	if cfg.FetchWidth != 6 {
		t.Errorf("Expected FetchWidth = 6, got %d", cfg.FetchWidth)
	}
	if cfg.TraceFormat != "csv" {
		t.Errorf("Expected TraceFormat = csv, got %s", cfg.TraceFormat)
	}
	if cfg.RSSize() != 2*(3+2+1) {
		t.Errorf("RSSize() = %d, want %d", cfg.RSSize(), 2*(3+2+1))
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("LoadConfig() with missing file should return error")
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				ResultBuses: 1, ALUUnits: 1, BranchUnits: 1, MemUnits: 1, FetchWidth: 1,
			},
			wantErr: false,
		},
		{
			name: "zero result buses",
			cfg: Config{
				ResultBuses: 0, ALUUnits: 1, BranchUnits: 1, MemUnits: 1, FetchWidth: 1,
			},
			wantErr: true,
		},
		{
			name: "zero ALU units",
			cfg: Config{
				ResultBuses: 1, ALUUnits: 0, BranchUnits: 1, MemUnits: 1, FetchWidth: 1,
			},
			wantErr: true,
		},
		{
			name: "zero fetch width",
			cfg: Config{
				ResultBuses: 1, ALUUnits: 1, BranchUnits: 1, MemUnits: 1, FetchWidth: 0,
			},
			wantErr: true,
		},
		{
			name: "invalid trace format",
			cfg: Config{
				ResultBuses: 1, ALUUnits: 1, BranchUnits: 1, MemUnits: 1, FetchWidth: 1,
				TraceFormat: "binary",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateConfig(&tt.cfg); (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatalf("DefaultConfig() returned nil")
	}

	if cfg.ResultBuses != 8 {
		t.Errorf("Expected default ResultBuses = 8, got %d", cfg.ResultBuses)
	}
	if cfg.ALUUnits != 1 || cfg.BranchUnits != 2 || cfg.MemUnits != 3 {
		t.Errorf("Expected default FU counts 1/2/3, got %d/%d/%d", cfg.ALUUnits, cfg.BranchUnits, cfg.MemUnits)
	}
	if cfg.FetchWidth != 4 {
		t.Errorf("Expected default FetchWidth = 4, got %d", cfg.FetchWidth)
	}
	if err := validateConfig(cfg); err != nil {
		t.Errorf("DefaultConfig() should be valid, got error: %v", err)
	}
}
