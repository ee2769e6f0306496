package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jasonKoogler/tomasulo-sim/internal/config"
	"github.com/jasonKoogler/tomasulo-sim/internal/trace"
)

func writeTrace(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, "test.trace")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func testConfig(t *testing.T, tracePath string) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.TracePath = tracePath
	cfg.TraceFormat = "text"
	return cfg
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	path := writeTrace(t, dir, "0 0 -1 -1 1\n")
	cfg := testConfig(t, path)

	sim, err := New(cfg)
	require.NoError(t, err)
	require.NotNil(t, sim)
	defer sim.Close()

	require.False(t, sim.running.Load())
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestNew_MissingTraceFile(t *testing.T) {
	cfg := testConfig(t, "/nonexistent/path.trace")
	_, err := New(cfg)
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := writeTrace(t, dir, "0 0 -1 -1 1\n4 0 1 -1 2\n8 0 2 -1 3\n")
	cfg := testConfig(t, path)

	sim, err := New(cfg)
	require.NoError(t, err)
	defer sim.Close()

	require.NoError(t, sim.Run(0))

	stats := sim.GetStatistics()
	require.EqualValues(t, 3, stats.TotalRetired)
	require.Greater(t, stats.CycleCount, int64(0))
}

func TestRun_AlreadyRunning(t *testing.T) {
	dir := t.TempDir()
	path := writeTrace(t, dir, "0 0 -1 -1 1\n")
	cfg := testConfig(t, path)

	sim, err := New(cfg)
	require.NoError(t, err)
	defer sim.Close()

	sim.running.Store(true)
	err = sim.Run(0)
	require.Error(t, err)
	sim.running.Store(false)
}

func TestReset(t *testing.T) {
	dir := t.TempDir()
	path := writeTrace(t, dir, "0 0 -1 -1 1\n4 0 -1 -1 2\n")
	cfg := testConfig(t, path)

	sim, err := New(cfg)
	require.NoError(t, err)
	defer sim.Close()

	require.NoError(t, sim.Run(0))
	require.Greater(t, sim.GetStatistics().TotalRetired, int64(0))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	reader := trace.NewTextReader(f)

	sim.Reset(reader)
	require.Zero(t, sim.GetStatistics().CycleCount)

	require.NoError(t, sim.Run(0))
	require.Greater(t, sim.GetStatistics().TotalRetired, int64(0))
}

func TestDescribeStages(t *testing.T) {
	dir := t.TempDir()
	path := writeTrace(t, dir, "0 0 -1 -1 1\n")
	cfg := testConfig(t, path)

	sim, err := New(cfg)
	require.NoError(t, err)
	defer sim.Close()

	stages := sim.DescribeStages()
	require.NotEmpty(t, stages)
	require.Equal(t, "Fetch", stages[0])
}
