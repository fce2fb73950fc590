package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 200000, cfg.Scale)
	assert.Equal(t, []int{8, 32, 128}, cfg.Degrees)
	assert.Equal(t, []string{StructTwoThree, StructGBTree, StructLSM, StructBunt}, cfg.Structures)
	assert.Equal(t, "results.csv", cfg.Output)
	assert.Equal(t, uint64(1), cfg.Seed)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scale: 5000
structures: [twothree, listindex]
log:
  level: debug
  format: json
`), 0o600))

	t.Setenv("BMARK_OUTPUT", "env.csv")
	t.Setenv("BMARK_LOG_FORMAT", "console")

	cfg, err := LoadConfig([]string{"--config", path, "--scale", "777", "--degrees", "4,16"})
	require.NoError(t, err)

	assert.Equal(t, 777, cfg.Scale, "flag beats file")
	assert.Equal(t, []int{4, 16}, cfg.Degrees)
	assert.Equal(t, []string{StructTwoThree, StructList}, cfg.Structures, "file beats default")
	assert.Equal(t, "env.csv", cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "env beats file")
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"--scale", "1"},
		{"--structures", "skiplist"},
		{"--degrees", "1"},
		{"--no-such-flag"},
		{"--config", "/nonexistent/bench.yaml"},
	} {
		_, err := LoadConfig(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1))

	_, err = NewLogger(LogConfig{Level: "loud"})
	assert.Error(t, err)
	_, err = NewLogger(LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
