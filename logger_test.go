package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithoutFile(t *testing.T) {
	logger, err := newLogger(DefaultConfig(), true)
	require.NoError(t, err)
	logger.Info("dropped")
}

func TestNewLoggerWritesFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "termprime.log")
	cfg.Log.Level = "warn"

	logger, err := newLogger(cfg, false)
	require.NoError(t, err)
	logger.Info("quiet")
	logger.Warn("loud")
	_ = logger.Sync()

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), "loud")
	assert.NotContains(t, string(data), "quiet")
}

func TestNewLoggerBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "termprime.log")
	cfg.Log.Level = "shouting"

	_, err := newLogger(cfg, false)
	assert.Error(t, err)
}
