package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "modern", cfg.Scheduler.Algorithm)
	assert.InDelta(t, 0.90, cfg.Scheduler.TargetRetention, 1e-9)
	assert.False(t, cfg.Scheduler.FocusMode)
	assert.True(t, cfg.Study.Interleave)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Database.Path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BAEUM_SCHEDULER_ALGORITHM", "classic")
	t.Setenv("BAEUM_SCHEDULER_FOCUS_MODE", "true")
	t.Setenv("BAEUM_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.Scheduler.Algorithm)
	assert.True(t, cfg.Scheduler.FocusMode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	doc := "scheduler:\n  algorithm: classic\n  target_retention: 0.85\nstudy:\n  interleave: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "baeum.yaml"), []byte(doc), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "classic", cfg.Scheduler.Algorithm)
	assert.InDelta(t, 0.85, cfg.Scheduler.TargetRetention, 1e-9)
	assert.False(t, cfg.Study.Interleave)
}
