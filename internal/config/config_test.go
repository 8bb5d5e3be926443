package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FITNESS_DATA_FILE", "FITNESS_BACKGROUND_IMAGE", "FITNESS_WINDOW_WIDTH",
		"FITNESS_WINDOW_HEIGHT", "LOG_LEVEL", "FITNESS_LOG_JSON", "DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "fitness_data.json", cfg.Data.File)
	assert.Equal(t, "fitness_background.png", cfg.UI.BackgroundImage)
	assert.Equal(t, 400, cfg.UI.Width)
	assert.Equal(t, 600, cfg.UI.Height)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "Personal Fitness Tracker", cfg.App.Name)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("FITNESS_DATA_FILE", "/tmp/steps.json")
	t.Setenv("FITNESS_WINDOW_WIDTH", "480")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("FITNESS_LOG_JSON", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/steps.json", cfg.Data.File)
	assert.Equal(t, 480, cfg.UI.Width)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestDebugFlagRaisesLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEBUG", "1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromDotEnv(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("FITNESS_BACKGROUND_IMAGE=/srv/bg.png\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("FITNESS_BACKGROUND_IMAGE") })

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/srv/bg.png", cfg.UI.BackgroundImage)
}

func TestInvalidConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("FITNESS_WINDOW_HEIGHT", "0")
	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestWarningLevelAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "Warning")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}
