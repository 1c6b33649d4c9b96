package config

import (
	"os"
	"path/filepath"
	"testing"

	"pc-builder/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, logger.InfoLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Empty(t, cfg.Blueprint)
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		EnvLogLevel:     "debug",
		EnvJSONLogs:     "true",
		EnvAudioEnabled: "0",
		EnvMasterVolume: "25",
		EnvSampleRate:   "48000",
		EnvBlueprint:    " ./custom.hcl ",
	}))
	require.NoError(t, err)

	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.25, cfg.Audio.MasterVolume, 1e-9)
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
	assert.Equal(t, "./custom.hcl", cfg.Blueprint)
}

func TestDebugFallback(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"DEBUG": "1"}))
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.LogLevel)
}

func TestInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"bool":        {EnvJSONLogs: "maybe"},
		"volume":      {EnvMasterVolume: "loud"},
		"volume high": {EnvMasterVolume: "150"},
		"volume low":  {EnvMasterVolume: "-1"},
		"rate":        {EnvSampleRate: "fast"},
		"rate range":  {EnvSampleRate: "100"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(env(vars))
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PCB_MASTER_VOLUME=40\n"), 0o644))

	t.Chdir(dir)

	// godotenv never overrides, so make sure the variable starts unset
	t.Setenv(EnvMasterVolume, "")
	require.NoError(t, os.Unsetenv(EnvMasterVolume))

	cfg, err := Load()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, cfg.Audio.MasterVolume, 1e-9)
}
