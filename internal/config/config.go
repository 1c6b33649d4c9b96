// Package config reads runtime settings from the environment. A .env file in
// the working directory is loaded first when present; variables already set
// in the environment win over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pc-builder/internal/audio"
	"pc-builder/internal/logger"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvLogLevel     = "PCB_LOG_LEVEL"
	EnvJSONLogs     = "PCB_JSON_LOGS"
	EnvAudioEnabled = "PCB_AUDIO_ENABLED"
	EnvMasterVolume = "PCB_MASTER_VOLUME"
	EnvSampleRate   = "PCB_SAMPLE_RATE"
	EnvBlueprint    = "PCB_BLUEPRINT"
)

// Config holds everything main needs to assemble the application
type Config struct {
	LogLevel  logger.LogLevel
	JSONLogs  bool
	Audio     *audio.Config
	Blueprint string
}

// Default returns the settings used when no variable is set
func Default() Config {
	return Config{
		LogLevel: logger.InfoLevel,
		Audio:    audio.DefaultConfig(),
	}
}

// Load reads an optional .env file and then the environment
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from lookup, which returns "" for unset variables
func FromEnv(lookup func(string) string) (Config, error) {
	cfg := Default()

	if v := lookup(EnvLogLevel); v != "" {
		cfg.LogLevel = logger.ParseLevel(v)
	} else if lookup("DEBUG") == "1" {
		cfg.LogLevel = logger.DebugLevel
	}

	var err error
	if cfg.JSONLogs, err = parseBool(lookup, EnvJSONLogs, false); err != nil {
		return cfg, err
	}
	if cfg.Audio.Enabled, err = parseBool(lookup, EnvAudioEnabled, cfg.Audio.Enabled); err != nil {
		return cfg, err
	}

	if v := lookup(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		if n < 0 || n > 100 {
			return cfg, fmt.Errorf("%s: %d is outside 0-100", EnvMasterVolume, n)
		}
		cfg.Audio.MasterVolume = float64(n) / 100
	}

	if v := lookup(EnvSampleRate); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSampleRate, err)
		}
		if n < 8000 || n > 192000 {
			return cfg, fmt.Errorf("%s: unsupported sample rate %d", EnvSampleRate, n)
		}
		cfg.Audio.SampleRate = n
	}

	cfg.Blueprint = strings.TrimSpace(lookup(EnvBlueprint))
	return cfg, nil
}

func parseBool(lookup func(string) string, name string, def bool) (bool, error) {
	v := strings.TrimSpace(lookup(name))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
