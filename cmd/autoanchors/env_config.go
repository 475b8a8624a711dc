package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-autoanchors/internal/config"
)

// envPrefix is shared by all recognized environment variables.
const envPrefix = "AUTOANCHORS_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // AUTOANCHORS_CONFIG
	InputDir   string        // AUTOANCHORS_INPUT_DIR
	OutputDir  string        // AUTOANCHORS_OUTPUT_DIR
	Label      string        // AUTOANCHORS_LABEL
	Style      string        // AUTOANCHORS_STYLE
	Timeout    time.Duration // AUTOANCHORS_TIMEOUT
	Workers    int           // AUTOANCHORS_WORKERS
}

// knownEnvVars lists valid AUTOANCHORS_* environment variables.
var knownEnvVars = map[string]bool{
	"AUTOANCHORS_CONFIG":     true,
	"AUTOANCHORS_INPUT_DIR":  true,
	"AUTOANCHORS_OUTPUT_DIR": true,
	"AUTOANCHORS_LABEL":      true,
	"AUTOANCHORS_STYLE":      true,
	"AUTOANCHORS_TIMEOUT":    true,
	"AUTOANCHORS_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("AUTOANCHORS_CONFIG"),
		InputDir:   os.Getenv("AUTOANCHORS_INPUT_DIR"),
		OutputDir:  os.Getenv("AUTOANCHORS_OUTPUT_DIR"),
		Label:      os.Getenv("AUTOANCHORS_LABEL"),
		Style:      os.Getenv("AUTOANCHORS_STYLE"),
	}

	if timeout := os.Getenv("AUTOANCHORS_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("AUTOANCHORS_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized AUTOANCHORS_* variable.
func warnUnknownEnvVars(logger zerolog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig fills config values the file left empty.
// Precedence: CLI flags > env vars > config file > defaults
// (flags are applied afterwards by mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Label != "" && cfg.TOC.Label == "" {
		cfg.TOC.Label = env.Label
	}
	// Style is never empty; the env var only overrides the default.
	if env.Style != "" && cfg.Assets.Style == config.DefaultConfig().Assets.Style {
		cfg.Assets.Style = env.Style
	}
	if env.Timeout > 0 && cfg.PDF.Timeout == "" {
		cfg.PDF.Timeout = env.Timeout.String()
	}
}
