package main

// Notes:
// - These tests use t.Setenv, so they cannot run in parallel.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-autoanchors/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("AUTOANCHORS_CONFIG", "site")
	t.Setenv("AUTOANCHORS_INPUT_DIR", "in")
	t.Setenv("AUTOANCHORS_OUTPUT_DIR", "out")
	t.Setenv("AUTOANCHORS_LABEL", "Inhalt")
	t.Setenv("AUTOANCHORS_STYLE", "dark")
	t.Setenv("AUTOANCHORS_TIMEOUT", "90s")
	t.Setenv("AUTOANCHORS_WORKERS", "3")

	got := loadEnvConfig()
	want := &envConfig{
		ConfigPath: "site",
		InputDir:   "in",
		OutputDir:  "out",
		Label:      "Inhalt",
		Style:      "dark",
		Timeout:    90 * time.Second,
		Workers:    3,
	}
	if *got != *want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", got, want)
	}
}

func TestLoadEnvConfig_Malformed(t *testing.T) {
	t.Setenv("AUTOANCHORS_TIMEOUT", "soon")
	t.Setenv("AUTOANCHORS_WORKERS", "-2")

	got := loadEnvConfig()
	if got.Timeout != 0 || got.Workers != 0 {
		t.Errorf("loadEnvConfig() = %+v, want malformed values ignored", got)
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{InputDir: "in", OutputDir: "out", Label: "Inhalt", Style: "dark", Timeout: time.Minute}

	t.Run("fills empty values", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)
		if cfg.Input.DefaultDir != "in" || cfg.Output.DefaultDir != "out" {
			t.Errorf("dirs = %q, %q", cfg.Input.DefaultDir, cfg.Output.DefaultDir)
		}
		if cfg.TOC.Label != "Inhalt" || cfg.Assets.Style != "dark" || cfg.PDFTimeout() != time.Minute {
			t.Errorf("cfg = %+v", cfg)
		}
	})

	t.Run("file values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.TOC.Label = "From file"
		cfg.Assets.Style = "light"
		cfg.PDF.Timeout = "10s"
		applyEnvConfig(env, cfg)
		if cfg.TOC.Label != "From file" || cfg.Assets.Style != "light" || cfg.PDF.Timeout != "10s" {
			t.Errorf("cfg = %+v", cfg)
		}
	})
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("AUTOANCHORS_LABEL", "ok")
	t.Setenv("AUTOANCHORS_LABLE", "typo")

	var buf bytes.Buffer
	warnUnknownEnvVars(newLogger(&buf, false, false))

	out := buf.String()
	if !strings.Contains(out, "AUTOANCHORS_LABLE") {
		t.Errorf("typo not reported:\n%s", out)
	}
	if strings.Count(out, "unknown environment variable") != 1 {
		t.Errorf("known variable reported:\n%s", out)
	}
}
