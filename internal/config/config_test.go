package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fb2sci/internal/config"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Output.Overwrite {
		t.Fatal("expected overwrite disabled by default")
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb2sci.toml")
	content := "[logging]\nlevel = \"DEBUG\"\nformat = \"json\"\n\n[output]\noverwrite = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected file to be reported as existing")
	}
	if resolved != path {
		t.Fatalf("resolved %q, want %q", resolved, path)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level not normalized: %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("unexpected format: %q", cfg.Logging.Format)
	}
	if !cfg.Output.Overwrite {
		t.Fatal("overwrite not honored")
	}
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fb2sci.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"loud\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("got %v, want logging.level error", err)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found by Load")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config %+v differs from defaults %+v", *cfg, config.Default())
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := config.ExpandPath("~/banks/a.syx")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "banks", "a.syx") {
		t.Fatalf("unexpected expansion: %q", got)
	}
}
