package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  address: 127.0.0.1
  port: 8080
  debug: true
database:
  path: /tmp/pulse/db.json
log:
  level: debug
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1" || cfg.Server.Port != 8080 {
		t.Errorf("Unexpected server config: %+v", cfg.Server)
	}
	if !cfg.Server.Debug {
		t.Error("Expected debug enabled")
	}
	if cfg.Database.Path != "/tmp/pulse/db.json" {
		t.Errorf("Unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Unexpected log level: %q", cfg.Log.Level)
	}
}

func TestLoadDefaultsAndEnvOverride(t *testing.T) {
	t.Setenv("PULSE_SERVER_PORT", "9000")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  address: 0.0.0.0\n"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Expected env override 9000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Path != "./data/db.json" {
		t.Errorf("Expected default database path, got %q", cfg.Database.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Expected default log level, got %q", cfg.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for a missing explicit config file")
	}
}
