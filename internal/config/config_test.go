package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: \"9090\"\nstorage:\n  type: memory\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Fatalf("expected port from file, got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Quiz.CodingPolicy != "accept_any" || cfg.Quiz.SessionStore != "memory" {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Database, cfg.Quiz)
	}
	if cfg.Runner.Delay() != time.Second || cfg.Quiz.SessionTTL() != 2*time.Hour {
		t.Fatalf("unexpected durations: %v %v", cfg.Runner.Delay(), cfg.Quiz.SessionTTL())
	}
	if cfg.Preferences.DefaultTheme != "system" || cfg.Preferences.DefaultAccent != "blue" {
		t.Fatalf("unexpected preference defaults: %+v", cfg.Preferences)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, "storage:\n  type: memory\nquiz:\n  coding_policy: accept_any\n")
	t.Setenv("QUIZ_CODING_POLICY", "expected_output")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Quiz.CodingPolicy != "expected_output" {
		t.Fatalf("env must override file, got %q", cfg.Quiz.CodingPolicy)
	}
}

func TestLoadConfig_RedisStoreRequiresRedis(t *testing.T) {
	dir := writeConfig(t, "storage:\n  type: memory\nquiz:\n  session_store: redis\nredis:\n  enabled: false\n")
	if _, err := LoadConfig(dir); err == nil {
		t.Fatalf("expected error when the redis session store has no redis")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
