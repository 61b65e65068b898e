package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/dpa-navigator/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default body limit, got %d", cfg.BodySizeBytes())
	}
	if cfg.EngineConfig != "" {
		t.Fatalf("expected no engine config by default, got %q", cfg.EngineConfig)
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.BodySizeBytes() <= 0 {
		t.Fatalf("expected positive body limit, got %d", cfg.BodySizeBytes())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 128K
engineConfig: config.yaml
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 128*1024 {
		t.Fatalf("expected body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.EngineConfig != "config.yaml" {
		t.Fatalf("expected engine config override, got %s", cfg.EngineConfig)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected logging format console, got %s", cfg.Logging.Format)
	}
	if cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("expected logging outputFile /tmp/server.log, got %s", cfg.Logging.OutputFile)
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	if err := os.WriteFile(path, []byte("maxBodySize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DPA_SERVER_ADDRESS", ":9999")
	t.Setenv("DPA_SERVER_MAX_BODY_SIZE", "1M")
	t.Setenv("DPA_SERVER_ENGINE_CONFIG", "/etc/dpa/config.yaml")
	t.Setenv("DPA_SERVER_LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Address != ":9999" {
		t.Errorf("expected env address, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 1024*1024 {
		t.Errorf("expected 1M body limit, got %d", cfg.BodySizeBytes())
	}
	if cfg.EngineConfig != "/etc/dpa/config.yaml" {
		t.Errorf("expected env engine config, got %s", cfg.EngineConfig)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected env log level, got %s", cfg.Logging.Level)
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1GB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}
