package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Broker.Addr != "localhost:9092" {
		t.Errorf("broker.addr = %q, want localhost:9092", cfg.Broker.Addr)
	}
	if cfg.Client.MaxFrameSize != 100*1024*1024 {
		t.Errorf("maxFrameSize = %d, want %d", cfg.Client.MaxFrameSize, 100*1024*1024)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kwire.yaml")
	data := `
broker:
  addr: broker-1:9092
client:
  clientId: test-client
  readTimeoutMs: 1000
observability:
  logLevel: debug
  logFormat: text
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Broker.Addr != "broker-1:9092" {
		t.Errorf("broker.addr = %q", cfg.Broker.Addr)
	}
	if cfg.Client.ClientID != "test-client" {
		t.Errorf("clientId = %q", cfg.Client.ClientID)
	}
	if cfg.Client.ReadTimeoutMs != 1000 {
		t.Errorf("readTimeoutMs = %d", cfg.Client.ReadTimeoutMs)
	}
	// Unset keys keep defaults.
	if cfg.Client.WriteTimeoutMs != 30000 {
		t.Errorf("writeTimeoutMs = %d, want default 30000", cfg.Client.WriteTimeoutMs)
	}
	if cfg.Observability.LogLevel != "debug" {
		t.Errorf("logLevel = %q", cfg.Observability.LogLevel)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("KWIRE_BROKER_ADDR", "env-broker:9093")
	t.Setenv("KWIRE_MAX_FRAME_SIZE", "4096")
	t.Setenv("KWIRE_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Broker.Addr != "env-broker:9093" {
		t.Errorf("broker.addr = %q", cfg.Broker.Addr)
	}
	if cfg.Client.MaxFrameSize != 4096 {
		t.Errorf("maxFrameSize = %d", cfg.Client.MaxFrameSize)
	}
	if cfg.Observability.LogLevel != "warn" {
		t.Errorf("logLevel = %q", cfg.Observability.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Broker.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty broker addr accepted")
	}

	cfg = Default()
	cfg.Client.MaxFrameSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero maxFrameSize accepted")
	}

	cfg = Default()
	cfg.Client.ReadTimeoutMs = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative timeout accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/kwire.yaml"); err == nil {
		t.Error("missing file accepted")
	}
}
