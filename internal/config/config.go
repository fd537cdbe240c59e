// Package config provides configuration loading and validation for
// kwire clients and tools. Supports YAML files with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a kwire client.
type Config struct {
	Broker        BrokerConfig        `yaml:"broker"`
	Client        ClientConfig        `yaml:"client"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type BrokerConfig struct {
	// Addr is the broker address to dial, host:port.
	Addr string `yaml:"addr" env:"KWIRE_BROKER_ADDR"`
}

type ClientConfig struct {
	// ClientID is sent in every request envelope. When empty, a
	// generated id is used.
	ClientID string `yaml:"clientId" env:"KWIRE_CLIENT_ID"`

	DialTimeoutMs  int64 `yaml:"dialTimeoutMs" env:"KWIRE_DIAL_TIMEOUT_MS"`
	ReadTimeoutMs  int64 `yaml:"readTimeoutMs" env:"KWIRE_READ_TIMEOUT_MS"`
	WriteTimeoutMs int64 `yaml:"writeTimeoutMs" env:"KWIRE_WRITE_TIMEOUT_MS"`

	// MaxFrameSize bounds the declared length of inbound frames.
	MaxFrameSize int32 `yaml:"maxFrameSize" env:"KWIRE_MAX_FRAME_SIZE"`
}

type ObservabilityConfig struct {
	MetricsAddr string `yaml:"metricsAddr" env:"KWIRE_METRICS_ADDR"`
	LogLevel    string `yaml:"logLevel" env:"KWIRE_LOG_LEVEL"`
	LogFormat   string `yaml:"logFormat" env:"KWIRE_LOG_FORMAT"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Broker: BrokerConfig{
			Addr: "localhost:9092",
		},
		Client: ClientConfig{
			DialTimeoutMs:  5000,
			ReadTimeoutMs:  30000,
			WriteTimeoutMs: 30000,
			MaxFrameSize:   100 * 1024 * 1024, // 100MB
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Load reads a YAML config file, applies environment overrides, and
// validates the result. An empty path yields defaults plus overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setInt64 := func(dst *int64, key string) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil {
				*dst = n
			}
		}
	}
	setInt32 := func(dst *int32, key string) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				*dst = int32(n)
			}
		}
	}

	setString(&c.Broker.Addr, "KWIRE_BROKER_ADDR")
	setString(&c.Client.ClientID, "KWIRE_CLIENT_ID")
	setInt64(&c.Client.DialTimeoutMs, "KWIRE_DIAL_TIMEOUT_MS")
	setInt64(&c.Client.ReadTimeoutMs, "KWIRE_READ_TIMEOUT_MS")
	setInt64(&c.Client.WriteTimeoutMs, "KWIRE_WRITE_TIMEOUT_MS")
	setInt32(&c.Client.MaxFrameSize, "KWIRE_MAX_FRAME_SIZE")
	setString(&c.Observability.MetricsAddr, "KWIRE_METRICS_ADDR")
	setString(&c.Observability.LogLevel, "KWIRE_LOG_LEVEL")
	setString(&c.Observability.LogFormat, "KWIRE_LOG_FORMAT")
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Broker.Addr == "" {
		return fmt.Errorf("broker.addr must not be empty")
	}
	if c.Client.MaxFrameSize <= 0 {
		return fmt.Errorf("client.maxFrameSize must be positive, got %d", c.Client.MaxFrameSize)
	}
	if c.Client.DialTimeoutMs < 0 || c.Client.ReadTimeoutMs < 0 || c.Client.WriteTimeoutMs < 0 {
		return fmt.Errorf("client timeouts must not be negative")
	}
	return nil
}
