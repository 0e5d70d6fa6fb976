package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DynamicConfig represents runtime-changeable configuration, loaded
// from a YAML file and hot-reloaded by the watcher. It tunes the
// propagation layer only; nothing in here changes mutation semantics.
type DynamicConfig struct {
	WebSocket WebSocketConfig `yaml:"websocket"`
	Limits    Limits          `yaml:"limits"`
	Metadata  ConfigMetadata  `yaml:"metadata"`
}

// WebSocketConfig holds snapshot-stream settings
type WebSocketConfig struct {
	MaxClients   int `yaml:"maxClients"`
	SendBuffer   int `yaml:"sendBuffer"`
	PingInterval int `yaml:"pingInterval"` // seconds
	WriteTimeout int `yaml:"writeTimeout"` // seconds
}

// Limits holds transport limits
type Limits struct {
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`
}

// ConfigMetadata holds metadata about the configuration
type ConfigMetadata struct {
	Version   string    `yaml:"version"`
	UpdatedAt time.Time `yaml:"updatedAt"`
}

// DefaultDynamicConfig returns the configuration used when no file is
// supplied or a reload fails.
func DefaultDynamicConfig() *DynamicConfig {
	return &DynamicConfig{
		WebSocket: WebSocketConfig{
			MaxClients:   64,
			SendBuffer:   16,
			PingInterval: 30,
			WriteTimeout: 10,
		},
		Limits: Limits{
			MaxBodyBytes: 1 << 20,
		},
	}
}

// LoadDynamicConfig reads and parses the YAML file at path
func LoadDynamicConfig(path string) (*DynamicConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dynamic config: %w", err)
	}

	cfg := DefaultDynamicConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse dynamic config: %w", err)
	}

	return cfg, nil
}
