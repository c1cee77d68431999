package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/norvik/valbin/pkg/codec"
)

// Config represents the valbin configuration shared by the CLI binaries.
type Config struct {
	Limits  Limits  `yaml:"limits"`
	Logging Logging `yaml:"logging"`
	Corpus  Corpus  `yaml:"corpus"`
}

// Limits contains the decode-time format limits. Endianness and field
// widths are fixed format constants and deliberately not configurable.
type Limits struct {
	MaxDepth        int `yaml:"max_depth"`
	MaxSequenceLen  int `yaml:"max_sequence_len"`
	MaxPayloadBytes int `yaml:"max_payload_bytes"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// Corpus contains benchmark corpus configuration.
type Corpus struct {
	Path string `yaml:"path"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	limits := codec.DefaultConfig()
	return &Config{
		Limits: Limits{
			MaxDepth:        limits.MaxDepth,
			MaxSequenceLen:  limits.MaxSeqLen,
			MaxPayloadBytes: limits.MaxPayload,
		},
		Logging: Logging{
			Level: "info",
		},
		Corpus: Corpus{
			Path: "./corpus",
		},
	}
}

// CodecConfig converts the configured limits into the codec's form.
func (c *Config) CodecConfig() codec.Config {
	return codec.Config{
		MaxDepth:   c.Limits.MaxDepth,
		MaxSeqLen:  c.Limits.MaxSequenceLen,
		MaxPayload: c.Limits.MaxPayloadBytes,
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the
// current platform.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./valbin.yaml"
	}
	return filepath.Join(homeDir, ".config", "valbin", "config.yaml")
}

// ConfigExists checks if a configuration file exists.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
