package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 64, cfg.Limits.MaxDepth)
	assert.Equal(t, 1<<20, cfg.Limits.MaxSequenceLen)
	assert.Equal(t, 1<<30, cfg.Limits.MaxPayloadBytes)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Corpus.Path)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Limits.MaxDepth = 16
	cfg.Logging.Level = "debug"
	cfg.Corpus.Path = "/tmp/corpus"

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, DefaultConfig().Limits, cfg.Limits)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits: [not a mapping"), 0600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestCodecConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits.MaxDepth = 8
	cfg.Limits.MaxSequenceLen = 100
	cfg.Limits.MaxPayloadBytes = 2048

	cc := cfg.CodecConfig()
	assert.Equal(t, 8, cc.MaxDepth)
	assert.Equal(t, 100, cc.MaxSeqLen)
	assert.Equal(t, 2048, cc.MaxPayload)
}

func TestConfigExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.False(t, ConfigExists(path))

	require.NoError(t, SaveConfig(DefaultConfig(), path))
	assert.True(t, ConfigExists(path))
}
