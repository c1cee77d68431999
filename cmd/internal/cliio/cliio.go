// Package cliio holds the input/output plumbing shared by the write_in
// and read_out binaries: stdin/stdout handling, all-or-nothing file sinks
// and config resolution.
package cliio

import (
	"fmt"
	"io"
	"os"

	"github.com/norvik/valbin/pkg/config"
	"github.com/norvik/valbin/pkg/stream"
)

// ReadInput reads the whole input source. An empty path or "-" means stdin.
func ReadInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// WriteOutput writes data to the output sink. An empty path or "-" means
// stdout; file sinks are written atomically so a failure never leaves
// partial output behind.
func WriteOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		return nil
	}

	if err := stream.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ResolveConfig loads the config file at path, falling back to the default
// location if present and to built-in defaults otherwise.
func ResolveConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfig(path)
	}
	if def := config.GetDefaultConfigPath(); config.ConfigExists(def) {
		return config.LoadConfig(def)
	}
	return config.DefaultConfig(), nil
}
