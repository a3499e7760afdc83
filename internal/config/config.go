// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

// Package config loads the dbc2dbf configuration file.
//
// The file is taken from the --config flag or, when the flag is empty, from
// the DBC2DBF_CONFIG environment variable. There is no discovery: with
// neither set, Default is used as-is. Command-line flags override values
// read from the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/woozymasta/dbc"
	"github.com/woozymasta/dbc/sink"
)

// EnvConfig names the environment variable holding the config file path.
const EnvConfig = "DBC2DBF_CONFIG"

// Config is the dbc2dbf configuration.
type Config struct {
	// ChunkSize is the number of compressed bytes requested per pull.
	// Default: 4096
	ChunkSize int `yaml:"chunk_size"`

	// OutputCodec compresses the written DBF file.
	// Values: "none", "gzip", "zstd", "lz4"
	// Default: none
	OutputCodec sink.Codec `yaml:"output_codec"`

	// LogLevel is the minimum level written to stderr.
	// Values: "debug", "info", "warn", "error"
	// Default: info
	LogLevel string `yaml:"log_level"`

	// Overwrite allows replacing an existing output file.
	Overwrite bool `yaml:"overwrite"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		ChunkSize:   dbc.DefaultChunkSize,
		OutputCodec: sink.CodecNone,
		LogLevel:    "info",
	}
}

// Load loads the file at path, or the file named by DBC2DBF_CONFIG when path
// is empty. With neither set it returns Default.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// decode merges YAML data into c, rejecting keys c does not have.
func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.ChunkSize <= 0 || c.ChunkSize > dbc.MaxChunkSize {
		errs = append(errs, fmt.Errorf("chunk_size must be in 1..%d, got %d", dbc.MaxChunkSize, c.ChunkSize))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}

	return level, nil
}

// Options returns conversion options for c.
func (c *Config) Options(logger *slog.Logger) *dbc.Options {
	opts := dbc.DefaultOptions()
	opts.ChunkSize = c.ChunkSize
	opts.OutputCodec = c.OutputCodec
	opts.Logger = logger

	return opts
}
