// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/woozymasta/dbc"
	"github.com/woozymasta/dbc/internal/config"
	"github.com/woozymasta/dbc/sink"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const envDebug = "DBC2DBF_DEBUG"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "dbc2dbf: %v\n", err)
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usageError(format string, args ...any) error {
	return &exitError{code: 2, err: fmt.Errorf(format, args...)}
}

type flags struct {
	configPath string
	chunkSize  int
	codec      string
	logLevel   string
	force      bool
	inspect    bool
	version    bool
	help       bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var f flags

	flagSet := pflag.NewFlagSet("dbc2dbf", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&f.configPath, "config", "", "path to YAML config file (default: $"+config.EnvConfig+")")
	flagSet.IntVar(&f.chunkSize, "chunk-size", dbc.DefaultChunkSize, "compressed bytes read per chunk")
	flagSet.StringVar(&f.codec, "codec", "none", "compress the output: none, gzip, zstd, lz4")
	flagSet.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flagSet.BoolVarP(&f.force, "force", "f", false, "overwrite an existing output file")
	flagSet.BoolVar(&f.inspect, "inspect", false, "print the container layout and exit")
	flagSet.BoolVar(&f.version, "version", false, "print version and exit")
	flagSet.BoolVarP(&f.help, "help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stderr, flagSet)
			return nil
		}
		return &exitError{code: 2, err: err}
	}

	if f.help {
		printHelp(stderr, flagSet)
		return nil
	}
	if f.version {
		fmt.Fprintf(stdout, "dbc2dbf %s\n", version)
		return nil
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return usageError("load config: %w", err)
	}
	if err := applyFlags(cfg, flagSet, &f); err != nil {
		return err
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := flagSet.Args()
	if f.inspect {
		if len(rest) != 1 {
			return usageError("--inspect takes exactly one input path, got %d", len(rest))
		}
		return inspect(stdout, rest[0])
	}

	if len(rest) != 2 {
		return usageError("expected <input.dbc> <output.dbf>, got %d arguments", len(rest))
	}

	return convert(logger, cfg, rest[0], rest[1])
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(cfg *config.Config, flagSet *pflag.FlagSet, f *flags) error {
	if flagSet.Changed("chunk-size") {
		cfg.ChunkSize = f.chunkSize
	}
	if flagSet.Changed("codec") {
		codec, err := sink.ParseCodec(f.codec)
		if err != nil {
			return usageError("--codec: %w", err)
		}
		cfg.OutputCodec = codec
	}
	switch {
	case flagSet.Changed("log-level"):
		cfg.LogLevel = f.logLevel
	case os.Getenv(envDebug) != "":
		cfg.LogLevel = "debug"
	}
	if f.force {
		cfg.Overwrite = true
	}

	if err := cfg.Validate(); err != nil {
		return usageError("%w", err)
	}

	return nil
}

func convert(logger *slog.Logger, cfg *config.Config, inPath, outPath string) error {
	if !cfg.Overwrite {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output %s already exists (use --force to overwrite)", outPath)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", outPath, err)
		}
	}

	if ext := cfg.OutputCodec.Ext(); ext != "" && !strings.HasSuffix(outPath, ext) {
		logger.Warn("output name does not match codec", "output", outPath, "codec", cfg.OutputCodec, "ext", ext)
	}

	logger.Debug("converting",
		"input", inPath,
		"output", outPath,
		"chunk_size", cfg.ChunkSize,
		"codec", cfg.OutputCodec,
	)

	res, err := dbc.ConvertFile(inPath, outPath, cfg.Options(logger))
	if err != nil {
		var ioErr *dbc.IOError
		if errors.As(err, &ioErr) {
			return err
		}
		return fmt.Errorf("%s: %w", inPath, err)
	}

	logger.Info("converted",
		"input", inPath,
		"output", outPath,
		"header", humanize.Bytes(uint64(res.Header.Length)),
		"payload", humanize.Bytes(uint64(res.PayloadBytes)), //nolint:gosec // G115: counts are non-negative
		"table", humanize.Bytes(uint64(res.OutputBytes)), //nolint:gosec // G115: counts are non-negative
		"blake3", hex.EncodeToString(res.Digest[:]),
	)

	return nil
}

func inspect(w io.Writer, inPath string) error {
	f, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := dbc.Inspect(f)
	if err != nil {
		return fmt.Errorf("%s: %w", inPath, err)
	}

	fmt.Fprintf(w, "file:           %s\n", inPath)
	fmt.Fprintf(w, "size:           %s (%d bytes)\n", humanize.Bytes(uint64(info.Size)), info.Size) //nolint:gosec // G115: file size
	fmt.Fprintf(w, "header length:  %d\n", info.Length)
	fmt.Fprintf(w, "payload offset: %d\n", info.PayloadOffset)
	if info.HasChecksum {
		fmt.Fprintf(w, "checksum:       %08x (not verified)\n", info.Checksum)
	} else {
		fmt.Fprintf(w, "checksum:       missing\n")
	}
	fmt.Fprintf(w, "payload:        %s (%d bytes)\n", humanize.Bytes(uint64(info.PayloadSize)), info.PayloadSize) //nolint:gosec // G115: non-negative

	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `dbc2dbf converts DBC containers into DBF tables.

Usage:
  dbc2dbf [flags] <input.dbc> <output.dbf>
  dbc2dbf --inspect <input.dbc>

Examples:
  # Convert one file
  dbc2dbf DOSP2019.dbc DOSP2019.dbf

  # Replace an existing output and compress it with zstd
  dbc2dbf --force --codec zstd DOSP2019.dbc DOSP2019.dbf.zst

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
