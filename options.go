// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import (
	"fmt"
	"log/slog"

	"github.com/woozymasta/dbc/blast"
	"github.com/woozymasta/dbc/sink"
)

// Engine decodes one compressed payload. It pulls compressed chunks until it
// reaches the end of the stream, pushes decoded chunks in order, and returns
// how many bytes of the last pulled chunk it left unconsumed.
type Engine func(pull blast.PullFunc, push blast.PushFunc) (unused int, err error)

// Options configures a conversion. A nil *Options means DefaultOptions.
type Options struct {
	// ChunkSize is the number of bytes requested per pull (0 = DefaultChunkSize).
	// It affects throughput only, never output.
	ChunkSize int
	// Engine decodes the payload (nil = blast.Decompress).
	Engine Engine
	// Logger receives progress and integrity warnings (nil = discard).
	Logger *slog.Logger
	// OutputCodec wraps the output file written by ConvertFile (zero = sink.CodecNone).
	OutputCodec sink.Codec
}

// DefaultOptions returns options with the blast engine, 4 KiB chunks and no logging.
func DefaultOptions() *Options {
	return &Options{
		ChunkSize: DefaultChunkSize,
		Engine:    blast.Decompress,
	}
}

// resolved returns a copy of o with every unset field defaulted.
func (o *Options) resolved() (Options, error) {
	var r Options
	if o != nil {
		r = *o
	}

	if r.ChunkSize < 0 || r.ChunkSize > MaxChunkSize {
		return r, fmt.Errorf("%w: %d (max %d)", ErrInvalidChunkSize, r.ChunkSize, MaxChunkSize)
	}
	if !r.OutputCodec.Valid() {
		return r, fmt.Errorf("%w: %s", ErrInvalidCodec, r.OutputCodec)
	}
	if r.ChunkSize == 0 {
		r.ChunkSize = DefaultChunkSize
	}
	if r.Engine == nil {
		r.Engine = blast.Decompress
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.DiscardHandler)
	}

	return r, nil
}
