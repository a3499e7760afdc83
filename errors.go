// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import (
	"errors"
	"fmt"

	"github.com/woozymasta/dbc/blast"
)

// Sentinel errors for container parsing.
var (
	// ErrShortHeader is returned when the input ends before the header length field.
	ErrShortHeader = errors.New("input shorter than header length field")
	// ErrHeaderLength is returned when the header length field is smaller than the fixed prefix.
	ErrHeaderLength = errors.New("header length smaller than fixed prefix")
	// ErrTruncatedHeader is returned when the input ends inside the header block.
	ErrTruncatedHeader = errors.New("input ends inside header block")
	// ErrInvalidChunkSize is returned when Options.ChunkSize is negative or above MaxChunkSize.
	ErrInvalidChunkSize = errors.New("chunk size out of range")
	// ErrInvalidCodec is returned when Options.OutputCodec is not a known codec.
	ErrInvalidCodec = errors.New("unknown output codec")
)

// IOError reports a failed filesystem or stream operation.
type IOError struct {
	Op   string // "open", "create", "seek", "read", "write", "close"
	Path string // empty when the stream has no name
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// FormatError reports a container whose layout cannot be valid.
type FormatError struct {
	Offset int64 // input offset where the problem was found
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed container at offset %d: %v", e.Offset, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// DecodeError reports a payload the decompression engine rejected.
type DecodeError struct {
	Status blast.Status
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode payload (%s): %v", e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IntegrityWarning reports input bytes left after the end of the compressed
// stream. It never fails a conversion; it is returned by Result.Warning.
type IntegrityWarning struct {
	Trailing int64
}

func (w *IntegrityWarning) Error() string {
	return fmt.Sprintf("%d unused bytes of input after end of stream", w.Trailing)
}
