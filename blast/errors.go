// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package blast

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression.
var (
	// ErrInvalidLiteralFlag is returned when the first stream byte is neither 0 nor 1.
	ErrInvalidLiteralFlag = errors.New("invalid literal flag")
	// ErrInvalidDictionarySize is returned when the second stream byte is not 4, 5 or 6.
	ErrInvalidDictionarySize = errors.New("invalid dictionary size")
	// ErrInvalidCode is returned when the bit stream holds no valid Huffman code.
	ErrInvalidCode = errors.New("invalid code")
	// ErrDistanceTooFar is returned when a back-reference points before the start of the output.
	ErrDistanceTooFar = errors.New("distance too far back")
	// ErrIncompleteCodeTable is returned when a built-in code table does not form a complete prefix code.
	ErrIncompleteCodeTable = errors.New("incomplete code table")
	// ErrOutputRejected is returned when the push callback fails.
	ErrOutputRejected = errors.New("output rejected")
	// ErrInputExhausted is returned when input ends before the end-of-stream marker.
	ErrInputExhausted = errors.New("input exhausted before end of stream")
)

// Status is the outcome of a decompression run.
type Status int

// Decompression outcomes.
const (
	StatusOK Status = iota
	StatusInvalidLiteralFlag
	StatusInvalidDictionarySize
	StatusInvalidCode
	StatusDistanceTooFar
	StatusIncompleteCodeTable
	StatusOutputRejected
	StatusInputExhausted
	// StatusUnknown covers errors that did not originate in the decoder (e.g. a failing pull).
	StatusUnknown
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidLiteralFlag:
		return "invalid literal flag"
	case StatusInvalidDictionarySize:
		return "invalid dictionary size"
	case StatusInvalidCode:
		return "invalid code"
	case StatusDistanceTooFar:
		return "distance too far"
	case StatusIncompleteCodeTable:
		return "incomplete code table"
	case StatusOutputRejected:
		return "output rejected"
	case StatusInputExhausted:
		return "input exhausted"
	case StatusUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// StatusOf maps an error returned by Decompress to its Status. A nil error is StatusOK.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidLiteralFlag):
		return StatusInvalidLiteralFlag
	case errors.Is(err, ErrInvalidDictionarySize):
		return StatusInvalidDictionarySize
	case errors.Is(err, ErrInvalidCode):
		return StatusInvalidCode
	case errors.Is(err, ErrDistanceTooFar):
		return StatusDistanceTooFar
	case errors.Is(err, ErrIncompleteCodeTable):
		return StatusIncompleteCodeTable
	case errors.Is(err, ErrOutputRejected):
		return StatusOutputRejected
	case errors.Is(err, ErrInputExhausted):
		return StatusInputExhausted
	default:
		return StatusUnknown
	}
}
