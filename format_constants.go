// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

// DBC container layout:
//
//	[0, 8)                  preamble, copied as-is
//	[8, 10)                 header length, uint16 little-endian
//	[0, headerLength)       header block, copied as-is
//	[headerLength, +4)      checksum, not validated
//	[headerLength+4, EOF)   imploded payload
const (
	preambleSize    = 8
	lengthFieldSize = 2
	checksumSize    = 4

	// MinHeaderLength is the smallest valid header length: the preamble plus
	// the length field itself.
	MinHeaderLength = preambleSize + lengthFieldSize

	// DefaultChunkSize is the pull chunk size used when Options.ChunkSize is 0.
	DefaultChunkSize = 4096

	// MaxChunkSize is the largest accepted Options.ChunkSize.
	MaxChunkSize = 16 << 20
)
