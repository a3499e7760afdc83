// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package blast

// PKWARE DCL implode format constants: code table descriptions, length bases
// and window parameters.

const (
	maxBits    = 13   // maximum code length
	windowSize = 4096 // largest sliding window (dictionary selector 6)

	minDictBits = 4
	maxDictBits = 6

	// endOfStream is the match length reserved as the stream terminator.
	endOfStream = 519

	// DefaultChunkSize is the pull chunk size used by NewReader.
	DefaultChunkSize = 4096
)

// Code length tables in compact form: each byte is (count-1)<<4 | length,
// giving count consecutive symbols of the same code length.
var (
	literalCodeLengths = [...]byte{
		11, 124, 8, 7, 28, 7, 188, 13, 76, 4, 10, 8, 12, 10, 12, 10, 8, 23, 8,
		9, 7, 6, 7, 8, 7, 6, 55, 8, 23, 24, 12, 11, 7, 9, 11, 12, 6, 7, 22, 5,
		7, 24, 6, 11, 9, 6, 7, 22, 7, 11, 38, 7, 9, 8, 25, 11, 8, 11, 9, 12,
		8, 12, 5, 38, 5, 38, 5, 11, 7, 5, 6, 21, 6, 10, 53, 8, 7, 24, 10, 27,
		44, 253, 253, 253, 252, 252, 252, 13, 12, 45, 12, 45, 12, 61, 12, 45,
		44, 173,
	}
	lengthCodeLengths   = [...]byte{2, 35, 36, 53, 38, 23}
	distanceCodeLengths = [...]byte{2, 20, 53, 230, 247, 151, 248}
)

// Match length base and extra bit count per length symbol.
var (
	lengthBase  = [16]int{3, 2, 4, 5, 6, 7, 8, 9, 10, 12, 16, 24, 40, 72, 136, 264}
	lengthExtra = [16]uint{0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8}
)
