// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package blast

import "sync"

// huffman is a canonical Huffman code: the number of symbols per code length
// and the symbols ordered by code.
type huffman struct {
	count  [maxBits + 1]uint16
	symbol []uint16
}

// codeTables holds the three fixed decoding tables.
type codeTables struct {
	literal  huffman
	length   huffman
	distance huffman
}

// builtinTables builds the fixed tables once per process.
var builtinTables = sync.OnceValues(func() (*codeTables, error) {
	t := &codeTables{}
	if err := t.literal.construct(literalCodeLengths[:]); err != nil {
		return nil, err
	}
	if err := t.length.construct(lengthCodeLengths[:]); err != nil {
		return nil, err
	}
	if err := t.distance.construct(distanceCodeLengths[:]); err != nil {
		return nil, err
	}

	return t, nil
})

// expandCodeLengths unpacks the compact (count-1)<<4 | length representation.
func expandCodeLengths(rep []byte) []uint8 {
	var lengths []uint8
	for _, b := range rep {
		n := int(b>>4) + 1
		for range n {
			lengths = append(lengths, b&0x0f)
		}
	}

	return lengths
}

// construct fills h from a compact code length description. It fails with
// ErrIncompleteCodeTable unless the lengths form a complete prefix code.
func (h *huffman) construct(rep []byte) error {
	lengths := expandCodeLengths(rep)

	h.count = [maxBits + 1]uint16{}
	for _, l := range lengths {
		h.count[l]++
	}
	if int(h.count[0]) == len(lengths) {
		return ErrIncompleteCodeTable
	}

	left := 1
	for l := 1; l <= maxBits; l++ {
		left <<= 1
		left -= int(h.count[l])
		if left < 0 {
			return ErrIncompleteCodeTable
		}
	}
	if left != 0 {
		return ErrIncompleteCodeTable
	}

	var offs [maxBits + 1]int
	for l := 1; l < maxBits; l++ {
		offs[l+1] = offs[l] + int(h.count[l])
	}

	h.symbol = make([]uint16, len(lengths))
	for sym, l := range lengths {
		if l != 0 {
			h.symbol[offs[l]] = uint16(sym) //nolint:gosec // G115: at most 256 symbols
			offs[l]++
		}
	}

	return nil
}
