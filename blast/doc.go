// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

/*
Package blast decompresses data produced by the PKWARE Data Compression
Library "implode" method (the format handled by zlib's contrib/blast).

A stream starts with two bytes: the literal flag (0 = literals stored as raw
bytes, 1 = literals Huffman coded) and the dictionary selector (4, 5 or 6 for
a 1K, 2K or 4K sliding window). The rest is an LSB-first bit stream of
literals and length/distance back-references coded with fixed canonical
Huffman tables, terminated by the length-519 end marker.

# Streaming

The decoder pulls compressed chunks and pushes decoded chunks, so neither
side has to fit in memory:

	unused, err := blast.Decompress(
		func() ([]byte, error) { return nextChunk() },
		func(p []byte) error { _, err := w.Write(p); return err },
	)

unused is the number of bytes of the last pulled chunk that were left after
the end marker.

# In memory

	out, nRead, err := blast.DecompressBytes(compressed)

# Reader

	r := blast.NewReader(f)
	defer r.Close()
	io.Copy(dst, r)
*/
package blast
