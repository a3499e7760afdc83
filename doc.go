// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

/*
Package dbc converts DBC containers into the DBF tables they wrap.

A DBC file is a DBF header block followed by a 32-bit checksum and the DBF
records compressed with the PKWARE DCL "implode" method. The header block
length is stored little-endian at offset 8, exactly where DBF keeps it.
Conversion copies the header block verbatim, skips the checksum (it is not
validated) and decompresses the rest with package blast.

# Files

	res, err := dbc.ConvertFile("DOSP2019.dbc", "DOSP2019.dbf", nil)
	if err != nil {
		return err
	}
	if w := res.Warning(); w != nil {
		log.Print(w) // leftover input bytes, output is still complete
	}

# Streams

Convert works on any io.ReadSeeker / io.Writer pair:

	res, err := dbc.Convert(dst, src, &dbc.Options{ChunkSize: 64 << 10})

NewReader exposes the DBF bytes as an io.ReadCloser:

	r := dbc.NewReader(src, nil)
	defer r.Close()

# Errors

Failures are *IOError (filesystem), *FormatError (impossible layout) or
*DecodeError (payload rejected by the engine, with its blast.Status).
Invalid Options are rejected with ErrInvalidChunkSize or ErrInvalidCodec
before any file is opened.
Bytes left after the compressed stream are reported as *IntegrityWarning
through Result.Warning and the logger, never as an error.
*/
package dbc
