// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import (
	"errors"
	"io"
)

// copyHeader copies exactly hdr.Length bytes from src (positioned at offset 0)
// to dst. The block is read in full before anything is written, so a
// truncated input never produces a partial header.
func copyHeader(dst io.Writer, src io.Reader, hdr Header) error {
	buf := make([]byte, hdr.Length)

	n, err := io.ReadFull(src, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &FormatError{Offset: int64(n), Err: ErrTruncatedHeader}
		}
		return &IOError{Op: "read", Err: err}
	}

	if err := writeFull(dst, buf); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	return nil
}

// writeFull writes p to w and reports a short write as io.ErrShortWrite.
func writeFull(w io.Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}

	return nil
}
