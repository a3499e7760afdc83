// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import "io"

// countTrailing returns buffered plus the number of bytes left in src. It
// only reads; the output is not touched.
func countTrailing(src io.Reader, buffered int64) (int64, error) {
	n, err := io.Copy(io.Discard, src)
	if err != nil {
		return 0, &IOError{Op: "read", Err: err}
	}

	return buffered + n, nil
}
