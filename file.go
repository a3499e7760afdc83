// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import (
	"bufio"
	"errors"
	"os"

	"github.com/woozymasta/dbc/sink"
)

// ConvertFile converts the container at inPath into a DBF file at outPath,
// creating or truncating it. Both paths must name files, extension included.
// Both files are closed on every return path. A failed conversion leaves
// whatever was already written in outPath; removing it is up to the caller.
// Invalid options are reported before either file is touched.
func ConvertFile(inPath, outPath string, opts *Options) (res *Result, err error) {
	o, err := opts.resolved()
	if err != nil {
		return nil, err
	}

	in, err := os.Open(inPath)
	if err != nil {
		return nil, &IOError{Op: "open", Path: inPath, Err: err}
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return nil, &IOError{Op: "create", Path: outPath, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			res, err = nil, &IOError{Op: "close", Path: outPath, Err: cerr}
		}
	}()

	bw := bufio.NewWriterSize(out, 64*1024)
	cw, err := sink.NewWriter(bw, o.OutputCodec)
	if err != nil {
		return nil, &IOError{Op: "create", Path: outPath, Err: err}
	}

	res, err = Convert(cw, in, opts)
	if err != nil {
		// Keep what reached the encoder so the partial output can be examined.
		_ = cw.Close()
		_ = bw.Flush()
		return nil, attachPath(err, inPath, outPath)
	}

	if err := cw.Close(); err != nil {
		return nil, &IOError{Op: "write", Path: outPath, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return nil, &IOError{Op: "write", Path: outPath, Err: err}
	}

	return res, nil
}

// attachPath names the file an *IOError refers to: writes go to the output,
// everything else touches the input.
func attachPath(err error, inPath, outPath string) error {
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Path != "" {
		return err
	}

	ioErr.Path = inPath
	if ioErr.Op == "write" {
		ioErr.Path = outPath
	}

	return err
}
