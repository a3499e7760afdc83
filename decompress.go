// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import (
	"errors"
	"io"

	"github.com/zeebo/blake3"

	"github.com/woozymasta/dbc/blast"
)

// Result describes a finished conversion.
type Result struct {
	Header Header
	// PayloadBytes is the number of compressed bytes the engine consumed.
	PayloadBytes int64
	// OutputBytes is the number of bytes written: header block plus decoded payload.
	OutputBytes int64
	// Trailing is the number of input bytes left after the end of the compressed stream.
	Trailing int64
	// Digest is the BLAKE3-256 digest of the written bytes.
	Digest [32]byte
}

// Warning returns an *IntegrityWarning when input bytes were left over, or nil.
func (r *Result) Warning() error {
	if r == nil || r.Trailing == 0 {
		return nil
	}

	return &IntegrityWarning{Trailing: r.Trailing}
}

// Convert reads a DBC container from src and writes the DBF file to dst:
// the header block verbatim, then the decompressed payload in the order the
// engine emits it. Any error aborts the conversion; bytes already written to
// dst stay there. Leftover input after the compressed stream is not an
// error, it is reported by Result.Warning and logged.
func Convert(dst io.Writer, src io.ReadSeeker, opts *Options) (*Result, error) {
	o, err := opts.resolved()
	if err != nil {
		return nil, err
	}

	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("container header parsed",
		"header_length", hdr.Length,
		"payload_offset", hdr.PayloadOffset,
	)

	hasher := blake3.New()
	out := &countingWriter{w: io.MultiWriter(dst, hasher)}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{Op: "seek", Err: err}
	}
	if err := copyHeader(out, src, hdr); err != nil {
		return nil, err
	}

	// The checksum is skipped, not verified.
	if _, err := src.Seek(hdr.PayloadOffset, io.SeekStart); err != nil {
		return nil, &IOError{Op: "seek", Err: err}
	}

	s := newSession(src, out, o.ChunkSize)
	unused, err := s.run(o.Engine)
	if err != nil {
		return nil, err
	}

	// Pulled but unconsumed bytes count as trailing input.
	leftover := int64(unused) + int64(len(s.pending))
	trailing, err := countTrailing(src, leftover)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Header:       hdr,
		PayloadBytes: s.pulled - leftover,
		OutputBytes:  out.n,
		Trailing:     trailing,
	}
	copy(res.Digest[:], hasher.Sum(nil))

	if warn := res.Warning(); warn != nil {
		o.Logger.Warn("unused bytes after compressed stream", "trailing_bytes", trailing)
	}
	o.Logger.Debug("container converted",
		"payload_bytes", res.PayloadBytes,
		"output_bytes", res.OutputBytes,
	)

	return res, nil
}

// session is the state of one payload decompression: the input cursor, the
// chunk buffer and the output. It is created per conversion and never shared.
type session struct {
	src     io.Reader
	dst     io.Writer
	buf     []byte
	pending []byte // first chunk, read ahead to detect an empty payload
	lastLen int    // length of the most recently pulled chunk
	pulled  int64
	eof     bool
}

func newSession(src io.Reader, dst io.Writer, chunkSize int) *session {
	return &session{src: src, dst: dst, buf: make([]byte, chunkSize)}
}

// run drives engine over the payload. A payload with no bytes at all is a
// header-only container and the engine is not started.
func (s *session) run(engine Engine) (int, error) {
	first, err := s.read()
	if err != nil {
		return 0, err
	}
	if len(first) == 0 {
		return 0, nil
	}
	s.pending = first

	unused, err := engine(s.pull, s.push)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return 0, ioErr
		}
		return 0, &DecodeError{Status: blast.StatusOf(err), Err: err}
	}

	return min(max(unused, 0), s.lastLen), nil
}

// pull hands the engine the next chunk of at most len(buf) bytes; an empty
// chunk with io.EOF marks the end of input.
func (s *session) pull() ([]byte, error) {
	chunk := s.pending
	s.pending = nil
	if chunk == nil {
		var err error
		chunk, err = s.read()
		if err != nil {
			return nil, err
		}
	}

	s.lastLen = len(chunk)
	if len(chunk) == 0 {
		return nil, io.EOF
	}

	return chunk, nil
}

// read fills buf from the input; short only at end of input.
func (s *session) read() ([]byte, error) {
	if s.eof {
		return nil, nil
	}

	n, err := io.ReadFull(s.src, s.buf)
	s.pulled += int64(n)
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, &IOError{Op: "read", Err: err}
		}
		s.eof = true
	}

	return s.buf[:n], nil
}

// push writes one decoded chunk in full.
func (s *session) push(p []byte) error {
	if err := writeFull(s.dst, p); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	return nil
}

// countingWriter counts bytes accepted by w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
