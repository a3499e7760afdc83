package dbc

import (
	"bytes"
	"errors"
	"io"
)

// Payload "AB": literal flag 0, dictionary 4, raw 'A' and 'B', end marker.
var payloadAB = []byte{0x00, 0x04, 0x82, 0x08, 0x05, 0xfc, 0x03}

// buildHeader returns a header block of length n with a recognizable preamble.
func buildHeader(n int) []byte {
	h := make([]byte, n)
	copy(h, []byte{0x03, 0x77, 0x06, 0x1e, 0x90, 0x01, 0x00, 0x00})
	h[8] = byte(n)
	h[9] = byte(n >> 8)
	for i := MinHeaderLength; i < n; i++ {
		h[i] = byte('a' + i%26)
	}
	return h
}

// buildContainer assembles header block, checksum and payload.
func buildContainer(header []byte, checksum uint32, payload []byte) []byte {
	var b bytes.Buffer
	b.Write(header)
	b.Write([]byte{byte(checksum), byte(checksum >> 8), byte(checksum >> 16), byte(checksum >> 24)})
	b.Write(payload)
	return b.Bytes()
}

// failingWriter accepts limit bytes, then fails.
type failingWriter struct {
	limit int
	buf   bytes.Buffer
	err   error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.buf.Len()+len(p) > w.limit {
		n := w.limit - w.buf.Len()
		w.buf.Write(p[:n])
		return n, w.err
	}
	return w.buf.Write(p)
}

// shortWriter reports fewer bytes than given without an error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return len(p) - 1, nil
}

var errSeek = errors.New("seek not supported")

// noSeeker fails every Seek.
type noSeeker struct {
	io.Reader
}

func (noSeeker) Seek(int64, int) (int64, error) {
	return 0, errSeek
}

// flakyReader fails reads after limit bytes.
type flakyReader struct {
	*bytes.Reader
	limit int64
	err   error
}

func (r *flakyReader) Read(p []byte) (int, error) {
	pos := r.Size() - int64(r.Len())
	if pos >= r.limit {
		return 0, r.err
	}
	if rest := r.limit - pos; int64(len(p)) > rest {
		p = p[:rest]
	}
	return r.Reader.Read(p)
}
