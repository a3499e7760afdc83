package dbc

import "io"

// NewReader returns the DBF bytes of the container in src as a stream, for
// callers that parse the table directly instead of writing a file. Convert
// runs in its own goroutine feeding a pipe; errors surface from Read and
// Close stops the conversion at its next write. src belongs to the
// conversion until Read has returned an error, io.EOF included.
func NewReader(src io.ReadSeeker, opts *Options) io.ReadCloser {
	pr, pw := io.Pipe()

	go func() {
		_, err := Convert(pw, src, opts)
		pw.CloseWithError(err)
	}()

	return pr
}
