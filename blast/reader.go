package blast

import "io"

// NewReader returns a reader that decodes the imploded stream read from r.
// Decoding runs in a separate goroutine feeding a pipe; Close stops it.
// Bytes following the end-of-stream marker are left unread in r only up to
// the chunk granularity of DefaultChunkSize.
func NewReader(r io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()

	go func() {
		buf := make([]byte, DefaultChunkSize)
		pull := func() ([]byte, error) {
			n, err := io.ReadAtLeast(r, buf, 1)
			return buf[:n], err
		}
		push := func(p []byte) error {
			_, err := pw.Write(p)
			return err
		}

		_, err := Decompress(pull, push)
		pw.CloseWithError(err)
	}()

	return pr
}
