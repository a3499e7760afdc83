package dbc

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/dbc/sink"
)

func writeContainer(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "DOSP2019.dbc")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	return path
}

func TestConvertFile(t *testing.T) {
	header := buildHeader(MinHeaderLength)
	inPath := writeContainer(t, buildContainer(header, 0, payloadAB))
	outPath := filepath.Join(t.TempDir(), "DOSP2019.dbf")

	res, err := ConvertFile(inPath, outPath, nil)
	if err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	want := append(append([]byte(nil), header...), 'A', 'B')
	if !bytes.Equal(got, want) {
		t.Fatalf("output % x, want % x", got, want)
	}
	if res.OutputBytes != int64(len(want)) {
		t.Fatalf("OutputBytes = %d, want %d", res.OutputBytes, len(want))
	}
}

func TestConvertFile_Truncates(t *testing.T) {
	inPath := writeContainer(t, buildContainer(buildHeader(MinHeaderLength), 0, payloadAB))
	outPath := filepath.Join(t.TempDir(), "out.dbf")
	if err := os.WriteFile(outPath, bytes.Repeat([]byte("stale"), 100), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := ConvertFile(inPath, outPath, nil); err != nil {
		t.Fatalf("ConvertFile failed: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != MinHeaderLength+2 {
		t.Fatalf("output size %d, want %d", info.Size(), MinHeaderLength+2)
	}
}

func TestConvertFile_OpenErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing input", func(t *testing.T) {
		inPath := filepath.Join(dir, "missing.dbc")
		_, err := ConvertFile(inPath, filepath.Join(dir, "out.dbf"), nil)

		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "open" || ioErr.Path != inPath {
			t.Fatalf("expected open IOError for %s, got %v", inPath, err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected fs.ErrNotExist in chain, got %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "out.dbf")); !errors.Is(err, fs.ErrNotExist) {
			t.Fatal("output created for a missing input")
		}
	})

	t.Run("missing output directory", func(t *testing.T) {
		inPath := writeContainer(t, buildContainer(buildHeader(MinHeaderLength), 0, payloadAB))
		outPath := filepath.Join(dir, "no-such-dir", "out.dbf")
		_, err := ConvertFile(inPath, outPath, nil)

		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Op != "create" || ioErr.Path != outPath {
			t.Fatalf("expected create IOError for %s, got %v", outPath, err)
		}
	})
}

func TestConvertFile_InvalidOptionsKeepExistingOutput(t *testing.T) {
	inPath := writeContainer(t, buildContainer(buildHeader(MinHeaderLength), 0, payloadAB))
	outPath := filepath.Join(t.TempDir(), "out.dbf")
	previous := []byte("previous conversion")
	if err := os.WriteFile(outPath, previous, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	for _, tc := range []struct {
		name string
		opts *Options
		want error
	}{
		{"negative chunk", &Options{ChunkSize: -1}, ErrInvalidChunkSize},
		{"oversized chunk", &Options{ChunkSize: MaxChunkSize + 1}, ErrInvalidChunkSize},
		{"unknown codec", &Options{OutputCodec: sink.Codec(42)}, ErrInvalidCodec},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ConvertFile(inPath, outPath, tc.opts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}

			got, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("ReadFile failed: %v", err)
			}
			if !bytes.Equal(got, previous) {
				t.Fatalf("existing output changed to %q", got)
			}
		})
	}
}

func TestConvertFile_DecodeErrorKeepsPartialOutput(t *testing.T) {
	header := buildHeader(MinHeaderLength)
	inPath := writeContainer(t, buildContainer(header, 0, []byte{0x07, 0x04}))
	outPath := filepath.Join(t.TempDir(), "out.dbf")

	_, err := ConvertFile(inPath, outPath, nil)

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}

	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("partial output missing: %v", err)
	}
	if !bytes.Equal(got, header) {
		t.Fatalf("partial output % x, want header block", got)
	}
}

func TestConvertFile_OutputCodec(t *testing.T) {
	containerData, err := os.ReadFile(filepath.Join("testdata", "sim_sample.dbc"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	tableData, err := os.ReadFile(filepath.Join("testdata", "sim_sample.dbf"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	inPath := writeContainer(t, containerData)

	for _, codec := range []sink.Codec{sink.CodecGzip, sink.CodecZstd, sink.CodecLZ4} {
		t.Run(codec.String(), func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "sample.dbf"+codec.Ext())

			res, err := ConvertFile(inPath, outPath, &Options{OutputCodec: codec})
			if err != nil {
				t.Fatalf("ConvertFile failed: %v", err)
			}
			if res.OutputBytes != int64(len(tableData)) {
				t.Fatalf("OutputBytes = %d, want %d", res.OutputBytes, len(tableData))
			}

			f, err := os.Open(outPath)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			defer f.Close()

			r, err := sink.NewReader(f, codec)
			if err != nil {
				t.Fatalf("sink.NewReader failed: %v", err)
			}
			defer r.Close()

			got, err := io.ReadAll(r)
			if err != nil {
				t.Fatalf("ReadAll failed: %v", err)
			}
			if !bytes.Equal(got, tableData) {
				t.Fatalf("decoded table mismatch: got=%d want=%d", len(got), len(tableData))
			}
		})
	}
}
