// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package blast

import (
	"errors"
	"io"
)

// PullFunc returns the next chunk of compressed input. An empty chunk or
// io.EOF signals the end of input. The returned slice must stay valid until
// the next call.
type PullFunc func() ([]byte, error)

// PushFunc consumes a chunk of decoded output. The slice is only valid for
// the duration of the call.
type PushFunc func(p []byte) error

// decoder is the state of one decompression run.
type decoder struct {
	pull   PullFunc
	in     []byte // unread part of the current chunk
	bitBuf uint32
	bitCnt uint
	out    *outputWindow
	tables *codeTables
}

// Decompress decodes one imploded stream, pulling input through pull and
// pushing output through push until the end-of-stream marker. It returns the
// number of bytes of the last pulled chunk that were not consumed.
//
// Decoded bytes still in the window are pushed only when the stream ends
// cleanly. Errors from pull are returned as-is; errors from push match both
// ErrOutputRejected and the push error.
func Decompress(pull PullFunc, push PushFunc) (unused int, err error) {
	tables, err := builtinTables()
	if err != nil {
		return 0, err
	}

	out := acquireOutputWindow(push)
	defer releaseOutputWindow(out)

	d := &decoder{pull: pull, out: out, tables: tables}
	if err := d.run(); err != nil {
		return 0, err
	}

	if err := out.flush(); err != nil {
		return 0, err
	}

	return len(d.in), nil
}

// DecompressBytes decodes src in memory. It returns the decoded data and the
// number of src bytes consumed, which is less than len(src) when data follows
// the end-of-stream marker.
func DecompressBytes(src []byte) (out []byte, nRead int, err error) {
	pulled := false
	pull := func() ([]byte, error) {
		if pulled {
			return nil, io.EOF
		}

		pulled = true
		return src, nil
	}
	push := func(p []byte) error {
		out = append(out, p...)
		return nil
	}

	unused, err := Decompress(pull, push)
	if err != nil {
		return nil, 0, err
	}

	return out, len(src) - unused, nil
}

// run decodes the stream header and the token loop.
func (d *decoder) run() error {
	literalFlag, err := d.bits(8)
	if err != nil {
		return err
	}
	if literalFlag > 1 {
		return ErrInvalidLiteralFlag
	}

	dictBits, err := d.bits(8)
	if err != nil {
		return err
	}
	if dictBits < minDictBits || dictBits > maxDictBits {
		return ErrInvalidDictionarySize
	}

	for {
		isMatch, err := d.bits(1)
		if err != nil {
			return err
		}

		if isMatch == 0 {
			var literal int
			if literalFlag == 1 {
				literal, err = d.decode(&d.tables.literal)
			} else {
				literal, err = d.bits(8)
			}
			if err != nil {
				return err
			}

			if err := d.out.putByte(byte(literal)); err != nil { //nolint:gosec // G115: literal < 256
				return err
			}
			continue
		}

		symbol, err := d.decode(&d.tables.length)
		if err != nil {
			return err
		}

		extra, err := d.bits(lengthExtra[symbol])
		if err != nil {
			return err
		}

		length := lengthBase[symbol] + extra
		if length == endOfStream {
			return nil
		}

		// Two-byte matches carry two low distance bits, longer ones use the
		// dictionary size.
		lowBits := uint(dictBits) //nolint:gosec // G115: dictBits is 4..6
		if length == 2 {
			lowBits = 2
		}

		high, err := d.decode(&d.tables.distance)
		if err != nil {
			return err
		}

		low, err := d.bits(lowBits)
		if err != nil {
			return err
		}

		dist := high<<lowBits + low + 1
		if err := d.out.copyBackRef(dist, length); err != nil {
			return err
		}
	}
}

// nextByte returns the next input byte, pulling a new chunk when needed.
func (d *decoder) nextByte() (byte, error) {
	if len(d.in) == 0 {
		chunk, err := d.pull()
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, err
		}
		if len(chunk) == 0 {
			return 0, ErrInputExhausted
		}

		d.in = chunk
	}

	b := d.in[0]
	d.in = d.in[1:]
	return b, nil
}

// bits returns the next need bits of the stream, least significant bit first.
func (d *decoder) bits(need uint) (int, error) {
	val := d.bitBuf
	for d.bitCnt < need {
		b, err := d.nextByte()
		if err != nil {
			return 0, err
		}

		val |= uint32(b) << d.bitCnt
		d.bitCnt += 8
	}

	d.bitBuf = val >> need
	d.bitCnt -= need
	return int(val & (1<<need - 1)), nil
}

// decode reads one symbol of h. Codes are stored bit-inverted and most
// significant bit first.
func (d *decoder) decode(h *huffman) (int, error) {
	code, first, index := 0, 0, 0
	for l := 1; l <= maxBits; l++ {
		bit, err := d.bits(1)
		if err != nil {
			return 0, err
		}

		code |= bit ^ 1
		count := int(h.count[l])
		if code-first < count {
			return int(h.symbol[index+code-first]), nil
		}

		index += count
		first += count
		first <<= 1
		code <<= 1
	}

	return 0, ErrInvalidCode
}
