// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/dbc

package dbc

import (
	"errors"
	"io"
)

// Header is the parsed fixed part of a container. It is built once by
// ReadHeader and passed by value to the later stages.
type Header struct {
	// Length is the size of the header block copied verbatim to the output.
	Length uint16
	// PayloadOffset is where the compressed payload starts (Length + checksum).
	PayloadOffset int64
}

// ReadHeader reads the little-endian header length at offset 8 of src.
// The read cursor is left after the length field; callers seek back before
// copying the header block.
func ReadHeader(src io.ReadSeeker) (Header, error) {
	if _, err := src.Seek(preambleSize, io.SeekStart); err != nil {
		return Header{}, &IOError{Op: "seek", Err: err}
	}

	var raw [lengthFieldSize]byte
	if _, err := io.ReadFull(src, raw[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return Header{}, &FormatError{Offset: preambleSize, Err: ErrShortHeader}
		}
		return Header{}, &IOError{Op: "read", Err: err}
	}

	length := readLE16(raw[:])
	if length < MinHeaderLength {
		return Header{}, &FormatError{Offset: preambleSize, Err: ErrHeaderLength}
	}

	return Header{
		Length:        length,
		PayloadOffset: int64(length) + checksumSize,
	}, nil
}

// readLE16 decodes a uint16 stored low byte first, independent of host order.
func readLE16(b []byte) uint16 {
	lo := uint16(b[0])
	hi := uint16(b[1])
	return lo | hi<<8
}

// Info describes a container without decompressing it.
type Info struct {
	Header
	// Checksum is the raw 32-bit value stored after the header block. It is
	// reported as-is and never validated.
	Checksum uint32
	// HasChecksum is false when the input ends before the four checksum bytes.
	HasChecksum bool
	// Size is the total input size.
	Size int64
	// PayloadSize is the number of bytes from PayloadOffset to the end of input.
	PayloadSize int64
}

// Inspect parses the container layout of src.
func Inspect(src io.ReadSeeker) (*Info, error) {
	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}

	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, &IOError{Op: "seek", Err: err}
	}
	if size < int64(hdr.Length) {
		return nil, &FormatError{Offset: size, Err: ErrTruncatedHeader}
	}

	info := &Info{
		Header:      hdr,
		Size:        size,
		PayloadSize: max(size-hdr.PayloadOffset, 0),
	}

	if size >= hdr.PayloadOffset {
		if _, err := src.Seek(int64(hdr.Length), io.SeekStart); err != nil {
			return nil, &IOError{Op: "seek", Err: err}
		}

		var raw [checksumSize]byte
		if _, err := io.ReadFull(src, raw[:]); err != nil {
			return nil, &IOError{Op: "read", Err: err}
		}

		info.Checksum = uint32(readLE16(raw[:2])) | uint32(readLE16(raw[2:]))<<16
		info.HasChecksum = true
	}

	return info, nil
}
