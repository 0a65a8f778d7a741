// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package leb128 provides functions for reading and writing the LEB128 integer
// encodings used by the WebAssembly binary format.
package leb128

import (
	"errors"
	"io"
)

// ErrOverflow is returned when an encoded integer does not fit in its destination type.
var ErrOverflow = errors.New("leb128: integer representation too long")

// A byteSource yields the next byte of an encoded integer.
type byteSource interface {
	next() (byte, error)
}

type readerSource struct {
	r   io.Reader
	buf [1]byte
}

func (s *readerSource) next() (byte, error) {
	if br, ok := s.r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

type sliceSource struct {
	b []byte
	n int
}

func (s *sliceSource) next() (byte, error) {
	if s.n >= len(s.b) {
		return 0, io.ErrUnexpectedEOF
	}
	b := s.b[s.n]
	s.n++
	return b, nil
}

func decodeUnsigned(src byteSource, bits uint) (uint64, error) {
	var result uint64
	for shift := uint(0); ; shift += 7 {
		b, err := src.next()
		if err != nil {
			if err == io.EOF && shift != 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}

		// The final byte may only carry the bits that remain.
		if remaining := bits - shift; remaining < 7 && uint64(b&0x7f)>>remaining != 0 {
			return 0, ErrOverflow
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		if shift+7 >= bits {
			return 0, ErrOverflow
		}
	}
}

func decodeSigned(src byteSource, bits uint) (int64, error) {
	var result int64
	var shift uint
	for {
		b, err := src.next()
		if err != nil {
			if err == io.EOF && shift != 0 {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}

		if remaining := bits - shift; remaining < 7 {
			// The unused bits of the final byte must be a sign extension of the value.
			signBits := int8(b<<1) >> remaining
			if signBits != 0 && signBits != -1 {
				return 0, ErrOverflow
			}
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return result, nil
		}
		if shift >= bits {
			return 0, ErrOverflow
		}
	}
}

// ReadVarUint32 reads a LEB128-encoded unsigned 32-bit integer from r.
func ReadVarUint32(r io.Reader) (uint32, error) {
	v, err := decodeUnsigned(&readerSource{r: r}, 32)
	return uint32(v), err
}

// ReadVarUint64 reads a LEB128-encoded unsigned 64-bit integer from r.
func ReadVarUint64(r io.Reader) (uint64, error) {
	return decodeUnsigned(&readerSource{r: r}, 64)
}

// ReadVarint32 reads a LEB128-encoded signed 32-bit integer from r.
func ReadVarint32(r io.Reader) (int32, error) {
	v, err := decodeSigned(&readerSource{r: r}, 32)
	return int32(v), err
}

// ReadVarint64 reads a LEB128-encoded signed 64-bit integer from r.
func ReadVarint64(r io.Reader) (int64, error) {
	return decodeSigned(&readerSource{r: r}, 64)
}

// GetVarUint32 decodes an unsigned 32-bit integer from the front of b and returns the
// value and the number of bytes consumed.
func GetVarUint32(b []byte) (uint32, int, error) {
	src := sliceSource{b: b}
	v, err := decodeUnsigned(&src, 32)
	return uint32(v), src.n, err
}

// GetVarint32 decodes a signed 32-bit integer from the front of b.
func GetVarint32(b []byte) (int32, int, error) {
	src := sliceSource{b: b}
	v, err := decodeSigned(&src, 32)
	return int32(v), src.n, err
}

// GetVarint64 decodes a signed 64-bit integer from the front of b.
func GetVarint64(b []byte) (int64, int, error) {
	src := sliceSource{b: b}
	v, err := decodeSigned(&src, 64)
	return v, src.n, err
}
