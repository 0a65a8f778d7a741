// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/pgavlin/rwarp/wasm/leb128"
)

// maxInitialCap bounds the capacity preallocated from a length prefix so that a
// malicious count cannot force a huge allocation before any element is read.
const maxInitialCap = 10 * 1024

var errMalformedUTF8 = ValidationError("malformed UTF-8 encoding")

func getInitialCap(count uint32) uint32 {
	if count > maxInitialCap {
		return maxInitialCap
	}
	return count
}

// posReader tracks the number of bytes consumed from the underlying reader.
type posReader struct {
	r   io.Reader
	pos int64
}

func (r *posReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	r.pos += int64(n)
	return n, err
}

func (r *posReader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

func readBytes(r io.Reader, n uint32) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	var buf bytes.Buffer
	buf.Grow(int(getInitialCap(n)))
	read, err := io.CopyN(&buf, r, int64(n))
	switch {
	case err == io.EOF && read < int64(n):
		return nil, io.ErrUnexpectedEOF
	case err != nil:
		return nil, err
	}
	return buf.Bytes(), nil
}

func readBytesUint(r io.Reader) ([]byte, error) {
	n, err := leb128.ReadVarUint32(r)
	if err != nil {
		return nil, err
	}
	return readBytes(r, n)
}

func readUTF8StringUint(r io.Reader) (string, error) {
	b, err := readBytesUint(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", errMalformedUTF8
	}
	return string(b), nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeBytesUint(w io.Writer, p []byte) error {
	if _, err := leb128.WriteVarUint32(w, uint32(len(p))); err != nil {
		return err
	}
	_, err := w.Write(p)
	return err
}

func writeStringUint(w io.Writer, s string) error {
	return writeBytesUint(w, []byte(s))
}

func writeU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

// readVector reads a length-prefixed sequence of elements.
func readVector[T any](r io.Reader, read func(r io.Reader) (T, error)) ([]T, error) {
	count, err := leb128.ReadVarUint32(r)
	if err != nil {
		return nil, err
	}
	elems := make([]T, 0, getInitialCap(count))
	for i := uint32(0); i < count; i++ {
		e, err := read(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return elems, nil
}

// readUnmarshalers reads a length-prefixed sequence of elements whose pointers implement Unmarshaler.
func readUnmarshalers[T any, P interface {
	*T
	Unmarshaler
}](r io.Reader) ([]T, error) {
	return readVector(r, func(r io.Reader) (T, error) {
		var v T
		err := P(&v).UnmarshalWASM(r)
		return v, err
	})
}

func readIndices(r io.Reader) ([]uint32, error) {
	return readVector(r, leb128.ReadVarUint32)
}

func writeVector[T any](w io.Writer, elems []T, write func(w io.Writer, e T) error) error {
	if _, err := leb128.WriteVarUint32(w, uint32(len(elems))); err != nil {
		return err
	}
	for _, e := range elems {
		if err := write(w, e); err != nil {
			return err
		}
	}
	return nil
}

func writeMarshalers[T any, P interface {
	*T
	Marshaler
}](w io.Writer, elems []T) error {
	if _, err := leb128.WriteVarUint32(w, uint32(len(elems))); err != nil {
		return err
	}
	for i := range elems {
		if err := P(&elems[i]).MarshalWASM(w); err != nil {
			return err
		}
	}
	return nil
}

func writeIndices(w io.Writer, indices []uint32) error {
	return writeVector(w, indices, func(w io.Writer, i uint32) error {
		_, err := leb128.WriteVarUint32(w, i)
		return err
	})
}

var errUnterminatedInitExpr = errors.New("wasm: unterminated initializer expression")

// readInitExpr reads a constant initializer expression up to and including its terminating end.
func readInitExpr(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	tee := io.TeeReader(r, &buf)

	var b [8]byte
	for {
		if _, err := io.ReadFull(tee, b[:1]); err != nil {
			if err == io.EOF {
				return nil, errUnterminatedInitExpr
			}
			return nil, err
		}

		var err error
		switch b[0] {
		case 0x0b: // end
			return buf.Bytes(), nil
		case 0x41: // i32.const
			_, err = leb128.ReadVarint32(tee)
		case 0x42: // i64.const
			_, err = leb128.ReadVarint64(tee)
		case 0x43: // f32.const
			_, err = io.ReadFull(tee, b[:4])
		case 0x44: // f64.const
			_, err = io.ReadFull(tee, b[:8])
		case 0x23, 0xd2: // global.get, ref.func
			_, err = leb128.ReadVarUint32(tee)
		case 0xd0: // ref.null
			_, err = io.ReadFull(tee, b[:1])
		default:
			return nil, ValidationError("constant expression required")
		}
		if err != nil {
			return nil, err
		}
	}
}
