// Package load reads WebAssembly modules from files and streams.
package load

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pgavlin/rwarp/wasm"
)

// ErrNotBinary is returned when the input does not begin with the WebAssembly binary magic.
var ErrNotBinary = errors.New("not a WebAssembly binary module")

func checkMagic(buf []byte) error {
	if len(buf) < 4 || binary.LittleEndian.Uint32(buf) != wasm.Magic {
		return ErrNotBinary
	}
	return nil
}

// LoadModule decodes a binary module from r.
func LoadModule(r io.Reader) (*wasm.Module, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := checkMagic(buf); err != nil {
		return nil, err
	}
	return wasm.DecodeModule(br)
}

// LoadBytes decodes a binary module from b. The decoder copies section contents, so the result
// does not retain b. LoadFile depends on this to unmap the file before returning.
func LoadBytes(b []byte) (*wasm.Module, error) {
	if err := checkMagic(b); err != nil {
		return nil, err
	}
	return wasm.DecodeModule(bytes.NewReader(b))
}

// LoadFile decodes the binary module stored at path.
func LoadFile(path string) (*wasm.Module, error) {
	contents, release, err := readFile(path)
	if err != nil {
		return nil, err
	}
	defer release()

	m, err := LoadBytes(contents)
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	return m, nil
}
