// Copyright 2018 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leb128

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var casesUint = []struct {
	v uint32
	b []byte
}{
	{v: 0, b: []byte{0x00}},
	{v: 8, b: []byte{0x08}},
	{v: 127, b: []byte{0x7f}},
	{v: 128, b: []byte{0x80, 0x01}},
	{v: 624485, b: []byte{0xe5, 0x8e, 0x26}},
	{v: 165675008, b: []byte{0x80, 0x80, 0x80, 0x4f}},
	{v: math.MaxUint32, b: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
}

var casesInt = []struct {
	v int64
	b []byte
}{
	{v: 0, b: []byte{0x00}},
	{v: 63, b: []byte{0x3f}},
	{v: 64, b: []byte{0xc0, 0x00}},
	{v: -1, b: []byte{0x7f}},
	{v: -64, b: []byte{0x40}},
	{v: -65, b: []byte{0xbf, 0x7f}},
	{v: -123456, b: []byte{0xc0, 0xbb, 0x78}},
	{v: math.MinInt64, b: []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x7f}},
}

func TestReadVarUint32(t *testing.T) {
	for _, c := range casesUint {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			v, err := ReadVarUint32(bytes.NewReader(c.b))
			require.NoError(t, err)
			assert.Equal(t, c.v, v)

			v, n, err := GetVarUint32(c.b)
			require.NoError(t, err)
			assert.Equal(t, c.v, v)
			assert.Equal(t, len(c.b), n)
		})
	}
}

func TestReadVarint64(t *testing.T) {
	for _, c := range casesInt {
		t.Run(fmt.Sprint(c.v), func(t *testing.T) {
			v, err := ReadVarint64(bytes.NewReader(c.b))
			require.NoError(t, err)
			assert.Equal(t, c.v, v)

			v, n, err := GetVarint64(c.b)
			require.NoError(t, err)
			assert.Equal(t, c.v, v)
			assert.Equal(t, len(c.b), n)
		})
	}
}

func TestReadOverflow(t *testing.T) {
	_, _, err := GetVarUint32([]byte{0xff, 0xff, 0xff, 0xff, 0x1f})
	assert.Equal(t, ErrOverflow, err)

	_, _, err = GetVarUint32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00})
	assert.Equal(t, ErrOverflow, err)

	_, _, err = GetVarint32([]byte{0xff, 0xff, 0xff, 0xff, 0x4f})
	assert.Equal(t, ErrOverflow, err)

	v, _, err := GetVarint32([]byte{0x80, 0x80, 0x80, 0x80, 0x78})
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), v)
}

func TestReadTruncated(t *testing.T) {
	_, _, err := GetVarUint32([]byte{0x80})
	assert.Equal(t, io.ErrUnexpectedEOF, err)

	_, err = ReadVarint64(bytes.NewReader(nil))
	assert.Equal(t, io.EOF, err)
}
