// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"io"

	"github.com/pgavlin/rwarp/wasm/leb128"
)

// Import is an interface implemented by types that can be imported by a WebAssembly module.
type Import interface {
	Kind() External
	Marshaler
	isImport()
}

// ImportEntry describes an import statement in a Wasm module.
type ImportEntry struct {
	ModuleName string // module name string
	FieldName  string // field name string

	// Type is one of FuncImport, TableImport, MemoryImport or GlobalVarImport, according to
	// the kind of the import.
	Type Import
}

func (i *ImportEntry) UnmarshalWASM(r io.Reader) error {
	var err error
	if i.ModuleName, err = readUTF8StringUint(r); err != nil {
		return err
	}
	if i.FieldName, err = readUTF8StringUint(r); err != nil {
		return err
	}

	var kind External
	if err = kind.UnmarshalWASM(r); err != nil {
		return err
	}

	switch kind {
	case ExternalFunction:
		var t uint32
		t, err = leb128.ReadVarUint32(r)
		i.Type = FuncImport{Type: t}
	case ExternalTable:
		var t TableImport
		err = t.Type.UnmarshalWASM(r)
		i.Type = t
	case ExternalMemory:
		var m MemoryImport
		err = m.Type.UnmarshalWASM(r)
		i.Type = m
	case ExternalGlobal:
		var g GlobalVarImport
		err = g.Type.UnmarshalWASM(r)
		i.Type = g
	}
	return err
}

func (i *ImportEntry) MarshalWASM(w io.Writer) error {
	if err := writeStringUint(w, i.ModuleName); err != nil {
		return err
	}
	if err := writeStringUint(w, i.FieldName); err != nil {
		return err
	}
	if err := i.Type.Kind().MarshalWASM(w); err != nil {
		return err
	}
	return i.Type.MarshalWASM(w)
}

type FuncImport struct {
	Type uint32
}

func (FuncImport) isImport() {}

func (FuncImport) Kind() External { return ExternalFunction }

func (f FuncImport) MarshalWASM(w io.Writer) error {
	_, err := leb128.WriteVarUint32(w, f.Type)
	return err
}

type TableImport struct {
	Type Table
}

func (TableImport) isImport() {}

func (TableImport) Kind() External { return ExternalTable }

func (t TableImport) MarshalWASM(w io.Writer) error {
	return t.Type.MarshalWASM(w)
}

type MemoryImport struct {
	Type Memory
}

func (MemoryImport) isImport() {}

func (MemoryImport) Kind() External { return ExternalMemory }

func (t MemoryImport) MarshalWASM(w io.Writer) error {
	return t.Type.MarshalWASM(w)
}

type GlobalVarImport struct {
	Type GlobalVar
}

func (GlobalVarImport) isImport() {}

func (GlobalVarImport) Kind() External { return ExternalGlobal }

func (t GlobalVarImport) MarshalWASM(w io.Writer) error {
	return t.Type.MarshalWASM(w)
}
