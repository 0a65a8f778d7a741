// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInvalidMagic   = errors.New("wasm: magic header not detected")
	ErrUnknownVersion = errors.New("wasm: unknown binary version")
)

const (
	Magic   uint32 = 0x6d736100
	Version uint32 = 0x1
)

// Module represents a parsed WebAssembly module:
// http://webassembly.org/docs/modules/
type Module struct {
	Version  uint32
	Sections []Section

	Types     *SectionTypes
	Import    *SectionImports
	Function  *SectionFunctions
	Table     *SectionTables
	Memory    *SectionMemories
	Global    *SectionGlobals
	Export    *SectionExports
	Start     *SectionStartFunction
	Elements  *SectionElements
	DataCount *SectionDataCount
	Code      *SectionCode
	Data      *SectionData
	Customs   []*SectionCustom
}

// NewModule creates a new empty module.
func NewModule() *Module {
	return &Module{
		Version:  Version,
		Types:    &SectionTypes{},
		Import:   &SectionImports{},
		Function: &SectionFunctions{},
		Table:    &SectionTables{},
		Memory:   &SectionMemories{},
		Global:   &SectionGlobals{},
		Export:   &SectionExports{},
		Elements: &SectionElements{},
		Code:     &SectionCode{},
		Data:     &SectionData{},
	}
}

// Names returns the decoded name section. If no name section exists, this function returns a
// MissingSectionError.
func (m *Module) Names() (*NameSection, error) {
	s := m.Custom(CustomSectionName)
	if s == nil {
		return nil, MissingSectionError(SectionIDCustom)
	}

	var names NameSection
	if err := names.UnmarshalWASM(bytes.NewReader(s.Data)); err != nil {
		return nil, err
	}
	return &names, nil
}

// Custom returns a custom section with a specific name, if it exists.
func (m *Module) Custom(name string) *SectionCustom {
	for _, s := range m.Customs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// FunctionSignature returns the signature of the defined function with the given index. The
// index does not include imported functions.
func (m *Module) FunctionSignature(index int) (FunctionSig, bool) {
	if m.Function == nil || m.Types == nil || index < 0 || index >= len(m.Function.Types) {
		return FunctionSig{}, false
	}
	typeidx := m.Function.Types[index]
	if typeidx >= uint32(len(m.Types.Entries)) {
		return FunctionSig{}, false
	}
	return m.Types.Entries[typeidx], true
}

// ImportedFunctionCount returns the number of functions imported by the module.
func (m *Module) ImportedFunctionCount() int {
	n := 0
	if m.Import != nil {
		for _, i := range m.Import.Entries {
			if i.Type.Kind() == ExternalFunction {
				n++
			}
		}
	}
	return n
}

// DecodeModule decodes a WASM module.
func DecodeModule(r io.Reader) (*Module, error) {
	reader := &posReader{r: r}

	magic, err := readU32(reader)
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}

	m := &Module{}
	if m.Version, err = readU32(reader); err != nil {
		return nil, err
	}
	if m.Version != Version {
		return nil, ErrUnknownVersion
	}

	if err = newSectionsReader(m).readSections(reader); err != nil {
		return nil, err
	}
	if err = m.checkCounts(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Module) checkCounts() error {
	functions, bodies := 0, 0
	if m.Function != nil {
		functions = len(m.Function.Types)
	}
	if m.Code != nil {
		bodies = len(m.Code.Bodies)
	}
	if functions != bodies {
		return ValidationError("function and code section have inconsistent lengths")
	}
	if m.DataCount != nil {
		segments := 0
		if m.Data != nil {
			segments = len(m.Data.Entries)
		}
		if int(m.DataCount.Count) != segments {
			return ValidationError("data count and data section have inconsistent lengths")
		}
	}
	return nil
}

// MustDecode decodes a WASM module and panics on failure.
func MustDecode(r io.Reader) *Module {
	m, err := DecodeModule(r)
	if err != nil {
		panic(fmt.Errorf("decoding module: %w", err))
	}
	return m
}

// EncodeModule writes the binary encoding of m to w. Empty known sections are omitted.
func EncodeModule(w io.Writer, m *Module) error {
	if err := writeU32(w, Magic); err != nil {
		return err
	}
	if err := writeU32(w, Version); err != nil {
		return err
	}

	sections := []Section{}
	add := func(s Section, empty bool) {
		if !empty {
			sections = append(sections, s)
		}
	}
	add(m.Types, m.Types == nil || len(m.Types.Entries) == 0)
	add(m.Import, m.Import == nil || len(m.Import.Entries) == 0)
	add(m.Function, m.Function == nil || len(m.Function.Types) == 0)
	add(m.Table, m.Table == nil || len(m.Table.Entries) == 0)
	add(m.Memory, m.Memory == nil || len(m.Memory.Entries) == 0)
	add(m.Global, m.Global == nil || len(m.Global.Globals) == 0)
	add(m.Export, m.Export == nil || len(m.Export.Entries) == 0)
	add(m.Start, m.Start == nil)
	add(m.Elements, m.Elements == nil || len(m.Elements.Entries) == 0)
	add(m.DataCount, m.DataCount == nil)
	add(m.Code, m.Code == nil || len(m.Code.Bodies) == 0)
	add(m.Data, m.Data == nil || len(m.Data.Entries) == 0)
	for _, c := range m.Customs {
		sections = append(sections, c)
	}

	var payload bytes.Buffer
	for _, s := range sections {
		payload.Reset()
		if err := s.WritePayload(&payload); err != nil {
			return err
		}
		if _, err := w.Write([]byte{byte(s.SectionID())}); err != nil {
			return err
		}
		if err := writeBytesUint(w, payload.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
