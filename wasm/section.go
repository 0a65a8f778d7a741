// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/pgavlin/rwarp/wasm/leb128"
)

// Section is a generic WASM section interface.
type Section interface {
	// SectionID returns a section ID for WASM encoding. Should be unique across types.
	SectionID() SectionID
	// GetRawSection Returns an embedded RawSection pointer to populate generic fields.
	GetRawSection() *RawSection
	// ReadPayload reads a section payload, assuming the size was already read, and reader is limited to it.
	ReadPayload(r io.Reader) error
	// WritePayload writes a section payload without the size.
	WritePayload(w io.Writer) error
}

// SectionID is a 1-byte code that encodes the section code of both known and custom sections.
type SectionID uint8

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12
)

var sectionNames = [...]string{
	SectionIDCustom:    "custom",
	SectionIDType:      "type",
	SectionIDImport:    "import",
	SectionIDFunction:  "function",
	SectionIDTable:     "table",
	SectionIDMemory:    "memory",
	SectionIDGlobal:    "global",
	SectionIDExport:    "export",
	SectionIDStart:     "start",
	SectionIDElement:   "element",
	SectionIDCode:      "code",
	SectionIDData:      "data",
	SectionIDDataCount: "datacount",
}

func (s SectionID) String() string {
	if int(s) < len(sectionNames) {
		return sectionNames[s]
	}
	return "unknown"
}

// order returns the position a non-custom section must occupy in a module. The data count
// section sits between the element and code sections.
func (s SectionID) order() int {
	switch s {
	case SectionIDDataCount:
		return int(SectionIDElement)*2 + 1
	default:
		return int(s) * 2
	}
}

// RawSection is a declared section in a WASM module.
type RawSection struct {
	Start int64
	End   int64

	ID    SectionID
	Bytes []byte
}

func (s *RawSection) SectionID() SectionID {
	return s.ID
}

func (s *RawSection) GetRawSection() *RawSection {
	return s
}

type InvalidSectionIDError SectionID

func (e InvalidSectionIDError) Error() string {
	return fmt.Sprintf("wasm: malformed section id %d", uint8(e))
}

// ErrSectionOrder is returned when a known section appears twice or out of order.
var ErrSectionOrder = errors.New("wasm: sections must occur at most once and in the prescribed order")

// ErrSectionSize is returned when a section's payload does not match its declared size.
var ErrSectionSize = errors.New("wasm: section size mismatch")

type MissingSectionError SectionID

func (e MissingSectionError) Error() string {
	return fmt.Sprintf("wasm: missing section %s", SectionID(e).String())
}

type sectionsReader struct {
	lastOrder int
	m         *Module
	log       *zap.Logger
}

func newSectionsReader(m *Module) *sectionsReader {
	return &sectionsReader{lastOrder: -1, m: m, log: Logger()}
}

func (sr *sectionsReader) readSections(r *posReader) error {
	for {
		done, err := sr.readSection(r)
		switch {
		case err != nil:
			return err
		case done:
			return nil
		}
	}
}

func (sr *sectionsReader) newSection(id SectionID) (Section, error) {
	m := sr.m
	switch id {
	case SectionIDCustom:
		cs := &SectionCustom{}
		m.Customs = append(m.Customs, cs)
		return cs, nil
	case SectionIDType:
		m.Types = &SectionTypes{}
		return m.Types, nil
	case SectionIDImport:
		m.Import = &SectionImports{}
		return m.Import, nil
	case SectionIDFunction:
		m.Function = &SectionFunctions{}
		return m.Function, nil
	case SectionIDTable:
		m.Table = &SectionTables{}
		return m.Table, nil
	case SectionIDMemory:
		m.Memory = &SectionMemories{}
		return m.Memory, nil
	case SectionIDGlobal:
		m.Global = &SectionGlobals{}
		return m.Global, nil
	case SectionIDExport:
		m.Export = &SectionExports{}
		return m.Export, nil
	case SectionIDStart:
		m.Start = &SectionStartFunction{}
		return m.Start, nil
	case SectionIDElement:
		m.Elements = &SectionElements{}
		return m.Elements, nil
	case SectionIDCode:
		m.Code = &SectionCode{}
		return m.Code, nil
	case SectionIDData:
		m.Data = &SectionData{}
		return m.Data, nil
	case SectionIDDataCount:
		m.DataCount = &SectionDataCount{}
		return m.DataCount, nil
	default:
		return nil, InvalidSectionIDError(id)
	}
}

// readSection reads a single section from r. The first return value is true if and only if
// the module has been completely read.
func (sr *sectionsReader) readSection(r *posReader) (bool, error) {
	b, err := r.ReadByte()
	if err == io.EOF {
		return true, nil
	} else if err != nil {
		return false, err
	}

	id := SectionID(b)
	if id != SectionIDCustom {
		if id > SectionIDDataCount {
			return false, InvalidSectionIDError(id)
		}
		if id.order() <= sr.lastOrder {
			return false, ErrSectionOrder
		}
		sr.lastOrder = id.order()
	}

	size, err := leb128.ReadVarUint32(r)
	if err != nil {
		return false, err
	}

	s := RawSection{ID: id, Start: r.pos}
	sr.log.Debug("reading section", zap.Stringer("id", id), zap.Uint32("size", size), zap.Int64("offset", s.Start))

	sec, err := sr.newSection(id)
	if err != nil {
		return false, err
	}

	payload, err := readBytes(r, size)
	if err != nil {
		return false, err
	}
	pr := bytes.NewReader(payload)
	if err = sec.ReadPayload(pr); err != nil {
		sr.log.Debug("reading section failed", zap.Stringer("id", id), zap.Error(err))
		return false, fmt.Errorf("%v section: %w", id, err)
	}
	if pr.Len() != 0 {
		return false, fmt.Errorf("%v section: %w", id, ErrSectionSize)
	}

	s.End = r.pos
	s.Bytes = payload
	*sec.GetRawSection() = s

	if id == SectionIDCode {
		for i := range sr.m.Code.Bodies {
			sr.m.Code.Bodies[i].Module = sr.m
		}
	}
	sr.m.Sections = append(sr.m.Sections, sec)
	return false, nil
}

var _ Section = (*SectionCustom)(nil)

type SectionCustom struct {
	RawSection
	Name string
	Data []byte
}

func (s *SectionCustom) SectionID() SectionID {
	return SectionIDCustom
}

func (s *SectionCustom) ReadPayload(r io.Reader) error {
	var err error
	if s.Name, err = readUTF8StringUint(r); err != nil {
		return err
	}
	s.Data, err = io.ReadAll(r)
	return err
}

func (s *SectionCustom) WritePayload(w io.Writer) error {
	if err := writeStringUint(w, s.Name); err != nil {
		return err
	}
	_, err := w.Write(s.Data)
	return err
}

// SectionTypes declares all function signatures that will be used in a module.
type SectionTypes struct {
	RawSection
	Entries []FunctionSig
}

func (*SectionTypes) SectionID() SectionID {
	return SectionIDType
}

func (s *SectionTypes) ReadPayload(r io.Reader) (err error) {
	s.Entries, err = readUnmarshalers[FunctionSig](r)
	return err
}

func (s *SectionTypes) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Entries)
}

// SectionImports declares all imports that will be used in the module.
type SectionImports struct {
	RawSection
	Entries []ImportEntry
}

func (*SectionImports) SectionID() SectionID {
	return SectionIDImport
}

func (s *SectionImports) ReadPayload(r io.Reader) (err error) {
	s.Entries, err = readUnmarshalers[ImportEntry](r)
	return err
}

func (s *SectionImports) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Entries)
}

// SectionFunctions declares the signature of all functions defined in the module (in the code section).
type SectionFunctions struct {
	RawSection
	// Sequences of indices into (SectionTypes).Entries
	Types []uint32
}

func (*SectionFunctions) SectionID() SectionID {
	return SectionIDFunction
}

func (s *SectionFunctions) ReadPayload(r io.Reader) (err error) {
	s.Types, err = readIndices(r)
	return err
}

func (s *SectionFunctions) WritePayload(w io.Writer) error {
	return writeIndices(w, s.Types)
}

// SectionTables describes all tables declared by a module.
type SectionTables struct {
	RawSection
	Entries []Table
}

func (*SectionTables) SectionID() SectionID {
	return SectionIDTable
}

func (s *SectionTables) ReadPayload(r io.Reader) (err error) {
	s.Entries, err = readUnmarshalers[Table](r)
	return err
}

func (s *SectionTables) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Entries)
}

// SectionMemories describes all linear memories used by a module.
type SectionMemories struct {
	RawSection
	Entries []Memory
}

func (*SectionMemories) SectionID() SectionID {
	return SectionIDMemory
}

func (s *SectionMemories) ReadPayload(r io.Reader) (err error) {
	s.Entries, err = readUnmarshalers[Memory](r)
	return err
}

func (s *SectionMemories) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Entries)
}

// SectionGlobals defines the value of all global variables declared in a module.
type SectionGlobals struct {
	RawSection
	Globals []GlobalEntry
}

func (*SectionGlobals) SectionID() SectionID {
	return SectionIDGlobal
}

func (s *SectionGlobals) ReadPayload(r io.Reader) (err error) {
	s.Globals, err = readUnmarshalers[GlobalEntry](r)
	return err
}

func (s *SectionGlobals) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Globals)
}

// GlobalEntry declares a global variable.
type GlobalEntry struct {
	Type GlobalVar // Type holds information about the value type and mutability of the variable
	Init []byte    // Init is an initializer expression that computes the initial value of the variable
}

func (g *GlobalEntry) UnmarshalWASM(r io.Reader) error {
	if err := g.Type.UnmarshalWASM(r); err != nil {
		return err
	}
	var err error
	g.Init, err = readInitExpr(r)
	return err
}

func (g *GlobalEntry) MarshalWASM(w io.Writer) error {
	if err := g.Type.MarshalWASM(w); err != nil {
		return err
	}
	_, err := w.Write(g.Init)
	return err
}

// SectionExports declares the export section of a module.
type SectionExports struct {
	RawSection
	Entries []ExportEntry
}

func (*SectionExports) SectionID() SectionID {
	return SectionIDExport
}

func (s *SectionExports) ReadPayload(r io.Reader) error {
	entries, err := readUnmarshalers[ExportEntry](r)
	if err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.FieldStr]; ok {
			return DuplicateExportError(e.FieldStr)
		}
		seen[e.FieldStr] = struct{}{}
	}
	s.Entries = entries
	return nil
}

// WritePayload writes the exports ordered by index, then by name, so that the
// encoding of a module is deterministic.
func (s *SectionExports) WritePayload(w io.Writer) error {
	entries := append([]ExportEntry(nil), s.Entries...)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Index == entries[j].Index {
			return entries[i].FieldStr < entries[j].FieldStr
		}
		return entries[i].Index < entries[j].Index
	})
	return writeMarshalers(w, entries)
}

type DuplicateExportError string

func (e DuplicateExportError) Error() string {
	return fmt.Sprintf("wasm: duplicate export entry: %s", string(e))
}

// ExportEntry represents an exported entry by the module.
type ExportEntry struct {
	FieldStr string
	Kind     External
	Index    uint32
}

func (e *ExportEntry) UnmarshalWASM(r io.Reader) error {
	var err error
	if e.FieldStr, err = readUTF8StringUint(r); err != nil {
		return err
	}
	if err = e.Kind.UnmarshalWASM(r); err != nil {
		return err
	}
	e.Index, err = leb128.ReadVarUint32(r)
	return err
}

func (e *ExportEntry) MarshalWASM(w io.Writer) error {
	if err := writeStringUint(w, e.FieldStr); err != nil {
		return err
	}
	if err := e.Kind.MarshalWASM(w); err != nil {
		return err
	}
	_, err := leb128.WriteVarUint32(w, e.Index)
	return err
}

// SectionStartFunction represents the start function section.
type SectionStartFunction struct {
	RawSection
	Index uint32 // The index of the start function into the global index space.
}

func (*SectionStartFunction) SectionID() SectionID {
	return SectionIDStart
}

func (s *SectionStartFunction) ReadPayload(r io.Reader) (err error) {
	s.Index, err = leb128.ReadVarUint32(r)
	return err
}

func (s *SectionStartFunction) WritePayload(w io.Writer) error {
	_, err := leb128.WriteVarUint32(w, s.Index)
	return err
}

// SectionElements describes the initial contents of a table's elements.
type SectionElements struct {
	RawSection
	Entries []ElementSegment
}

func (*SectionElements) SectionID() SectionID {
	return SectionIDElement
}

func (s *SectionElements) ReadPayload(r io.Reader) (err error) {
	s.Entries, err = readUnmarshalers[ElementSegment](r)
	return err
}

func (s *SectionElements) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Entries)
}

// ElementSegment describes an active segment of function indices placed into table 0.
// Only the MVP encoding (flags 0) is supported.
type ElementSegment struct {
	Index  uint32 // The index into the global table space, always 0 in the MVP.
	Offset []byte // initializer expression for computing the offset for placing elements
	Elems  []uint32
}

func (s *ElementSegment) UnmarshalWASM(r io.Reader) error {
	var err error
	if s.Index, err = leb128.ReadVarUint32(r); err != nil {
		return err
	}
	if s.Index != 0 {
		return ValidationError("unsupported element segment encoding")
	}
	if s.Offset, err = readInitExpr(r); err != nil {
		return err
	}
	s.Elems, err = readIndices(r)
	return err
}

func (s *ElementSegment) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarUint32(w, s.Index); err != nil {
		return err
	}
	if _, err := w.Write(s.Offset); err != nil {
		return err
	}
	return writeIndices(w, s.Elems)
}

// SectionCode describes the body for every function declared inside a module.
type SectionCode struct {
	RawSection
	Bodies []FunctionBody
}

func (*SectionCode) SectionID() SectionID {
	return SectionIDCode
}

func (s *SectionCode) ReadPayload(r io.Reader) (err error) {
	s.Bodies, err = readUnmarshalers[FunctionBody](r)
	return err
}

func (s *SectionCode) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Bodies)
}

// FunctionBody holds the locals and encoded instructions of a defined function.
type FunctionBody struct {
	Module *Module // The parent module containing this function body
	Locals []LocalEntry
	Code   []byte
}

// NumLocals returns the number of declared locals, excluding parameters.
func (f *FunctionBody) NumLocals() uint64 {
	n := uint64(0)
	for _, l := range f.Locals {
		n += uint64(l.Count)
	}
	return n
}

func (f *FunctionBody) UnmarshalWASM(r io.Reader) error {
	body, err := readBytesUint(r)
	if err != nil {
		return err
	}

	br := bytes.NewReader(body)
	if f.Locals, err = readUnmarshalers[LocalEntry](br); err != nil {
		return err
	}
	f.Code = body[len(body)-br.Len():]
	return nil
}

func (f *FunctionBody) MarshalWASM(w io.Writer) error {
	var body bytes.Buffer
	if err := writeMarshalers(&body, f.Locals); err != nil {
		return err
	}
	body.Write(f.Code)
	return writeBytesUint(w, body.Bytes())
}

type LocalEntry struct {
	Count uint32    // The total number of local variables of the given Type used in the function body
	Type  ValueType // The type of value stored by the variable
}

func (l *LocalEntry) UnmarshalWASM(r io.Reader) error {
	var err error
	if l.Count, err = leb128.ReadVarUint32(r); err != nil {
		return err
	}
	return l.Type.UnmarshalWASM(r)
}

func (l *LocalEntry) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarUint32(w, l.Count); err != nil {
		return err
	}
	return l.Type.MarshalWASM(w)
}

// SectionData describes the initial values of a module's linear memory.
type SectionData struct {
	RawSection
	Entries []DataSegment
}

func (*SectionData) SectionID() SectionID {
	return SectionIDData
}

func (s *SectionData) ReadPayload(r io.Reader) (err error) {
	s.Entries, err = readUnmarshalers[DataSegment](r)
	return err
}

func (s *SectionData) WritePayload(w io.Writer) error {
	return writeMarshalers(w, s.Entries)
}

// DataSegment describes a group of bytes placed at a specified offset in the linear memory.
// Passive segments (flags 1) have no offset.
type DataSegment struct {
	Index   uint32 // The index into the global linear memory space
	Passive bool
	Offset  []byte // initializer expression for computing the offset for placing the data
	Data    []byte
}

func (s *DataSegment) UnmarshalWASM(r io.Reader) error {
	flags, err := leb128.ReadVarUint32(r)
	if err != nil {
		return err
	}
	switch flags {
	case 0:
		if s.Offset, err = readInitExpr(r); err != nil {
			return err
		}
	case 1:
		s.Passive = true
	case 2:
		if s.Index, err = leb128.ReadVarUint32(r); err != nil {
			return err
		}
		if s.Offset, err = readInitExpr(r); err != nil {
			return err
		}
	default:
		return ValidationError("invalid data segment flags")
	}
	s.Data, err = readBytesUint(r)
	return err
}

func (s *DataSegment) MarshalWASM(w io.Writer) error {
	switch {
	case s.Passive:
		if _, err := leb128.WriteVarUint32(w, 1); err != nil {
			return err
		}
	case s.Index != 0:
		if _, err := leb128.WriteVarUint32(w, 2); err != nil {
			return err
		}
		if _, err := leb128.WriteVarUint32(w, s.Index); err != nil {
			return err
		}
		if _, err := w.Write(s.Offset); err != nil {
			return err
		}
	default:
		if _, err := leb128.WriteVarUint32(w, 0); err != nil {
			return err
		}
		if _, err := w.Write(s.Offset); err != nil {
			return err
		}
	}
	return writeBytesUint(w, s.Data)
}

// SectionDataCount declares the number of data segments ahead of the code section.
type SectionDataCount struct {
	RawSection
	Count uint32
}

func (*SectionDataCount) SectionID() SectionID {
	return SectionIDDataCount
}

func (s *SectionDataCount) ReadPayload(r io.Reader) (err error) {
	s.Count, err = leb128.ReadVarUint32(r)
	return err
}

func (s *SectionDataCount) WritePayload(w io.Writer) error {
	_, err := leb128.WriteVarUint32(w, s.Count)
	return err
}
