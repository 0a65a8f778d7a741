// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"errors"
	"fmt"
	"io"

	"github.com/pgavlin/rwarp/wasm/leb128"
)

// Marshaler is the interface implemented by types that can write their binary encoding.
type Marshaler interface {
	MarshalWASM(w io.Writer) error
}

// Unmarshaler is the interface implemented by types that can read their binary encoding.
type Unmarshaler interface {
	UnmarshalWASM(r io.Reader) error
}

// ValidationError is returned when a module or function body is structurally invalid.
type ValidationError string

func (e ValidationError) Error() string {
	return "wasm: validation error: " + string(e)
}

// ValueType is the type of a Wasm value.
type ValueType int8

const (
	// ValueTypeT is a wildcard used by validation to represent a value of unknown type.
	ValueTypeT ValueType = 0

	ValueTypeI32       ValueType = -0x01
	ValueTypeI64       ValueType = -0x02
	ValueTypeF32       ValueType = -0x03
	ValueTypeF64       ValueType = -0x04
	ValueTypeV128      ValueType = -0x05
	ValueTypeFuncref   ValueType = -0x10
	ValueTypeExternref ValueType = -0x11
)

var valueTypeStrMap = map[ValueType]string{
	ValueTypeT:         "<any>",
	ValueTypeI32:       "i32",
	ValueTypeI64:       "i64",
	ValueTypeF32:       "f32",
	ValueTypeF64:       "f64",
	ValueTypeV128:      "v128",
	ValueTypeFuncref:   "funcref",
	ValueTypeExternref: "externref",
}

func (t ValueType) String() string {
	str, ok := valueTypeStrMap[t]
	if !ok {
		str = fmt.Sprintf("<unknown value_type %d>", int8(t))
	}
	return str
}

// IsNumeric returns true if the type is one of the four MVP number types.
func (t ValueType) IsNumeric() bool {
	switch t {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64:
		return true
	default:
		return false
	}
}

// Valid returns true if the type can appear in a module.
func (t ValueType) Valid() bool {
	_, ok := valueTypeStrMap[t]
	return ok && t != ValueTypeT
}

// InvalidValueTypeError is returned when a value type byte does not name a known type.
type InvalidValueTypeError int8

func (e InvalidValueTypeError) Error() string {
	return fmt.Sprintf("wasm: invalid value type 0x%02x", byte(e))
}

func (t *ValueType) UnmarshalWASM(r io.Reader) error {
	v, err := leb128.ReadVarint32(r)
	if err != nil {
		return err
	}
	vt := ValueType(v)
	if int32(vt) != v || !vt.Valid() {
		return InvalidValueTypeError(v)
	}
	*t = vt
	return nil
}

func (t ValueType) MarshalWASM(w io.Writer) error {
	_, err := w.Write([]byte{byte(t) & 0x7f})
	return err
}

// TypeFunc is the form byte that introduces a function type.
const TypeFunc int = -0x20

// FunctionSig describes the signature of a declared function in a WASM module.
type FunctionSig struct {
	// value for the 'func' type constructor
	Form int8
	// The parameter types of the function
	ParamTypes  []ValueType
	ReturnTypes []ValueType
}

func (f FunctionSig) String() string {
	return fmt.Sprintf("<func %v -> %v>", f.ParamTypes, f.ReturnTypes)
}

// Equals returns true if the two signatures have identical parameter and result types.
func (f FunctionSig) Equals(other FunctionSig) bool {
	if len(f.ParamTypes) != len(other.ParamTypes) || len(f.ReturnTypes) != len(other.ReturnTypes) {
		return false
	}
	for i, t := range f.ParamTypes {
		if other.ParamTypes[i] != t {
			return false
		}
	}
	for i, t := range f.ReturnTypes {
		if other.ReturnTypes[i] != t {
			return false
		}
	}
	return true
}

// InvalidTypeConstructorError is returned when a type section entry does not start with the func form.
type InvalidTypeConstructorError struct {
	Wanted int
	Got    int
}

func (e InvalidTypeConstructorError) Error() string {
	return fmt.Sprintf("wasm: invalid type constructor: wanted %d, got %d", e.Wanted, e.Got)
}

func (f *FunctionSig) UnmarshalWASM(r io.Reader) error {
	form, err := leb128.ReadVarint32(r)
	if err != nil {
		return err
	}
	if int(form) != TypeFunc {
		return InvalidTypeConstructorError{Wanted: TypeFunc, Got: int(form)}
	}
	f.Form = int8(form)

	if f.ParamTypes, err = readValueTypes(r); err != nil {
		return err
	}
	f.ReturnTypes, err = readValueTypes(r)
	return err
}

func (f *FunctionSig) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarint64(w, int64(TypeFunc)); err != nil {
		return err
	}
	if err := writeValueTypes(w, f.ParamTypes); err != nil {
		return err
	}
	return writeValueTypes(w, f.ReturnTypes)
}

func readValueTypes(r io.Reader) ([]ValueType, error) {
	return readVector(r, func(r io.Reader) (ValueType, error) {
		var t ValueType
		err := t.UnmarshalWASM(r)
		return t, err
	})
}

func writeValueTypes(w io.Writer, types []ValueType) error {
	return writeVector(w, types, func(w io.Writer, t ValueType) error {
		return t.MarshalWASM(w)
	})
}

// GlobalVar describes the type and mutability of a global variable.
type GlobalVar struct {
	Type    ValueType // Type of the value stored by the variable
	Mutable bool      // Whether the value of the variable can be changed by the set_global operator
}

func (g *GlobalVar) UnmarshalWASM(r io.Reader) error {
	*g = GlobalVar{}
	if err := g.Type.UnmarshalWASM(r); err != nil {
		return err
	}

	var m [1]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return err
	}
	switch m[0] {
	case 0:
	case 1:
		g.Mutable = true
	default:
		return ValidationError("invalid mutability")
	}
	return nil
}

func (g *GlobalVar) MarshalWASM(w io.Writer) error {
	if err := g.Type.MarshalWASM(w); err != nil {
		return err
	}
	var m byte
	if g.Mutable {
		m = 1
	}
	_, err := w.Write([]byte{m})
	return err
}

// ResizableLimits describe the limit of a table or linear memory.
type ResizableLimits struct {
	Flags   uint8  // 1 if the Maximum field is valid, 0 otherwise
	Initial uint32 // initial length (in units of table elements or wasm pages)
	Maximum uint32 // If flags is 1, it describes the maximum size of the table or memory
}

func (lim *ResizableLimits) UnmarshalWASM(r io.Reader) error {
	*lim = ResizableLimits{}
	f, err := leb128.ReadVarUint32(r)
	if err != nil {
		return err
	}
	if f > 1 {
		return ValidationError("invalid limits flags")
	}
	lim.Flags = uint8(f)

	if lim.Initial, err = leb128.ReadVarUint32(r); err != nil {
		return err
	}
	if lim.Flags&0x1 != 0 {
		if lim.Maximum, err = leb128.ReadVarUint32(r); err != nil {
			return err
		}
	}
	return nil
}

func (lim *ResizableLimits) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarUint32(w, uint32(lim.Flags)); err != nil {
		return err
	}
	if _, err := leb128.WriteVarUint32(w, lim.Initial); err != nil {
		return err
	}
	if lim.Flags&0x1 != 0 {
		if _, err := leb128.WriteVarUint32(w, lim.Maximum); err != nil {
			return err
		}
	}
	return nil
}

// Table describes a table in a Wasm module.
type Table struct {
	// The type of elements
	ElementType ValueType
	Limits      ResizableLimits
}

func (t *Table) UnmarshalWASM(r io.Reader) error {
	if err := t.ElementType.UnmarshalWASM(r); err != nil {
		return err
	}
	if t.ElementType != ValueTypeFuncref && t.ElementType != ValueTypeExternref {
		return ValidationError("invalid table element type")
	}
	return t.Limits.UnmarshalWASM(r)
}

func (t *Table) MarshalWASM(w io.Writer) error {
	if err := t.ElementType.MarshalWASM(w); err != nil {
		return err
	}
	return t.Limits.MarshalWASM(w)
}

// Memory describes a linear memory in a Wasm module.
type Memory struct {
	Limits ResizableLimits
}

func (m *Memory) UnmarshalWASM(r io.Reader) error {
	return m.Limits.UnmarshalWASM(r)
}

func (m *Memory) MarshalWASM(w io.Writer) error {
	return m.Limits.MarshalWASM(w)
}

// External describes the kind of the entry being imported or exported.
type External uint8

const (
	ExternalFunction External = 0
	ExternalTable    External = 1
	ExternalMemory   External = 2
	ExternalGlobal   External = 3
)

func (e External) String() string {
	switch e {
	case ExternalFunction:
		return "function"
	case ExternalTable:
		return "table"
	case ExternalMemory:
		return "memory"
	case ExternalGlobal:
		return "global"
	default:
		return "<unknown external_kind>"
	}
}

var errInvalidExternal = errors.New("wasm: invalid external_kind")

func (e *External) UnmarshalWASM(r io.Reader) error {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return err
	}
	if b[0] > byte(ExternalGlobal) {
		return fmt.Errorf("%w %d", errInvalidExternal, b[0])
	}
	*e = External(b[0])
	return nil
}

func (e External) MarshalWASM(w io.Writer) error {
	_, err := w.Write([]byte{byte(e)})
	return err
}
