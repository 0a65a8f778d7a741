// Package numeric implements the constant values and the pure evaluation functions used to fold
// Wasm numeric operators at translation time.
package numeric

import (
	"fmt"
	"math"

	"github.com/pgavlin/rwarp/wasm"
)

// A Value is a typed Wasm number. Float values hold their exact bit pattern, so NaN payloads
// survive folding and encoding.
type Value struct {
	typ  wasm.ValueType
	bits uint64
}

func I32(v int32) Value {
	return Value{typ: wasm.ValueTypeI32, bits: uint64(uint32(v))}
}

func I64(v int64) Value {
	return Value{typ: wasm.ValueTypeI64, bits: uint64(v)}
}

func F32(v float32) Value {
	return F32Bits(math.Float32bits(v))
}

func F64(v float64) Value {
	return F64Bits(math.Float64bits(v))
}

func F32Bits(bits uint32) Value {
	return Value{typ: wasm.ValueTypeF32, bits: uint64(bits)}
}

func F64Bits(bits uint64) Value {
	return Value{typ: wasm.ValueTypeF64, bits: bits}
}

// Bool returns the i32 encoding of a comparison result.
func Bool(b bool) Value {
	if b {
		return I32(1)
	}
	return I32(0)
}

// FromBits builds a value of the given type from its 64-bit representation. i32 and f32 values
// use the low 32 bits.
func FromBits(t wasm.ValueType, bits uint64) Value {
	switch t {
	case wasm.ValueTypeI32, wasm.ValueTypeF32:
		bits = uint64(uint32(bits))
	}
	return Value{typ: t, bits: bits}
}

func (v Value) Type() wasm.ValueType { return v.typ }

// Bits returns the value's raw representation, zero-extended to 64 bits.
func (v Value) Bits() uint64 { return v.bits }

func (v Value) I32() int32 { return int32(uint32(v.bits)) }
func (v Value) U32() uint32 { return uint32(v.bits) }
func (v Value) I64() int64 { return int64(v.bits) }
func (v Value) U64() uint64 { return v.bits }
func (v Value) F32() float32 { return math.Float32frombits(uint32(v.bits)) }
func (v Value) F64() float64 { return math.Float64frombits(v.bits) }
func (v Value) F32Bits() uint32 { return uint32(v.bits) }
func (v Value) F64Bits() uint64 { return v.bits }
func (v Value) IsZero() bool { return v.bits == 0 }
func (v Value) IsFloat() bool { return v.typ == wasm.ValueTypeF32 || v.typ == wasm.ValueTypeF64 }
func (v Value) Is64() bool { return v.typ == wasm.ValueTypeI64 || v.typ == wasm.ValueTypeF64 }
func (v Value) IsInteger() bool { return v.typ == wasm.ValueTypeI32 || v.typ == wasm.ValueTypeI64 }
func (v Value) Equal(o Value) bool { return v == o }

// IsNaN returns true if the value is a float NaN of either width.
func (v Value) IsNaN() bool {
	switch v.typ {
	case wasm.ValueTypeF32:
		return v.bits&f32Exp == f32Exp && v.bits&f32Mantissa != 0
	case wasm.ValueTypeF64:
		return v.bits&f64Exp == f64Exp && v.bits&f64Mantissa != 0
	}
	return false
}

func (v Value) String() string {
	switch v.typ {
	case wasm.ValueTypeI32:
		return fmt.Sprintf("%d", v.I32())
	case wasm.ValueTypeI64:
		return fmt.Sprintf("%d", v.I64())
	case wasm.ValueTypeF32:
		if v.IsNaN() {
			return fmt.Sprintf("nan:0x%x", v.bits&f32Mantissa)
		}
		return fmt.Sprintf("%g", v.F32())
	case wasm.ValueTypeF64:
		if v.IsNaN() {
			return fmt.Sprintf("nan:0x%x", v.bits&f64Mantissa)
		}
		return fmt.Sprintf("%g", v.F64())
	default:
		return fmt.Sprintf("<%v 0x%x>", v.typ, v.bits)
	}
}
