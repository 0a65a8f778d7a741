package numeric

import (
	"math"
	"math/bits"
)

// A BinaryFunc evaluates a binary operator. It returns a Trap if the operator traps on its inputs.
type BinaryFunc func(lhs, rhs Value) (Value, error)

// A UnaryFunc evaluates a unary operator or conversion.
type UnaryFunc func(v Value) (Value, error)

func i32Binary(f func(a, b int32) int32) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return I32(f(lhs.I32(), rhs.I32())), nil
	}
}

func i64Binary(f func(a, b int64) int64) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return I64(f(lhs.I64(), rhs.I64())), nil
	}
}

func i32Compare(f func(a, b int32) bool) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return Bool(f(lhs.I32(), rhs.I32())), nil
	}
}

func u32Compare(f func(a, b uint32) bool) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return Bool(f(lhs.U32(), rhs.U32())), nil
	}
}

func i64Compare(f func(a, b int64) bool) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return Bool(f(lhs.I64(), rhs.I64())), nil
	}
}

func u64Compare(f func(a, b uint64) bool) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return Bool(f(lhs.U64(), rhs.U64())), nil
	}
}

func i32Unary(f func(v int32) int32) UnaryFunc {
	return func(v Value) (Value, error) {
		return I32(f(v.I32())), nil
	}
}

func i64Unary(f func(v int64) int64) UnaryFunc {
	return func(v Value) (Value, error) {
		return I64(f(v.I64())), nil
	}
}

var (
	I32Add = i32Binary(func(a, b int32) int32 { return a + b })
	I32Sub = i32Binary(func(a, b int32) int32 { return a - b })
	I32Mul = i32Binary(func(a, b int32) int32 { return a * b })
	I32And = i32Binary(func(a, b int32) int32 { return a & b })
	I32Or  = i32Binary(func(a, b int32) int32 { return a | b })
	I32Xor = i32Binary(func(a, b int32) int32 { return a ^ b })

	I32Shl  = i32Binary(func(a, b int32) int32 { return a << (uint32(b) & 31) })
	I32ShrS = i32Binary(func(a, b int32) int32 { return a >> (uint32(b) & 31) })
	I32ShrU = i32Binary(func(a, b int32) int32 { return int32(uint32(a) >> (uint32(b) & 31)) })
	I32Rotl = i32Binary(func(a, b int32) int32 { return int32(bits.RotateLeft32(uint32(a), int(b&31))) })
	I32Rotr = i32Binary(func(a, b int32) int32 { return int32(bits.RotateLeft32(uint32(a), -int(b&31))) })

	I32Eq  = i32Compare(func(a, b int32) bool { return a == b })
	I32Ne  = i32Compare(func(a, b int32) bool { return a != b })
	I32LtS = i32Compare(func(a, b int32) bool { return a < b })
	I32GtS = i32Compare(func(a, b int32) bool { return a > b })
	I32LeS = i32Compare(func(a, b int32) bool { return a <= b })
	I32GeS = i32Compare(func(a, b int32) bool { return a >= b })
	I32LtU = u32Compare(func(a, b uint32) bool { return a < b })
	I32GtU = u32Compare(func(a, b uint32) bool { return a > b })
	I32LeU = u32Compare(func(a, b uint32) bool { return a <= b })
	I32GeU = u32Compare(func(a, b uint32) bool { return a >= b })

	I32Clz       = i32Unary(func(v int32) int32 { return int32(bits.LeadingZeros32(uint32(v))) })
	I32Ctz       = i32Unary(func(v int32) int32 { return int32(bits.TrailingZeros32(uint32(v))) })
	I32Popcnt    = i32Unary(func(v int32) int32 { return int32(bits.OnesCount32(uint32(v))) })
	I32Extend8S  = i32Unary(func(v int32) int32 { return int32(int8(v)) })
	I32Extend16S = i32Unary(func(v int32) int32 { return int32(int16(v)) })

	I64Add = i64Binary(func(a, b int64) int64 { return a + b })
	I64Sub = i64Binary(func(a, b int64) int64 { return a - b })
	I64Mul = i64Binary(func(a, b int64) int64 { return a * b })
	I64And = i64Binary(func(a, b int64) int64 { return a & b })
	I64Or  = i64Binary(func(a, b int64) int64 { return a | b })
	I64Xor = i64Binary(func(a, b int64) int64 { return a ^ b })

	I64Shl  = i64Binary(func(a, b int64) int64 { return a << (uint64(b) & 63) })
	I64ShrS = i64Binary(func(a, b int64) int64 { return a >> (uint64(b) & 63) })
	I64ShrU = i64Binary(func(a, b int64) int64 { return int64(uint64(a) >> (uint64(b) & 63)) })
	I64Rotl = i64Binary(func(a, b int64) int64 { return int64(bits.RotateLeft64(uint64(a), int(b&63))) })
	I64Rotr = i64Binary(func(a, b int64) int64 { return int64(bits.RotateLeft64(uint64(a), -int(b&63))) })

	I64Eq  = i64Compare(func(a, b int64) bool { return a == b })
	I64Ne  = i64Compare(func(a, b int64) bool { return a != b })
	I64LtS = i64Compare(func(a, b int64) bool { return a < b })
	I64GtS = i64Compare(func(a, b int64) bool { return a > b })
	I64LeS = i64Compare(func(a, b int64) bool { return a <= b })
	I64GeS = i64Compare(func(a, b int64) bool { return a >= b })
	I64LtU = u64Compare(func(a, b uint64) bool { return a < b })
	I64GtU = u64Compare(func(a, b uint64) bool { return a > b })
	I64LeU = u64Compare(func(a, b uint64) bool { return a <= b })
	I64GeU = u64Compare(func(a, b uint64) bool { return a >= b })

	I64Clz       = i64Unary(func(v int64) int64 { return int64(bits.LeadingZeros64(uint64(v))) })
	I64Ctz       = i64Unary(func(v int64) int64 { return int64(bits.TrailingZeros64(uint64(v))) })
	I64Popcnt    = i64Unary(func(v int64) int64 { return int64(bits.OnesCount64(uint64(v))) })
	I64Extend8S  = i64Unary(func(v int64) int64 { return int64(int8(v)) })
	I64Extend16S = i64Unary(func(v int64) int64 { return int64(int16(v)) })
	I64Extend32S = i64Unary(func(v int64) int64 { return int64(int32(v)) })
)

func I32Eqz(v Value) (Value, error) { return Bool(v.U32() == 0), nil }
func I64Eqz(v Value) (Value, error) { return Bool(v.U64() == 0), nil }

func I32DivS(lhs, rhs Value) (Value, error) {
	a, b := lhs.I32(), rhs.I32()
	switch {
	case b == 0:
		return Value{}, TrapIntegerDivideByZero
	case a == math.MinInt32 && b == -1:
		return Value{}, TrapIntegerOverflow
	}
	return I32(a / b), nil
}

func I32DivU(lhs, rhs Value) (Value, error) {
	if rhs.U32() == 0 {
		return Value{}, TrapIntegerDivideByZero
	}
	return I32(int32(lhs.U32() / rhs.U32())), nil
}

// I32RemS does not trap on MinInt32 % -1: the result is 0.
func I32RemS(lhs, rhs Value) (Value, error) {
	a, b := lhs.I32(), rhs.I32()
	switch {
	case b == 0:
		return Value{}, TrapIntegerDivideByZero
	case b == -1:
		return I32(0), nil
	}
	return I32(a % b), nil
}

func I32RemU(lhs, rhs Value) (Value, error) {
	if rhs.U32() == 0 {
		return Value{}, TrapIntegerDivideByZero
	}
	return I32(int32(lhs.U32() % rhs.U32())), nil
}

func I64DivS(lhs, rhs Value) (Value, error) {
	a, b := lhs.I64(), rhs.I64()
	switch {
	case b == 0:
		return Value{}, TrapIntegerDivideByZero
	case a == math.MinInt64 && b == -1:
		return Value{}, TrapIntegerOverflow
	}
	return I64(a / b), nil
}

func I64DivU(lhs, rhs Value) (Value, error) {
	if rhs.U64() == 0 {
		return Value{}, TrapIntegerDivideByZero
	}
	return I64(int64(lhs.U64() / rhs.U64())), nil
}

func I64RemS(lhs, rhs Value) (Value, error) {
	a, b := lhs.I64(), rhs.I64()
	switch {
	case b == 0:
		return Value{}, TrapIntegerDivideByZero
	case b == -1:
		return I64(0), nil
	}
	return I64(a % b), nil
}

func I64RemU(lhs, rhs Value) (Value, error) {
	if rhs.U64() == 0 {
		return Value{}, TrapIntegerDivideByZero
	}
	return I64(int64(lhs.U64() % rhs.U64())), nil
}
