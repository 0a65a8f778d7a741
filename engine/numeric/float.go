package numeric

import "math"

const (
	f32Sign     = 0x80000000
	f32Exp      = 0x7f800000
	f32Mantissa = 0x007fffff
	f32Quiet    = 0x00400000
	f32NaN      = 0x7fc00000

	f64Sign     = 0x8000000000000000
	f64Exp      = 0x7ff0000000000000
	f64Mantissa = 0x000fffffffffffff
	f64Quiet    = 0x0008000000000000
	f64NaN      = 0x7ff8000000000000
)

type float interface {
	~float32 | ~float64
}

// Quiet sets the quiet bit of a NaN.
func Quiet(v Value) Value {
	if v.Is64() {
		return F64Bits(v.bits | f64Quiet)
	}
	return F32Bits(uint32(v.bits) | f32Quiet)
}

// propagateNaN returns the first NaN operand, quieted.
func propagateNaN(lhs, rhs Value) (Value, bool) {
	switch {
	case lhs.IsNaN():
		return Quiet(lhs), true
	case rhs.IsNaN():
		return Quiet(rhs), true
	}
	return Value{}, false
}

// canonical replaces a NaN produced from non-NaN operands with the positive canonical NaN, so
// that folded results do not depend on the host's NaN encoding.
func canonical(v Value) Value {
	if !v.IsNaN() {
		return v
	}
	if v.Is64() {
		return F64Bits(f64NaN)
	}
	return F32Bits(f32NaN)
}

func f32Arith(f func(a, b float32) float32) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		if nan, ok := propagateNaN(lhs, rhs); ok {
			return nan, nil
		}
		return canonical(F32(f(lhs.F32(), rhs.F32()))), nil
	}
}

func f64Arith(f func(a, b float64) float64) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		if nan, ok := propagateNaN(lhs, rhs); ok {
			return nan, nil
		}
		return canonical(F64(f(lhs.F64(), rhs.F64()))), nil
	}
}

func f32Compare(f func(a, b float32) bool) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return Bool(f(lhs.F32(), rhs.F32())), nil
	}
}

func f64Compare(f func(a, b float64) bool) BinaryFunc {
	return func(lhs, rhs Value) (Value, error) {
		return Bool(f(lhs.F64(), rhs.F64())), nil
	}
}

func f32Unary(f func(v float64) float64) UnaryFunc {
	return func(v Value) (Value, error) {
		if v.IsNaN() {
			return Quiet(v), nil
		}
		return canonical(F32(float32(f(float64(v.F32()))))), nil
	}
}

func f64Unary(f func(v float64) float64) UnaryFunc {
	return func(v Value) (Value, error) {
		if v.IsNaN() {
			return Quiet(v), nil
		}
		return canonical(F64(f(v.F64()))), nil
	}
}

// fmin and fmax order -0 below +0. NaN operands are handled by the caller.
func fmin[T float](a, b T) T {
	switch {
	case a < b:
		return a
	case b < a:
		return b
	case math.Signbit(float64(a)):
		return a
	default:
		return b
	}
}

func fmax[T float](a, b T) T {
	switch {
	case a > b:
		return a
	case b > a:
		return b
	case math.Signbit(float64(a)):
		return b
	default:
		return a
	}
}

var (
	F32Add = f32Arith(func(a, b float32) float32 { return a + b })
	F32Sub = f32Arith(func(a, b float32) float32 { return a - b })
	F32Mul = f32Arith(func(a, b float32) float32 { return a * b })
	F32Div = f32Arith(func(a, b float32) float32 { return a / b })
	F32Min = f32Arith(fmin[float32])
	F32Max = f32Arith(fmax[float32])

	F32Eq = f32Compare(func(a, b float32) bool { return a == b })
	F32Ne = f32Compare(func(a, b float32) bool { return a != b })
	F32Lt = f32Compare(func(a, b float32) bool { return a < b })
	F32Gt = f32Compare(func(a, b float32) bool { return a > b })
	F32Le = f32Compare(func(a, b float32) bool { return a <= b })
	F32Ge = f32Compare(func(a, b float32) bool { return a >= b })

	F32Ceil    = f32Unary(math.Ceil)
	F32Floor   = f32Unary(math.Floor)
	F32Trunc   = f32Unary(math.Trunc)
	F32Nearest = f32Unary(math.RoundToEven)
	F32Sqrt    = f32Unary(math.Sqrt)

	F64Add = f64Arith(func(a, b float64) float64 { return a + b })
	F64Sub = f64Arith(func(a, b float64) float64 { return a - b })
	F64Mul = f64Arith(func(a, b float64) float64 { return a * b })
	F64Div = f64Arith(func(a, b float64) float64 { return a / b })
	F64Min = f64Arith(fmin[float64])
	F64Max = f64Arith(fmax[float64])

	F64Eq = f64Compare(func(a, b float64) bool { return a == b })
	F64Ne = f64Compare(func(a, b float64) bool { return a != b })
	F64Lt = f64Compare(func(a, b float64) bool { return a < b })
	F64Gt = f64Compare(func(a, b float64) bool { return a > b })
	F64Le = f64Compare(func(a, b float64) bool { return a <= b })
	F64Ge = f64Compare(func(a, b float64) bool { return a >= b })

	F64Ceil    = f64Unary(math.Ceil)
	F64Floor   = f64Unary(math.Floor)
	F64Trunc   = f64Unary(math.Trunc)
	F64Nearest = f64Unary(math.RoundToEven)
	F64Sqrt    = f64Unary(math.Sqrt)
)

// abs, neg and copysign operate on the sign bit alone, so NaN payloads pass through unchanged.

func F32Abs(v Value) (Value, error) { return F32Bits(v.F32Bits() &^ f32Sign), nil }
func F32Neg(v Value) (Value, error) { return F32Bits(v.F32Bits() ^ f32Sign), nil }
func F64Abs(v Value) (Value, error) { return F64Bits(v.F64Bits() &^ f64Sign), nil }
func F64Neg(v Value) (Value, error) { return F64Bits(v.F64Bits() ^ f64Sign), nil }

func F32Copysign(lhs, rhs Value) (Value, error) {
	return F32Bits(lhs.F32Bits()&^f32Sign | rhs.F32Bits()&f32Sign), nil
}

func F64Copysign(lhs, rhs Value) (Value, error) {
	return F64Bits(lhs.F64Bits()&^f64Sign | rhs.F64Bits()&f64Sign), nil
}

// SignBit returns true if the sign bit of a float value is set.
func (v Value) SignBit() bool {
	if v.Is64() {
		return v.bits&f64Sign != 0
	}
	return v.bits&f32Sign != 0
}

// IsInf returns true if the value is an infinity with the given sign, as for math.IsInf.
func (v Value) IsInf(sign int) bool {
	if !v.IsFloat() {
		return false
	}
	if v.Is64() {
		return math.IsInf(v.F64(), sign)
	}
	return math.IsInf(float64(v.F32()), sign)
}
