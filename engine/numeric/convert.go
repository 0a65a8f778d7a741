package numeric

import "math"

func truncS32(z float64) (int32, error) {
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	if z = math.Trunc(z); z < math.MinInt32 || z > math.MaxInt32 {
		return 0, TrapIntegerOverflow
	}
	return int32(z), nil
}

func truncU32(z float64) (uint32, error) {
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	if z = math.Trunc(z); z <= -1 || z > math.MaxUint32 {
		return 0, TrapIntegerOverflow
	}
	return uint32(z), nil
}

func truncS64(z float64) (int64, error) {
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	if z = math.Trunc(z); z < math.MinInt64 || z >= 1<<63 {
		return 0, TrapIntegerOverflow
	}
	return int64(z), nil
}

func truncU64(z float64) (uint64, error) {
	if math.IsNaN(z) {
		return 0, TrapBadConversionToInteger
	}
	if z = math.Trunc(z); z <= -1 || z >= 1<<64 {
		return 0, TrapIntegerOverflow
	}
	return uint64(z), nil
}

func truncSatS32(z float64) int32 {
	switch {
	case math.IsNaN(z):
		return 0
	case z <= math.MinInt32:
		return math.MinInt32
	case z >= math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(z)
	}
}

func truncSatU32(z float64) uint32 {
	switch {
	case math.IsNaN(z) || z <= 0:
		return 0
	case z >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(z)
	}
}

func truncSatS64(z float64) int64 {
	switch {
	case math.IsNaN(z):
		return 0
	case z <= math.MinInt64:
		return math.MinInt64
	case z >= 1<<63:
		return math.MaxInt64
	default:
		return int64(z)
	}
}

func truncSatU64(z float64) uint64 {
	switch {
	case math.IsNaN(z) || z <= 0:
		return 0
	case z >= 1<<64:
		return math.MaxUint64
	default:
		return uint64(z)
	}
}

// f32Operand widens an f32 value. The widening is exact for every non-NaN value.
func f32Operand(v Value) float64 { return float64(v.F32()) }

func truncTo32[T int32 | uint32](f func(float64) (T, error), operand func(Value) float64) UnaryFunc {
	return func(v Value) (Value, error) {
		r, err := f(operand(v))
		if err != nil {
			return Value{}, err
		}
		return I32(int32(r)), nil
	}
}

func truncTo64[T int64 | uint64](f func(float64) (T, error), operand func(Value) float64) UnaryFunc {
	return func(v Value) (Value, error) {
		r, err := f(operand(v))
		if err != nil {
			return Value{}, err
		}
		return I64(int64(r)), nil
	}
}

func satTo32[T int32 | uint32](f func(float64) T, operand func(Value) float64) UnaryFunc {
	return func(v Value) (Value, error) { return I32(int32(f(operand(v)))), nil }
}

func satTo64[T int64 | uint64](f func(float64) T, operand func(Value) float64) UnaryFunc {
	return func(v Value) (Value, error) { return I64(int64(f(operand(v)))), nil }
}

var (
	I32TruncF32S = truncTo32(truncS32, f32Operand)
	I32TruncF32U = truncTo32(truncU32, f32Operand)
	I32TruncF64S = truncTo32(truncS32, Value.F64)
	I32TruncF64U = truncTo32(truncU32, Value.F64)
	I64TruncF32S = truncTo64(truncS64, f32Operand)
	I64TruncF32U = truncTo64(truncU64, f32Operand)
	I64TruncF64S = truncTo64(truncS64, Value.F64)
	I64TruncF64U = truncTo64(truncU64, Value.F64)

	I32TruncSatF32S = satTo32(truncSatS32, f32Operand)
	I32TruncSatF32U = satTo32(truncSatU32, f32Operand)
	I32TruncSatF64S = satTo32(truncSatS32, Value.F64)
	I32TruncSatF64U = satTo32(truncSatU32, Value.F64)
	I64TruncSatF32S = satTo64(truncSatS64, f32Operand)
	I64TruncSatF32U = satTo64(truncSatU64, f32Operand)
	I64TruncSatF64S = satTo64(truncSatS64, Value.F64)
	I64TruncSatF64U = satTo64(truncSatU64, Value.F64)
)

func I32WrapI64(v Value) (Value, error) { return I32(int32(v.I64())), nil }
func I64ExtendI32S(v Value) (Value, error) { return I64(int64(v.I32())), nil }
func I64ExtendI32U(v Value) (Value, error) { return I64(int64(v.U32())), nil }
func F32ConvertI32S(v Value) (Value, error) { return F32(float32(v.I32())), nil }
func F32ConvertI32U(v Value) (Value, error) { return F32(float32(v.U32())), nil }
func F32ConvertI64S(v Value) (Value, error) { return F32(float32(v.I64())), nil }
func F32ConvertI64U(v Value) (Value, error) { return F32(float32(v.U64())), nil }
func F64ConvertI32S(v Value) (Value, error) { return F64(float64(v.I32())), nil }
func F64ConvertI32U(v Value) (Value, error) { return F64(float64(v.U32())), nil }
func F64ConvertI64S(v Value) (Value, error) { return F64(float64(v.I64())), nil }
func F64ConvertI64U(v Value) (Value, error) { return F64(float64(v.U64())), nil }
func I32ReinterpretF32(v Value) (Value, error) { return I32(int32(v.F32Bits())), nil }
func I64ReinterpretF64(v Value) (Value, error) { return I64(int64(v.F64Bits())), nil }
func F32ReinterpretI32(v Value) (Value, error) { return F32Bits(v.U32()), nil }
func F64ReinterpretI64(v Value) (Value, error) { return F64Bits(v.U64()), nil }

// F32DemoteF64 and F64PromoteF32 produce the canonical NaN for NaN operands.
func F32DemoteF64(v Value) (Value, error) {
	if v.IsNaN() {
		return F32Bits(f32NaN), nil
	}
	return F32(float32(v.F64())), nil
}

func F64PromoteF32(v Value) (Value, error) {
	if v.IsNaN() {
		return F64Bits(f64NaN), nil
	}
	return F64(float64(v.F32())), nil
}
