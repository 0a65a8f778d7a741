package numeric

import (
	"math"
	"testing"

	"github.com/pgavlin/rwarp/wasm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerTraps(t *testing.T) {
	cases := []struct {
		name     string
		f        BinaryFunc
		lhs, rhs Value
		trap     Trap
	}{
		{"i32.div_s by zero", I32DivS, I32(-4), I32(0), TrapIntegerDivideByZero},
		{"i32.div_s overflow", I32DivS, I32(math.MinInt32), I32(-1), TrapIntegerOverflow},
		{"i32.div_u by zero", I32DivU, I32(7), I32(0), TrapIntegerDivideByZero},
		{"i32.rem_s by zero", I32RemS, I32(7), I32(0), TrapIntegerDivideByZero},
		{"i32.rem_u by zero", I32RemU, I32(-4), I32(0), TrapIntegerDivideByZero},
		{"i64.div_s by zero", I64DivS, I64(-4), I64(0), TrapIntegerDivideByZero},
		{"i64.div_s overflow", I64DivS, I64(math.MinInt64), I64(-1), TrapIntegerOverflow},
		{"i64.div_u by zero", I64DivU, I64(1), I64(0), TrapIntegerDivideByZero},
		{"i64.rem_s by zero", I64RemS, I64(1), I64(0), TrapIntegerDivideByZero},
		{"i64.rem_u by zero", I64RemU, I64(-4), I64(0), TrapIntegerDivideByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.f(c.lhs, c.rhs)
			assert.Equal(t, c.trap, err)
		})
	}
}

func TestIntegerArithmetic(t *testing.T) {
	cases := []struct {
		name     string
		f        BinaryFunc
		lhs, rhs Value
		expected Value
	}{
		{"i32.add wraps", I32Add, I32(math.MaxInt32), I32(1), I32(math.MinInt32)},
		{"i32.sub", I32Sub, I32(5), I32(7), I32(-2)},
		{"i32.div_u", I32DivU, I32(-1), I32(2), I32(math.MaxInt32)},
		{"i32.rem_s sign", I32RemS, I32(-7), I32(2), I32(-1)},
		{"i32.rem_s min by -1", I32RemS, I32(math.MinInt32), I32(-1), I32(0)},
		{"i32.shl masks", I32Shl, I32(1), I32(33), I32(2)},
		{"i32.shr_s", I32ShrS, I32(-8), I32(1), I32(-4)},
		{"i32.shr_u", I32ShrU, I32(-8), I32(28), I32(15)},
		{"i32.rotl", I32Rotl, I32(math.MinInt32), I32(1), I32(1)},
		{"i32.rotr", I32Rotr, I32(1), I32(1), I32(math.MinInt32)},
		{"i32.lt_u", I32LtU, I32(1), I32(-1), I32(1)},
		{"i32.lt_s", I32LtS, I32(1), I32(-1), I32(0)},
		{"i64.mul wraps", I64Mul, I64(math.MaxInt64), I64(2), I64(-2)},
		{"i64.shr_u masks", I64ShrU, I64(-1), I64(127), I64(1)},
		{"i64.rotr", I64Rotr, I64(1), I64(-1), I64(2)},
		{"i64.ge_u", I64GeU, I64(-1), I64(0), I32(1)},
		{"i64.rem_s min by -1", I64RemS, I64(math.MinInt64), I64(-1), I64(0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := c.f(c.lhs, c.rhs)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestIntegerUnary(t *testing.T) {
	cases := []struct {
		name     string
		f        UnaryFunc
		v        Value
		expected Value
	}{
		{"i32.clz", I32Clz, I32(1), I32(31)},
		{"i32.ctz zero", I32Ctz, I32(0), I32(32)},
		{"i32.popcnt", I32Popcnt, I32(-1), I32(32)},
		{"i32.eqz", I32Eqz, I32(0), I32(1)},
		{"i64.eqz", I64Eqz, I64(5), I32(0)},
		{"i32.extend8_s", I32Extend8S, I32(0x80), I32(-128)},
		{"i64.extend32_s", I64Extend32S, I64(0x80000000), I64(math.MinInt32)},
		{"i32.wrap_i64", I32WrapI64, I64(0x1_0000_0005), I32(5)},
		{"i64.extend_i32_u", I64ExtendI32U, I32(-1), I64(math.MaxUint32)},
		{"i64.extend_i32_s", I64ExtendI32S, I32(-1), I64(-1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := c.f(c.v)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestFloatNaNPropagation(t *testing.T) {
	// A signaling NaN with a payload.
	snan := F32Bits(0x7f800001)

	sum, err := F32Add(snan, F32(1))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00001), sum.F32Bits())

	sum, err = F32Add(F32(1), snan)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00001), sum.F32Bits())

	// NaN from non-NaN operands is canonical.
	diff, err := F64Sub(F64(math.Inf(1)), F64(math.Inf(1)))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7ff8000000000000), diff.F64Bits())

	// Sign operations never touch the payload.
	neg, err := F32Neg(snan)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xff800001), neg.F32Bits())

	cs, err := F32Copysign(snan, F32(-1))
	require.NoError(t, err)
	assert.Equal(t, uint32(0xff800001), cs.F32Bits())

	eq, err := F64Eq(F64(math.NaN()), F64(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, I32(0), eq)

	ne, err := F32Ne(snan, snan)
	require.NoError(t, err)
	assert.Equal(t, I32(1), ne)
}

func TestFloatMinMax(t *testing.T) {
	negZero := F64(math.Copysign(0, -1))

	lo, err := F64Min(F64(0), negZero)
	require.NoError(t, err)
	assert.True(t, lo.SignBit())

	lo, err = F64Min(negZero, F64(0))
	require.NoError(t, err)
	assert.True(t, lo.SignBit())

	hi, err := F64Max(negZero, F64(0))
	require.NoError(t, err)
	assert.False(t, hi.SignBit())

	hi, err = F32Max(F32(1), F32(float32(math.Inf(-1))))
	require.NoError(t, err)
	assert.Equal(t, F32(1), hi)

	lo, err = F32Min(F32(1), F32Bits(0x7fa00000))
	require.NoError(t, err)
	assert.True(t, lo.IsNaN())
}

func TestFloatRounding(t *testing.T) {
	cases := []struct {
		name     string
		f        UnaryFunc
		v        Value
		expected Value
	}{
		{"f32.nearest even", F32Nearest, F32(2.5), F32(2)},
		{"f64.nearest odd", F64Nearest, F64(3.5), F64(4)},
		{"f64.ceil negative", F64Ceil, F64(-0.5), F64(math.Copysign(0, -1))},
		{"f32.floor", F32Floor, F32(-1.5), F32(-2)},
		{"f32.trunc", F32Trunc, F32(-1.5), F32(-1)},
		{"f64.sqrt", F64Sqrt, F64(16), F64(4)},
		{"f32.abs", F32Abs, F32(-3), F32(3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := c.f(c.v)
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestTruncation(t *testing.T) {
	cases := []struct {
		name     string
		f        UnaryFunc
		v        Value
		expected Value
		trap     error
	}{
		{"i32.trunc_f32_s nan", I32TruncF32S, F32(float32(math.NaN())), Value{}, TrapBadConversionToInteger},
		{"i32.trunc_f32_s overflow", I32TruncF32S, F32(2147483648), Value{}, TrapIntegerOverflow},
		{"i32.trunc_f64_s min", I32TruncF64S, F64(-2147483648.9), I32(math.MinInt32), nil},
		{"i32.trunc_f64_s underflow", I32TruncF64S, F64(-2147483649), Value{}, TrapIntegerOverflow},
		{"i32.trunc_f64_u negative fraction", I32TruncF64U, F64(-0.9), I32(0), nil},
		{"i32.trunc_f64_u negative", I32TruncF64U, F64(-1), Value{}, TrapIntegerOverflow},
		{"i32.trunc_f64_u max", I32TruncF64U, F64(4294967295.5), I32(-1), nil},
		{"i64.trunc_f64_s overflow", I64TruncF64S, F64(9223372036854775808), Value{}, TrapIntegerOverflow},
		{"i64.trunc_f32_u", I64TruncF32U, F32(1e10), I64(10000000000), nil},
		{"i64.trunc_f64_u overflow", I64TruncF64U, F64(18446744073709551616), Value{}, TrapIntegerOverflow},
		{"i32.trunc_sat_f32_s nan", I32TruncSatF32S, F32(float32(math.NaN())), I32(0), nil},
		{"i32.trunc_sat_f64_u high", I32TruncSatF64U, F64(1e20), I32(-1), nil},
		{"i64.trunc_sat_f64_s low", I64TruncSatF64S, F64(math.Inf(-1)), I64(math.MinInt64), nil},
		{"i64.trunc_sat_f32_u negative", I64TruncSatF32U, F32(-5), I64(0), nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := c.f(c.v)
			if c.trap != nil {
				assert.Equal(t, c.trap, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestConversions(t *testing.T) {
	v, err := F32ConvertI64U(I64(-1))
	require.NoError(t, err)
	assert.Equal(t, F32(18446744073709551616), v)

	v, err = F64ConvertI32U(I32(-1))
	require.NoError(t, err)
	assert.Equal(t, F64(4294967295), v)

	v, err = F32DemoteF64(F64Bits(0x7ff0000000000001))
	require.NoError(t, err)
	assert.Equal(t, uint32(0x7fc00000), v.F32Bits())

	v, err = I64ReinterpretF64(F64(1))
	require.NoError(t, err)
	assert.Equal(t, I64(0x3ff0000000000000), v)

	v, err = F32ReinterpretI32(I32(-1))
	require.NoError(t, err)
	assert.True(t, v.IsNaN())
	assert.Equal(t, wasm.ValueTypeF32, v.Type())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-5", I32(-5).String())
	assert.Equal(t, "1.5", F64(1.5).String())
	assert.Equal(t, "nan:0x1", F32Bits(0x7f800001).String())
	assert.Equal(t, "integer divide by zero", TrapIntegerDivideByZero.Error())
	assert.Equal(t, I32(-1), FromBits(wasm.ValueTypeI32, math.MaxUint64))
}
