package translate

import (
	"math"
	"testing"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/constpool"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imm16(v int16) bytecode.Const16 {
	return bytecode.Const16(v)
}

func const32(v uint32) bytecode.Instruction {
	return bytecode.Const32Param(bytecode.Const32(v))
}

func TestImmediateTiers(t *testing.T) {
	pool := constpool.New(0)

	// i32: 16-bit, then 32-bit.
	actual := mustTranslate(t, testFunc{sig: sig(params(i32), i32, i32), pool: pool},
		code.LocalGet(0), code.I32Const(-32768), code.I32Add(),
		code.LocalGet(0), code.I32Const(100000), code.I32Add(),
	)
	assert.Equal(t, instrs(
		bytecode.BinaryImm16(bytecode.OpI32AddImm16, 1, 0, imm16(-32768)),
		bytecode.BinaryImm(bytecode.OpI32AddImm, 2, 0), const32(100000),
		bytecode.ReturnMany(2), bytecode.RegisterList(1, 2, 0),
	), actual)

	// i64: 16-bit, then sign-extended 32-bit, then pooled.
	actual = mustTranslate(t, testFunc{sig: sig(params(i64), i64, i64, i64), pool: pool},
		code.LocalGet(0), code.I64Const(7), code.I64Mul(),
		code.LocalGet(0), code.I64Const(-70000), code.I64Mul(),
		code.LocalGet(0), code.I64Const(1<<40), code.I64Mul(),
	)
	minus70000, ok := bytecode.Const32FromI64(-70000)
	require.True(t, ok)
	assert.Equal(t, instrs(
		bytecode.BinaryImm16(bytecode.OpI64MulImm16, 1, 0, imm16(7)),
		bytecode.BinaryImm(bytecode.OpI64MulImm, 2, 0), bytecode.Const32Param(minus70000),
		bytecode.BinaryImm(bytecode.OpI64MulImm, 3, 0), bytecode.ConstRefParam(0),
		bytecode.ReturnMany(3), bytecode.RegisterList(1, 2, 3),
	), actual)

	bits, ok := pool.Get(0)
	require.True(t, ok)
	assert.Equal(t, uint64(1<<40), bits)

	// f32 constants always fit in 32 bits. f64 constants are always pooled.
	actual = mustTranslate(t, testFunc{sig: sig(params(f32, f64), f32, f64), pool: pool},
		code.LocalGet(0), code.F32Const(1.5), code.F32Mul(),
		code.LocalGet(1), code.F64Const(1.5), code.F64Mul(),
	)
	assert.Equal(t, instrs(
		bytecode.BinaryImm(bytecode.OpF32MulImm, 2, 0), const32(math.Float32bits(1.5)),
		bytecode.BinaryImm(bytecode.OpF64MulImm, 3, 1), bytecode.ConstRefParam(1),
		bytecode.ReturnMany(2), bytecode.RegisterList(2, 3, 0),
	), actual)
}

func TestConstantDeduplication(t *testing.T) {
	pool := constpool.New(0)
	f := testFunc{sig: sig(params(f64), f64), pool: pool}

	for i := 0; i < 2; i++ {
		actual := mustTranslate(t, f, code.LocalGet(0), code.F64Const(0.1), code.F64Add())
		assert.Equal(t, instrs(
			bytecode.BinaryImm(bytecode.OpF64AddImm, 1, 0), bytecode.ConstRefParam(0),
			bytecode.ReturnReg(1),
		), actual)
	}
	assert.Equal(t, 1, pool.Len())
}

func TestUnsignedImmediates(t *testing.T) {
	f := testFunc{sig: sig(params(i32), i32)}

	actual := mustTranslate(t, f, code.LocalGet(0), code.I32Const(40000), code.I32LtU())
	assert.Equal(t, instrs(
		bytecode.BinaryImm16(bytecode.OpI32LtUImm16, 1, 0, bytecode.Const16(-25536)),
		bytecode.ReturnReg(1),
	), actual)

	actual = mustTranslate(t, f, code.LocalGet(0), code.I32Const(40000), code.I32LtS())
	assert.Equal(t, instrs(
		bytecode.BinaryImm(bytecode.OpI32LtSImm, 1, 0), const32(40000),
		bytecode.ReturnReg(1),
	), actual)

	actual = mustTranslate(t, f, code.LocalGet(0), code.I32Const(-1), code.I32DivU())
	assert.Equal(t, instrs(
		bytecode.BinaryImm(bytecode.OpI32DivUImm, 1, 0), const32(0xffffffff),
		bytecode.ReturnReg(1),
	), actual)

	actual = mustTranslate(t, f, code.LocalGet(0), code.I32Const(-1), code.I32DivS())
	assert.Equal(t, instrs(
		bytecode.BinaryImm16(bytecode.OpI32DivSImm16, 1, 0, imm16(-1)),
		bytecode.ReturnReg(1),
	), actual)
}

func TestOperandOrder(t *testing.T) {
	f := testFunc{sig: sig(params(i32), i32)}

	cases := []struct {
		name     string
		body     []code.Instruction
		expected []bytecode.Instruction
	}{
		{
			name:     "commutative",
			body:     []code.Instruction{code.I32Const(5), code.LocalGet(0), code.I32Add()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32AddImm16, 1, 0, 5)),
		},
		{
			name:     "reversed",
			body:     []code.Instruction{code.I32Const(5), code.LocalGet(0), code.I32Sub()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32SubImm16Rev, 1, 0, 5)),
		},
		{
			name:     "reversed 32-bit",
			body:     []code.Instruction{code.I32Const(100000), code.LocalGet(0), code.I32DivS()},
			expected: instrs(bytecode.BinaryImm(bytecode.OpI32DivSImmRev, 1, 0), const32(100000)),
		},
		{
			name:     "mirrored",
			body:     []code.Instruction{code.I32Const(5), code.LocalGet(0), code.I32LtS()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32GtSImm16, 1, 0, 5)),
		},
		{
			name:     "mirrored le",
			body:     []code.Instruction{code.I32Const(5), code.LocalGet(0), code.I32GeU()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32LeUImm16, 1, 0, 5)),
		},
		{
			name:     "shift",
			body:     []code.Instruction{code.LocalGet(0), code.I32Const(35), code.I32Shl()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32ShlImm, 1, 0, 3)),
		},
		{
			name:     "reversed shift",
			body:     []code.Instruction{code.I32Const(5), code.LocalGet(0), code.I32Shl()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32ShlImm16Rev, 1, 0, 5)),
		},
		{
			name:     "reversed 32-bit shift",
			body:     []code.Instruction{code.I32Const(0x12345), code.LocalGet(0), code.I32Rotl()},
			expected: instrs(bytecode.BinaryImm(bytecode.OpI32RotlImmRev, 1, 0), const32(0x12345)),
		},
		{
			name:     "eqz",
			body:     []code.Instruction{code.LocalGet(0), code.I32Eqz()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32EqImm16, 1, 0, 0)),
		},
		{
			name:     "registers",
			body:     []code.Instruction{code.LocalGet(0), code.I32Const(1), code.I32Add(), code.LocalGet(0), code.I32RemU()},
			expected: instrs(bytecode.BinaryImm16(bytecode.OpI32AddImm16, 1, 0, 1), bytecode.Binary(bytecode.OpI32RemU, 1, 1, 0)),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, f, c.body...)
			assert.Equal(t, append(c.expected, bytecode.ReturnReg(1)), actual)
		})
	}
}

func TestFloatOperandOrder(t *testing.T) {
	f := testFunc{sig: sig(params(f32), i32, f32, f32)}

	actual := mustTranslate(t, f,
		code.F32Const(2), code.LocalGet(0), code.F32Lt(),
		code.F32Const(2), code.LocalGet(0), code.F32Div(),
		code.LocalGet(0), code.F32Const(-1), code.F32Copysign(),
	)
	assert.Equal(t, instrs(
		bytecode.BinaryImm(bytecode.OpF32GtImm, 1, 0), const32(math.Float32bits(2)),
		bytecode.BinaryImm(bytecode.OpF32DivImmRev, 2, 0), const32(math.Float32bits(2)),
		bytecode.BinaryImm16(bytecode.OpF32CopysignImm, 3, 0, 1),
		bytecode.ReturnMany(3), bytecode.RegisterList(1, 2, 3),
	), actual)

	actual = mustTranslate(t, testFunc{sig: sig(params(f64), f64, f64)},
		code.F64Const(2), code.LocalGet(0), code.F64Copysign(),
		code.LocalGet(0), code.F64Const(3), code.F64Copysign(),
	)
	assert.Equal(t, instrs(
		bytecode.BinaryImm(bytecode.OpF64CopysignImmRev, 1, 0), bytecode.ConstRefParam(0),
		bytecode.BinaryImm16(bytecode.OpF64CopysignImm, 2, 0, 0),
		bytecode.ReturnMany(2), bytecode.RegisterList(1, 2, 0),
	), actual)
}

func TestConstantFolding(t *testing.T) {
	cases := []struct {
		name     string
		result   wasm.ValueType
		body     []code.Instruction
		expected bytecode.Instruction
	}{
		{"i32.add", i32, []code.Instruction{code.I32Const(math.MaxInt32), code.I32Const(1), code.I32Add()}, bytecode.ReturnImm32(0x80000000)},
		{"i32.shl", i32, []code.Instruction{code.I32Const(1), code.I32Const(33), code.I32Shl()}, bytecode.ReturnImm32(2)},
		{"i32.eqz", i32, []code.Instruction{code.I32Const(0), code.I32Eqz()}, bytecode.ReturnImm32(1)},
		{"i32.popcnt", i32, []code.Instruction{code.I32Const(-1), code.I32Popcnt()}, bytecode.ReturnImm32(32)},
		{"i64.sub", i64, []code.Instruction{code.I64Const(0), code.I64Const(1), code.I64Sub()}, bytecode.ReturnI64Imm32(0xffffffff)},
		{"i64.extend_i32_u", i64, []code.Instruction{code.I32Const(-1), code.I64ExtendI32U()}, bytecode.ReturnImm(0)},
		{"f32.add", f32, []code.Instruction{code.F32Const(1.5), code.F32Const(2), code.F32Add()}, bytecode.ReturnImm32(bytecode.Const32(math.Float32bits(3.5)))},
		{"i32.reinterpret_f32", i32, []code.Instruction{code.F32Const(1), code.I32ReinterpretF32()}, bytecode.ReturnImm32(0x3f800000)},
		{"i32.trunc_sat_f32_s", i32, []code.Instruction{code.F32Const(float32(math.Inf(1))), code.I32TruncSatF32S()}, bytecode.ReturnImm32(math.MaxInt32)},
		{"select", i32, []code.Instruction{code.I32Const(1), code.I32Const(2), code.I32Const(0), code.Select()}, bytecode.ReturnImm32(2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: sig(nil, c.result)}, c.body...)
			assert.Equal(t, instrs(c.expected), actual)
		})
	}
}

func TestFoldedTraps(t *testing.T) {
	cases := []struct {
		name string
		body []code.Instruction
		trap numeric.Trap
	}{
		{"i32.div_s", []code.Instruction{code.I32Const(1), code.I32Const(0), code.I32DivS()}, numeric.TrapIntegerDivideByZero},
		{"i32.div_s overflow", []code.Instruction{code.I32Const(math.MinInt32), code.I32Const(-1), code.I32DivS()}, numeric.TrapIntegerOverflow},
		{"i64.rem_u", []code.Instruction{code.I64Const(1), code.I64Const(0), code.I64RemU()}, numeric.TrapIntegerDivideByZero},
		{"i32.trunc_f32_s nan", []code.Instruction{code.F32Const(float32(math.NaN())), code.I32TruncF32S()}, numeric.TrapBadConversionToInteger},
		{"i64.trunc_f64_u", []code.Instruction{code.F64Const(-1), code.I64TruncF64U()}, numeric.TrapIntegerOverflow},
		{"register divided by zero", []code.Instruction{code.LocalGet(0), code.I32Const(0), code.I32RemS()}, numeric.TrapIntegerDivideByZero},
		{"i32.div_s -4 by zero", []code.Instruction{code.I32Const(-4), code.I32Const(0), code.I32DivS()}, numeric.TrapIntegerDivideByZero},
		{"i32.div_u -4 by zero", []code.Instruction{code.I32Const(-4), code.I32Const(0), code.I32DivU()}, numeric.TrapIntegerDivideByZero},
		{"i32.rem_s -4 by zero", []code.Instruction{code.I32Const(-4), code.I32Const(0), code.I32RemS()}, numeric.TrapIntegerDivideByZero},
		{"i32.rem_u -4 by zero", []code.Instruction{code.I32Const(-4), code.I32Const(0), code.I32RemU()}, numeric.TrapIntegerDivideByZero},
		{"i64.div_s -4 by zero", []code.Instruction{code.I64Const(-4), code.I64Const(0), code.I64DivS()}, numeric.TrapIntegerDivideByZero},
		{"i64.div_u -4 by zero", []code.Instruction{code.I64Const(-4), code.I64Const(0), code.I64DivU()}, numeric.TrapIntegerDivideByZero},
		{"i64.rem_s -4 by zero", []code.Instruction{code.I64Const(-4), code.I64Const(0), code.I64RemS()}, numeric.TrapIntegerDivideByZero},
		{"i64.rem_u -4 by zero", []code.Instruction{code.I64Const(-4), code.I64Const(0), code.I64RemU()}, numeric.TrapIntegerDivideByZero},
		{"register rem_u by zero", []code.Instruction{code.LocalGet(0), code.I32Const(0), code.I32RemU()}, numeric.TrapIntegerDivideByZero},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			// Everything after the trap is dead, so nothing else is emitted.
			actual := mustTranslate(t, testFunc{sig: sig(params(i32), i32)}, append(c.body, code.Drop(), code.I32Const(7))...)
			assert.Equal(t, instrs(bytecode.Trap(c.trap)), actual)
		})
	}
}

func TestIntegerIdentities(t *testing.T) {
	operand := bytecode.ReturnReg(0)
	cases := []struct {
		name     string
		body     []code.Instruction
		expected []bytecode.Instruction
	}{
		{"x + 0", []code.Instruction{code.LocalGet(0), code.I32Const(0), code.I32Add()}, instrs(operand)},
		{"0 + x", []code.Instruction{code.I32Const(0), code.LocalGet(0), code.I32Add()}, instrs(operand)},
		{"x - 0", []code.Instruction{code.LocalGet(0), code.I32Const(0), code.I32Sub()}, instrs(operand)},
		{"x - x", []code.Instruction{code.LocalGet(0), code.LocalGet(0), code.I32Sub()}, instrs(bytecode.ReturnImm32(0))},
		{"x * 0", []code.Instruction{code.LocalGet(0), code.I32Const(0), code.I32Mul()}, instrs(bytecode.ReturnImm32(0))},
		{"1 * x", []code.Instruction{code.I32Const(1), code.LocalGet(0), code.I32Mul()}, instrs(operand)},
		{"x / 1", []code.Instruction{code.LocalGet(0), code.I32Const(1), code.I32DivU()}, instrs(operand)},
		{"x % -1", []code.Instruction{code.LocalGet(0), code.I32Const(-1), code.I32RemS()}, instrs(bytecode.ReturnImm32(0))},
		{"x & x", []code.Instruction{code.LocalGet(0), code.LocalGet(0), code.I32And()}, instrs(operand)},
		{"x & -1", []code.Instruction{code.LocalGet(0), code.I32Const(-1), code.I32And()}, instrs(operand)},
		{"x & 0", []code.Instruction{code.LocalGet(0), code.I32Const(0), code.I32And()}, instrs(bytecode.ReturnImm32(0))},
		{"x | -1", []code.Instruction{code.LocalGet(0), code.I32Const(-1), code.I32Or()}, instrs(bytecode.ReturnImm32(0xffffffff))},
		{"x ^ x", []code.Instruction{code.LocalGet(0), code.LocalGet(0), code.I32Xor()}, instrs(bytecode.ReturnImm32(0))},
		{"x == x", []code.Instruction{code.LocalGet(0), code.LocalGet(0), code.I32Eq()}, instrs(bytecode.ReturnImm32(1))},
		{"x < MIN", []code.Instruction{code.LocalGet(0), code.I32Const(math.MinInt32), code.I32LtS()}, instrs(bytecode.ReturnImm32(0))},
		{"MAX < x", []code.Instruction{code.I32Const(math.MaxInt32), code.LocalGet(0), code.I32LtS()}, instrs(bytecode.ReturnImm32(0))},
		{"x <=u MAX", []code.Instruction{code.LocalGet(0), code.I32Const(-1), code.I32LeU()}, instrs(bytecode.ReturnImm32(1))},
		{"-1 >=u x", []code.Instruction{code.I32Const(-1), code.LocalGet(0), code.I32GeU()}, instrs(bytecode.ReturnImm32(1))},
		{"0 >=u x", []code.Instruction{code.I32Const(0), code.LocalGet(0), code.I32GeU()}, instrs(
			bytecode.BinaryImm16(bytecode.OpI32LeUImm16, 1, 0, 0), bytecode.ReturnReg(1),
		)},
		{"-1 >> x", []code.Instruction{code.I32Const(-1), code.LocalGet(0), code.I32ShrS()}, instrs(bytecode.ReturnImm32(0xffffffff))},
		{"x rotl 32", []code.Instruction{code.LocalGet(0), code.I32Const(32), code.I32Rotl()}, instrs(operand)},
		{"x / x", []code.Instruction{code.LocalGet(0), code.LocalGet(0), code.I32DivS()}, instrs(bytecode.Binary(bytecode.OpI32DivS, 1, 0, 0), bytecode.ReturnReg(1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: sig(params(i32), i32)}, c.body...)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestI64Identities(t *testing.T) {
	f := testFunc{sig: sig(params(i64), i64)}

	actual := mustTranslate(t, f, code.LocalGet(0), code.I64Const(-1), code.I64Or())
	assert.Equal(t, instrs(bytecode.ReturnI64Imm32(0xffffffff)), actual)

	actual = mustTranslate(t, f, code.LocalGet(0), code.I64Const(64), code.I64ShrU())
	assert.Equal(t, instrs(bytecode.ReturnReg(0)), actual)

	actual = mustTranslate(t, testFunc{sig: sig(params(i64), i32)}, code.LocalGet(0), code.I64Const(math.MaxInt64), code.I64GtS())
	assert.Equal(t, instrs(bytecode.ReturnImm32(0)), actual)
}

func TestFloatIdentities(t *testing.T) {
	operand := bytecode.ReturnReg(0)
	negZero := math.Copysign(0, -1)
	cases := []struct {
		name     string
		body     []code.Instruction
		expected []bytecode.Instruction
	}{
		{"x + -0", []code.Instruction{code.LocalGet(0), code.F64Const(negZero), code.F64Add()}, instrs(operand)},
		{"-0 + x", []code.Instruction{code.F64Const(negZero), code.LocalGet(0), code.F64Add()}, instrs(operand)},
		{"x - +0", []code.Instruction{code.LocalGet(0), code.F64Const(0), code.F64Sub()}, instrs(operand)},
		{"min(x, +inf)", []code.Instruction{code.LocalGet(0), code.F64Const(math.Inf(1)), code.F64Min()}, instrs(operand)},
		{"max(-inf, x)", []code.Instruction{code.F64Const(math.Inf(-1)), code.LocalGet(0), code.F64Max()}, instrs(operand)},
		{"copysign(x, x)", []code.Instruction{code.LocalGet(0), code.LocalGet(0), code.F64Copysign()}, instrs(operand)},

		// Rules that do not hold for every x.
		{"x + +0", []code.Instruction{code.LocalGet(0), code.F64Const(0), code.F64Add()}, instrs(
			bytecode.BinaryImm(bytecode.OpF64AddImm, 1, 0), bytecode.ConstRefParam(0), bytecode.ReturnReg(1),
		)},
		{"x - -0", []code.Instruction{code.LocalGet(0), code.F64Const(negZero), code.F64Sub()}, instrs(
			bytecode.BinaryImm(bytecode.OpF64SubImm, 1, 0), bytecode.ConstRefParam(0), bytecode.ReturnReg(1),
		)},
		{"x * 0", []code.Instruction{code.LocalGet(0), code.F64Const(0), code.F64Mul()}, instrs(
			bytecode.BinaryImm(bytecode.OpF64MulImm, 1, 0), bytecode.ConstRefParam(0), bytecode.ReturnReg(1),
		)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: sig(params(f64), f64)}, c.body...)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestFloatSelfComparisons(t *testing.T) {
	cases := []struct {
		name     string
		typ      wasm.ValueType
		op       code.Instruction
		expected []bytecode.Instruction
	}{
		{"f32 x < x", f32, code.F32Lt(), instrs(bytecode.ReturnImm32(0))},
		{"f32 x > x", f32, code.F32Gt(), instrs(bytecode.ReturnImm32(0))},
		{"f64 x < x", f64, code.F64Lt(), instrs(bytecode.ReturnImm32(0))},
		{"f64 x > x", f64, code.F64Gt(), instrs(bytecode.ReturnImm32(0))},

		// NaN makes these depend on x.
		{"f32 x <= x", f32, code.F32Le(), instrs(bytecode.Binary(bytecode.OpF32Le, 1, 0, 0), bytecode.ReturnReg(1))},
		{"f64 x >= x", f64, code.F64Ge(), instrs(bytecode.Binary(bytecode.OpF64Ge, 1, 0, 0), bytecode.ReturnReg(1))},
		{"f64 x == x", f64, code.F64Eq(), instrs(bytecode.Binary(bytecode.OpF64Eq, 1, 0, 0), bytecode.ReturnReg(1))},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: sig(params(c.typ), i32)}, code.LocalGet(0), code.LocalGet(0), c.op)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestNaNRules(t *testing.T) {
	const signaling = 0x7f800001

	// Arithmetic with a NaN constant yields the quieted NaN.
	for _, op := range []code.Instruction{code.F32Add(), code.F32Sub(), code.F32Mul(), code.F32Div(), code.F32Min(), code.F32Max()} {
		t.Run(op.OpString(), func(t *testing.T) {
			f := testFunc{sig: sig(params(f32), f32, f32)}
			actual := mustTranslate(t, f,
				code.LocalGet(0), code.F32ConstBits(signaling), op,
				code.F32ConstBits(signaling), code.LocalGet(0), op,
			)
			assert.Equal(t, instrs(
				bytecode.CopyImm32(1, 0x7fc00001),
				bytecode.CopyImm32(2, 0x7fc00001),
				bytecode.ReturnMany(2), bytecode.RegisterList(2, 1, 0),
			), actual)
		})
	}

	// Comparisons with a NaN constant are false, except for ne.
	cases := []struct {
		name     string
		body     []code.Instruction
		expected uint32
	}{
		{"x == NaN", []code.Instruction{code.LocalGet(0), code.F32ConstBits(signaling), code.F32Eq()}, 0},
		{"NaN != x", []code.Instruction{code.F32ConstBits(signaling), code.LocalGet(0), code.F32Ne()}, 1},
		{"x < NaN", []code.Instruction{code.LocalGet(0), code.F32ConstBits(signaling), code.F32Lt()}, 0},
		{"NaN >= x", []code.Instruction{code.F32ConstBits(signaling), code.LocalGet(0), code.F32Ge()}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: sig(params(f32), i32)}, c.body...)
			assert.Equal(t, instrs(bytecode.ReturnImm32(bytecode.Const32(c.expected))), actual)
		})
	}

	// x == x is false when x is NaN.
	actual := mustTranslate(t, testFunc{sig: sig(params(f32), i32)}, code.LocalGet(0), code.LocalGet(0), code.F32Eq())
	assert.Equal(t, instrs(bytecode.Binary(bytecode.OpF32Eq, 1, 0, 0), bytecode.ReturnReg(1)), actual)
}

func TestReinterpret(t *testing.T) {
	actual := mustTranslate(t, testFunc{sig: sig(params(f32), i32)}, code.LocalGet(0), code.I32ReinterpretF32())
	assert.Equal(t, instrs(bytecode.ReturnReg(0)), actual)

	actual = mustTranslate(t, testFunc{sig: sig(params(i64), f64)}, code.LocalGet(0), code.F64ReinterpretI64())
	assert.Equal(t, instrs(bytecode.ReturnReg(0)), actual)
}

func TestUnary(t *testing.T) {
	actual := mustTranslate(t, testFunc{sig: sig(params(f64), i64)},
		code.LocalGet(0), code.F64Sqrt(), code.I64TruncSatF64U(),
	)
	assert.Equal(t, instrs(
		bytecode.Unary(bytecode.OpF64Sqrt, 1, 0),
		bytecode.Unary(bytecode.OpI64TruncSatF64U, 1, 1),
		bytecode.ReturnReg(1),
	), actual)
}
