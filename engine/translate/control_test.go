package translate

import (
	"errors"
	"testing"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/constpool"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns(t *testing.T) {
	cases := []struct {
		name     string
		sig      wasm.FunctionSig
		body     []code.Instruction
		expected []bytecode.Instruction
	}{
		{
			name:     "none",
			sig:      sig(nil),
			expected: instrs(bytecode.Return()),
		},
		{
			name:     "i64 32-bit",
			sig:      sig(nil, i64),
			body:     []code.Instruction{code.I64Const(-5)},
			expected: instrs(bytecode.ReturnI64Imm32(0xfffffffb)),
		},
		{
			name:     "i64 pooled",
			sig:      sig(nil, i64),
			body:     []code.Instruction{code.I64Const(1 << 40)},
			expected: instrs(bytecode.ReturnImm(0)),
		},
		{
			name:     "f64",
			sig:      sig(nil, f64),
			body:     []code.Instruction{code.F64Const(0.5)},
			expected: instrs(bytecode.ReturnImm(0)),
		},
		{
			name: "many",
			sig:  sig(nil, i32, i32),
			body: []code.Instruction{code.I32Const(1), code.I32Const(2)},
			expected: instrs(
				bytecode.CopyImm32(0, 2),
				bytecode.CopyImm32(1, 1),
				bytecode.ReturnMany(2), bytecode.RegisterList(1, 0, 0),
			),
		},
		{
			name: "many registers",
			sig:  sig(params(i32, i64, f32, f64), f64, f32, i64, i32),
			body: []code.Instruction{code.LocalGet(3), code.LocalGet(2), code.LocalGet(1), code.LocalGet(0)},
			expected: instrs(
				bytecode.ReturnMany(4), bytecode.RegisterList(3, 2, 1), bytecode.RegisterList(0, 0, 0),
			),
		},
		{
			name:     "explicit",
			sig:      sig(params(i32), i32),
			body:     []code.Instruction{code.LocalGet(0), code.Return(), code.I32Const(1)},
			expected: instrs(bytecode.ReturnReg(0)),
		},
		{
			name:     "br",
			sig:      sig(params(i32), i32),
			body:     []code.Instruction{code.LocalGet(0), code.Br(0)},
			expected: instrs(bytecode.ReturnReg(0)),
		},
		{
			name:     "br_table",
			sig:      sig(params(i32)),
			body:     []code.Instruction{code.LocalGet(0), code.BrTable(0, 0, 0)},
			expected: instrs(bytecode.Return()),
		},
		{
			name: "br_table with value",
			sig:  sig(params(i32), i32),
			body: []code.Instruction{code.I32Const(9), code.LocalGet(0), code.BrTable(0)},
			expected: instrs(
				bytecode.ReturnImm32(9),
			),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: c.sig}, c.body...)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestBrIf(t *testing.T) {
	cases := []struct {
		name     string
		sig      wasm.FunctionSig
		body     []code.Instruction
		expected []bytecode.Instruction
	}{
		{
			name: "no results",
			sig:  sig(params(i32)),
			body: []code.Instruction{code.LocalGet(0), code.BrIf(0)},
			expected: instrs(
				bytecode.ReturnNez(0),
				bytecode.Return(),
			),
		},
		{
			name: "register",
			sig:  sig(params(i32, i32), i32),
			body: []code.Instruction{code.LocalGet(1), code.LocalGet(0), code.BrIf(0)},
			expected: instrs(
				bytecode.ReturnNezReg(0, 1),
				bytecode.ReturnReg(1),
			),
		},
		{
			name: "constant",
			sig:  sig(params(i32), i32),
			body: []code.Instruction{code.I32Const(7), code.LocalGet(0), code.BrIf(0)},
			expected: instrs(
				bytecode.ReturnNezImm32(0), const32(7),
				bytecode.ReturnImm32(7),
			),
		},
		{
			name: "i64 constant",
			sig:  sig(params(i32), i64),
			body: []code.Instruction{code.I64Const(-7), code.LocalGet(0), code.BrIf(0)},
			expected: instrs(
				bytecode.ReturnNezI64Imm32(0), const32(0xfffffff9),
				bytecode.ReturnI64Imm32(0xfffffff9),
			),
		},
		{
			name: "pooled constant",
			sig:  sig(params(i32), f64),
			body: []code.Instruction{code.F64Const(2), code.LocalGet(0), code.BrIf(0)},
			expected: instrs(
				bytecode.ReturnNezImm(0), bytecode.ConstRefParam(0),
				bytecode.ReturnImm(0),
			),
		},
		{
			name: "many",
			sig:  sig(params(i32), i32, i32),
			body: []code.Instruction{code.LocalGet(0), code.I32Const(3), code.LocalGet(0), code.BrIf(0)},
			expected: instrs(
				bytecode.CopyImm32(1, 3),
				bytecode.ReturnNezMany(0, 2), bytecode.RegisterList(0, 1, 0),
				bytecode.ReturnMany(2), bytecode.RegisterList(0, 1, 0),
			),
		},
		{
			name:     "never taken",
			sig:      sig(nil, i32),
			body:     []code.Instruction{code.I32Const(7), code.I32Const(0), code.BrIf(0)},
			expected: instrs(bytecode.ReturnImm32(7)),
		},
		{
			name:     "always taken",
			sig:      sig(params(i32), i32),
			body:     []code.Instruction{code.LocalGet(0), code.I32Const(1), code.BrIf(0), code.I32Const(2), code.I32Add()},
			expected: instrs(bytecode.ReturnReg(0)),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual := mustTranslate(t, testFunc{sig: c.sig}, c.body...)
			assert.Equal(t, c.expected, actual)
		})
	}
}

func TestDeadBlocks(t *testing.T) {
	actual := mustTranslate(t, testFunc{sig: sig(params(i32))},
		code.Unreachable(),
		code.Block(),
		code.Loop(),
		code.LocalGet(0),
		code.If(),
		code.Nop(),
		code.Else(),
		code.End(),
		code.End(),
		code.End(),
	)
	assert.Equal(t, instrs(bytecode.Trap(numeric.TrapUnreachable)), actual)
}

func TestUnsupportedBlockType(t *testing.T) {
	_, err := testFunc{sig: sig(nil)}.translate(code.Block(code.BlockTypeSpecial|0x7b))
	assert.True(t, errors.Is(err, ErrUnsupportedBlockType), "unexpected error %v", err)
}

func TestBranchTableTargets(t *testing.T) {
	labels := make([]int, 1<<16)
	_, err := testFunc{sig: sig(params(i32))}.translate(code.LocalGet(0), code.BrTable(0, labels...))
	require.True(t, errors.Is(err, ErrBranchTableTargetsOutOfBounds), "unexpected error %v", err)

	var terr *Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, uint32(1<<16+1), terr.Index)
}

func TestSharedPool(t *testing.T) {
	pool := constpool.New(0)
	for _, v := range []float64{0.25, 0.5, 0.25} {
		actual := mustTranslate(t, testFunc{sig: sig(nil, f64), pool: pool}, code.F64Const(v))
		require.Len(t, actual, 1)
		assert.Equal(t, bytecode.OpReturnImm, actual[0].Op)
	}
	assert.Equal(t, []uint64{numeric.F64(0.25).Bits(), numeric.F64(0.5).Bits()}, pool.Values())
}
