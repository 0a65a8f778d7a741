package code

import (
	"bytes"
	"io"
	"testing"

	"github.com/pgavlin/rwarp/wasm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	i32       = wasm.ValueTypeI32
	i64       = wasm.ValueTypeI64
	funcref   = wasm.ValueTypeFuncref
	externref = wasm.ValueTypeExternref
)

var allFeatures = Features{
	SignExtension:        true,
	SaturatingFloatToInt: true,
	BulkMemory:           true,
	ReferenceTypes:       true,
	TailCall:             true,
}

// newTestScope returns a scope for a function of type (i32) -> i32 in a module with one memory,
// a funcref and an externref table, a mutable i32 global and an immutable i64 global.
func newTestScope() *StaticScope {
	m := wasm.NewModule()
	m.Types.Entries = []wasm.FunctionSig{
		{Form: int8(wasm.TypeFunc), ParamTypes: []wasm.ValueType{i32}, ReturnTypes: []wasm.ValueType{i32}},
		{Form: int8(wasm.TypeFunc)},
	}
	m.Function.Types = []uint32{0, 1}
	m.Memory.Entries = []wasm.Memory{{Limits: wasm.ResizableLimits{Initial: 1}}}
	m.Table.Entries = []wasm.Table{
		{ElementType: funcref, Limits: wasm.ResizableLimits{Initial: 4}},
		{ElementType: externref},
	}
	m.Global.Globals = []wasm.GlobalEntry{
		{Type: wasm.GlobalVar{Type: i32, Mutable: true}},
		{Type: wasm.GlobalVar{Type: i64}},
	}
	m.Elements.Entries = make([]wasm.ElementSegment, 1)
	m.DataCount = &wasm.SectionDataCount{Count: 1}

	s := NewStaticScope(m)
	s.Locals = []wasm.ValueType{i32, i64}
	return s
}

func encodeBody(t *testing.T, body ...Instruction) []byte {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, body))
	return buf.Bytes()
}

func walkBody(features Features, body []byte) error {
	_, err := Walk(body, newTestScope(), []wasm.ValueType{i32}, features, nil)
	return err
}

func TestDecodeLabels(t *testing.T) {
	body := encodeBody(t,
		Block(BlockTypeI32), // 0
		LocalGet(0),         // 1
		If(BlockTypeI32),    // 2
		I32Const(1),         // 3
		Else(),              // 4
		I32Const(2),         // 5
		End(),               // 6
		Loop(),              // 7
		LocalGet(0),         // 8
		BrIf(0),             // 9
		End(),               // 10
		I32Const(0),         // 11
		I32Load(8, 2),       // 12
		I32Add(),            // 13
		End(),               // 14
		End(),               // 15
	)

	decoded, err := Decode(body, newTestScope(), []wasm.ValueType{i32}, DefaultFeatures())
	require.NoError(t, err)

	instrs := decoded.Instructions
	require.Len(t, instrs, 16)
	assert.Equal(t, 15, instrs[0].Continuation())
	assert.Equal(t, []int{7, 4}, instrs[2].Labels)
	assert.Equal(t, []int{7}, instrs[4].Labels)
	assert.Equal(t, []int{7}, instrs[7].Labels)
	assert.Equal(t, 0, instrs[2].StackHeight())
	assert.Equal(t, 1, instrs[7].StackHeight())

	assert.Equal(t, 16, decoded.Metrics.InstructionCount)
	assert.Equal(t, 3, decoded.Metrics.MaxNesting)
	assert.Equal(t, 2, decoded.Metrics.MaxStackDepth)
	assert.True(t, decoded.Metrics.HasLoops)

	// Stack heights recorded in block immediates must not leak into the encoding.
	assert.Equal(t, body, encodeBody(t, instrs...))
}

func TestDecodeProposalRoundTrip(t *testing.T) {
	body := encodeBody(t,
		I32Const(0), I32Const(0), I32Const(0), MemoryInit(0),
		DataDrop(0),
		I32Const(0), I32Const(0), I32Const(0), MemoryCopy(),
		I32Const(0), I32Const(0), I32Const(0), MemoryFill(),
		I32Const(0), I32Const(0), I32Const(0), TableInit(0, 0),
		ElemDrop(0),
		I32Const(0), I32Const(0), I32Const(0), TableCopy(0, 0),
		RefNull(funcref), I32Const(1), TableGrow(0), Drop(),
		TableSize(1), Drop(),
		I32Const(0), RefFunc(1), I32Const(1), TableFill(0),
		I32Const(0), TableGet(0), RefIsNull(), Drop(),
		I32Const(0), RefNull(externref), TableSet(1),
		F32Const(1.5), I32TruncSatF32S(), Drop(),
		I32Const(0), CallIndirect(1, 0),
		I32Const(1), I32Const(2), LocalGet(0), SelectT(i32),
		End(),
	)

	decoded, err := Decode(body, newTestScope(), []wasm.ValueType{i32}, allFeatures)
	require.NoError(t, err)
	assert.Equal(t, body, encodeBody(t, decoded.Instructions...))

	assert.Equal(t, uint32(OpTableInit), decoded.Instructions[16].Subop)
	assert.Equal(t, uint32(0), decoded.Instructions[16].Elemidx())
	assert.Equal(t, externref, decoded.Instructions[37].ValueType())
}

func TestWalkVisitsEveryInstruction(t *testing.T) {
	body := encodeBody(t, LocalGet(0), I32Const(3), I32Mul(), End())

	var ops []byte
	metrics, err := Walk(body, newTestScope(), []wasm.ValueType{i32}, DefaultFeatures(), func(i *Instruction) error {
		ops = append(ops, i.Opcode)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []byte{OpLocalGet, OpI32Const, OpI32Mul, OpEnd}, ops)
	assert.Equal(t, 4, metrics.InstructionCount)
	assert.Equal(t, 2, metrics.MaxStackDepth)
}

func TestWalkStopsOnVisitorError(t *testing.T) {
	body := encodeBody(t, LocalGet(0), End())

	stop := io.ErrClosedPipe
	_, err := Walk(body, newTestScope(), []wasm.ValueType{i32}, DefaultFeatures(), func(i *Instruction) error {
		return stop
	})
	assert.ErrorIs(t, err, stop)
}

func TestWalkValidation(t *testing.T) {
	cases := []struct {
		name string
		body []Instruction
	}{
		{"type mismatch", []Instruction{I32Const(1), I64Const(2), I32Add(), End()}},
		{"stack underflow", []Instruction{I32Add(), End()}},
		{"missing result", []Instruction{End()}},
		{"unknown local", []Instruction{LocalGet(5), End()}},
		{"unknown global", []Instruction{GlobalGet(9), End()}},
		{"immutable global", []Instruction{I64Const(1), GlobalSet(1), I32Const(0), End()}},
		{"unknown function", []Instruction{Call(9), I32Const(0), End()}},
		{"alignment", []Instruction{I32Const(0), I32Load(0, 3), End()}},
		{"select mismatch", []Instruction{I32Const(1), I64Const(1), I32Const(0), Select(), Drop(), I32Const(0), End()}},
		{"unknown label", []Instruction{Br(3), End()}},
		{"if without else", []Instruction{LocalGet(0), If(BlockTypeI32), I32Const(1), End(), End()}},
		{"unbalanced block", []Instruction{Block(), I32Const(1), End(), I32Const(0), End()}},
		{"indirect call through externref", []Instruction{I32Const(0), CallIndirect(1, 1), I32Const(0), End()}},
		{"tail call result mismatch", []Instruction{ReturnCall(1), End()}},
		{"unknown data segment", []Instruction{DataDrop(3), I32Const(0), End()}},
		{"table.copy element type", []Instruction{I32Const(0), I32Const(0), I32Const(0), TableCopy(0, 1), I32Const(0), End()}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := walkBody(allFeatures, encodeBody(t, c.body...))
			var verr wasm.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestWalkTrailingBytes(t *testing.T) {
	body := append(encodeBody(t, I32Const(0), End()), OpNop)

	var verr wasm.ValidationError
	assert.ErrorAs(t, walkBody(DefaultFeatures(), body), &verr)
}

func TestWalkFeatureGating(t *testing.T) {
	cases := []struct {
		proposal string
		body     []Instruction
	}{
		{"sign-extension", []Instruction{LocalGet(0), I32Extend8S(), End()}},
		{"saturating-float-to-int", []Instruction{F32Const(1), I32TruncSatF32U(), End()}},
		{"tail-call", []Instruction{LocalGet(0), ReturnCall(0), End()}},
		{"bulk-memory", []Instruction{I32Const(0), I32Const(0), I32Const(0), MemoryFill(), I32Const(0), End()}},
		{"reference-types", []Instruction{RefNull(funcref), RefIsNull(), End()}},
	}
	for _, c := range cases {
		t.Run(c.proposal, func(t *testing.T) {
			body := encodeBody(t, c.body...)

			err := walkBody(Features{}, body)
			var verr wasm.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), c.proposal)

			assert.NoError(t, walkBody(allFeatures, body))
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte{0x06, OpEnd}, newTestScope(), nil, allFeatures)
	assert.ErrorIs(t, err, ErrInvalidInstruction)

	_, err = Decode([]byte{OpI32Const}, newTestScope(), nil, allFeatures)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = Decode([]byte{OpMemorySize, 0x01, OpDrop, OpEnd}, newTestScope(), nil, allFeatures)
	assert.ErrorIs(t, err, ErrInvalidInstruction)

	_, err = Decode([]byte{OpPrefix, 0x40, OpEnd}, newTestScope(), nil, allFeatures)
	assert.ErrorIs(t, err, ErrInvalidInstruction)

	// A br_table whose label count exceeds the remaining body is rejected before allocating.
	_, err = Decode([]byte{OpI32Const, 0x00, OpBrTable, 0xff, 0xff, 0xff, 0xff, 0x0f}, newTestScope(), nil, allFeatures)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "i32.add", (&Instruction{Opcode: OpI32Add}).OpString())
	assert.Equal(t, "memory.fill", (&Instruction{Opcode: OpPrefix, Subop: OpMemoryFill}).OpString())
	assert.Equal(t, "invalid", (&Instruction{Opcode: 0x06}).OpString())
}

func TestBlockTypes(t *testing.T) {
	for _, c := range []struct {
		t        wasm.ValueType
		expected uint64
	}{
		{i32, BlockTypeI32},
		{i64, BlockTypeI64},
		{wasm.ValueTypeF32, BlockTypeF32},
		{wasm.ValueTypeF64, BlockTypeF64},
	} {
		blockType, ok := ValueBlockType(c.t)
		require.True(t, ok)
		assert.Equal(t, c.expected, blockType)

		instr := Block(blockType)
		in, out, ok := instr.BlockType(newTestScope())
		require.True(t, ok)
		assert.Empty(t, in)
		assert.Equal(t, []wasm.ValueType{c.t}, out)
	}

	_, ok := ValueBlockType(funcref)
	assert.False(t, ok)

	scope := newTestScope()
	body, err := Decode(encodeBody(t, LocalGet(0), Block(BlockType(0)), End(), End()), scope, []wasm.ValueType{i32}, allFeatures)
	require.NoError(t, err)
	in, out, ok := body.Instructions[1].BlockType(scope)
	require.True(t, ok)
	assert.Equal(t, []wasm.ValueType{i32}, in)
	assert.Equal(t, []wasm.ValueType{i32}, out)

	unknown := Block(BlockType(9))
	_, _, ok = unknown.BlockType(scope)
	assert.False(t, ok)

	// 0x7b (v128) has no single-byte encoding here and decodes as a negative type index.
	_, err = Decode([]byte{OpBlock, 0x7b, OpEnd, OpEnd}, scope, nil, allFeatures)
	assert.ErrorIs(t, err, ErrInvalidInstruction)
}
