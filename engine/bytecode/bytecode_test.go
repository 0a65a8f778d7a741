package bytecode

import (
	"math"
	"strings"
	"testing"

	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConst16(t *testing.T) {
	c, ok := Const16FromI32(-32768)
	require.True(t, ok)
	assert.Equal(t, int32(-32768), c.I32())

	_, ok = Const16FromI32(32768)
	assert.False(t, ok)

	c, ok = Const16FromU32(65535)
	require.True(t, ok)
	assert.Equal(t, uint32(65535), c.U32())
	assert.Equal(t, int32(-1), c.I32())

	_, ok = Const16FromU32(65536)
	assert.False(t, ok)

	c, ok = Const16FromI64(-1)
	require.True(t, ok)
	assert.Equal(t, int64(-1), c.I64())

	_, ok = Const16FromI64(math.MinInt16 - 1)
	assert.False(t, ok)

	c, ok = Const16FromU64(40000)
	require.True(t, ok)
	assert.Equal(t, uint64(40000), c.U64())

	_, ok = Const16FromU64(math.MaxUint64)
	assert.False(t, ok)
}

func TestConst32(t *testing.T) {
	c, ok := Const32FromI64(math.MinInt32)
	require.True(t, ok)
	assert.Equal(t, int64(math.MinInt32), c.I64())
	assert.Equal(t, "0x80000000", c.String())

	_, ok = Const32FromI64(math.MaxInt32 + 1)
	assert.False(t, ok)

	instr := Const32Param(0x12345678)
	assert.Equal(t, Const32(0x12345678), instr.Const32())

	ref := ConstRefParam(0x10002)
	assert.Equal(t, ConstRef(0x10002), ref.ConstRef())
}

func TestOpcodeNames(t *testing.T) {
	assert.Equal(t, "i32.sub_imm16_rev", OpI32SubImm16Rev.String())
	assert.Equal(t, "i64.rotl_imm", OpI64RotlImm.String())
	assert.Equal(t, "f32.copysign_imm_rev", OpF32CopysignImmRev.String())
	assert.Equal(t, "global.set_i64_imm32", OpGlobalSetI64Imm32.String())
	assert.Equal(t, "i64.trunc_sat_f64_u", OpI64TruncSatF64U.String())
	assert.Equal(t, "unknown", Opcode(numOpcodes).String())

	for op := Opcode(0); op < numOpcodes; op++ {
		assert.NotEmpty(t, op.String(), "opcode %d", op)
	}
}

func TestOpcodeForms(t *testing.T) {
	assert.Equal(t, FormParam, OpConst32.Form())
	assert.Equal(t, FormControl, OpReturnNezMany.Form())
	assert.Equal(t, FormRegister, OpI32Add.Form())
	assert.Equal(t, FormImm, OpI32AddImm.Form())
	assert.Equal(t, FormImm16, OpI32AddImm16.Form())
	assert.Equal(t, FormMemory, OpI64Store32At.Form())
	assert.Equal(t, "imm16", FormImm16.String())
}

func TestMemoryForms(t *testing.T) {
	assert.Equal(t, OpI32Load8UOffset16, LoadOffset16(OpI32Load8U, 1, 0, 4).Op)
	assert.Equal(t, OpI64Load32SAt, LoadAt(OpI64Load32S, 1, 0x10000).Op)
	assert.Equal(t, OpF64StoreOffset16, StoreOffset16(OpF64Store, 0, 1, 8).Op)
	assert.Equal(t, OpI64Store16At, StoreAt(OpI64Store16, 1, 12).Op)
	assert.Equal(t, uint32(0x10000), LoadAt(OpI64Load32S, 1, 0x10000).Index())
}

func TestResult(t *testing.T) {
	instr := Binary(OpI32Add, 3, 1, 2)
	r, ok := instr.Result()
	require.True(t, ok)
	assert.Equal(t, Register(3), r)

	require.True(t, instr.SetResult(0))
	assert.Equal(t, Binary(OpI32Add, 0, 1, 2), instr)

	store := Store(OpI32Store, 1, 2)
	_, ok = store.Result()
	assert.False(t, ok)
	assert.False(t, store.SetResult(5))

	ret := ReturnReg(1)
	assert.False(t, ret.SetResult(5))
}

func TestNumParams(t *testing.T) {
	assert.Equal(t, 0, Binary(OpI32Add, 0, 1, 2).NumParams())
	assert.Equal(t, 1, BinaryImm(OpI32AddImm, 0, 1).NumParams())
	assert.Equal(t, 1, BinaryImm(OpI32SubImmRev, 0, 1).NumParams())
	assert.Equal(t, 0, BinaryImm16(OpI32AddImm16, 0, 1, 5).NumParams())
	assert.Equal(t, 1, Select(0, 1, 2).NumParams())
	assert.Equal(t, 1, Load(OpI32Load, 0, 1).NumParams())
	assert.Equal(t, 0, LoadOffset16(OpI32Load, 0, 1, 2).NumParams())
	assert.Equal(t, 0, ReturnNez(1).NumParams())
	assert.Equal(t, 1, ReturnNezImm(1).NumParams())
	assert.Equal(t, 0, ReturnMany(0).NumParams())
	assert.Equal(t, 1, ReturnMany(3).NumParams())
	assert.Equal(t, 2, ReturnMany(4).NumParams())
	assert.Equal(t, 3, ReturnNezMany(0, 7).NumParams())
}

func TestRegisterLists(t *testing.T) {
	lists := RegisterLists([]Register{1, 2, 3, 4})
	assert.Equal(t, []Instruction{RegisterList(1, 2, 3), RegisterList(4, 0, 0)}, lists)
	assert.Len(t, RegisterLists(nil), 0)
}

func TestTrap(t *testing.T) {
	instr := Trap(numeric.TrapIntegerDivideByZero)
	assert.Equal(t, numeric.TrapIntegerDivideByZero, instr.Trap())
}

func TestFprint(t *testing.T) {
	imm, _ := Const16FromI32(-5)
	seven, _ := Const32FromI64(7)
	fn := &Function{
		Name:         "f0",
		NumParams:    1,
		NumLocals:    1,
		NumRegisters: 3,
		NumResults:   2,
		Instructions: []Instruction{
			BinaryImm16(OpI32AddImm16, 1, 0, imm),
			BinaryImm(OpI64SubImmRev, 2, 1),
			Const32Param(seven),
			Load(OpI32Load, 1, 2),
			Const32Param(100),
			BinaryImm(OpF64AddImm, 2, 2),
			ConstRefParam(0),
			BinaryImm16(OpI32LtUImm16, 1, 1, Const16(-1)),
			Trap(numeric.TrapUnreachable),
			ReturnMany(2),
			RegisterList(1, 2, 0),
		},
	}

	var sb strings.Builder
	require.NoError(t, Fprint(&sb, fn, []uint64{0x3ff0000000000000}))

	expected := `func f0 (params 1, locals 1, registers 3, results 2)
    0	r1 = i32.add_imm16 r0, -5
    1	r2 = i64.sub_imm_rev 7, r1
    3	r1 = i32.load *(r2 + 100)
    5	r2 = f64.add_imm r2, c0(0x3ff0000000000000)
    7	r1 = i32.lt_u_imm16 r1, 65535
    8	trap "unreachable"
    9	return_many r1, r2
`
	assert.Equal(t, expected, sb.String())
}

func TestFprintTruncated(t *testing.T) {
	fn := &Function{Name: "f1", Instructions: []Instruction{BinaryImm(OpI32AddImm, 0, 0)}}

	var sb strings.Builder
	require.NoError(t, Fprint(&sb, fn, nil))
	assert.Contains(t, sb.String(), "<truncated i32.add_imm>")
}

func TestFormCounts(t *testing.T) {
	fn := &Function{Instructions: []Instruction{
		Binary(OpI32Add, 0, 1, 2),
		BinaryImm(OpI32AddImm, 0, 1),
		Const32Param(1),
		ReturnReg(0),
	}}
	assert.Equal(t, map[Form]int{FormRegister: 1, FormImm: 1, FormParam: 1, FormControl: 1}, fn.FormCounts())
}
