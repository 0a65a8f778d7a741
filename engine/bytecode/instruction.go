// Package bytecode defines the register machine instruction set produced by the translator.
//
// A function's frame is a file of 64-bit registers. Registers 0 through NumLocals-1 hold the
// function's parameters followed by its declared locals. Registers from NumLocals up hold
// temporaries. Every instruction is four 16-bit words: an opcode and three operand fields whose
// meaning is determined by the opcode. Operands that do not fit in the three fields are carried
// by parameter instructions that immediately follow the instruction that uses them.
package bytecode

import (
	"math"

	"github.com/pgavlin/rwarp/engine/numeric"
)

// A Register is an index into a function's register file.
type Register int16

// MaxRegisters is the size of the largest register file an instruction can address.
const MaxRegisters = math.MaxInt16 + 1

// A Const16 is an immediate that fits in a single operand field. Whether it is sign- or
// zero-extended to the operator's width depends on the opcode.
type Const16 int16

// Const16FromI32 returns the 16-bit sign-extended form of v, if one exists.
func Const16FromI32(v int32) (Const16, bool) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, false
	}
	return Const16(v), true
}

// Const16FromU32 returns the 16-bit zero-extended form of v, if one exists.
func Const16FromU32(v uint32) (Const16, bool) {
	if v > math.MaxUint16 {
		return 0, false
	}
	return Const16(uint16(v)), true
}

// Const16FromI64 returns the 16-bit sign-extended form of v, if one exists.
func Const16FromI64(v int64) (Const16, bool) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, false
	}
	return Const16(v), true
}

// Const16FromU64 returns the 16-bit zero-extended form of v, if one exists.
func Const16FromU64(v uint64) (Const16, bool) {
	if v > math.MaxUint16 {
		return 0, false
	}
	return Const16(uint16(v)), true
}

func (c Const16) I32() int32 { return int32(c) }
func (c Const16) U32() uint32 { return uint32(uint16(c)) }
func (c Const16) I64() int64 { return int64(c) }
func (c Const16) U64() uint64 { return uint64(uint16(c)) }

// A Const32 is a 32-bit immediate carried by a const32 parameter instruction. i64 operators
// sign-extend it.
type Const32 uint32

// Const32FromI64 returns the 32-bit sign-extended form of v, if one exists.
func Const32FromI64(v int64) (Const32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return Const32(uint32(int32(v))), true
}

func (c Const32) I32() int32 { return int32(c) }
func (c Const32) I64() int64 { return int64(int32(c)) }
func (c Const32) F32() float32 { return math.Float32frombits(uint32(c)) }
func (c Const32) Bits() uint32 { return uint32(c) }
func (c Const32) String() string { return formatHex32(uint32(c)) }

// A ConstRef is the index of a 64-bit value in a module's constant pool.
type ConstRef uint32

// An Opcode identifies a bytecode operation.
type Opcode uint16

// A Form classifies opcodes by the shape of their operands.
type Form uint8

const (
	FormControl  Form = iota // traps and returns
	FormParam                // parameter instructions
	FormCopy                 // copies, selects and globals
	FormMemory               // loads, stores and memory management
	FormRegister             // operators whose operands are all registers
	FormImm                  // operators with a 32-bit or pooled immediate
	FormImm16                // operators with a 16-bit immediate
)

var formNames = [...]string{
	FormControl:  "control",
	FormParam:    "param",
	FormCopy:     "copy",
	FormMemory:   "memory",
	FormRegister: "register",
	FormImm:      "imm",
	FormImm16:    "imm16",
}

func (f Form) String() string {
	if int(f) < len(formNames) {
		return formNames[f]
	}
	return "unknown"
}

// layout describes how an opcode uses its operand fields.
type layout uint8

const (
	layoutNone layout = iota
	layoutConst32
	layoutConstRef
	layoutRegister
	layoutRegisterList
	layoutTrap
	layoutReturnReg
	layoutReturnImm32
	layoutReturnRef
	layoutReturnMany
	layoutReturnNez
	layoutReturnNezReg
	layoutReturnNezImm
	layoutReturnNezMany
	layoutCopy
	layoutCopyImm32
	layoutCopyRef
	layoutSelect
	layoutGlobalGet
	layoutGlobalSet
	layoutGlobalSetImm
	layoutLoad
	layoutLoadOffset16
	layoutLoadAt
	layoutStore
	layoutStoreOffset16
	layoutStoreAt
	layoutResult
	layoutMemoryGrowBy
	layoutUnary
	layoutBinary
	layoutBinaryImm
	layoutBinaryImmRev
	layoutBinaryImm16
	layoutBinaryImm16U
	layoutBinaryImm16Rev
	layoutBinaryImm16RevU
	layoutCopysignImm
)

// hasResult returns true if the layout writes field A.
func (l layout) hasResult() bool {
	switch l {
	case layoutCopy, layoutCopyImm32, layoutCopyRef, layoutSelect, layoutGlobalGet,
		layoutLoad, layoutLoadOffset16, layoutLoadAt, layoutResult, layoutMemoryGrowBy,
		layoutUnary, layoutBinary, layoutBinaryImm, layoutBinaryImmRev, layoutBinaryImm16,
		layoutBinaryImm16U, layoutBinaryImm16Rev, layoutBinaryImm16RevU, layoutCopysignImm:
		return true
	}
	return false
}

// hasParam returns true if the layout is followed by exactly one parameter instruction.
func (l layout) hasParam() bool {
	switch l {
	case layoutReturnNezImm, layoutSelect, layoutGlobalSetImm, layoutLoad, layoutStore,
		layoutMemoryGrowBy, layoutBinaryImm, layoutBinaryImmRev:
		return true
	}
	return false
}

type opcodeInfo struct {
	name   string
	form   Form
	layout layout
}

func (op Opcode) info() opcodeInfo {
	if op < numOpcodes {
		return opcodeInfos[op]
	}
	return opcodeInfo{name: "unknown"}
}

func (op Opcode) String() string { return op.info().name }
func (op Opcode) Form() Form { return op.info().form }

// An Instruction is a single bytecode instruction.
type Instruction struct {
	Op      Opcode
	A, B, C uint16
}

func split32(v uint32) (uint16, uint16) {
	return uint16(v >> 16), uint16(v)
}

func (i Instruction) lo32() uint32 {
	return uint32(i.B)<<16 | uint32(i.C)
}

// Result returns the register written by the instruction, if any.
func (i Instruction) Result() (Register, bool) {
	if !i.Op.info().layout.hasResult() {
		return 0, false
	}
	return Register(i.A), true
}

// SetResult retargets the instruction's result register. It returns false if the instruction
// does not produce a result.
func (i *Instruction) SetResult(r Register) bool {
	if !i.Op.info().layout.hasResult() {
		return false
	}
	i.A = uint16(r)
	return true
}

// NumParams returns the number of parameter instructions that follow the instruction.
func (i Instruction) NumParams() int {
	switch l := i.Op.info().layout; {
	case l == layoutReturnMany:
		return (int(i.A) + 2) / 3
	case l == layoutReturnNezMany:
		return (int(i.B) + 2) / 3
	case l.hasParam():
		return 1
	}
	return 0
}

func (i Instruction) Imm16() Const16 { return Const16(i.C) }
func (i Instruction) Const32() Const32 { return Const32(i.lo32()) }
func (i Instruction) ConstRef() ConstRef { return ConstRef(i.lo32()) }
func (i Instruction) Index() uint32 { return i.lo32() }
func (i Instruction) Trap() numeric.Trap { return numeric.Trap(i.A) }

func Binary(op Opcode, result, lhs, rhs Register) Instruction {
	return Instruction{Op: op, A: uint16(result), B: uint16(lhs), C: uint16(rhs)}
}

// BinaryImm16 builds an operator with a register operand and a 16-bit immediate. For reversed
// forms the immediate is the left-hand operand.
func BinaryImm16(op Opcode, result, reg Register, imm Const16) Instruction {
	return Instruction{Op: op, A: uint16(result), B: uint16(reg), C: uint16(imm)}
}

// BinaryImm builds an operator whose immediate is carried by the following const32 or
// const_ref parameter.
func BinaryImm(op Opcode, result, reg Register) Instruction {
	return Instruction{Op: op, A: uint16(result), B: uint16(reg)}
}

func Unary(op Opcode, result, input Register) Instruction {
	return Instruction{Op: op, A: uint16(result), B: uint16(input)}
}

func Const32Param(c Const32) Instruction {
	b, c16 := split32(uint32(c))
	return Instruction{Op: OpConst32, B: b, C: c16}
}

func ConstRefParam(ref ConstRef) Instruction {
	b, c := split32(uint32(ref))
	return Instruction{Op: OpConstRef, B: b, C: c}
}

func RegisterParam(r Register) Instruction {
	return Instruction{Op: OpRegister, A: uint16(r)}
}

func RegisterList(a, b, c Register) Instruction {
	return Instruction{Op: OpRegisterList, A: uint16(a), B: uint16(b), C: uint16(c)}
}

// RegisterLists packs regs into register_list parameters, three per instruction.
func RegisterLists(regs []Register) []Instruction {
	params := make([]Instruction, 0, (len(regs)+2)/3)
	for i := 0; i < len(regs); i += 3 {
		var list [3]Register
		copy(list[:], regs[i:])
		params = append(params, RegisterList(list[0], list[1], list[2]))
	}
	return params
}

func Trap(t numeric.Trap) Instruction {
	return Instruction{Op: OpTrap, A: uint16(t)}
}

func Return() Instruction {
	return Instruction{Op: OpReturn}
}

func ReturnReg(value Register) Instruction {
	return Instruction{Op: OpReturnReg, A: uint16(value)}
}

func ReturnImm32(c Const32) Instruction {
	b, c16 := split32(uint32(c))
	return Instruction{Op: OpReturnImm32, B: b, C: c16}
}

func ReturnI64Imm32(c Const32) Instruction {
	b, c16 := split32(uint32(c))
	return Instruction{Op: OpReturnI64Imm32, B: b, C: c16}
}

func ReturnImm(ref ConstRef) Instruction {
	b, c := split32(uint32(ref))
	return Instruction{Op: OpReturnImm, B: b, C: c}
}

// ReturnMany returns n registers listed by the following register_list parameters.
func ReturnMany(n int) Instruction {
	return Instruction{Op: OpReturnMany, A: uint16(n)}
}

func ReturnNez(cond Register) Instruction {
	return Instruction{Op: OpReturnNez, A: uint16(cond)}
}

func ReturnNezReg(cond, value Register) Instruction {
	return Instruction{Op: OpReturnNezReg, A: uint16(cond), B: uint16(value)}
}

func ReturnNezImm32(cond Register) Instruction {
	return Instruction{Op: OpReturnNezImm32, A: uint16(cond)}
}

func ReturnNezI64Imm32(cond Register) Instruction {
	return Instruction{Op: OpReturnNezI64Imm32, A: uint16(cond)}
}

func ReturnNezImm(cond Register) Instruction {
	return Instruction{Op: OpReturnNezImm, A: uint16(cond)}
}

func ReturnNezMany(cond Register, n int) Instruction {
	return Instruction{Op: OpReturnNezMany, A: uint16(cond), B: uint16(n)}
}

func Copy(result, value Register) Instruction {
	return Instruction{Op: OpCopy, A: uint16(result), B: uint16(value)}
}

func CopyImm32(result Register, c Const32) Instruction {
	b, c16 := split32(uint32(c))
	return Instruction{Op: OpCopyImm32, A: uint16(result), B: b, C: c16}
}

func CopyI64Imm32(result Register, c Const32) Instruction {
	b, c16 := split32(uint32(c))
	return Instruction{Op: OpCopyI64Imm32, A: uint16(result), B: b, C: c16}
}

func CopyImm(result Register, ref ConstRef) Instruction {
	b, c := split32(uint32(ref))
	return Instruction{Op: OpCopyImm, A: uint16(result), B: b, C: c}
}

// Select builds a select. The false operand follows in a register parameter.
func Select(result, cond, ifTrue Register) Instruction {
	return Instruction{Op: OpSelect, A: uint16(result), B: uint16(cond), C: uint16(ifTrue)}
}

func GlobalGet(result Register, index uint32) Instruction {
	b, c := split32(index)
	return Instruction{Op: OpGlobalGet, A: uint16(result), B: b, C: c}
}

func GlobalSet(index uint32, value Register) Instruction {
	b, c := split32(index)
	return Instruction{Op: OpGlobalSet, A: uint16(value), B: b, C: c}
}

func GlobalSetImm32(index uint32) Instruction {
	b, c := split32(index)
	return Instruction{Op: OpGlobalSetImm32, B: b, C: c}
}

func GlobalSetI64Imm32(index uint32) Instruction {
	b, c := split32(index)
	return Instruction{Op: OpGlobalSetI64Imm32, B: b, C: c}
}

func GlobalSetImm(index uint32) Instruction {
	b, c := split32(index)
	return Instruction{Op: OpGlobalSetImm, B: b, C: c}
}

// Load builds a load whose offset follows in a const32 parameter.
func Load(op Opcode, result, ptr Register) Instruction {
	return Instruction{Op: op, A: uint16(result), B: uint16(ptr)}
}

func LoadOffset16(op Opcode, result, ptr Register, offset uint16) Instruction {
	return Instruction{Op: op + 1, A: uint16(result), B: uint16(ptr), C: offset}
}

func LoadAt(op Opcode, result Register, address uint32) Instruction {
	b, c := split32(address)
	return Instruction{Op: op + 2, A: uint16(result), B: b, C: c}
}

// Store builds a store whose offset follows in a const32 parameter.
func Store(op Opcode, ptr, value Register) Instruction {
	return Instruction{Op: op, A: uint16(ptr), B: uint16(value)}
}

func StoreOffset16(op Opcode, ptr, value Register, offset uint16) Instruction {
	return Instruction{Op: op + 1, A: uint16(ptr), B: uint16(value), C: offset}
}

func StoreAt(op Opcode, value Register, address uint32) Instruction {
	b, c := split32(address)
	return Instruction{Op: op + 2, A: uint16(value), B: b, C: c}
}

func MemorySize(result Register) Instruction {
	return Instruction{Op: OpMemorySize, A: uint16(result)}
}

func MemoryGrow(result, delta Register) Instruction {
	return Instruction{Op: OpMemoryGrow, A: uint16(result), B: uint16(delta)}
}

// MemoryGrowBy builds a memory.grow whose delta follows in a const32 parameter.
func MemoryGrowBy(result Register) Instruction {
	return Instruction{Op: OpMemoryGrowBy, A: uint16(result)}
}
