package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/constpool"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm"
)

// encoder appends instructions to a function body.
type encoder struct {
	instrs    []bytecode.Instruction
	last      int // index of the last instruction that is not a parameter, or -1
	constants *constpool.Pool
}

func newEncoder(constants *constpool.Pool) encoder {
	return encoder{last: -1, constants: constants}
}

// push appends an instruction followed by its parameters.
func (e *encoder) push(instr bytecode.Instruction, params ...bytecode.Instruction) {
	e.last = len(e.instrs)
	e.instrs = append(e.instrs, instr)
	e.instrs = append(e.instrs, params...)
}

// lastResult returns the result register of the most recently pushed instruction.
func (e *encoder) lastResult() (bytecode.Register, bool) {
	if e.last < 0 {
		return 0, false
	}
	return e.instrs[e.last].Result()
}

// retargetLast rewrites the result register of the most recently pushed instruction.
func (e *encoder) retargetLast(r bytecode.Register) bool {
	if e.last < 0 {
		return false
	}
	return e.instrs[e.last].SetResult(r)
}

// allocConst adds a value to the module's constant pool.
func (e *encoder) allocConst(v numeric.Value) (bytecode.ConstRef, error) {
	ref, err := e.constants.Alloc(v)
	if err != nil {
		return 0, constantError(err)
	}
	return ref, nil
}

// const16 attempts to encode an integer constant as a 16-bit immediate. Unsigned operators
// zero-extend their immediates and everything else sign-extends them.
func const16(v numeric.Value, unsigned bool) (bytecode.Const16, bool) {
	switch v.Type() {
	case wasm.ValueTypeI32:
		if unsigned {
			return bytecode.Const16FromU32(v.U32())
		}
		return bytecode.Const16FromI32(v.I32())
	case wasm.ValueTypeI64:
		if unsigned {
			return bytecode.Const16FromU64(v.U64())
		}
		return bytecode.Const16FromI64(v.I64())
	default:
		return 0, false
	}
}

// immParam encodes a constant as a parameter instruction: a 32-bit immediate if the value fits,
// otherwise a reference to the constant pool.
func (e *encoder) immParam(v numeric.Value) (bytecode.Instruction, error) {
	switch v.Type() {
	case wasm.ValueTypeI32, wasm.ValueTypeF32:
		return bytecode.Const32Param(bytecode.Const32(v.U32())), nil
	case wasm.ValueTypeI64:
		if c, ok := bytecode.Const32FromI64(v.I64()); ok {
			return bytecode.Const32Param(c), nil
		}
	}
	ref, err := e.allocConst(v)
	if err != nil {
		return bytecode.Instruction{}, err
	}
	return bytecode.ConstRefParam(ref), nil
}

// copyConst builds the instruction that materializes a constant into a register.
func (e *encoder) copyConst(result bytecode.Register, v numeric.Value) (bytecode.Instruction, error) {
	switch v.Type() {
	case wasm.ValueTypeI32, wasm.ValueTypeF32:
		return bytecode.CopyImm32(result, bytecode.Const32(v.U32())), nil
	case wasm.ValueTypeI64:
		if c, ok := bytecode.Const32FromI64(v.I64()); ok {
			return bytecode.CopyI64Imm32(result, c), nil
		}
	}
	ref, err := e.allocConst(v)
	if err != nil {
		return bytecode.Instruction{}, err
	}
	return bytecode.CopyImm(result, ref), nil
}

// returnConst builds the instruction that returns a single constant.
func (e *encoder) returnConst(v numeric.Value) (bytecode.Instruction, error) {
	switch v.Type() {
	case wasm.ValueTypeI32, wasm.ValueTypeF32:
		return bytecode.ReturnImm32(bytecode.Const32(v.U32())), nil
	case wasm.ValueTypeI64:
		if c, ok := bytecode.Const32FromI64(v.I64()); ok {
			return bytecode.ReturnI64Imm32(c), nil
		}
	}
	ref, err := e.allocConst(v)
	if err != nil {
		return bytecode.Instruction{}, err
	}
	return bytecode.ReturnImm(ref), nil
}
