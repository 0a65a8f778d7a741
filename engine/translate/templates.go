package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm"
)

// binaryKind determines how a binary operator with a constant left-hand operand is encoded.
type binaryKind uint8

const (
	// commutative operators swap their operands.
	commutative binaryKind = iota
	// reversible operators have _rev forms that take the immediate as the left-hand operand.
	reversible
	// mirrored operators are comparisons that reverse their operands by switching to the
	// mirrored comparison, e.g. 5 < x becomes x > 5.
	mirrored
)

// Optimization hooks return true if they handled the operator, in which case they have pushed
// its result.
type (
	sameRegHook func(t *FuncTranslator, reg bytecode.Register) (bool, error)
	regImmHook  func(t *FuncTranslator, lhs bytecode.Register, rhs numeric.Value) (bool, error)
	immRegHook  func(t *FuncTranslator, lhs numeric.Value, rhs bytecode.Register) (bool, error)
)

// A binaryOp describes the translation of a binary operator. Which opcodes are used depends on
// the operator's kind and operand type: float operators have no 16-bit forms, and only
// reversible operators have _rev forms.
type binaryOp struct {
	kind     binaryKind
	eval     numeric.BinaryFunc
	unsigned bool // 16-bit immediates are zero-extended
	divides  bool // a zero right-hand constant traps
	nan      bool // a NaN constant operand determines the result

	op       bytecode.Opcode
	imm      bytecode.Opcode
	imm16    bytecode.Opcode
	immRev   bytecode.Opcode
	imm16Rev bytecode.Opcode
	mirror   *binaryOp

	sameReg sameRegHook
	regImm  regImmHook
	immReg  immRegHook
}

// translateBinary translates a binary operator.
//
// If both operands are constants, the operator is evaluated and its result pushed, or its trap
// emitted. If one operand is a constant, the operator's hooks are consulted before the constant
// is encoded as a 16-bit immediate, a 32-bit immediate or a constant pool reference, in order of
// preference. If both operands are registers, the same-register hook is consulted before the
// register form is emitted.
func (t *FuncTranslator) translateBinary(op *binaryOp) error {
	lhs, rhs := t.stack.pop2()
	if op.kind == commutative && lhs.IsConst() {
		lhs, rhs = rhs, lhs
	}

	switch {
	case lhs.IsConst() && rhs.IsConst():
		return t.fold(op.eval(lhs.Value(), rhs.Value()))
	case rhs.IsConst():
		if op.nan && rhs.Value().IsNaN() {
			t.stack.pushConst(numeric.Quiet(rhs.Value()))
			return nil
		}
		if op.divides && rhs.Value().IsZero() {
			t.trap(numeric.TrapIntegerDivideByZero)
			return nil
		}
		if op.regImm != nil {
			if handled, err := op.regImm(t, lhs.Register(), rhs.Value()); handled || err != nil {
				return err
			}
		}
		return t.emitRegImm(op, lhs.Register(), rhs.Value())
	case lhs.IsConst():
		if op.nan && lhs.Value().IsNaN() {
			t.stack.pushConst(numeric.Quiet(lhs.Value()))
			return nil
		}
		if op.immReg != nil {
			if handled, err := op.immReg(t, lhs.Value(), rhs.Register()); handled || err != nil {
				return err
			}
		}
		return t.emitImmReg(op, lhs.Value(), rhs.Register())
	default:
		if lhs.Register() == rhs.Register() && op.sameReg != nil {
			if handled, err := op.sameReg(t, lhs.Register()); handled || err != nil {
				return err
			}
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.Binary(op.op, result, lhs.Register(), rhs.Register())
		})
	}
}

// emitRegImm emits reg op imm. Float operators always take the 32-bit or pooled form.
func (t *FuncTranslator) emitRegImm(op *binaryOp, reg bytecode.Register, imm numeric.Value) error {
	if c, ok := const16(imm, op.unsigned); ok {
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.BinaryImm16(op.imm16, result, reg, c)
		})
	}
	param, err := t.enc.immParam(imm)
	if err != nil {
		return err
	}
	return t.emit(func(result bytecode.Register) bytecode.Instruction {
		return bytecode.BinaryImm(op.imm, result, reg)
	}, param)
}

// emitImmReg emits imm op reg for a reversible or mirrored operator.
func (t *FuncTranslator) emitImmReg(op *binaryOp, imm numeric.Value, reg bytecode.Register) error {
	if op.kind == mirrored {
		return t.emitRegImm(op.mirror, reg, imm)
	}

	if c, ok := const16(imm, op.unsigned); ok {
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.BinaryImm16(op.imm16Rev, result, reg, c)
		})
	}
	param, err := t.enc.immParam(imm)
	if err != nil {
		return err
	}
	return t.emit(func(result bytecode.Register) bytecode.Instruction {
		return bytecode.BinaryImm(op.immRev, result, reg)
	}, param)
}

// A shiftOp describes the translation of a shift or rotate. The shift amount of the immediate
// form is always masked to the operand width, so it fits in 16 bits.
type shiftOp struct {
	eval     numeric.BinaryFunc
	op       bytecode.Opcode
	imm      bytecode.Opcode
	immRev   bytecode.Opcode
	imm16Rev bytecode.Opcode
	immReg   immRegHook
}

func (t *FuncTranslator) translateShift(op *shiftOp) error {
	lhs, rhs := t.stack.pop2()
	switch {
	case lhs.IsConst() && rhs.IsConst():
		return t.fold(op.eval(lhs.Value(), rhs.Value()))
	case rhs.IsConst():
		amount := rhs.Value().U64()
		if rhs.Value().Type() == wasm.ValueTypeI64 {
			amount &= 63
		} else {
			amount &= 31
		}
		if amount == 0 {
			// Shifting or rotating by zero is the identity.
			t.stack.pushRegister(lhs.Register())
			return nil
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.BinaryImm16(op.imm, result, lhs.Register(), bytecode.Const16(amount))
		})
	case lhs.IsConst():
		if op.immReg != nil {
			if handled, err := op.immReg(t, lhs.Value(), rhs.Register()); handled || err != nil {
				return err
			}
		}
		if c, ok := const16(lhs.Value(), false); ok {
			return t.emit(func(result bytecode.Register) bytecode.Instruction {
				return bytecode.BinaryImm16(op.imm16Rev, result, rhs.Register(), c)
			})
		}
		param, err := t.enc.immParam(lhs.Value())
		if err != nil {
			return err
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.BinaryImm(op.immRev, result, rhs.Register())
		}, param)
	default:
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.Binary(op.op, result, lhs.Register(), rhs.Register())
		})
	}
}

// A copysignOp describes the translation of a copysign. Only the sign of the right-hand
// operand matters, so a constant right-hand operand is encoded as its sign bit.
type copysignOp struct {
	eval   numeric.BinaryFunc
	op     bytecode.Opcode
	imm    bytecode.Opcode
	immRev bytecode.Opcode
}

func (t *FuncTranslator) translateCopysign(op *copysignOp) error {
	lhs, rhs := t.stack.pop2()
	switch {
	case lhs.IsConst() && rhs.IsConst():
		return t.fold(op.eval(lhs.Value(), rhs.Value()))
	case rhs.IsConst():
		var sign bytecode.Const16
		if rhs.Value().SignBit() {
			sign = 1
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.BinaryImm16(op.imm, result, lhs.Register(), sign)
		})
	case lhs.IsConst():
		param, err := t.enc.immParam(lhs.Value())
		if err != nil {
			return err
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.BinaryImm(op.immRev, result, rhs.Register())
		}, param)
	default:
		if lhs.Register() == rhs.Register() {
			// copysign(x, x) is x.
			t.stack.pushRegister(lhs.Register())
			return nil
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.Binary(op.op, result, lhs.Register(), rhs.Register())
		})
	}
}

// A unaryOp describes the translation of a unary operator or conversion.
type unaryOp struct {
	eval numeric.UnaryFunc
	op   bytecode.Opcode
}

func (t *FuncTranslator) translateUnary(op *unaryOp) error {
	input := t.stack.pop()
	if input.IsConst() {
		return t.fold(op.eval(input.Value()))
	}
	return t.emit(func(result bytecode.Register) bytecode.Instruction {
		return bytecode.Unary(op.op, result, input.Register())
	})
}

// translateReinterpret translates a reinterpretation. Registers are untyped, so a register
// operand is passed through unchanged.
func (t *FuncTranslator) translateReinterpret(eval numeric.UnaryFunc) error {
	input := t.stack.pop()
	if input.IsConst() {
		return t.fold(eval(input.Value()))
	}
	t.stack.pushRegister(input.Register())
	return nil
}

// translateEqz translates eqz as a comparison with zero.
func (t *FuncTranslator) translateEqz(eq *binaryOp, zero numeric.Value) error {
	t.stack.pushConst(zero)
	return t.translateBinary(eq)
}
