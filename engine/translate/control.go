package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
)

// visitBlock handles block, loop and if. Blocks opened in unreachable code only need to be
// counted so that the matching end can be found.
func visitBlock(t *FuncTranslator, instr *code.Instruction) error {
	if t.reach == Unreachable {
		t.deadDepth++
		return nil
	}
	if _, _, ok := instr.BlockType(t.scope); !ok {
		if instr.Immediate&code.BlockTypeSpecial == 0 {
			return indexError(KindTypeIndexOutOfBounds, instr.Typeidx())
		}
		return ErrUnsupportedBlockType
	}
	return notImplemented(instr.OpString())
}

func visitElse(t *FuncTranslator, instr *code.Instruction) error {
	if t.reach == Unreachable && t.deadDepth > 0 {
		return nil
	}
	return notImplemented(instr.OpString())
}

func visitEnd(t *FuncTranslator, instr *code.Instruction) error {
	if t.reach == Unreachable && t.deadDepth > 0 {
		t.deadDepth--
		return nil
	}

	// This is the end of the function body.
	if t.reach == Reachable {
		if err := t.translateReturn(); err != nil {
			return err
		}
	}
	t.setUnreachable()
	t.done = true
	return nil
}

func visitUnreachable(t *FuncTranslator, instr *code.Instruction) error {
	t.trap(numeric.TrapUnreachable)
	return nil
}

func visitNop(t *FuncTranslator, instr *code.Instruction) error {
	return nil
}

func visitReturn(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.translateReturn(); err != nil {
		return err
	}
	t.setUnreachable()
	return nil
}

// Branches are only translated when they target the function's own frame, where they behave as
// returns.

func visitBr(t *FuncTranslator, instr *code.Instruction) error {
	if instr.Labelidx() != 0 {
		return notImplemented(instr.OpString())
	}
	return visitReturn(t, instr)
}

func visitBrIf(t *FuncTranslator, instr *code.Instruction) error {
	if instr.Labelidx() != 0 {
		return notImplemented(instr.OpString())
	}

	cond := t.stack.peek()
	if cond.IsConst() {
		t.stack.pop()
		if cond.Value().IsZero() {
			return nil
		}
		return visitReturn(t, instr)
	}
	return t.translateReturnNez()
}

func visitBrTable(t *FuncTranslator, instr *code.Instruction) error {
	if len(instr.Labels)+1 > 1<<16 {
		return &Error{Kind: KindBranchTableTargetsOutOfBounds, Index: uint32(len(instr.Labels) + 1)}
	}
	if instr.Default() != 0 {
		return notImplemented(instr.OpString())
	}
	for _, l := range instr.Labels {
		if l != 0 {
			return notImplemented(instr.OpString())
		}
	}

	// Every target is the function frame, so the index does not matter.
	t.stack.pop()
	return visitReturn(t, instr)
}

// translateReturn emits the return sequence for the function's results, which are on top of
// the operand stack.
func (t *FuncTranslator) translateReturn() error {
	switch n := len(t.sig.ReturnTypes); n {
	case 0:
		t.enc.push(bytecode.Return())
	case 1:
		value := t.stack.pop()
		if !value.IsConst() {
			t.enc.push(bytecode.ReturnReg(value.Register()))
			return nil
		}
		instr, err := t.enc.returnConst(value.Value())
		if err != nil {
			return err
		}
		t.enc.push(instr)
	default:
		if err := t.materialize(0, n); err != nil {
			return err
		}
		regs := t.popRegisters(n)
		t.enc.push(bytecode.ReturnMany(n), bytecode.RegisterLists(regs)...)
	}
	return nil
}

// translateReturnNez emits a return that is taken if the register on top of the stack is
// nonzero. The results stay on the operand stack for the fallthrough path.
func (t *FuncTranslator) translateReturnNez() error {
	n := len(t.sig.ReturnTypes)
	if n > 1 {
		// The condition is still live, so the copies cannot clobber it.
		if err := t.materialize(1, n); err != nil {
			return err
		}
	}
	cond := t.stack.pop().Register()

	switch n {
	case 0:
		t.enc.push(bytecode.ReturnNez(cond))
	case 1:
		value := t.stack.peek()
		if !value.IsConst() {
			t.enc.push(bytecode.ReturnNezReg(cond, value.Register()))
			return nil
		}

		param, err := t.enc.immParam(value.Value())
		if err != nil {
			return err
		}
		switch {
		case param.Op == bytecode.OpConstRef:
			t.enc.push(bytecode.ReturnNezImm(cond), param)
		case value.Value().Type() == wasm.ValueTypeI64:
			t.enc.push(bytecode.ReturnNezI64Imm32(cond), param)
		default:
			t.enc.push(bytecode.ReturnNezImm32(cond), param)
		}
	default:
		regs := make([]bytecode.Register, n)
		for i, p := range t.stack.top(n) {
			regs[i] = p.Register()
		}
		t.enc.push(bytecode.ReturnNezMany(cond, n), bytecode.RegisterLists(regs)...)
	}
	return nil
}

func visitCall(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkFunction(instr.Funcidx()); err != nil {
		return err
	}
	return notImplemented(instr.OpString())
}

func visitCallIndirect(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkType(instr.Typeidx()); err != nil {
		return err
	}
	if err := t.checkTable(instr.Tableidx()); err != nil {
		return err
	}
	return notImplemented(instr.OpString())
}

func visitDrop(t *FuncTranslator, instr *code.Instruction) error {
	t.stack.pop()
	return nil
}

// visitSelect handles both the untyped and typed forms of select.
func visitSelect(t *FuncTranslator, instr *code.Instruction) error {
	cond := t.stack.peek()
	if cond.IsConst() {
		t.stack.pop()
		ifTrue, ifFalse := t.stack.pop2()
		if cond.Value().IsZero() {
			t.stack.push(ifFalse)
		} else {
			t.stack.push(ifTrue)
		}
		return nil
	}

	ifTrue, ifFalse := t.stack.values[len(t.stack.values)-3], t.stack.values[len(t.stack.values)-2]
	if ifTrue == ifFalse {
		t.stack.pop()
		value, _ := t.stack.pop2()
		t.stack.push(value)
		return nil
	}

	if err := t.materialize(1, 2); err != nil {
		return err
	}
	condReg := t.stack.pop().Register()
	regs := t.popRegisters(2)
	return t.emit(func(result bytecode.Register) bytecode.Instruction {
		return bytecode.Select(result, condReg, regs[0])
	}, bytecode.RegisterParam(regs[1]))
}
