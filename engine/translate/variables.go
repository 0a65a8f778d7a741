package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
)

func visitConst(t *FuncTranslator, instr *code.Instruction) error {
	t.stack.pushConst(constValue(instr))
	return nil
}

func visitLocalGet(t *FuncTranslator, instr *code.Instruction) error {
	localidx := instr.Localidx()
	if err := t.checkLocal(localidx); err != nil {
		return err
	}
	t.stack.pushLocal(localidx)
	return nil
}

func visitLocalSet(t *FuncTranslator, instr *code.Instruction) error {
	return t.translateLocalSet(instr.Localidx(), false)
}

func visitLocalTee(t *FuncTranslator, instr *code.Instruction) error {
	return t.translateLocalSet(instr.Localidx(), true)
}

// preserveLocal copies the current value of a local into a fresh register for every stack
// entry below the top skip entries that refers to it. It returns true if any copies were made.
func (t *FuncTranslator) preserveLocal(local bytecode.Register, skip int) (bool, error) {
	preserved := false
	for d := skip; d < t.stack.height(); d++ {
		p := t.stack.values[len(t.stack.values)-1-d]
		if p.IsConst() || p.Register() != local {
			continue
		}
		r, err := t.alloc.alloc()
		if err != nil {
			return false, err
		}
		t.enc.push(bytecode.Copy(r, local))
		t.stack.replace(d, RegisterProvider(r))
		preserved = true
	}
	return preserved, nil
}

// translateLocalSet stores the value on top of the stack into a local.
//
// If the value was computed by the most recently emitted instruction into a temporary, that
// instruction is rewritten to write the local directly and no copy is needed.
func (t *FuncTranslator) translateLocalSet(localidx uint32, tee bool) error {
	if err := t.checkLocal(localidx); err != nil {
		return err
	}
	local := bytecode.Register(localidx)

	preserved, err := t.preserveLocal(local, 1)
	if err != nil {
		return err
	}

	value := t.stack.pop()
	switch {
	case value.IsConst():
		instr, err := t.enc.copyConst(local, value.Value())
		if err != nil {
			return err
		}
		t.enc.push(instr)
	case value.Register() == local:
		// Nothing to do.
	case !preserved && t.alloc.isDynamic(value.Register()) && t.lastResultIs(value.Register()):
		t.enc.retargetLast(local)
	default:
		t.enc.push(bytecode.Copy(local, value.Register()))
	}

	if tee {
		t.stack.pushLocal(localidx)
	}
	return nil
}

func (t *FuncTranslator) lastResultIs(r bytecode.Register) bool {
	last, ok := t.enc.lastResult()
	return ok && last == r
}

func (t *FuncTranslator) globalType(globalidx uint32) (wasm.GlobalVar, error) {
	g, ok := t.scope.GetGlobalType(globalidx)
	if !ok {
		return wasm.GlobalVar{}, indexError(KindGlobalIndexOutOfBounds, globalidx)
	}
	if !isNumeric(g.Type) {
		return wasm.GlobalVar{}, &Error{Kind: KindUnsupportedValueType, Detail: g.Type.String()}
	}
	return g, nil
}

func visitGlobalGet(t *FuncTranslator, instr *code.Instruction) error {
	globalidx := instr.Globalidx()
	if _, err := t.globalType(globalidx); err != nil {
		return err
	}
	return t.emit(func(result bytecode.Register) bytecode.Instruction {
		return bytecode.GlobalGet(result, globalidx)
	})
}

func visitGlobalSet(t *FuncTranslator, instr *code.Instruction) error {
	globalidx := instr.Globalidx()
	if _, err := t.globalType(globalidx); err != nil {
		return err
	}

	value := t.stack.pop()
	if !value.IsConst() {
		t.enc.push(bytecode.GlobalSet(globalidx, value.Register()))
		return nil
	}

	param, err := t.enc.immParam(value.Value())
	if err != nil {
		return err
	}
	switch {
	case param.Op == bytecode.OpConstRef:
		t.enc.push(bytecode.GlobalSetImm(globalidx), param)
	case value.Value().Type() == wasm.ValueTypeI64:
		t.enc.push(bytecode.GlobalSetI64Imm32(globalidx), param)
	default:
		t.enc.push(bytecode.GlobalSetImm32(globalidx), param)
	}
	return nil
}

// visitTableAccess checks the table operand of table.get and table.set.
func visitTableAccess(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkTable(instr.Tableidx()); err != nil {
		return err
	}
	return notImplemented(instr.OpString())
}

func visitRefFunc(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkFunction(instr.Funcidx()); err != nil {
		return err
	}
	return notImplemented(instr.OpString())
}

func visitNotImplemented(t *FuncTranslator, instr *code.Instruction) error {
	return notImplemented(instr.OpString())
}
