package translate

import (
	"math"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm/code"
)

// effectiveAddress folds a constant pointer into a memory operator's offset. It returns false
// if the access is out of bounds for every possible memory.
func effectiveAddress(ptr numeric.Value, offset uint32) (uint32, bool) {
	address := uint64(ptr.U32()) + uint64(offset)
	if address > math.MaxUint32 {
		return 0, false
	}
	return uint32(address), true
}

// load returns the handler for a load. op is the opcode of the load's register form.
func load(op bytecode.Opcode) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		if err := t.checkMemory(); err != nil {
			return err
		}
		offset := instr.Offset()

		ptr := t.stack.pop()
		if ptr.IsConst() {
			address, ok := effectiveAddress(ptr.Value(), offset)
			if !ok {
				t.trap(numeric.TrapMemoryOutOfBounds)
				return nil
			}
			return t.emit(func(result bytecode.Register) bytecode.Instruction {
				return bytecode.LoadAt(op, result, address)
			})
		}

		if offset <= math.MaxUint16 {
			return t.emit(func(result bytecode.Register) bytecode.Instruction {
				return bytecode.LoadOffset16(op, result, ptr.Register(), uint16(offset))
			})
		}
		return t.emit(func(result bytecode.Register) bytecode.Instruction {
			return bytecode.Load(op, result, ptr.Register())
		}, bytecode.Const32Param(bytecode.Const32(offset)))
	}
}

// store returns the handler for a store. op is the opcode of the store's register form.
func store(op bytecode.Opcode) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		if err := t.checkMemory(); err != nil {
			return err
		}
		offset := instr.Offset()

		ptr, _ := t.stack.peek2()
		if ptr.IsConst() {
			if _, ok := effectiveAddress(ptr.Value(), offset); !ok {
				t.trap(numeric.TrapMemoryOutOfBounds)
				return nil
			}
		}

		// Stored constants are copied into a register first. The pointer is still live, so the
		// copy cannot clobber it.
		if err := t.materialize(0, 1); err != nil {
			return err
		}
		ptr, value := t.stack.pop2()

		switch {
		case ptr.IsConst():
			address, _ := effectiveAddress(ptr.Value(), offset)
			t.enc.push(bytecode.StoreAt(op, value.Register(), address))
		case offset <= math.MaxUint16:
			t.enc.push(bytecode.StoreOffset16(op, ptr.Register(), value.Register(), uint16(offset)))
		default:
			t.enc.push(bytecode.Store(op, ptr.Register(), value.Register()), bytecode.Const32Param(bytecode.Const32(offset)))
		}
		return nil
	}
}

func visitMemorySize(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkMemory(); err != nil {
		return err
	}
	return t.emit(bytecode.MemorySize)
}

func visitMemoryGrow(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkMemory(); err != nil {
		return err
	}

	delta := t.stack.pop()
	if delta.IsConst() {
		return t.emit(bytecode.MemoryGrowBy, bytecode.Const32Param(bytecode.Const32(delta.Value().U32())))
	}
	return t.emit(func(result bytecode.Register) bytecode.Instruction {
		return bytecode.MemoryGrow(result, delta.Register())
	})
}

// visitMemoryInit and the other bulk memory handlers check their index operands before
// reporting that the operator is not implemented.

func visitMemoryInit(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkMemory(); err != nil {
		return err
	}
	if !t.scope.HasDataSegment(instr.Dataidx()) {
		return indexError(KindDataIndexOutOfBounds, instr.Dataidx())
	}
	return notImplemented(instr.OpString())
}

func visitDataDrop(t *FuncTranslator, instr *code.Instruction) error {
	if !t.scope.HasDataSegment(instr.Dataidx()) {
		return indexError(KindDataIndexOutOfBounds, instr.Dataidx())
	}
	return notImplemented(instr.OpString())
}

func visitMemoryBulk(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkMemory(); err != nil {
		return err
	}
	return notImplemented(instr.OpString())
}

func visitTableInit(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkTable(instr.Tableidx()); err != nil {
		return err
	}
	if !t.scope.HasElementSegment(instr.Elemidx()) {
		return indexError(KindElementIndexOutOfBounds, instr.Elemidx())
	}
	return notImplemented(instr.OpString())
}

func visitElemDrop(t *FuncTranslator, instr *code.Instruction) error {
	if !t.scope.HasElementSegment(instr.Elemidx()) {
		return indexError(KindElementIndexOutOfBounds, instr.Elemidx())
	}
	return notImplemented(instr.OpString())
}

func visitTableCopy(t *FuncTranslator, instr *code.Instruction) error {
	if err := t.checkTable(instr.Tableidx()); err != nil {
		return err
	}
	if err := t.checkTable(instr.SrcTableidx()); err != nil {
		return err
	}
	return notImplemented(instr.OpString())
}
