// Package translate converts validated Wasm function bodies into register bytecode.
//
// The translator consumes one decoded operator at a time. It keeps an abstract operand stack
// whose entries are either registers or constants known at translation time. Constants are
// folded into the instructions that consume them. An operator whose operands are all constants
// is evaluated during translation, and algebraic identities are applied as operators are
// visited, so no separate optimization pass is needed.
//
// For example, the body
//
//	local.get 0
//	i32.const 1
//	i32.add
//	i32.const 2
//	i32.const 3
//	i32.mul
//	i32.sub
//
// of a function with a single i32 parameter translates to
//
//	r1 = i32.add_imm16 r0, 1
//	r1 = i32.sub_imm16 r1, 6
//	return_reg r1
package translate

import (
	"errors"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/constpool"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
)

// Reachability records whether the operators being translated can execute.
type Reachability uint8

const (
	Reachable Reachability = iota
	Unreachable
)

func (r Reachability) String() string {
	if r == Unreachable {
		return "unreachable"
	}
	return "reachable"
}

// Config describes the function to translate.
type Config struct {
	Name      string
	Signature wasm.FunctionSig
	Locals    []wasm.LocalEntry // the declared locals, excluding parameters
	Scope     code.Scope
	Constants *constpool.Pool // the module's constant pool
}

// A FuncTranslator translates a single function body. It is not safe for concurrent use.
type FuncTranslator struct {
	name      string
	sig       wasm.FunctionSig
	numLocals int
	scope     code.Scope

	alloc registerAlloc
	stack valueStack
	enc   encoder

	reach     Reachability
	deadDepth int // the number of blocks opened in unreachable code
	done      bool
}

func isNumeric(t wasm.ValueType) bool {
	switch t {
	case wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64:
		return true
	}
	return false
}

func checkValueTypes(types []wasm.ValueType) error {
	for _, t := range types {
		if !isNumeric(t) {
			return &Error{Kind: KindUnsupportedValueType, Detail: t.String()}
		}
	}
	return nil
}

// NewFuncTranslator creates a translator for the function described by config.
func NewFuncTranslator(config Config) (*FuncTranslator, error) {
	if err := checkValueTypes(config.Signature.ParamTypes); err != nil {
		return nil, err
	}
	if err := checkValueTypes(config.Signature.ReturnTypes); err != nil {
		return nil, err
	}

	numLocals := uint64(len(config.Signature.ParamTypes))
	for _, l := range config.Locals {
		if l.Count != 0 && !isNumeric(l.Type) {
			return nil, &Error{Kind: KindUnsupportedValueType, Detail: l.Type.String()}
		}
		numLocals += uint64(l.Count)
	}
	if numLocals > bytecode.MaxRegisters {
		return nil, ErrTooManyLocals
	}

	constants := config.Constants
	if constants == nil {
		constants = constpool.New(0)
	}

	t := &FuncTranslator{
		name:      config.Name,
		sig:       config.Signature,
		numLocals: int(numLocals),
		scope:     config.Scope,
		alloc:     registerAlloc{numLocals: int(numLocals)},
		enc:       newEncoder(constants),
	}
	t.stack.alloc = &t.alloc
	return t, nil
}

// Reachability returns the reachability of the next operator.
func (t *FuncTranslator) Reachability() Reachability {
	return t.reach
}

// Visit translates a single operator. Operators must be visited in the order they appear in
// the function body.
func (t *FuncTranslator) Visit(instr *code.Instruction) error {
	var h handler
	if instr.Opcode == code.OpPrefix {
		if instr.Subop < uint32(len(prefixHandlers)) {
			h = prefixHandlers[instr.Subop]
		}
	} else {
		h = handlers[instr.Opcode]
	}
	if h == nil {
		unsupported(instr)
	}
	return h(t, instr)
}

// Finish completes translation and returns the translated function.
func (t *FuncTranslator) Finish() (*bytecode.Function, error) {
	if !t.done {
		return nil, ErrMissingEnd
	}
	return &bytecode.Function{
		Name:         t.name,
		Instructions: t.enc.instrs,
		NumParams:    len(t.sig.ParamTypes),
		NumLocals:    t.numLocals,
		NumRegisters: t.alloc.numRegisters(),
		NumResults:   len(t.sig.ReturnTypes),
	}, nil
}

// unsupported is called for operators that validation should have rejected.
func unsupported(instr *code.Instruction) {
	panic("tried to translate an unsupported Wasm operator: " + instr.OpString())
}

// setUnreachable marks the following operators as dead. The operand stack is discarded.
func (t *FuncTranslator) setUnreachable() {
	t.reach = Unreachable
	t.stack.reset()
}

func (t *FuncTranslator) trap(trap numeric.Trap) {
	t.enc.push(bytecode.Trap(trap))
	t.setUnreachable()
}

// fold pushes the result of evaluating an operator at translation time. If the evaluation
// traps, the trap is emitted instead.
func (t *FuncTranslator) fold(v numeric.Value, err error) error {
	if err != nil {
		var trap numeric.Trap
		if errors.As(err, &trap) {
			t.trap(trap)
			return nil
		}
		return err
	}
	t.stack.pushConst(v)
	return nil
}

// emit allocates a result register, pushes the instruction built for it and pushes the result
// onto the operand stack.
func (t *FuncTranslator) emit(build func(result bytecode.Register) bytecode.Instruction, params ...bytecode.Instruction) error {
	result, err := t.alloc.alloc()
	if err != nil {
		return err
	}
	t.enc.push(build(result), params...)
	t.stack.pushRegister(result)
	return nil
}

// materialize copies constants in n stack entries starting depth entries below the top into
// fresh registers.
func (t *FuncTranslator) materialize(depth, n int) error {
	for d := depth; d < depth+n; d++ {
		p := t.stack.values[len(t.stack.values)-1-d]
		if !p.IsConst() {
			continue
		}
		r, err := t.alloc.alloc()
		if err != nil {
			return err
		}
		instr, err := t.enc.copyConst(r, p.Value())
		if err != nil {
			return err
		}
		t.enc.push(instr)
		t.stack.replace(d, RegisterProvider(r))
	}
	return nil
}

// popRegisters pops n register providers, returning them bottom-most first.
func (t *FuncTranslator) popRegisters(n int) []bytecode.Register {
	regs := make([]bytecode.Register, n)
	for i := n - 1; i >= 0; i-- {
		regs[i] = t.stack.pop().Register()
	}
	return regs
}

func (t *FuncTranslator) checkLocal(localidx uint32) error {
	if uint64(localidx) >= uint64(t.numLocals) {
		return indexError(KindLocalIndexOutOfBounds, localidx)
	}
	return nil
}

func (t *FuncTranslator) checkMemory() error {
	if !t.scope.HasMemory(0) {
		return indexError(KindMemoryIndexOutOfBounds, 0)
	}
	return nil
}

func (t *FuncTranslator) checkFunction(funcidx uint32) error {
	if _, ok := t.scope.GetFunctionSignature(funcidx); !ok {
		return indexError(KindFunctionIndexOutOfBounds, funcidx)
	}
	return nil
}

func (t *FuncTranslator) checkType(typeidx uint32) error {
	if _, ok := t.scope.GetType(typeidx); !ok {
		return indexError(KindTypeIndexOutOfBounds, typeidx)
	}
	return nil
}

func (t *FuncTranslator) checkTable(tableidx uint32) error {
	if _, ok := t.scope.GetTable(tableidx); !ok {
		return indexError(KindTableIndexOutOfBounds, tableidx)
	}
	return nil
}
