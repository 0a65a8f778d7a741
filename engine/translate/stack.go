package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/willf/bitset"
)

// ProviderKind distinguishes the two kinds of operand stack entries.
type ProviderKind uint8

const (
	ProviderRegister ProviderKind = iota // the value lives in a register
	ProviderConst                        // the value is known at translation time
)

// A Provider records where the value in one operand stack slot comes from.
//
// A register provider carries no type: the validator has already determined the type of every
// stack slot. A constant provider carries the exact bits of its literal, typed by the literal.
type Provider struct {
	kind  ProviderKind
	reg   bytecode.Register
	value numeric.Value
}

func RegisterProvider(r bytecode.Register) Provider {
	return Provider{kind: ProviderRegister, reg: r}
}

func ConstProvider(v numeric.Value) Provider {
	return Provider{kind: ProviderConst, value: v}
}

func (p Provider) Kind() ProviderKind { return p.kind }
func (p Provider) IsConst() bool { return p.kind == ProviderConst }
func (p Provider) Register() bytecode.Register { return p.reg }
func (p Provider) Value() numeric.Value { return p.value }

// registerAlloc hands out dynamic registers. Registers below numLocals belong to the function's
// parameters and locals and are never allocated.
type registerAlloc struct {
	numLocals int
	live      bitset.BitSet
	max       int
}

func (a *registerAlloc) isDynamic(r bytecode.Register) bool {
	return int(r) >= a.numLocals
}

// alloc returns the lowest free dynamic register.
func (a *registerAlloc) alloc() (bytecode.Register, error) {
	i, ok := a.live.NextClear(0)
	if !ok {
		i = a.live.Len()
	}
	r := a.numLocals + int(i)
	if r >= bytecode.MaxRegisters {
		return 0, ErrTooManyRegisters
	}
	a.live.Set(i)
	if int(i)+1 > a.max {
		a.max = int(i) + 1
	}
	return bytecode.Register(r), nil
}

func (a *registerAlloc) free(r bytecode.Register) {
	if a.isDynamic(r) {
		a.live.Clear(uint(int(r) - a.numLocals))
	}
}

func (a *registerAlloc) retain(r bytecode.Register) {
	if a.isDynamic(r) {
		a.live.Set(uint(int(r) - a.numLocals))
	}
}

// numRegisters returns the size of the register file needed so far.
func (a *registerAlloc) numRegisters() int {
	return a.numLocals + a.max
}

// valueStack mirrors the Wasm operand stack during translation. Popping a register provider
// releases its register if it is dynamic. Pushing one retains it.
type valueStack struct {
	alloc  *registerAlloc
	values []Provider
}

func (s *valueStack) height() int {
	return len(s.values)
}

// pushLocal pushes the register that holds a local. The caller checks the index.
func (s *valueStack) pushLocal(localidx uint32) {
	s.values = append(s.values, RegisterProvider(bytecode.Register(localidx)))
}

func (s *valueStack) pushConst(v numeric.Value) {
	s.values = append(s.values, ConstProvider(v))
}

func (s *valueStack) pushRegister(r bytecode.Register) {
	s.alloc.retain(r)
	s.values = append(s.values, RegisterProvider(r))
}

func (s *valueStack) push(p Provider) {
	if p.IsConst() {
		s.pushConst(p.value)
	} else {
		s.pushRegister(p.reg)
	}
}

func (s *valueStack) pop() Provider {
	p := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	if !p.IsConst() {
		s.alloc.free(p.reg)
	}
	return p
}

func (s *valueStack) pop2() (lhs, rhs Provider) {
	rhs = s.pop()
	lhs = s.pop()
	return lhs, rhs
}

func (s *valueStack) peek() Provider {
	return s.values[len(s.values)-1]
}

// peek2 returns the top two entries without removing them.
func (s *valueStack) peek2() (lhs, rhs Provider) {
	return s.values[len(s.values)-2], s.values[len(s.values)-1]
}

// top returns the top n entries, bottom-most first. The slice aliases the stack.
func (s *valueStack) top(n int) []Provider {
	return s.values[len(s.values)-n:]
}

// replace overwrites the entry at the given depth from the top of the stack.
func (s *valueStack) replace(depth int, p Provider) {
	s.values[len(s.values)-1-depth] = p
}

func (s *valueStack) reset() {
	for len(s.values) > 0 {
		s.pop()
	}
}
