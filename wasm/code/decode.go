package code

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/leb128"
)

var ErrInvalidInstruction = errors.New("wasm: invalid instruction")

func getIndex(body []byte) (uint32, []byte, error) {
	v, read, err := leb128.GetVarUint32(body)
	if err != nil {
		return 0, nil, err
	}
	return v, body[read:], nil
}

// getReserved consumes n reserved zero bytes, as used by the MVP's memory and table immediates.
func getReserved(body []byte, n int) ([]byte, error) {
	if len(body) < n {
		return nil, io.ErrUnexpectedEOF
	}
	for _, b := range body[:n] {
		if b != 0x00 {
			return nil, fmt.Errorf("%w: zero byte expected", ErrInvalidInstruction)
		}
	}
	return body[n:], nil
}

func getValueType(body []byte) (wasm.ValueType, []byte, error) {
	v, read, err := leb128.GetVarint32(body)
	if err != nil {
		return 0, nil, err
	}
	t := wasm.ValueType(v)
	if int32(t) != v || !t.Valid() {
		return 0, nil, wasm.InvalidValueTypeError(v)
	}
	return t, body[read:], nil
}

// Metrics summarizes the shape of a function body.
type Metrics struct {
	InstructionCount int  // The number of decoded instructions.
	MaxNesting       int  // The maximum block nesting for the function.
	MaxStackDepth    int  // The maximum stack depth for the function.
	LabelCount       int  // The number of labels in the function.
	HasLoops         bool // True if this function has loops
}

type block struct {
	opcode byte
	ip     int // index of the opening instruction, or -1 for the function frame
	elseIP int

	in, out     []wasm.ValueType
	stackHeight int
	unreachable bool
}

type decoder struct {
	Scope
	features Features

	// keep is set when the decoded instructions are retained and their labels resolved.
	keep bool
	ibuf []Instruction
	ip   int

	metrics Metrics

	blocks []block
	stack  []wasm.ValueType
}

// Body is a fully decoded function body.
type Body struct {
	Instructions []Instruction
	Metrics      Metrics
}

// Decode decodes and validates a function body. Structured control instructions in the result
// carry their continuation labels.
func Decode(body []byte, scope Scope, out []wasm.ValueType, features Features) (Body, error) {
	d := decoder{Scope: scope, features: features, keep: true, ibuf: make([]Instruction, 0, len(body))}
	if err := d.walk(body, out, nil); err != nil {
		return Body{}, err
	}

	// Condense the instruction list.
	instructions := d.ibuf
	if cap(instructions)-len(instructions) > len(instructions)/10 {
		instructions = append([]Instruction(nil), instructions...)
	}
	return Body{Instructions: instructions, Metrics: d.metrics}, nil
}

// Walk decodes a function body one instruction at a time. Each instruction is validated against
// the operand stack before it is passed to visit, so visit only ever observes a valid prefix of
// the body. The instruction passed to visit is only valid for the duration of the call.
func Walk(body []byte, scope Scope, out []wasm.ValueType, features Features, visit func(*Instruction) error) (Metrics, error) {
	d := decoder{Scope: scope, features: features}
	if err := d.walk(body, out, visit); err != nil {
		return Metrics{}, err
	}
	return d.metrics, nil
}

func (d *decoder) walk(body []byte, out []wasm.ValueType, visit func(*Instruction) error) error {
	d.pushBlock(OpBlock, -1, nil, out)

	for {
		instr, rest, err := d.decodeInstruction(body)
		if err != nil {
			return err
		}
		body = rest

		ip := d.ip
		d.ip++
		d.metrics.InstructionCount++

		ptr := &instr
		if d.keep {
			d.ibuf = append(d.ibuf, instr)
			ptr = &d.ibuf[ip]
		}

		done, err := d.validate(ptr, ip, len(body) == 0)
		if err != nil {
			return fmt.Errorf("%s at instruction %d: %w", ptr.OpString(), ip, err)
		}
		if visit != nil {
			if err := visit(ptr); err != nil {
				return err
			}
		}
		if done {
			return nil
		}
	}
}

func (d *decoder) popOpd() (wasm.ValueType, error) {
	b := &d.blocks[len(d.blocks)-1]
	if len(d.stack) == b.stackHeight {
		if b.unreachable {
			return wasm.ValueTypeT, nil
		}
		return 0, wasm.ValidationError("stack underflow")
	}
	t := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	return t, nil
}

func (d *decoder) popOpds(types ...wasm.ValueType) error {
	for i := len(types) - 1; i >= 0; i-- {
		expected := types[i]
		actual, err := d.popOpd()
		if err != nil {
			return err
		}
		if actual != wasm.ValueTypeT && expected != wasm.ValueTypeT && actual != expected {
			return wasm.ValidationError(fmt.Sprintf("type mismatch: expected %v, found %v", expected, actual))
		}
	}
	return nil
}

func (d *decoder) pushOpds(types ...wasm.ValueType) {
	d.stack = append(d.stack, types...)

	if len(d.stack) > d.metrics.MaxStackDepth {
		d.metrics.MaxStackDepth = len(d.stack)
	}
}

func (d *decoder) pushBlock(opcode byte, ip int, in, out []wasm.ValueType) {
	d.blocks = append(d.blocks, block{
		opcode:      opcode,
		ip:          ip,
		in:          in,
		out:         out,
		stackHeight: len(d.stack),
	})
	d.pushOpds(in...)

	if len(d.blocks) > d.metrics.MaxNesting {
		d.metrics.MaxNesting = len(d.blocks)
	}
	d.metrics.LabelCount++
}

func (d *decoder) popBlock() (block, error) {
	if len(d.blocks) == 0 {
		return block{}, wasm.ValidationError("label stack underflow")
	}
	b := d.blocks[len(d.blocks)-1]
	if err := d.popOpds(b.out...); err != nil {
		return block{}, err
	}
	if len(d.stack) != b.stackHeight {
		return block{}, wasm.ValidationError("unbalanced stack")
	}
	d.blocks = d.blocks[:len(d.blocks)-1]
	return b, nil
}

func (d *decoder) labelTypes(n int) ([]wasm.ValueType, error) {
	if n < 0 || len(d.blocks)-1 < n {
		return nil, wasm.ValidationError("unknown label")
	}

	b := &d.blocks[len(d.blocks)-1-n]
	if b.opcode == OpLoop {
		return b.in, nil
	}
	return b.out, nil
}

func (d *decoder) unreachable() {
	b := &d.blocks[len(d.blocks)-1]
	d.stack = d.stack[:b.stackHeight]
	b.unreachable = true
}

func sameTypes(a, b []wasm.ValueType) bool {
	if len(a) != len(b) {
		return false
	}
	for i, t := range a {
		if b[i] != t {
			return false
		}
	}
	return true
}

func isReference(t wasm.ValueType) bool {
	return t == wasm.ValueTypeFuncref || t == wasm.ValueTypeExternref
}

// memoryType returns the operand type of a load or store.
func memoryType(opcode byte) wasm.ValueType {
	switch opcode {
	case OpI32Load, OpI32Load8S, OpI32Load8U, OpI32Load16S, OpI32Load16U, OpI32Store, OpI32Store8, OpI32Store16:
		return wasm.ValueTypeI32
	case OpF32Load, OpF32Store:
		return wasm.ValueTypeF32
	case OpF64Load, OpF64Store:
		return wasm.ValueTypeF64
	default:
		return wasm.ValueTypeI64
	}
}

// validate checks the instruction against the operand and control stacks. It returns true
// once the function's final end has been validated.
func (d *decoder) validate(i *Instruction, ip int, atEnd bool) (bool, error) {
	const (
		I32 = wasm.ValueTypeI32
		I64 = wasm.ValueTypeI64
	)

	if proposal, ok := d.features.check(i.Opcode, i.Subop); !ok {
		return false, wasm.ValidationError(fmt.Sprintf("%s requires the %s proposal", i.OpString(), proposal))
	}

	if i.Opcode != OpPrefix {
		if sig := &numericTypes[i.Opcode]; sig.valid {
			if err := d.popOpds(sig.pop...); err != nil {
				return false, err
			}
			d.pushOpds(sig.push)
			return false, nil
		}
	}

	switch i.Opcode {
	case OpNop:

	case OpUnreachable:
		d.unreachable()

	case OpIf, OpBlock, OpLoop:
		if i.Opcode == OpIf {
			if err := d.popOpds(I32); err != nil {
				return false, err
			}
		}
		if i.Opcode == OpLoop {
			d.metrics.HasLoops = true
		}

		in, out, ok := i.BlockType(d)
		if !ok {
			return false, wasm.ValidationError("unknown type")
		}
		if err := d.popOpds(in...); err != nil {
			return false, err
		}
		d.pushBlock(i.Opcode, ip, in, out)

		stackHeight := d.blocks[len(d.blocks)-1].stackHeight
		i.Immediate |= (uint64(stackHeight) << 32) & StackHeightMask

	case OpElse:
		b, err := d.popBlock()
		if err != nil {
			return false, err
		}
		if b.opcode != OpIf || b.elseIP != 0 {
			return false, wasm.ValidationError("else without matching if")
		}
		if d.keep {
			d.ibuf[b.ip].Labels[1] = ip
		}

		d.pushBlock(OpIf, b.ip, b.in, b.out)
		d.blocks[len(d.blocks)-1].elseIP = ip

	case OpEnd:
		b, err := d.popBlock()
		if err != nil {
			return false, err
		}

		if b.ip >= 0 {
			if b.opcode == OpIf && b.elseIP == 0 && !sameTypes(b.in, b.out) {
				return false, wasm.ValidationError("if without else must not change the stack type")
			}
			if d.keep {
				if b.opcode != OpLoop {
					d.ibuf[b.ip].Labels[0] = ip + 1
				}
				if b.elseIP != 0 {
					d.ibuf[b.elseIP].Labels[0] = ip + 1
				}
			}
			d.pushOpds(b.out...)
			return false, nil
		}
		if !atEnd {
			return false, wasm.ValidationError("unexpected end instruction")
		}
		return true, nil

	case OpBr:
		pop, err := d.labelTypes(i.Labelidx())
		if err != nil {
			return false, err
		}
		if err := d.popOpds(pop...); err != nil {
			return false, err
		}
		d.unreachable()

	case OpBrIf:
		pop, err := d.labelTypes(i.Labelidx())
		if err != nil {
			return false, err
		}
		if err := d.popOpds(I32); err != nil {
			return false, err
		}
		if err := d.popOpds(pop...); err != nil {
			return false, err
		}
		d.pushOpds(pop...)

	case OpBrTable:
		pop, err := d.labelTypes(i.Default())
		if err != nil {
			return false, err
		}
		for _, l := range i.Labels {
			types, err := d.labelTypes(l)
			if err != nil {
				return false, err
			}
			if len(types) != len(pop) {
				return false, wasm.ValidationError("br_table arity mismatch")
			}
		}
		if err := d.popOpds(I32); err != nil {
			return false, err
		}
		if err := d.popOpds(pop...); err != nil {
			return false, err
		}
		d.unreachable()

	case OpReturn:
		if err := d.popOpds(d.blocks[0].out...); err != nil {
			return false, err
		}
		d.unreachable()

	case OpCall, OpReturnCall:
		sig, ok := d.GetFunctionSignature(i.Funcidx())
		if !ok {
			return false, wasm.ValidationError("unknown function")
		}
		return false, d.call(i.Opcode == OpReturnCall, sig, false)

	case OpCallIndirect, OpReturnCallIndirect:
		table, ok := d.GetTable(i.Tableidx())
		if !ok {
			return false, wasm.ValidationError("unknown table")
		}
		if table.ElementType != wasm.ValueTypeFuncref {
			return false, wasm.ValidationError("indirect calls require a funcref table")
		}
		sig, ok := d.GetType(i.Typeidx())
		if !ok {
			return false, wasm.ValidationError("unknown type")
		}
		return false, d.call(i.Opcode == OpReturnCallIndirect, sig, true)

	case OpDrop:
		if _, err := d.popOpd(); err != nil {
			return false, err
		}

	case OpSelect:
		if err := d.popOpds(I32); err != nil {
			return false, err
		}
		t1, err := d.popOpd()
		if err != nil {
			return false, err
		}
		t2, err := d.popOpd()
		if err != nil {
			return false, err
		}
		if isReference(t1) || isReference(t2) {
			return false, wasm.ValidationError("untyped select requires numeric operands")
		}
		switch {
		case t1 == wasm.ValueTypeT:
			t1 = t2
		case t2 != wasm.ValueTypeT && t1 != t2:
			return false, wasm.ValidationError("select operands must have the same type")
		}
		d.pushOpds(t1)

	case OpSelectT:
		t := i.ValueType()
		if err := d.popOpds(t, t, I32); err != nil {
			return false, err
		}
		d.pushOpds(t)

	case OpLocalGet, OpLocalSet, OpLocalTee:
		t, ok := d.GetLocalType(i.Localidx())
		if !ok {
			return false, wasm.ValidationError("unknown local")
		}
		if i.Opcode != OpLocalGet {
			if err := d.popOpds(t); err != nil {
				return false, err
			}
		}
		if i.Opcode != OpLocalSet {
			d.pushOpds(t)
		}

	case OpGlobalGet, OpGlobalSet:
		g, ok := d.GetGlobalType(i.Globalidx())
		if !ok {
			return false, wasm.ValidationError("unknown global")
		}
		if i.Opcode == OpGlobalGet {
			d.pushOpds(g.Type)
			break
		}
		if !g.Mutable {
			return false, wasm.ValidationError("global is immutable")
		}
		return false, d.popOpds(g.Type)

	case OpTableGet, OpTableSet:
		table, ok := d.GetTable(i.Tableidx())
		if !ok {
			return false, wasm.ValidationError("unknown table")
		}
		if i.Opcode == OpTableGet {
			if err := d.popOpds(I32); err != nil {
				return false, err
			}
			d.pushOpds(table.ElementType)
			break
		}
		return false, d.popOpds(I32, table.ElementType)

	case OpMemorySize, OpMemoryGrow:
		if !d.HasMemory(0) {
			return false, wasm.ValidationError("unknown memory")
		}
		if i.Opcode == OpMemoryGrow {
			if err := d.popOpds(I32); err != nil {
				return false, err
			}
		}
		d.pushOpds(I32)

	case OpI32Const:
		d.pushOpds(I32)
	case OpI64Const:
		d.pushOpds(I64)
	case OpF32Const:
		d.pushOpds(wasm.ValueTypeF32)
	case OpF64Const:
		d.pushOpds(wasm.ValueTypeF64)

	case OpRefNull:
		d.pushOpds(i.ValueType())

	case OpRefIsNull:
		t, err := d.popOpd()
		if err != nil {
			return false, err
		}
		if t != wasm.ValueTypeT && !isReference(t) {
			return false, wasm.ValidationError("ref.is_null requires a reference operand")
		}
		d.pushOpds(I32)

	case OpRefFunc:
		if _, ok := d.GetFunctionSignature(i.Funcidx()); !ok {
			return false, wasm.ValidationError("unknown function")
		}
		d.pushOpds(wasm.ValueTypeFuncref)

	case OpPrefix:
		return false, d.validatePrefix(i)

	default:
		if !isMemoryAccess(i.Opcode) {
			return false, fmt.Errorf("%w: opcode 0x%02x", ErrInvalidInstruction, i.Opcode)
		}
		if !d.HasMemory(0) {
			return false, wasm.ValidationError("unknown memory")
		}
		if _, align := i.Memarg(); align > naturalAlignment(i.Opcode) {
			return false, wasm.ValidationError("alignment must not be larger than natural")
		}

		t := memoryType(i.Opcode)
		if i.Opcode >= OpI32Store {
			return false, d.popOpds(I32, t)
		}
		if err := d.popOpds(I32); err != nil {
			return false, err
		}
		d.pushOpds(t)
	}

	return false, nil
}

func (d *decoder) call(tail bool, sig wasm.FunctionSig, indirect bool) error {
	if indirect {
		if err := d.popOpds(wasm.ValueTypeI32); err != nil {
			return err
		}
	}
	if err := d.popOpds(sig.ParamTypes...); err != nil {
		return err
	}
	if tail {
		if !sameTypes(sig.ReturnTypes, d.blocks[0].out) {
			return wasm.ValidationError("tail call result types must match the caller's")
		}
		d.unreachable()
		return nil
	}
	d.pushOpds(sig.ReturnTypes...)
	return nil
}

func (d *decoder) validatePrefix(i *Instruction) error {
	const I32 = wasm.ValueTypeI32

	if i.Subop < uint32(len(saturatingTypes)) {
		sig := &saturatingTypes[i.Subop]
		if err := d.popOpds(sig.pop...); err != nil {
			return err
		}
		d.pushOpds(sig.push)
		return nil
	}

	switch i.Subop {
	case OpMemoryInit, OpMemoryCopy, OpMemoryFill:
		if !d.HasMemory(0) {
			return wasm.ValidationError("unknown memory")
		}
		if i.Subop == OpMemoryInit && !d.HasDataSegment(i.Dataidx()) {
			return wasm.ValidationError("unknown data segment")
		}
		return d.popOpds(I32, I32, I32)

	case OpDataDrop:
		if !d.HasDataSegment(i.Dataidx()) {
			return wasm.ValidationError("unknown data segment")
		}

	case OpTableInit:
		if _, ok := d.GetTable(i.Tableidx()); !ok {
			return wasm.ValidationError("unknown table")
		}
		if !d.HasElementSegment(i.Elemidx()) {
			return wasm.ValidationError("unknown element segment")
		}
		return d.popOpds(I32, I32, I32)

	case OpElemDrop:
		if !d.HasElementSegment(i.Elemidx()) {
			return wasm.ValidationError("unknown element segment")
		}

	case OpTableCopy:
		dst, ok := d.GetTable(i.Tableidx())
		if !ok {
			return wasm.ValidationError("unknown table")
		}
		src, ok := d.GetTable(i.SrcTableidx())
		if !ok {
			return wasm.ValidationError("unknown table")
		}
		if dst.ElementType != src.ElementType {
			return wasm.ValidationError("table.copy element type mismatch")
		}
		return d.popOpds(I32, I32, I32)

	case OpTableGrow, OpTableSize, OpTableFill:
		table, ok := d.GetTable(i.Tableidx())
		if !ok {
			return wasm.ValidationError("unknown table")
		}
		switch i.Subop {
		case OpTableGrow:
			if err := d.popOpds(table.ElementType, I32); err != nil {
				return err
			}
			d.pushOpds(I32)
		case OpTableSize:
			d.pushOpds(I32)
		default:
			return d.popOpds(I32, table.ElementType, I32)
		}

	default:
		return fmt.Errorf("%w: opcode 0xfc %d", ErrInvalidInstruction, i.Subop)
	}
	return nil
}

func (d *decoder) decodeInstruction(body []byte) (Instruction, []byte, error) {
	if len(body) == 0 {
		return Instruction{}, nil, io.ErrUnexpectedEOF
	}

	instr := Instruction{Opcode: body[0]}
	body = body[1:]

	var err error
	switch instr.Opcode {
	case OpBlock, OpLoop, OpIf:
		if instr.Immediate, body, err = decodeBlockType(body); err != nil {
			return Instruction{}, nil, err
		}
		if d.keep {
			switch instr.Opcode {
			case OpLoop:
				instr.Labels = []int{d.ip}
			case OpIf:
				instr.Labels = []int{0, 0}
			default:
				instr.Labels = []int{0}
			}
		}

	case OpElse:
		if d.keep {
			instr.Labels = []int{0}
		}

	case OpBr, OpBrIf, OpCall, OpReturnCall, OpLocalGet, OpLocalSet, OpLocalTee, OpGlobalGet, OpGlobalSet, OpRefFunc:
		var index uint32
		if index, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		instr.Immediate = uint64(index)

	case OpTableGet, OpTableSet:
		var index uint32
		if index, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		instr.Immediate = uint64(index) << 32

	case OpBrTable:
		var count uint32
		if count, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		if int(count) > len(body) {
			return Instruction{}, nil, io.ErrUnexpectedEOF
		}

		instr.Labels = make([]int, int(count))
		for n := range instr.Labels {
			var label uint32
			if label, body, err = getIndex(body); err != nil {
				return Instruction{}, nil, err
			}
			instr.Labels[n] = int(label)
		}

		var defaultLabel uint32
		if defaultLabel, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		instr.Immediate = uint64(defaultLabel)

	case OpCallIndirect, OpReturnCallIndirect:
		var typeidx, tableidx uint32
		if typeidx, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		if tableidx, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		if tableidx != 0 && !d.features.ReferenceTypes {
			return Instruction{}, nil, fmt.Errorf("%w: zero byte expected", ErrInvalidInstruction)
		}
		instr.Immediate = uint64(tableidx)<<32 | uint64(typeidx)

	case OpSelectT:
		var count uint32
		if count, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		if count != 1 {
			return Instruction{}, nil, wasm.ValidationError("invalid result arity")
		}
		var t wasm.ValueType
		if t, body, err = getValueType(body); err != nil {
			return Instruction{}, nil, err
		}
		instr.Immediate = uint64(uint8(t))

	case OpMemorySize, OpMemoryGrow:
		if body, err = getReserved(body, 1); err != nil {
			return Instruction{}, nil, err
		}

	case OpI32Const:
		value, read, err := leb128.GetVarint32(body)
		if err != nil {
			return Instruction{}, nil, err
		}
		instr.Immediate, body = uint64(value), body[read:]

	case OpI64Const:
		value, read, err := leb128.GetVarint64(body)
		if err != nil {
			return Instruction{}, nil, err
		}
		instr.Immediate, body = uint64(value), body[read:]

	case OpF32Const:
		if len(body) < 4 {
			return Instruction{}, nil, io.ErrUnexpectedEOF
		}
		instr.Immediate, body = uint64(binary.LittleEndian.Uint32(body)), body[4:]

	case OpF64Const:
		if len(body) < 8 {
			return Instruction{}, nil, io.ErrUnexpectedEOF
		}
		instr.Immediate, body = binary.LittleEndian.Uint64(body), body[8:]

	case OpRefNull:
		var t wasm.ValueType
		if t, body, err = getValueType(body); err != nil {
			return Instruction{}, nil, err
		}
		if !isReference(t) {
			return Instruction{}, nil, fmt.Errorf("%w: ref.null %v", ErrInvalidInstruction, t)
		}
		instr.Immediate = uint64(uint8(t))

	case OpPrefix:
		if instr.Subop, body, err = getIndex(body); err != nil {
			return Instruction{}, nil, err
		}
		if body, err = d.decodePrefixImmediates(&instr, body); err != nil {
			return Instruction{}, nil, err
		}

	default:
		if isMemoryAccess(instr.Opcode) {
			var align, offset uint32
			if align, body, err = getIndex(body); err != nil {
				return Instruction{}, nil, err
			}
			if offset, body, err = getIndex(body); err != nil {
				return Instruction{}, nil, err
			}
			instr.Immediate = memarg(offset, align)
		} else if OpName(instr.Opcode) == "" {
			return Instruction{}, nil, fmt.Errorf("%w: opcode 0x%02x", ErrInvalidInstruction, instr.Opcode)
		}
	}

	return instr, body, nil
}

func (d *decoder) decodePrefixImmediates(instr *Instruction, body []byte) ([]byte, error) {
	var err error
	var a, b uint32
	switch instr.Subop {
	case OpI32TruncSatF32S, OpI32TruncSatF32U, OpI32TruncSatF64S, OpI32TruncSatF64U,
		OpI64TruncSatF32S, OpI64TruncSatF32U, OpI64TruncSatF64S, OpI64TruncSatF64U:
		return body, nil
	case OpMemoryInit:
		if a, body, err = getIndex(body); err != nil {
			return nil, err
		}
		instr.Immediate = uint64(a)
		return getReserved(body, 1)
	case OpDataDrop, OpElemDrop:
		if a, body, err = getIndex(body); err != nil {
			return nil, err
		}
		instr.Immediate = uint64(a)
		return body, nil
	case OpMemoryCopy:
		return getReserved(body, 2)
	case OpMemoryFill:
		return getReserved(body, 1)
	case OpTableInit, OpTableCopy:
		if a, body, err = getIndex(body); err != nil {
			return nil, err
		}
		if b, body, err = getIndex(body); err != nil {
			return nil, err
		}
		if instr.Subop == OpTableInit {
			// elemidx tableidx
			instr.Immediate = uint64(b)<<32 | uint64(a)
		} else {
			// dst src
			instr.Immediate = uint64(a)<<32 | uint64(b)
		}
		return body, nil
	case OpTableGrow, OpTableSize, OpTableFill:
		if a, body, err = getIndex(body); err != nil {
			return nil, err
		}
		instr.Immediate = uint64(a) << 32
		return body, nil
	default:
		return nil, fmt.Errorf("%w: opcode 0xfc %d", ErrInvalidInstruction, instr.Subop)
	}
}
