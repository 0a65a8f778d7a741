package code

import (
	"fmt"
	"math"
	"strings"

	"github.com/pgavlin/rwarp/wasm"
)

// Instruction is a single decoded Wasm operator. Immediate holds the operator's immediate
// fields packed into 64 bits. For 0xfc-prefixed operators, Subop holds the sub-opcode.
// Labels holds branch targets for br_table and, for fully decoded bodies, the continuation
// targets of structured control instructions.
type Instruction struct {
	Opcode    byte   `json:"opcode"`
	Subop     uint32 `json:"subop,omitempty"`
	Immediate uint64 `json:"immediate"`
	Labels    []int  `json:"labels,omitempty"`
}

func (i *Instruction) Continuation() int {
	return i.Labels[0]
}

func (i *Instruction) Else() int {
	return i.Labels[1]
}

func (i *Instruction) StackHeight() int {
	return int((i.Immediate & StackHeightMask) >> 32)
}

func (i *Instruction) Default() int {
	return int(i.Immediate)
}

func (i *Instruction) Labelidx() int {
	return int(i.Immediate)
}

func (i *Instruction) Funcidx() uint32 {
	return uint32(i.Immediate)
}

func (i *Instruction) Localidx() uint32 {
	return uint32(i.Immediate)
}

func (i *Instruction) Globalidx() uint32 {
	return uint32(i.Immediate)
}

func (i *Instruction) Typeidx() uint32 {
	return uint32(i.Immediate)
}

// Tableidx returns the table operand of call_indirect, return_call_indirect and the table
// instructions. For table.copy this is the destination table.
func (i *Instruction) Tableidx() uint32 {
	return uint32(i.Immediate >> 32)
}

// SrcTableidx returns the source table of table.copy.
func (i *Instruction) SrcTableidx() uint32 {
	return uint32(i.Immediate)
}

func (i *Instruction) Dataidx() uint32 {
	return uint32(i.Immediate)
}

func (i *Instruction) Elemidx() uint32 {
	return uint32(i.Immediate)
}

// ValueType returns the type operand of a typed select or ref.null.
func (i *Instruction) ValueType() wasm.ValueType {
	return wasm.ValueType(int8(i.Immediate))
}

func (i *Instruction) Memarg() (offset uint32, align uint32) {
	return uint32(i.Immediate), uint32(i.Immediate >> 32)
}

func (i *Instruction) Offset() uint32 {
	return uint32(i.Immediate)
}

func (i *Instruction) I32() int32 {
	return int32(i.Immediate)
}

func (i *Instruction) I64() int64 {
	return int64(i.Immediate)
}

func (i *Instruction) F32() float32 {
	return math.Float32frombits(uint32(i.Immediate))
}

func (i *Instruction) F64() float64 {
	return math.Float64frombits(i.Immediate)
}

// IsPrefix returns true if the instruction is the 0xfc-prefixed operator with the given
// sub-opcode.
func (i *Instruction) IsPrefix(subop uint32) bool {
	return i.Opcode == OpPrefix && i.Subop == subop
}

func memarg(offset, align uint32) uint64 {
	return uint64(align)<<32 | uint64(offset)
}

func (i *Instruction) blockString(op string) string {
	switch i.Immediate & BlockTypeMask {
	case BlockTypeEmpty:
		return op
	case BlockTypeI32:
		return op + " (result i32)"
	case BlockTypeI64:
		return op + " (result i64)"
	case BlockTypeF32:
		return op + " (result f32)"
	case BlockTypeF64:
		return op + " (result f64)"
	default:
		return fmt.Sprintf("%s (type %v)", op, i.Typeidx())
	}
}

func (i *Instruction) memString(op string) string {
	var b strings.Builder
	b.WriteString(op)
	offset, align := i.Memarg()
	if offset != 0 {
		fmt.Fprintf(&b, " offset=%v", offset)
	}
	if align != 0 {
		fmt.Fprintf(&b, " align=%v", align)
	}
	return b.String()
}

func (i *Instruction) String() string {
	op := i.OpString()
	switch i.Opcode {
	case OpBlock, OpLoop, OpIf:
		return i.blockString(op)
	case OpBr, OpBrIf:
		return fmt.Sprintf("%s %d", op, i.Labelidx())
	case OpBrTable:
		var b strings.Builder
		b.WriteString(op)
		for _, l := range i.Labels {
			fmt.Fprintf(&b, " %d", l)
		}
		fmt.Fprintf(&b, " %d", i.Default())
		return b.String()
	case OpCall, OpReturnCall, OpRefFunc:
		return fmt.Sprintf("%s %d", op, i.Funcidx())
	case OpCallIndirect, OpReturnCallIndirect:
		if t := i.Tableidx(); t != 0 {
			return fmt.Sprintf("%s %d (type %v)", op, t, i.Typeidx())
		}
		return fmt.Sprintf("%s (type %v)", op, i.Typeidx())
	case OpSelectT:
		return fmt.Sprintf("%s (result %v)", op, i.ValueType())
	case OpRefNull:
		return fmt.Sprintf("%s %v", op, i.ValueType())
	case OpLocalGet, OpLocalSet, OpLocalTee:
		return fmt.Sprintf("%s %v", op, i.Localidx())
	case OpGlobalGet, OpGlobalSet:
		return fmt.Sprintf("%s %v", op, i.Globalidx())
	case OpTableGet, OpTableSet:
		return fmt.Sprintf("%s %v", op, i.Tableidx())
	case OpI32Const:
		return fmt.Sprintf("%s %d", op, i.I32())
	case OpI64Const:
		return fmt.Sprintf("%s %d", op, i.I64())
	case OpF32Const:
		return fmt.Sprintf("%s %g", op, i.F32())
	case OpF64Const:
		return fmt.Sprintf("%s %g", op, i.F64())
	case OpPrefix:
		switch i.Subop {
		case OpMemoryInit, OpDataDrop:
			return fmt.Sprintf("%s %d", op, i.Dataidx())
		case OpElemDrop:
			return fmt.Sprintf("%s %d", op, i.Elemidx())
		case OpTableInit:
			return fmt.Sprintf("%s %d %d", op, i.Tableidx(), i.Elemidx())
		case OpTableCopy:
			return fmt.Sprintf("%s %d %d", op, i.Tableidx(), i.SrcTableidx())
		case OpTableGrow, OpTableSize, OpTableFill:
			return fmt.Sprintf("%s %d", op, i.Tableidx())
		}
		return op
	}
	if isMemoryAccess(i.Opcode) {
		return i.memString(op)
	}
	return op
}

// OpString returns the text-format name of the instruction's operator.
func (i *Instruction) OpString() string {
	var name string
	if i.Opcode == OpPrefix {
		name = PrefixName(i.Subop)
	} else {
		name = OpName(i.Opcode)
	}
	if name == "" {
		return "invalid"
	}
	return name
}

func isMemoryAccess(opcode byte) bool {
	return opcode >= OpI32Load && opcode <= OpI64Store32
}

// naturalAlignment returns the log2 of the access width of a load or store.
func naturalAlignment(opcode byte) uint32 {
	switch opcode {
	case OpI32Load8S, OpI32Load8U, OpI64Load8S, OpI64Load8U, OpI32Store8, OpI64Store8:
		return 0
	case OpI32Load16S, OpI32Load16U, OpI64Load16S, OpI64Load16U, OpI32Store16, OpI64Store16:
		return 1
	case OpI32Load, OpF32Load, OpI64Load32S, OpI64Load32U, OpI32Store, OpF32Store, OpI64Store32:
		return 2
	default:
		return 3
	}
}
