package code

import (
	"encoding/binary"
	"io"

	"github.com/pgavlin/rwarp/wasm/leb128"
)

func appendBlockType(b []byte, instr Instruction) []byte {
	blockType := instr.Immediate & BlockTypeMask
	if blockType&BlockTypeSpecial != 0 {
		return append(b, byte(blockType))
	}
	return leb128.AppendVarint64(b, int64(uint32(blockType)))
}

func appendIndex(b []byte, index uint32) []byte {
	return leb128.AppendVarUint32(b, index)
}

func appendInstruction(b []byte, instr Instruction) []byte {
	b = append(b, instr.Opcode)

	switch instr.Opcode {
	case OpBlock, OpLoop, OpIf:
		return appendBlockType(b, instr)

	case OpBr, OpBrIf, OpCall, OpReturnCall, OpLocalGet, OpLocalSet, OpLocalTee, OpGlobalGet, OpGlobalSet, OpRefFunc:
		return appendIndex(b, uint32(instr.Immediate))

	case OpTableGet, OpTableSet:
		return appendIndex(b, instr.Tableidx())

	case OpBrTable:
		b = appendIndex(b, uint32(len(instr.Labels)))
		for _, l := range instr.Labels {
			b = appendIndex(b, uint32(l))
		}
		return appendIndex(b, uint32(instr.Default()))

	case OpCallIndirect, OpReturnCallIndirect:
		b = appendIndex(b, instr.Typeidx())
		return appendIndex(b, instr.Tableidx())

	case OpSelectT:
		b = appendIndex(b, 1)
		return append(b, byte(instr.ValueType())&0x7f)

	case OpMemorySize, OpMemoryGrow:
		return append(b, 0x00)

	case OpI32Const:
		return leb128.AppendVarint64(b, int64(instr.I32()))

	case OpI64Const:
		return leb128.AppendVarint64(b, instr.I64())

	case OpF32Const:
		return binary.LittleEndian.AppendUint32(b, uint32(instr.Immediate))

	case OpF64Const:
		return binary.LittleEndian.AppendUint64(b, instr.Immediate)

	case OpRefNull:
		return append(b, byte(instr.ValueType())&0x7f)

	case OpPrefix:
		b = appendIndex(b, instr.Subop)
		switch instr.Subop {
		case OpMemoryInit:
			return append(appendIndex(b, instr.Dataidx()), 0x00)
		case OpDataDrop:
			return appendIndex(b, instr.Dataidx())
		case OpMemoryCopy:
			return append(b, 0x00, 0x00)
		case OpMemoryFill:
			return append(b, 0x00)
		case OpTableInit:
			return appendIndex(appendIndex(b, instr.Elemidx()), instr.Tableidx())
		case OpElemDrop:
			return appendIndex(b, instr.Elemidx())
		case OpTableCopy:
			return appendIndex(appendIndex(b, instr.Tableidx()), instr.SrcTableidx())
		case OpTableGrow, OpTableSize, OpTableFill:
			return appendIndex(b, instr.Tableidx())
		}
		return b

	default:
		if isMemoryAccess(instr.Opcode) {
			offset, align := instr.Memarg()
			return appendIndex(appendIndex(b, align), offset)
		}
		return b
	}
}

// Encode writes the binary form of a function body's instructions to w. The body must end
// with the function's final end instruction.
func Encode(w io.Writer, body []Instruction) error {
	if len(body) == 0 || body[len(body)-1].Opcode != OpEnd {
		return io.ErrUnexpectedEOF
	}

	var buf []byte
	for _, instr := range body {
		buf = appendInstruction(buf, instr)
	}
	_, err := w.Write(buf)
	return err
}
