package code

import (
	"fmt"
	"io"

	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/leb128"
)

// A block type immediate is either a type index or one of the single-byte encodings tagged with
// BlockTypeSpecial. The validator stores the operand stack height at block entry in the bits
// covered by StackHeightMask.
const (
	BlockTypeSpecial = 0x8000000000000000
	BlockTypeMask    = 0x80000000ffffffff
	StackHeightMask  = 0x7fffffff00000000

	BlockTypeEmpty = 0x40 | BlockTypeSpecial
	BlockTypeI32   = 0x7f | BlockTypeSpecial
	BlockTypeI64   = 0x7e | BlockTypeSpecial
	BlockTypeF32   = 0x7d | BlockTypeSpecial
	BlockTypeF64   = 0x7c | BlockTypeSpecial
)

// BlockType returns the block type immediate that refers to the function type typeidx.
func BlockType(typeidx uint32) uint64 {
	return uint64(typeidx)
}

// ValueBlockType returns the block type immediate for a block with no parameters and a single
// result of type t.
func ValueBlockType(t wasm.ValueType) (uint64, bool) {
	switch t {
	case wasm.ValueTypeI32:
		return BlockTypeI32, true
	case wasm.ValueTypeI64:
		return BlockTypeI64, true
	case wasm.ValueTypeF32:
		return BlockTypeF32, true
	case wasm.ValueTypeF64:
		return BlockTypeF64, true
	default:
		return 0, false
	}
}

func decodeBlockType(body []byte) (uint64, []byte, error) {
	if len(body) == 0 {
		return 0, nil, io.ErrUnexpectedEOF
	}

	if _, ok := resultTypes(uint64(body[0]) | BlockTypeSpecial); ok {
		return uint64(body[0]) | BlockTypeSpecial, body[1:], nil
	}

	index, read, err := leb128.GetVarint64(body)
	if err != nil {
		return 0, nil, err
	}
	if index < 0 || index > 0xffffffff {
		return 0, nil, fmt.Errorf("%w: block type %d", ErrInvalidInstruction, index)
	}
	return uint64(index), body[read:], nil
}

// resultTypes returns the results of a single-byte block type.
func resultTypes(blockType uint64) ([]wasm.ValueType, bool) {
	switch blockType & BlockTypeMask {
	case BlockTypeEmpty:
		return nil, true
	case BlockTypeI32:
		return []wasm.ValueType{wasm.ValueTypeI32}, true
	case BlockTypeI64:
		return []wasm.ValueType{wasm.ValueTypeI64}, true
	case BlockTypeF32:
		return []wasm.ValueType{wasm.ValueTypeF32}, true
	case BlockTypeF64:
		return []wasm.ValueType{wasm.ValueTypeF64}, true
	default:
		return nil, false
	}
}

// BlockType resolves the parameter and result types of a block, loop or if. It returns false if
// the immediate names an unknown type or an unsupported single-byte encoding.
func (i *Instruction) BlockType(scope Scope) (in, out []wasm.ValueType, ok bool) {
	if i.Immediate&BlockTypeSpecial != 0 {
		out, ok := resultTypes(i.Immediate)
		return nil, out, ok
	}

	sig, ok := scope.GetType(i.Typeidx())
	if !ok {
		return nil, nil, false
	}
	return sig.ParamTypes, sig.ReturnTypes, true
}
