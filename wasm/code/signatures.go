package code

import "github.com/pgavlin/rwarp/wasm"

// opSignature is the fixed operand signature of a numeric instruction.
type opSignature struct {
	valid bool
	pop   []wasm.ValueType
	push  wasm.ValueType
}

var (
	numericTypes    [256]opSignature
	saturatingTypes [OpI64TruncSatF64U + 1]opSignature
)

func init() {
	const (
		I32 = wasm.ValueTypeI32
		I64 = wasm.ValueTypeI64
		F32 = wasm.ValueTypeF32
		F64 = wasm.ValueTypeF64
	)

	sig := func(push wasm.ValueType, pop ...wasm.ValueType) opSignature {
		return opSignature{valid: true, pop: pop, push: push}
	}
	set := func(s opSignature, ops ...byte) {
		for _, op := range ops {
			numericTypes[op] = s
		}
	}

	set(sig(I32, I32), OpI32Eqz, OpI32Clz, OpI32Ctz, OpI32Popcnt, OpI32Extend8S, OpI32Extend16S)
	set(sig(I32, I64), OpI64Eqz, OpI32WrapI64)
	set(sig(I32, I32, I32), OpI32Eq, OpI32Ne, OpI32LtS, OpI32LtU, OpI32GtS, OpI32GtU, OpI32LeS, OpI32LeU, OpI32GeS, OpI32GeU,
		OpI32Add, OpI32Sub, OpI32Mul, OpI32DivS, OpI32DivU, OpI32RemS, OpI32RemU, OpI32And, OpI32Or, OpI32Xor,
		OpI32Shl, OpI32ShrS, OpI32ShrU, OpI32Rotl, OpI32Rotr)
	set(sig(I32, I64, I64), OpI64Eq, OpI64Ne, OpI64LtS, OpI64LtU, OpI64GtS, OpI64GtU, OpI64LeS, OpI64LeU, OpI64GeS, OpI64GeU)
	set(sig(I32, F32, F32), OpF32Eq, OpF32Ne, OpF32Lt, OpF32Gt, OpF32Le, OpF32Ge)
	set(sig(I32, F64, F64), OpF64Eq, OpF64Ne, OpF64Lt, OpF64Gt, OpF64Le, OpF64Ge)

	set(sig(I64, I64), OpI64Clz, OpI64Ctz, OpI64Popcnt, OpI64Extend8S, OpI64Extend16S, OpI64Extend32S)
	set(sig(I64, I64, I64), OpI64Add, OpI64Sub, OpI64Mul, OpI64DivS, OpI64DivU, OpI64RemS, OpI64RemU, OpI64And, OpI64Or, OpI64Xor,
		OpI64Shl, OpI64ShrS, OpI64ShrU, OpI64Rotl, OpI64Rotr)
	set(sig(I64, I32), OpI64ExtendI32S, OpI64ExtendI32U)

	set(sig(F32, F32), OpF32Abs, OpF32Neg, OpF32Ceil, OpF32Floor, OpF32Trunc, OpF32Nearest, OpF32Sqrt)
	set(sig(F32, F32, F32), OpF32Add, OpF32Sub, OpF32Mul, OpF32Div, OpF32Min, OpF32Max, OpF32Copysign)
	set(sig(F64, F64), OpF64Abs, OpF64Neg, OpF64Ceil, OpF64Floor, OpF64Trunc, OpF64Nearest, OpF64Sqrt)
	set(sig(F64, F64, F64), OpF64Add, OpF64Sub, OpF64Mul, OpF64Div, OpF64Min, OpF64Max, OpF64Copysign)

	set(sig(I32, F32), OpI32TruncF32S, OpI32TruncF32U, OpI32ReinterpretF32)
	set(sig(I32, F64), OpI32TruncF64S, OpI32TruncF64U)
	set(sig(I64, F32), OpI64TruncF32S, OpI64TruncF32U)
	set(sig(I64, F64), OpI64TruncF64S, OpI64TruncF64U, OpI64ReinterpretF64)
	set(sig(F32, I32), OpF32ConvertI32S, OpF32ConvertI32U, OpF32ReinterpretI32)
	set(sig(F32, I64), OpF32ConvertI64S, OpF32ConvertI64U)
	set(sig(F32, F64), OpF32DemoteF64)
	set(sig(F64, I32), OpF64ConvertI32S, OpF64ConvertI32U)
	set(sig(F64, I64), OpF64ConvertI64S, OpF64ConvertI64U, OpF64ReinterpretI64)
	set(sig(F64, F32), OpF64PromoteF32)

	saturatingTypes = [...]opSignature{
		OpI32TruncSatF32S: sig(I32, F32),
		OpI32TruncSatF32U: sig(I32, F32),
		OpI32TruncSatF64S: sig(I32, F64),
		OpI32TruncSatF64U: sig(I32, F64),
		OpI64TruncSatF32S: sig(I64, F32),
		OpI64TruncSatF32U: sig(I64, F32),
		OpI64TruncSatF64S: sig(I64, F64),
		OpI64TruncSatF64U: sig(I64, F64),
	}
}
