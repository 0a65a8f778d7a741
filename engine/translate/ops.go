package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
	"github.com/pgavlin/rwarp/wasm/code"
)

// A handler translates a single operator.
type handler func(t *FuncTranslator, instr *code.Instruction) error

var (
	handlers       [256]handler
	prefixHandlers [code.OpTableFill + 1]handler
)

// reachable wraps a handler so that it is skipped in unreachable code. Structured control
// operators are not wrapped: they must be seen in order to find the end of dead code.
func reachable(h handler) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		if t.reach == Unreachable {
			return nil
		}
		return h(t, instr)
	}
}

func binary(op *binaryOp) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		return t.translateBinary(op)
	}
}

func shift(op *shiftOp) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		return t.translateShift(op)
	}
}

func copysign(op *copysignOp) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		return t.translateCopysign(op)
	}
}

func unary(eval numeric.UnaryFunc, op bytecode.Opcode) handler {
	u := &unaryOp{eval: eval, op: op}
	return func(t *FuncTranslator, instr *code.Instruction) error {
		return t.translateUnary(u)
	}
}

func reinterpret(eval numeric.UnaryFunc) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		return t.translateReinterpret(eval)
	}
}

func eqz(eq *binaryOp, zero numeric.Value) handler {
	return func(t *FuncTranslator, instr *code.Instruction) error {
		return t.translateEqz(eq, zero)
	}
}

// constValue returns the value of a constant operator.
func constValue(instr *code.Instruction) numeric.Value {
	switch instr.Opcode {
	case code.OpI32Const:
		return numeric.I32(instr.I32())
	case code.OpI64Const:
		return numeric.I64(instr.I64())
	case code.OpF32Const:
		return numeric.F32Bits(uint32(instr.Immediate))
	default:
		return numeric.F64Bits(instr.Immediate)
	}
}

func init() {
	// Structured control.
	handlers[code.OpBlock] = visitBlock
	handlers[code.OpLoop] = visitBlock
	handlers[code.OpIf] = visitBlock
	handlers[code.OpElse] = visitElse
	handlers[code.OpEnd] = visitEnd

	ops := map[byte]handler{
		code.OpUnreachable:        visitUnreachable,
		code.OpNop:                visitNop,
		code.OpBr:                 visitBr,
		code.OpBrIf:               visitBrIf,
		code.OpBrTable:            visitBrTable,
		code.OpReturn:             visitReturn,
		code.OpCall:               visitCall,
		code.OpCallIndirect:       visitCallIndirect,
		code.OpReturnCall:         visitCall,
		code.OpReturnCallIndirect: visitCallIndirect,
		code.OpDrop:               visitDrop,
		code.OpSelect:             visitSelect,
		code.OpSelectT:            visitSelect,

		code.OpLocalGet:  visitLocalGet,
		code.OpLocalSet:  visitLocalSet,
		code.OpLocalTee:  visitLocalTee,
		code.OpGlobalGet: visitGlobalGet,
		code.OpGlobalSet: visitGlobalSet,
		code.OpTableGet:  visitTableAccess,
		code.OpTableSet:  visitTableAccess,

		code.OpI32Load:    load(bytecode.OpI32Load),
		code.OpI64Load:    load(bytecode.OpI64Load),
		code.OpF32Load:    load(bytecode.OpF32Load),
		code.OpF64Load:    load(bytecode.OpF64Load),
		code.OpI32Load8S:  load(bytecode.OpI32Load8S),
		code.OpI32Load8U:  load(bytecode.OpI32Load8U),
		code.OpI32Load16S: load(bytecode.OpI32Load16S),
		code.OpI32Load16U: load(bytecode.OpI32Load16U),
		code.OpI64Load8S:  load(bytecode.OpI64Load8S),
		code.OpI64Load8U:  load(bytecode.OpI64Load8U),
		code.OpI64Load16S: load(bytecode.OpI64Load16S),
		code.OpI64Load16U: load(bytecode.OpI64Load16U),
		code.OpI64Load32S: load(bytecode.OpI64Load32S),
		code.OpI64Load32U: load(bytecode.OpI64Load32U),
		code.OpI32Store:   store(bytecode.OpI32Store),
		code.OpI64Store:   store(bytecode.OpI64Store),
		code.OpF32Store:   store(bytecode.OpF32Store),
		code.OpF64Store:   store(bytecode.OpF64Store),
		code.OpI32Store8:  store(bytecode.OpI32Store8),
		code.OpI32Store16: store(bytecode.OpI32Store16),
		code.OpI64Store8:  store(bytecode.OpI64Store8),
		code.OpI64Store16: store(bytecode.OpI64Store16),
		code.OpI64Store32: store(bytecode.OpI64Store32),
		code.OpMemorySize: visitMemorySize,
		code.OpMemoryGrow: visitMemoryGrow,

		code.OpI32Const: visitConst,
		code.OpI64Const: visitConst,
		code.OpF32Const: visitConst,
		code.OpF64Const: visitConst,

		code.OpI32Eqz: eqz(i32Eq, i32Consts.zero),
		code.OpI32Eq:  binary(i32Eq),
		code.OpI32Ne:  binary(i32Ne),
		code.OpI32LtS: binary(i32LtS),
		code.OpI32LtU: binary(i32LtU),
		code.OpI32GtS: binary(i32GtS),
		code.OpI32GtU: binary(i32GtU),
		code.OpI32LeS: binary(i32LeS),
		code.OpI32LeU: binary(i32LeU),
		code.OpI32GeS: binary(i32GeS),
		code.OpI32GeU: binary(i32GeU),

		code.OpI64Eqz: eqz(i64Eq, i64Consts.zero),
		code.OpI64Eq:  binary(i64Eq),
		code.OpI64Ne:  binary(i64Ne),
		code.OpI64LtS: binary(i64LtS),
		code.OpI64LtU: binary(i64LtU),
		code.OpI64GtS: binary(i64GtS),
		code.OpI64GtU: binary(i64GtU),
		code.OpI64LeS: binary(i64LeS),
		code.OpI64LeU: binary(i64LeU),
		code.OpI64GeS: binary(i64GeS),
		code.OpI64GeU: binary(i64GeU),

		code.OpF32Eq: binary(f32Eq),
		code.OpF32Ne: binary(f32Ne),
		code.OpF32Lt: binary(f32Lt),
		code.OpF32Gt: binary(f32Gt),
		code.OpF32Le: binary(f32Le),
		code.OpF32Ge: binary(f32Ge),
		code.OpF64Eq: binary(f64Eq),
		code.OpF64Ne: binary(f64Ne),
		code.OpF64Lt: binary(f64Lt),
		code.OpF64Gt: binary(f64Gt),
		code.OpF64Le: binary(f64Le),
		code.OpF64Ge: binary(f64Ge),

		code.OpI32Clz:    unary(numeric.I32Clz, bytecode.OpI32Clz),
		code.OpI32Ctz:    unary(numeric.I32Ctz, bytecode.OpI32Ctz),
		code.OpI32Popcnt: unary(numeric.I32Popcnt, bytecode.OpI32Popcnt),
		code.OpI32Add:    binary(i32Add),
		code.OpI32Sub:    binary(i32Sub),
		code.OpI32Mul:    binary(i32Mul),
		code.OpI32DivS:   binary(i32DivS),
		code.OpI32DivU:   binary(i32DivU),
		code.OpI32RemS:   binary(i32RemS),
		code.OpI32RemU:   binary(i32RemU),
		code.OpI32And:    binary(i32And),
		code.OpI32Or:     binary(i32Or),
		code.OpI32Xor:    binary(i32Xor),
		code.OpI32Shl:    shift(i32Shl),
		code.OpI32ShrS:   shift(i32ShrS),
		code.OpI32ShrU:   shift(i32ShrU),
		code.OpI32Rotl:   shift(i32Rotl),
		code.OpI32Rotr:   shift(i32Rotr),

		code.OpI64Clz:    unary(numeric.I64Clz, bytecode.OpI64Clz),
		code.OpI64Ctz:    unary(numeric.I64Ctz, bytecode.OpI64Ctz),
		code.OpI64Popcnt: unary(numeric.I64Popcnt, bytecode.OpI64Popcnt),
		code.OpI64Add:    binary(i64Add),
		code.OpI64Sub:    binary(i64Sub),
		code.OpI64Mul:    binary(i64Mul),
		code.OpI64DivS:   binary(i64DivS),
		code.OpI64DivU:   binary(i64DivU),
		code.OpI64RemS:   binary(i64RemS),
		code.OpI64RemU:   binary(i64RemU),
		code.OpI64And:    binary(i64And),
		code.OpI64Or:     binary(i64Or),
		code.OpI64Xor:    binary(i64Xor),
		code.OpI64Shl:    shift(i64Shl),
		code.OpI64ShrS:   shift(i64ShrS),
		code.OpI64ShrU:   shift(i64ShrU),
		code.OpI64Rotl:   shift(i64Rotl),
		code.OpI64Rotr:   shift(i64Rotr),

		code.OpF32Abs:      unary(numeric.F32Abs, bytecode.OpF32Abs),
		code.OpF32Neg:      unary(numeric.F32Neg, bytecode.OpF32Neg),
		code.OpF32Ceil:     unary(numeric.F32Ceil, bytecode.OpF32Ceil),
		code.OpF32Floor:    unary(numeric.F32Floor, bytecode.OpF32Floor),
		code.OpF32Trunc:    unary(numeric.F32Trunc, bytecode.OpF32Trunc),
		code.OpF32Nearest:  unary(numeric.F32Nearest, bytecode.OpF32Nearest),
		code.OpF32Sqrt:     unary(numeric.F32Sqrt, bytecode.OpF32Sqrt),
		code.OpF32Add:      binary(f32Add),
		code.OpF32Sub:      binary(f32Sub),
		code.OpF32Mul:      binary(f32Mul),
		code.OpF32Div:      binary(f32Div),
		code.OpF32Min:      binary(f32Min),
		code.OpF32Max:      binary(f32Max),
		code.OpF32Copysign: copysign(f32Copysign),

		code.OpF64Abs:      unary(numeric.F64Abs, bytecode.OpF64Abs),
		code.OpF64Neg:      unary(numeric.F64Neg, bytecode.OpF64Neg),
		code.OpF64Ceil:     unary(numeric.F64Ceil, bytecode.OpF64Ceil),
		code.OpF64Floor:    unary(numeric.F64Floor, bytecode.OpF64Floor),
		code.OpF64Trunc:    unary(numeric.F64Trunc, bytecode.OpF64Trunc),
		code.OpF64Nearest:  unary(numeric.F64Nearest, bytecode.OpF64Nearest),
		code.OpF64Sqrt:     unary(numeric.F64Sqrt, bytecode.OpF64Sqrt),
		code.OpF64Add:      binary(f64Add),
		code.OpF64Sub:      binary(f64Sub),
		code.OpF64Mul:      binary(f64Mul),
		code.OpF64Div:      binary(f64Div),
		code.OpF64Min:      binary(f64Min),
		code.OpF64Max:      binary(f64Max),
		code.OpF64Copysign: copysign(f64Copysign),

		code.OpI32WrapI64:        unary(numeric.I32WrapI64, bytecode.OpI32WrapI64),
		code.OpI32TruncF32S:      unary(numeric.I32TruncF32S, bytecode.OpI32TruncF32S),
		code.OpI32TruncF32U:      unary(numeric.I32TruncF32U, bytecode.OpI32TruncF32U),
		code.OpI32TruncF64S:      unary(numeric.I32TruncF64S, bytecode.OpI32TruncF64S),
		code.OpI32TruncF64U:      unary(numeric.I32TruncF64U, bytecode.OpI32TruncF64U),
		code.OpI64ExtendI32S:     unary(numeric.I64ExtendI32S, bytecode.OpI64ExtendI32S),
		code.OpI64ExtendI32U:     unary(numeric.I64ExtendI32U, bytecode.OpI64ExtendI32U),
		code.OpI64TruncF32S:      unary(numeric.I64TruncF32S, bytecode.OpI64TruncF32S),
		code.OpI64TruncF32U:      unary(numeric.I64TruncF32U, bytecode.OpI64TruncF32U),
		code.OpI64TruncF64S:      unary(numeric.I64TruncF64S, bytecode.OpI64TruncF64S),
		code.OpI64TruncF64U:      unary(numeric.I64TruncF64U, bytecode.OpI64TruncF64U),
		code.OpF32ConvertI32S:    unary(numeric.F32ConvertI32S, bytecode.OpF32ConvertI32S),
		code.OpF32ConvertI32U:    unary(numeric.F32ConvertI32U, bytecode.OpF32ConvertI32U),
		code.OpF32ConvertI64S:    unary(numeric.F32ConvertI64S, bytecode.OpF32ConvertI64S),
		code.OpF32ConvertI64U:    unary(numeric.F32ConvertI64U, bytecode.OpF32ConvertI64U),
		code.OpF32DemoteF64:      unary(numeric.F32DemoteF64, bytecode.OpF32DemoteF64),
		code.OpF64ConvertI32S:    unary(numeric.F64ConvertI32S, bytecode.OpF64ConvertI32S),
		code.OpF64ConvertI32U:    unary(numeric.F64ConvertI32U, bytecode.OpF64ConvertI32U),
		code.OpF64ConvertI64S:    unary(numeric.F64ConvertI64S, bytecode.OpF64ConvertI64S),
		code.OpF64ConvertI64U:    unary(numeric.F64ConvertI64U, bytecode.OpF64ConvertI64U),
		code.OpF64PromoteF32:     unary(numeric.F64PromoteF32, bytecode.OpF64PromoteF32),
		code.OpI32ReinterpretF32: reinterpret(numeric.I32ReinterpretF32),
		code.OpI64ReinterpretF64: reinterpret(numeric.I64ReinterpretF64),
		code.OpF32ReinterpretI32: reinterpret(numeric.F32ReinterpretI32),
		code.OpF64ReinterpretI64: reinterpret(numeric.F64ReinterpretI64),

		code.OpI32Extend8S:  unary(numeric.I32Extend8S, bytecode.OpI32Extend8S),
		code.OpI32Extend16S: unary(numeric.I32Extend16S, bytecode.OpI32Extend16S),
		code.OpI64Extend8S:  unary(numeric.I64Extend8S, bytecode.OpI64Extend8S),
		code.OpI64Extend16S: unary(numeric.I64Extend16S, bytecode.OpI64Extend16S),
		code.OpI64Extend32S: unary(numeric.I64Extend32S, bytecode.OpI64Extend32S),

		code.OpRefNull:   visitNotImplemented,
		code.OpRefIsNull: visitNotImplemented,
		code.OpRefFunc:   visitRefFunc,
	}
	for op, h := range ops {
		handlers[op] = reachable(h)
	}

	prefixOps := map[uint32]handler{
		code.OpI32TruncSatF32S: unary(numeric.I32TruncSatF32S, bytecode.OpI32TruncSatF32S),
		code.OpI32TruncSatF32U: unary(numeric.I32TruncSatF32U, bytecode.OpI32TruncSatF32U),
		code.OpI32TruncSatF64S: unary(numeric.I32TruncSatF64S, bytecode.OpI32TruncSatF64S),
		code.OpI32TruncSatF64U: unary(numeric.I32TruncSatF64U, bytecode.OpI32TruncSatF64U),
		code.OpI64TruncSatF32S: unary(numeric.I64TruncSatF32S, bytecode.OpI64TruncSatF32S),
		code.OpI64TruncSatF32U: unary(numeric.I64TruncSatF32U, bytecode.OpI64TruncSatF32U),
		code.OpI64TruncSatF64S: unary(numeric.I64TruncSatF64S, bytecode.OpI64TruncSatF64S),
		code.OpI64TruncSatF64U: unary(numeric.I64TruncSatF64U, bytecode.OpI64TruncSatF64U),

		code.OpMemoryInit: visitMemoryInit,
		code.OpDataDrop:   visitDataDrop,
		code.OpMemoryCopy: visitMemoryBulk,
		code.OpMemoryFill: visitMemoryBulk,
		code.OpTableInit:  visitTableInit,
		code.OpElemDrop:   visitElemDrop,
		code.OpTableCopy:  visitTableCopy,
		code.OpTableGrow:  visitTableAccess,
		code.OpTableSize:  visitTableAccess,
		code.OpTableFill:  visitTableAccess,
	}
	for op, h := range prefixOps {
		prefixHandlers[op] = reachable(h)
	}
}
