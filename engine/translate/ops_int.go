package translate

import (
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
)

// Integer arithmetic, bitwise and comparison operators. Division by a register that may be zero
// is left to the executor. x / x and x % x are not simplified because they trap when x is zero.
var (
	i32Eq = &binaryOp{
		kind:    commutative,
		eval:    numeric.I32Eq,
		op:      bytecode.OpI32Eq,
		imm:     bytecode.OpI32EqImm,
		imm16:   bytecode.OpI32EqImm16,
		sameReg: sameRegIs(valueTrue),
	}
	i32Ne = &binaryOp{
		kind:    commutative,
		eval:    numeric.I32Ne,
		op:      bytecode.OpI32Ne,
		imm:     bytecode.OpI32NeImm,
		imm16:   bytecode.OpI32NeImm16,
		sameReg: sameRegIs(valueFalse),
	}
	i32LtS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I32LtS,
		op:      bytecode.OpI32LtS,
		imm:     bytecode.OpI32LtSImm,
		imm16:   bytecode.OpI32LtSImm16,
		sameReg: sameRegIs(valueFalse),
		regImm:  regImmIs(valueFalse, i32Consts.min),
		immReg:  immRegIs(valueFalse, i32Consts.max),
	}
	i32LtU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I32LtU,
		unsigned: true,
		op:       bytecode.OpI32LtU,
		imm:      bytecode.OpI32LtUImm,
		imm16:    bytecode.OpI32LtUImm16,
		sameReg:  sameRegIs(valueFalse),
		regImm:   regImmIs(valueFalse, i32Consts.zero),
		immReg:   immRegIs(valueFalse, i32Consts.umax),
	}
	i32GtS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I32GtS,
		op:      bytecode.OpI32GtS,
		imm:     bytecode.OpI32GtSImm,
		imm16:   bytecode.OpI32GtSImm16,
		sameReg: sameRegIs(valueFalse),
		regImm:  regImmIs(valueFalse, i32Consts.max),
		immReg:  immRegIs(valueFalse, i32Consts.min),
	}
	i32GtU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I32GtU,
		unsigned: true,
		op:       bytecode.OpI32GtU,
		imm:      bytecode.OpI32GtUImm,
		imm16:    bytecode.OpI32GtUImm16,
		sameReg:  sameRegIs(valueFalse),
		regImm:   regImmIs(valueFalse, i32Consts.umax),
		immReg:   immRegIs(valueFalse, i32Consts.zero),
	}
	i32LeS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I32LeS,
		op:      bytecode.OpI32LeS,
		imm:     bytecode.OpI32LeSImm,
		imm16:   bytecode.OpI32LeSImm16,
		sameReg: sameRegIs(valueTrue),
		regImm:  regImmIs(valueTrue, i32Consts.max),
		immReg:  immRegIs(valueTrue, i32Consts.min),
	}
	i32LeU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I32LeU,
		unsigned: true,
		op:       bytecode.OpI32LeU,
		imm:      bytecode.OpI32LeUImm,
		imm16:    bytecode.OpI32LeUImm16,
		sameReg:  sameRegIs(valueTrue),
		regImm:   regImmIs(valueTrue, i32Consts.umax),
		immReg:   immRegIs(valueTrue, i32Consts.zero),
	}
	i32GeS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I32GeS,
		op:      bytecode.OpI32GeS,
		imm:     bytecode.OpI32GeSImm,
		imm16:   bytecode.OpI32GeSImm16,
		sameReg: sameRegIs(valueTrue),
		regImm:  regImmIs(valueTrue, i32Consts.min),
		immReg:  immRegIs(valueTrue, i32Consts.max),
	}
	i32GeU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I32GeU,
		unsigned: true,
		op:       bytecode.OpI32GeU,
		imm:      bytecode.OpI32GeUImm,
		imm16:    bytecode.OpI32GeUImm16,
		sameReg:  sameRegIs(valueTrue),
		regImm:   regImmIs(valueTrue, i32Consts.zero),
		immReg:   immRegIs(valueTrue, i32Consts.umax),
	}
	i32Add = &binaryOp{
		kind:   commutative,
		eval:   numeric.I32Add,
		op:     bytecode.OpI32Add,
		imm:    bytecode.OpI32AddImm,
		imm16:  bytecode.OpI32AddImm16,
		regImm: regImmIsOperand(i32Consts.zero),
	}
	i32Sub = &binaryOp{
		kind:     reversible,
		eval:     numeric.I32Sub,
		op:       bytecode.OpI32Sub,
		imm:      bytecode.OpI32SubImm,
		imm16:    bytecode.OpI32SubImm16,
		immRev:   bytecode.OpI32SubImmRev,
		imm16Rev: bytecode.OpI32SubImm16Rev,
		sameReg:  sameRegIs(i32Consts.zero),
		regImm:   regImmIsOperand(i32Consts.zero),
	}
	i32Mul = &binaryOp{
		kind:   commutative,
		eval:   numeric.I32Mul,
		op:     bytecode.OpI32Mul,
		imm:    bytecode.OpI32MulImm,
		imm16:  bytecode.OpI32MulImm16,
		regImm: regImmAny(regImmIs(i32Consts.zero, i32Consts.zero), regImmIsOperand(i32Consts.one)),
	}
	i32DivS = &binaryOp{
		kind:     reversible,
		eval:     numeric.I32DivS,
		divides:  true,
		op:       bytecode.OpI32DivS,
		imm:      bytecode.OpI32DivSImm,
		imm16:    bytecode.OpI32DivSImm16,
		immRev:   bytecode.OpI32DivSImmRev,
		imm16Rev: bytecode.OpI32DivSImm16Rev,
		regImm:   regImmIsOperand(i32Consts.one),
	}
	i32DivU = &binaryOp{
		kind:     reversible,
		eval:     numeric.I32DivU,
		unsigned: true,
		divides:  true,
		op:       bytecode.OpI32DivU,
		imm:      bytecode.OpI32DivUImm,
		imm16:    bytecode.OpI32DivUImm16,
		immRev:   bytecode.OpI32DivUImmRev,
		imm16Rev: bytecode.OpI32DivUImm16Rev,
		regImm:   regImmIsOperand(i32Consts.one),
	}
	i32RemS = &binaryOp{
		kind:     reversible,
		eval:     numeric.I32RemS,
		divides:  true,
		op:       bytecode.OpI32RemS,
		imm:      bytecode.OpI32RemSImm,
		imm16:    bytecode.OpI32RemSImm16,
		immRev:   bytecode.OpI32RemSImmRev,
		imm16Rev: bytecode.OpI32RemSImm16Rev,
		regImm:   regImmIs(i32Consts.zero, i32Consts.one, i32Consts.minusOne),
	}
	i32RemU = &binaryOp{
		kind:     reversible,
		eval:     numeric.I32RemU,
		unsigned: true,
		divides:  true,
		op:       bytecode.OpI32RemU,
		imm:      bytecode.OpI32RemUImm,
		imm16:    bytecode.OpI32RemUImm16,
		immRev:   bytecode.OpI32RemUImmRev,
		imm16Rev: bytecode.OpI32RemUImm16Rev,
		regImm:   regImmIs(i32Consts.zero, i32Consts.one),
	}
	i32And = &binaryOp{
		kind:    commutative,
		eval:    numeric.I32And,
		op:      bytecode.OpI32And,
		imm:     bytecode.OpI32AndImm,
		imm16:   bytecode.OpI32AndImm16,
		sameReg: sameRegIsOperand,
		regImm:  regImmAny(regImmIsOperand(i32Consts.minusOne), regImmIs(i32Consts.zero, i32Consts.zero)),
	}
	i32Or = &binaryOp{
		kind:    commutative,
		eval:    numeric.I32Or,
		op:      bytecode.OpI32Or,
		imm:     bytecode.OpI32OrImm,
		imm16:   bytecode.OpI32OrImm16,
		sameReg: sameRegIsOperand,
		regImm:  regImmAny(regImmIs(i32Consts.minusOne, i32Consts.minusOne), regImmIsOperand(i32Consts.zero)),
	}
	i32Xor = &binaryOp{
		kind:    commutative,
		eval:    numeric.I32Xor,
		op:      bytecode.OpI32Xor,
		imm:     bytecode.OpI32XorImm,
		imm16:   bytecode.OpI32XorImm16,
		sameReg: sameRegIs(i32Consts.zero),
		regImm:  regImmIsOperand(i32Consts.zero),
	}

	i64Eq = &binaryOp{
		kind:    commutative,
		eval:    numeric.I64Eq,
		op:      bytecode.OpI64Eq,
		imm:     bytecode.OpI64EqImm,
		imm16:   bytecode.OpI64EqImm16,
		sameReg: sameRegIs(valueTrue),
	}
	i64Ne = &binaryOp{
		kind:    commutative,
		eval:    numeric.I64Ne,
		op:      bytecode.OpI64Ne,
		imm:     bytecode.OpI64NeImm,
		imm16:   bytecode.OpI64NeImm16,
		sameReg: sameRegIs(valueFalse),
	}
	i64LtS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I64LtS,
		op:      bytecode.OpI64LtS,
		imm:     bytecode.OpI64LtSImm,
		imm16:   bytecode.OpI64LtSImm16,
		sameReg: sameRegIs(valueFalse),
		regImm:  regImmIs(valueFalse, i64Consts.min),
		immReg:  immRegIs(valueFalse, i64Consts.max),
	}
	i64LtU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I64LtU,
		unsigned: true,
		op:       bytecode.OpI64LtU,
		imm:      bytecode.OpI64LtUImm,
		imm16:    bytecode.OpI64LtUImm16,
		sameReg:  sameRegIs(valueFalse),
		regImm:   regImmIs(valueFalse, i64Consts.zero),
		immReg:   immRegIs(valueFalse, i64Consts.umax),
	}
	i64GtS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I64GtS,
		op:      bytecode.OpI64GtS,
		imm:     bytecode.OpI64GtSImm,
		imm16:   bytecode.OpI64GtSImm16,
		sameReg: sameRegIs(valueFalse),
		regImm:  regImmIs(valueFalse, i64Consts.max),
		immReg:  immRegIs(valueFalse, i64Consts.min),
	}
	i64GtU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I64GtU,
		unsigned: true,
		op:       bytecode.OpI64GtU,
		imm:      bytecode.OpI64GtUImm,
		imm16:    bytecode.OpI64GtUImm16,
		sameReg:  sameRegIs(valueFalse),
		regImm:   regImmIs(valueFalse, i64Consts.umax),
		immReg:   immRegIs(valueFalse, i64Consts.zero),
	}
	i64LeS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I64LeS,
		op:      bytecode.OpI64LeS,
		imm:     bytecode.OpI64LeSImm,
		imm16:   bytecode.OpI64LeSImm16,
		sameReg: sameRegIs(valueTrue),
		regImm:  regImmIs(valueTrue, i64Consts.max),
		immReg:  immRegIs(valueTrue, i64Consts.min),
	}
	i64LeU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I64LeU,
		unsigned: true,
		op:       bytecode.OpI64LeU,
		imm:      bytecode.OpI64LeUImm,
		imm16:    bytecode.OpI64LeUImm16,
		sameReg:  sameRegIs(valueTrue),
		regImm:   regImmIs(valueTrue, i64Consts.umax),
		immReg:   immRegIs(valueTrue, i64Consts.zero),
	}
	i64GeS = &binaryOp{
		kind:    mirrored,
		eval:    numeric.I64GeS,
		op:      bytecode.OpI64GeS,
		imm:     bytecode.OpI64GeSImm,
		imm16:   bytecode.OpI64GeSImm16,
		sameReg: sameRegIs(valueTrue),
		regImm:  regImmIs(valueTrue, i64Consts.min),
		immReg:  immRegIs(valueTrue, i64Consts.max),
	}
	i64GeU = &binaryOp{
		kind:     mirrored,
		eval:     numeric.I64GeU,
		unsigned: true,
		op:       bytecode.OpI64GeU,
		imm:      bytecode.OpI64GeUImm,
		imm16:    bytecode.OpI64GeUImm16,
		sameReg:  sameRegIs(valueTrue),
		regImm:   regImmIs(valueTrue, i64Consts.zero),
		immReg:   immRegIs(valueTrue, i64Consts.umax),
	}
	i64Add = &binaryOp{
		kind:   commutative,
		eval:   numeric.I64Add,
		op:     bytecode.OpI64Add,
		imm:    bytecode.OpI64AddImm,
		imm16:  bytecode.OpI64AddImm16,
		regImm: regImmIsOperand(i64Consts.zero),
	}
	i64Sub = &binaryOp{
		kind:     reversible,
		eval:     numeric.I64Sub,
		op:       bytecode.OpI64Sub,
		imm:      bytecode.OpI64SubImm,
		imm16:    bytecode.OpI64SubImm16,
		immRev:   bytecode.OpI64SubImmRev,
		imm16Rev: bytecode.OpI64SubImm16Rev,
		sameReg:  sameRegIs(i64Consts.zero),
		regImm:   regImmIsOperand(i64Consts.zero),
	}
	i64Mul = &binaryOp{
		kind:   commutative,
		eval:   numeric.I64Mul,
		op:     bytecode.OpI64Mul,
		imm:    bytecode.OpI64MulImm,
		imm16:  bytecode.OpI64MulImm16,
		regImm: regImmAny(regImmIs(i64Consts.zero, i64Consts.zero), regImmIsOperand(i64Consts.one)),
	}
	i64DivS = &binaryOp{
		kind:     reversible,
		eval:     numeric.I64DivS,
		divides:  true,
		op:       bytecode.OpI64DivS,
		imm:      bytecode.OpI64DivSImm,
		imm16:    bytecode.OpI64DivSImm16,
		immRev:   bytecode.OpI64DivSImmRev,
		imm16Rev: bytecode.OpI64DivSImm16Rev,
		regImm:   regImmIsOperand(i64Consts.one),
	}
	i64DivU = &binaryOp{
		kind:     reversible,
		eval:     numeric.I64DivU,
		unsigned: true,
		divides:  true,
		op:       bytecode.OpI64DivU,
		imm:      bytecode.OpI64DivUImm,
		imm16:    bytecode.OpI64DivUImm16,
		immRev:   bytecode.OpI64DivUImmRev,
		imm16Rev: bytecode.OpI64DivUImm16Rev,
		regImm:   regImmIsOperand(i64Consts.one),
	}
	i64RemS = &binaryOp{
		kind:     reversible,
		eval:     numeric.I64RemS,
		divides:  true,
		op:       bytecode.OpI64RemS,
		imm:      bytecode.OpI64RemSImm,
		imm16:    bytecode.OpI64RemSImm16,
		immRev:   bytecode.OpI64RemSImmRev,
		imm16Rev: bytecode.OpI64RemSImm16Rev,
		regImm:   regImmIs(i64Consts.zero, i64Consts.one, i64Consts.minusOne),
	}
	i64RemU = &binaryOp{
		kind:     reversible,
		eval:     numeric.I64RemU,
		unsigned: true,
		divides:  true,
		op:       bytecode.OpI64RemU,
		imm:      bytecode.OpI64RemUImm,
		imm16:    bytecode.OpI64RemUImm16,
		immRev:   bytecode.OpI64RemUImmRev,
		imm16Rev: bytecode.OpI64RemUImm16Rev,
		regImm:   regImmIs(i64Consts.zero, i64Consts.one),
	}
	i64And = &binaryOp{
		kind:    commutative,
		eval:    numeric.I64And,
		op:      bytecode.OpI64And,
		imm:     bytecode.OpI64AndImm,
		imm16:   bytecode.OpI64AndImm16,
		sameReg: sameRegIsOperand,
		regImm:  regImmAny(regImmIsOperand(i64Consts.minusOne), regImmIs(i64Consts.zero, i64Consts.zero)),
	}
	i64Or = &binaryOp{
		kind:    commutative,
		eval:    numeric.I64Or,
		op:      bytecode.OpI64Or,
		imm:     bytecode.OpI64OrImm,
		imm16:   bytecode.OpI64OrImm16,
		sameReg: sameRegIsOperand,
		regImm:  regImmAny(regImmIs(i64Consts.minusOne, i64Consts.minusOne), regImmIsOperand(i64Consts.zero)),
	}
	i64Xor = &binaryOp{
		kind:    commutative,
		eval:    numeric.I64Xor,
		op:      bytecode.OpI64Xor,
		imm:     bytecode.OpI64XorImm,
		imm16:   bytecode.OpI64XorImm16,
		sameReg: sameRegIs(i64Consts.zero),
		regImm:  regImmIsOperand(i64Consts.zero),
	}
)

// Shifts and rotates. -1 is all ones, so shifting it right arithmetically or rotating it gives
// -1 for every shift amount.
var (
	i32Shl = &shiftOp{
		eval:     numeric.I32Shl,
		op:       bytecode.OpI32Shl,
		imm:      bytecode.OpI32ShlImm,
		immRev:   bytecode.OpI32ShlImmRev,
		imm16Rev: bytecode.OpI32ShlImm16Rev,
	}
	i32ShrS = &shiftOp{
		eval:     numeric.I32ShrS,
		op:       bytecode.OpI32ShrS,
		imm:      bytecode.OpI32ShrSImm,
		immRev:   bytecode.OpI32ShrSImmRev,
		imm16Rev: bytecode.OpI32ShrSImm16Rev,
		immReg:   immRegIsImm(i32Consts.minusOne),
	}
	i32ShrU = &shiftOp{
		eval:     numeric.I32ShrU,
		op:       bytecode.OpI32ShrU,
		imm:      bytecode.OpI32ShrUImm,
		immRev:   bytecode.OpI32ShrUImmRev,
		imm16Rev: bytecode.OpI32ShrUImm16Rev,
	}
	i32Rotl = &shiftOp{
		eval:     numeric.I32Rotl,
		op:       bytecode.OpI32Rotl,
		imm:      bytecode.OpI32RotlImm,
		immRev:   bytecode.OpI32RotlImmRev,
		imm16Rev: bytecode.OpI32RotlImm16Rev,
		immReg:   immRegIsImm(i32Consts.minusOne),
	}
	i32Rotr = &shiftOp{
		eval:     numeric.I32Rotr,
		op:       bytecode.OpI32Rotr,
		imm:      bytecode.OpI32RotrImm,
		immRev:   bytecode.OpI32RotrImmRev,
		imm16Rev: bytecode.OpI32RotrImm16Rev,
		immReg:   immRegIsImm(i32Consts.minusOne),
	}

	i64Shl = &shiftOp{
		eval:     numeric.I64Shl,
		op:       bytecode.OpI64Shl,
		imm:      bytecode.OpI64ShlImm,
		immRev:   bytecode.OpI64ShlImmRev,
		imm16Rev: bytecode.OpI64ShlImm16Rev,
	}
	i64ShrS = &shiftOp{
		eval:     numeric.I64ShrS,
		op:       bytecode.OpI64ShrS,
		imm:      bytecode.OpI64ShrSImm,
		immRev:   bytecode.OpI64ShrSImmRev,
		imm16Rev: bytecode.OpI64ShrSImm16Rev,
		immReg:   immRegIsImm(i64Consts.minusOne),
	}
	i64ShrU = &shiftOp{
		eval:     numeric.I64ShrU,
		op:       bytecode.OpI64ShrU,
		imm:      bytecode.OpI64ShrUImm,
		immRev:   bytecode.OpI64ShrUImmRev,
		imm16Rev: bytecode.OpI64ShrUImm16Rev,
	}
	i64Rotl = &shiftOp{
		eval:     numeric.I64Rotl,
		op:       bytecode.OpI64Rotl,
		imm:      bytecode.OpI64RotlImm,
		immRev:   bytecode.OpI64RotlImmRev,
		imm16Rev: bytecode.OpI64RotlImm16Rev,
		immReg:   immRegIsImm(i64Consts.minusOne),
	}
	i64Rotr = &shiftOp{
		eval:     numeric.I64Rotr,
		op:       bytecode.OpI64Rotr,
		imm:      bytecode.OpI64RotrImm,
		immRev:   bytecode.OpI64RotrImmRev,
		imm16Rev: bytecode.OpI64RotrImm16Rev,
		immReg:   immRegIsImm(i64Consts.minusOne),
	}
)

func setMirrors(a, b *binaryOp) {
	a.mirror, b.mirror = b, a
}

func init() {
	// c < x is x > c and c <= x is x >= c.
	setMirrors(i32LtS, i32GtS)
	setMirrors(i32LtU, i32GtU)
	setMirrors(i32LeS, i32GeS)
	setMirrors(i32LeU, i32GeU)
	setMirrors(i64LtS, i64GtS)
	setMirrors(i64LtU, i64GtU)
	setMirrors(i64LeS, i64GeS)
	setMirrors(i64LeU, i64GeU)
	setMirrors(f32Lt, f32Gt)
	setMirrors(f32Le, f32Ge)
	setMirrors(f64Lt, f64Gt)
	setMirrors(f64Le, f64Ge)
}
