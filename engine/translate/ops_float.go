package translate

import (
	"math"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/numeric"
)

type floatConsts struct {
	posZero numeric.Value
	negZero numeric.Value
	posInf  numeric.Value
	negInf  numeric.Value
}

var (
	f32Consts = floatConsts{
		posZero: numeric.F32Bits(0),
		negZero: numeric.F32Bits(0x80000000),
		posInf:  numeric.F32(float32(math.Inf(1))),
		negInf:  numeric.F32(float32(math.Inf(-1))),
	}
	f64Consts = floatConsts{
		posZero: numeric.F64Bits(0),
		negZero: numeric.F64Bits(0x8000000000000000),
		posInf:  numeric.F64(math.Inf(1)),
		negInf:  numeric.F64(math.Inf(-1)),
	}
)

// Float operators. A NaN constant operand of an arithmetic operator makes the result a NaN, so
// the quieted constant is pushed without emitting anything. x + -0.0 and x - +0.0 are x for
// every x, but x + +0.0 is +0.0 when x is -0.0. Comparisons with a NaN constant are always
// false, except for ne. x == x is not simplified because it is false when x is NaN.
var (
	f32Add = &binaryOp{
		kind:   commutative,
		eval:   numeric.F32Add,
		nan:    true,
		op:     bytecode.OpF32Add,
		imm:    bytecode.OpF32AddImm,
		regImm: regImmIsOperand(f32Consts.negZero),
	}
	f32Sub = &binaryOp{
		kind:   reversible,
		eval:   numeric.F32Sub,
		nan:    true,
		op:     bytecode.OpF32Sub,
		imm:    bytecode.OpF32SubImm,
		immRev: bytecode.OpF32SubImmRev,
		regImm: regImmIsOperand(f32Consts.posZero),
	}
	f32Mul = &binaryOp{
		kind: commutative,
		eval: numeric.F32Mul,
		nan:  true,
		op:   bytecode.OpF32Mul,
		imm:  bytecode.OpF32MulImm,
	}
	f32Div = &binaryOp{
		kind:   reversible,
		eval:   numeric.F32Div,
		nan:    true,
		op:     bytecode.OpF32Div,
		imm:    bytecode.OpF32DivImm,
		immRev: bytecode.OpF32DivImmRev,
	}
	f32Min = &binaryOp{
		kind:   commutative,
		eval:   numeric.F32Min,
		nan:    true,
		op:     bytecode.OpF32Min,
		imm:    bytecode.OpF32MinImm,
		regImm: regImmIsOperand(f32Consts.posInf),
	}
	f32Max = &binaryOp{
		kind:   commutative,
		eval:   numeric.F32Max,
		nan:    true,
		op:     bytecode.OpF32Max,
		imm:    bytecode.OpF32MaxImm,
		regImm: regImmIsOperand(f32Consts.negInf),
	}
	f32Eq = &binaryOp{
		kind:   commutative,
		eval:   numeric.F32Eq,
		op:     bytecode.OpF32Eq,
		imm:    bytecode.OpF32EqImm,
		regImm: regNaNIs(valueFalse),
	}
	f32Ne = &binaryOp{
		kind:   commutative,
		eval:   numeric.F32Ne,
		op:     bytecode.OpF32Ne,
		imm:    bytecode.OpF32NeImm,
		regImm: regNaNIs(valueTrue),
	}
	f32Lt = &binaryOp{
		kind:    mirrored,
		eval:    numeric.F32Lt,
		op:      bytecode.OpF32Lt,
		imm:     bytecode.OpF32LtImm,
		sameReg: sameRegIs(valueFalse),
		regImm:  regNaNIs(valueFalse),
		immReg:  nanRegIs(valueFalse),
	}
	f32Gt = &binaryOp{
		kind:    mirrored,
		eval:    numeric.F32Gt,
		op:      bytecode.OpF32Gt,
		imm:     bytecode.OpF32GtImm,
		sameReg: sameRegIs(valueFalse),
		regImm:  regNaNIs(valueFalse),
		immReg:  nanRegIs(valueFalse),
	}
	f32Le = &binaryOp{
		kind:   mirrored,
		eval:   numeric.F32Le,
		op:     bytecode.OpF32Le,
		imm:    bytecode.OpF32LeImm,
		regImm: regNaNIs(valueFalse),
		immReg: nanRegIs(valueFalse),
	}
	f32Ge = &binaryOp{
		kind:   mirrored,
		eval:   numeric.F32Ge,
		op:     bytecode.OpF32Ge,
		imm:    bytecode.OpF32GeImm,
		regImm: regNaNIs(valueFalse),
		immReg: nanRegIs(valueFalse),
	}

	f64Add = &binaryOp{
		kind:   commutative,
		eval:   numeric.F64Add,
		nan:    true,
		op:     bytecode.OpF64Add,
		imm:    bytecode.OpF64AddImm,
		regImm: regImmIsOperand(f64Consts.negZero),
	}
	f64Sub = &binaryOp{
		kind:   reversible,
		eval:   numeric.F64Sub,
		nan:    true,
		op:     bytecode.OpF64Sub,
		imm:    bytecode.OpF64SubImm,
		immRev: bytecode.OpF64SubImmRev,
		regImm: regImmIsOperand(f64Consts.posZero),
	}
	f64Mul = &binaryOp{
		kind: commutative,
		eval: numeric.F64Mul,
		nan:  true,
		op:   bytecode.OpF64Mul,
		imm:  bytecode.OpF64MulImm,
	}
	f64Div = &binaryOp{
		kind:   reversible,
		eval:   numeric.F64Div,
		nan:    true,
		op:     bytecode.OpF64Div,
		imm:    bytecode.OpF64DivImm,
		immRev: bytecode.OpF64DivImmRev,
	}
	f64Min = &binaryOp{
		kind:   commutative,
		eval:   numeric.F64Min,
		nan:    true,
		op:     bytecode.OpF64Min,
		imm:    bytecode.OpF64MinImm,
		regImm: regImmIsOperand(f64Consts.posInf),
	}
	f64Max = &binaryOp{
		kind:   commutative,
		eval:   numeric.F64Max,
		nan:    true,
		op:     bytecode.OpF64Max,
		imm:    bytecode.OpF64MaxImm,
		regImm: regImmIsOperand(f64Consts.negInf),
	}
	f64Eq = &binaryOp{
		kind:   commutative,
		eval:   numeric.F64Eq,
		op:     bytecode.OpF64Eq,
		imm:    bytecode.OpF64EqImm,
		regImm: regNaNIs(valueFalse),
	}
	f64Ne = &binaryOp{
		kind:   commutative,
		eval:   numeric.F64Ne,
		op:     bytecode.OpF64Ne,
		imm:    bytecode.OpF64NeImm,
		regImm: regNaNIs(valueTrue),
	}
	f64Lt = &binaryOp{
		kind:    mirrored,
		eval:    numeric.F64Lt,
		op:      bytecode.OpF64Lt,
		imm:     bytecode.OpF64LtImm,
		sameReg: sameRegIs(valueFalse),
		regImm:  regNaNIs(valueFalse),
		immReg:  nanRegIs(valueFalse),
	}
	f64Gt = &binaryOp{
		kind:    mirrored,
		eval:    numeric.F64Gt,
		op:      bytecode.OpF64Gt,
		imm:     bytecode.OpF64GtImm,
		sameReg: sameRegIs(valueFalse),
		regImm:  regNaNIs(valueFalse),
		immReg:  nanRegIs(valueFalse),
	}
	f64Le = &binaryOp{
		kind:   mirrored,
		eval:   numeric.F64Le,
		op:     bytecode.OpF64Le,
		imm:    bytecode.OpF64LeImm,
		regImm: regNaNIs(valueFalse),
		immReg: nanRegIs(valueFalse),
	}
	f64Ge = &binaryOp{
		kind:   mirrored,
		eval:   numeric.F64Ge,
		op:     bytecode.OpF64Ge,
		imm:    bytecode.OpF64GeImm,
		regImm: regNaNIs(valueFalse),
		immReg: nanRegIs(valueFalse),
	}
)

var (
	f32Copysign = &copysignOp{
		eval:   numeric.F32Copysign,
		op:     bytecode.OpF32Copysign,
		imm:    bytecode.OpF32CopysignImm,
		immRev: bytecode.OpF32CopysignImmRev,
	}
	f64Copysign = &copysignOp{
		eval:   numeric.F64Copysign,
		op:     bytecode.OpF64Copysign,
		imm:    bytecode.OpF64CopysignImm,
		immRev: bytecode.OpF64CopysignImmRev,
	}
)
