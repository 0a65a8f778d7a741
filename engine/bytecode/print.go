package bytecode

import (
	"fmt"
	"io"
	"strings"
)

func formatHex32(v uint32) string {
	return fmt.Sprintf("0x%08x", v)
}

type printer struct {
	w         io.Writer
	constants []uint64
	err       error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) reg(r uint16) string {
	return fmt.Sprintf("r%d", Register(r))
}

func (p *printer) ref(ref ConstRef) string {
	if int(ref) < len(p.constants) {
		return fmt.Sprintf("c%d(0x%016x)", ref, p.constants[ref])
	}
	return fmt.Sprintf("c%d", ref)
}

// imm formats a 32-bit immediate for the given operator. Integer operators print signed
// decimal values and everything else prints the raw bits.
func (p *printer) imm(op Opcode, c Const32) string {
	name := op.String()
	switch {
	case strings.HasPrefix(name, "i32."), strings.HasPrefix(name, "i64."):
		return fmt.Sprintf("%d", c.I32())
	default:
		return c.String()
	}
}

func (p *printer) imm16(c Const16, unsigned bool) string {
	if unsigned {
		return fmt.Sprintf("%d", c.U32())
	}
	return fmt.Sprintf("%d", c.I32())
}

// param formats a parameter instruction as an operand of op.
func (p *printer) param(op Opcode, param Instruction) string {
	switch param.Op {
	case OpConst32:
		return p.imm(op, param.Const32())
	case OpConstRef:
		return p.ref(param.ConstRef())
	case OpRegister:
		return p.reg(param.A)
	default:
		return fmt.Sprintf("<bad parameter %v>", param.Op)
	}
}

func (p *printer) registerLists(params []Instruction, n int) string {
	regs := make([]string, 0, n)
	for _, list := range params {
		for _, r := range []uint16{list.A, list.B, list.C} {
			if len(regs) == n {
				break
			}
			regs = append(regs, p.reg(r))
		}
	}
	return strings.Join(regs, ", ")
}

func (p *printer) instruction(ip int, instr Instruction, params []Instruction) {
	p.printf("%5d\t", ip)

	op, name := instr.Op, instr.Op.String()
	var param string
	if len(params) == 1 {
		param = p.param(op, params[0])
	}

	switch op.info().layout {
	case layoutNone:
		p.printf("%s", name)
	case layoutConst32:
		p.printf("%s %v", name, instr.Const32())
	case layoutConstRef:
		p.printf("%s %s", name, p.ref(instr.ConstRef()))
	case layoutRegister:
		p.printf("%s %s", name, p.reg(instr.A))
	case layoutRegisterList:
		p.printf("%s %s, %s, %s", name, p.reg(instr.A), p.reg(instr.B), p.reg(instr.C))
	case layoutTrap:
		p.printf("%s %q", name, instr.Trap().Error())
	case layoutReturnReg:
		p.printf("%s %s", name, p.reg(instr.A))
	case layoutReturnImm32:
		p.printf("%s %s", name, p.imm(op, instr.Const32()))
	case layoutReturnRef:
		p.printf("%s %s", name, p.ref(instr.ConstRef()))
	case layoutReturnMany:
		p.printf("%s %s", name, p.registerLists(params, int(instr.A)))
	case layoutReturnNez:
		p.printf("%s %s", name, p.reg(instr.A))
	case layoutReturnNezReg:
		p.printf("%s %s, %s", name, p.reg(instr.A), p.reg(instr.B))
	case layoutReturnNezImm:
		p.printf("%s %s, %s", name, p.reg(instr.A), param)
	case layoutReturnNezMany:
		p.printf("%s %s, %s", name, p.reg(instr.A), p.registerLists(params, int(instr.B)))
	case layoutCopy, layoutUnary, layoutMemoryGrowBy:
		if op == OpMemoryGrowBy {
			p.printf("%s = %s %s", p.reg(instr.A), name, param)
		} else {
			p.printf("%s = %s %s", p.reg(instr.A), name, p.reg(instr.B))
		}
	case layoutCopyImm32:
		p.printf("%s = %s %v", p.reg(instr.A), name, instr.Const32())
	case layoutCopyRef:
		p.printf("%s = %s %s", p.reg(instr.A), name, p.ref(instr.ConstRef()))
	case layoutSelect:
		p.printf("%s = %s %s, %s, %s", p.reg(instr.A), name, p.reg(instr.B), p.reg(instr.C), param)
	case layoutGlobalGet:
		p.printf("%s = %s g%d", p.reg(instr.A), name, instr.Index())
	case layoutGlobalSet:
		p.printf("g%d = %s %s", instr.Index(), name, p.reg(instr.A))
	case layoutGlobalSetImm:
		p.printf("g%d = %s %s", instr.Index(), name, param)
	case layoutLoad:
		p.printf("%s = %s *(%s + %d)", p.reg(instr.A), name, p.reg(instr.B), params[0].Const32().Bits())
	case layoutLoadOffset16:
		p.printf("%s = %s *(%s + %d)", p.reg(instr.A), name, p.reg(instr.B), instr.C)
	case layoutLoadAt:
		p.printf("%s = %s *0x%08x", p.reg(instr.A), name, instr.Index())
	case layoutStore:
		p.printf("*(%s + %d) = %s %s", p.reg(instr.A), params[0].Const32().Bits(), name, p.reg(instr.B))
	case layoutStoreOffset16:
		p.printf("*(%s + %d) = %s %s", p.reg(instr.A), instr.C, name, p.reg(instr.B))
	case layoutStoreAt:
		p.printf("*0x%08x = %s %s", instr.Index(), name, p.reg(instr.A))
	case layoutResult:
		p.printf("%s = %s", p.reg(instr.A), name)
	case layoutBinary:
		p.printf("%s = %s %s, %s", p.reg(instr.A), name, p.reg(instr.B), p.reg(instr.C))
	case layoutBinaryImm:
		p.printf("%s = %s %s, %s", p.reg(instr.A), name, p.reg(instr.B), param)
	case layoutBinaryImmRev:
		p.printf("%s = %s %s, %s", p.reg(instr.A), name, param, p.reg(instr.B))
	case layoutBinaryImm16, layoutBinaryImm16U:
		unsigned := op.info().layout == layoutBinaryImm16U
		p.printf("%s = %s %s, %s", p.reg(instr.A), name, p.reg(instr.B), p.imm16(instr.Imm16(), unsigned))
	case layoutBinaryImm16Rev, layoutBinaryImm16RevU:
		unsigned := op.info().layout == layoutBinaryImm16RevU
		p.printf("%s = %s %s, %s", p.reg(instr.A), name, p.imm16(instr.Imm16(), unsigned), p.reg(instr.B))
	case layoutCopysignImm:
		sign := "+"
		if instr.C != 0 {
			sign = "-"
		}
		p.printf("%s = %s %s, %s", p.reg(instr.A), name, p.reg(instr.B), sign)
	default:
		p.printf("%s %d, %d, %d", name, instr.A, instr.B, instr.C)
	}
	p.printf("\n")
}

// Fprint writes a listing of fn to w. Parameter instructions are printed as operands of the
// instruction they belong to. If constants is non-nil, pooled constants are printed alongside
// their references.
func Fprint(w io.Writer, fn *Function, constants []uint64) error {
	p := printer{w: w, constants: constants}

	p.printf("func %s (params %d, locals %d, registers %d, results %d)\n",
		fn.Name, fn.NumParams, fn.NumLocals, fn.NumRegisters, fn.NumResults)

	instrs := fn.Instructions
	for ip := 0; ip < len(instrs); {
		instr := instrs[ip]
		n := instr.NumParams()
		if ip+1+n > len(instrs) {
			p.printf("%5d\t<truncated %v>\n", ip, instr.Op)
			break
		}
		p.instruction(ip, instr, instrs[ip+1:ip+1+n])
		ip += 1 + n
	}
	return p.err
}
