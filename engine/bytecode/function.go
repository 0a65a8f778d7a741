package bytecode

// A Function is the translated body of a single Wasm function.
type Function struct {
	Name         string
	Instructions []Instruction

	NumParams    int // the number of parameters
	NumLocals    int // the number of parameters and declared locals
	NumRegisters int // the size of the register file, including locals
	NumResults   int // the number of results
}

// FormCounts returns the number of instructions of each form in the function's body.
func (fn *Function) FormCounts() map[Form]int {
	counts := map[Form]int{}
	for _, instr := range fn.Instructions {
		counts[instr.Op.Form()]++
	}
	return counts
}
