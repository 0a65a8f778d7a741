package dump

import (
	"encoding/csv"
	"io"

	"github.com/jszwec/csvutil"
	"github.com/pgavlin/rwarp/engine/bytecode"
)

type row struct {
	Function     string `csv:"function"`
	Funcidx      uint32 `csv:"funcidx"`
	Params       int    `csv:"params"`
	Locals       int    `csv:"locals"`
	Results      int    `csv:"results"`
	Registers    int    `csv:"registers"`
	Instructions int    `csv:"instruction count"`
	Control      int    `csv:"control"`
	Param        int    `csv:"param"`
	Copy         int    `csv:"copy"`
	Memory       int    `csv:"memory"`
	Register     int    `csv:"register"`
	Imm          int    `csv:"imm"`
	Imm16        int    `csv:"imm16"`
	Constants    int    `csv:"pooled constants"`
	Error        string `csv:"error,omitempty"`
}

// pooledConstants returns the number of distinct pool entries referenced by fn.
func pooledConstants(fn *bytecode.Function) int {
	refs := map[bytecode.ConstRef]struct{}{}
	for _, instr := range fn.Instructions {
		switch instr.Op {
		case bytecode.OpConstRef, bytecode.OpReturnImm, bytecode.OpCopyImm:
			refs[instr.ConstRef()] = struct{}{}
		}
	}
	return len(refs)
}

func dumpStats(w io.Writer, results []result) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	encoder := csvutil.NewEncoder(csvWriter)
	for _, res := range results {
		r := row{Function: res.name, Funcidx: res.funcidx}
		if res.err != nil {
			r.Error = res.err.Error()
		} else {
			fn := res.fn
			forms := fn.FormCounts()

			r.Params = fn.NumParams
			r.Locals = fn.NumLocals - fn.NumParams
			r.Results = fn.NumResults
			r.Registers = fn.NumRegisters
			r.Instructions = len(fn.Instructions)
			r.Control = forms[bytecode.FormControl]
			r.Param = forms[bytecode.FormParam]
			r.Copy = forms[bytecode.FormCopy]
			r.Memory = forms[bytecode.FormMemory]
			r.Register = forms[bytecode.FormRegister]
			r.Imm = forms[bytecode.FormImm]
			r.Imm16 = forms[bytecode.FormImm16]
			r.Constants = pooledConstants(fn)
		}

		if err := encoder.Encode(&r); err != nil {
			return err
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
