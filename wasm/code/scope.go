package code

import "github.com/pgavlin/rwarp/wasm"

// Scope resolves the module-level index spaces referenced by a function body.
type Scope interface {
	GetLocalType(localidx uint32) (wasm.ValueType, bool)
	GetGlobalType(globalidx uint32) (wasm.GlobalVar, bool)
	GetFunctionSignature(funcidx uint32) (wasm.FunctionSig, bool)
	GetType(typeidx uint32) (wasm.FunctionSig, bool)
	GetTable(tableidx uint32) (wasm.Table, bool)

	HasMemory(memoryidx uint32) bool
	HasDataSegment(dataidx uint32) bool
	HasElementSegment(elemidx uint32) bool
}
