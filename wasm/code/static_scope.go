package code

import "github.com/pgavlin/rwarp/wasm"

// StaticScope is a Scope backed by a decoded module. SetFunction selects the function
// whose locals are visible.
type StaticScope struct {
	module *wasm.Module

	ImportedFunctions []uint32
	ImportedGlobals   []wasm.GlobalVar

	Tables          []wasm.Table
	Memories        int
	DataSegments    int
	ElementSegments int

	Locals []wasm.ValueType
}

func NewStaticScope(m *wasm.Module) *StaticScope {
	s := StaticScope{module: m}

	if m.Import != nil {
		for _, i := range m.Import.Entries {
			switch i := i.Type.(type) {
			case wasm.FuncImport:
				s.ImportedFunctions = append(s.ImportedFunctions, i.Type)
			case wasm.TableImport:
				s.Tables = append(s.Tables, i.Type)
			case wasm.MemoryImport:
				s.Memories++
			case wasm.GlobalVarImport:
				s.ImportedGlobals = append(s.ImportedGlobals, i.Type)
			}
		}
	}
	if m.Table != nil {
		s.Tables = append(s.Tables, m.Table.Entries...)
	}
	if m.Memory != nil {
		s.Memories += len(m.Memory.Entries)
	}
	switch {
	case m.DataCount != nil:
		s.DataSegments = int(m.DataCount.Count)
	case m.Data != nil:
		s.DataSegments = len(m.Data.Entries)
	}
	if m.Elements != nil {
		s.ElementSegments = len(m.Elements.Entries)
	}

	return &s
}

// Module returns the module the scope was built from.
func (s *StaticScope) Module() *wasm.Module {
	return s.module
}

func (s *StaticScope) GetLocalType(localidx uint32) (wasm.ValueType, bool) {
	if localidx >= uint32(len(s.Locals)) {
		return 0, false
	}
	return s.Locals[int(localidx)], true
}

func (s *StaticScope) GetGlobalType(globalidx uint32) (wasm.GlobalVar, bool) {
	if globalidx < uint32(len(s.ImportedGlobals)) {
		return s.ImportedGlobals[int(globalidx)], true
	}
	globalidx -= uint32(len(s.ImportedGlobals))
	if s.module.Global == nil || globalidx >= uint32(len(s.module.Global.Globals)) {
		return wasm.GlobalVar{}, false
	}
	return s.module.Global.Globals[int(globalidx)].Type, true
}

func (s *StaticScope) GetFunctionSignature(funcidx uint32) (wasm.FunctionSig, bool) {
	if funcidx < uint32(len(s.ImportedFunctions)) {
		return s.GetType(s.ImportedFunctions[int(funcidx)])
	}
	funcidx -= uint32(len(s.ImportedFunctions))
	if s.module.Function == nil || funcidx >= uint32(len(s.module.Function.Types)) {
		return wasm.FunctionSig{}, false
	}
	return s.GetType(s.module.Function.Types[int(funcidx)])
}

func (s *StaticScope) GetType(typeidx uint32) (wasm.FunctionSig, bool) {
	if s.module.Types == nil || typeidx >= uint32(len(s.module.Types.Entries)) {
		return wasm.FunctionSig{}, false
	}
	return s.module.Types.Entries[int(typeidx)], true
}

func (s *StaticScope) GetTable(tableidx uint32) (wasm.Table, bool) {
	if tableidx >= uint32(len(s.Tables)) {
		return wasm.Table{}, false
	}
	return s.Tables[int(tableidx)], true
}

func (s *StaticScope) HasMemory(memoryidx uint32) bool {
	return memoryidx < uint32(s.Memories)
}

func (s *StaticScope) HasDataSegment(dataidx uint32) bool {
	return dataidx < uint32(s.DataSegments)
}

func (s *StaticScope) HasElementSegment(elemidx uint32) bool {
	return elemidx < uint32(s.ElementSegments)
}

// SetFunction makes the parameters and declared locals of a function visible to GetLocalType.
func (s *StaticScope) SetFunction(sig wasm.FunctionSig, body wasm.FunctionBody) {
	s.Locals = append(s.Locals[:0], sig.ParamTypes...)
	for _, l := range body.Locals {
		for i := uint32(0); i < l.Count; i++ {
			s.Locals = append(s.Locals, l.Type)
		}
	}
}

// Clone returns a copy of the scope that shares the module but has its own locals, so that
// several functions can be walked concurrently.
func (s *StaticScope) Clone() *StaticScope {
	c := *s
	c.Locals = nil
	return &c
}
