// Package validate checks the module-level declarations that function translation relies on.
// Function bodies are validated separately, as they are decoded.
package validate

import (
	"fmt"

	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
)

// The maximum number of 64KiB pages addressable by a 32-bit memory.
const maxPages = 65536

type validator struct {
	module   *wasm.Module
	scope    *code.StaticScope
	features code.Features
}

// Module validates m's declarations: the function and code sections, imports, tables, memories,
// global initializers, segments, the start function and exports. Failures are returned as wrapped
// wasm.ValidationErrors.
func Module(m *wasm.Module, features code.Features) error {
	v := validator{module: m, scope: code.NewStaticScope(m), features: features}
	return v.validateModule()
}

func (v *validator) validateModule() error {
	for _, check := range []func() error{
		v.validateFunctions,
		v.validateImports,
		v.validateTables,
		v.validateMemories,
		v.validateGlobals,
		v.validateElements,
		v.validateData,
		v.validateStart,
		v.validateExports,
	} {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func (v *validator) validateFunctions() error {
	var types []uint32
	if v.module.Function != nil {
		types = v.module.Function.Types
	}

	var bodies []wasm.FunctionBody
	if v.module.Code != nil {
		bodies = v.module.Code.Bodies
	}

	if len(types) != len(bodies) {
		return wasm.ValidationError("function and code section have inconsistent lengths")
	}

	for i, typeidx := range types {
		if _, ok := v.scope.GetType(typeidx); !ok {
			return fmt.Errorf("function %d: %w", len(v.scope.ImportedFunctions)+i, wasm.ValidationError("unknown type"))
		}
	}
	return nil
}

func validateLimits(limits wasm.ResizableLimits) error {
	if limits.Flags&0x1 != 0 && limits.Initial > limits.Maximum {
		return wasm.ValidationError("size minimum must not be greater than maximum")
	}
	return nil
}

func (v *validator) validateTables() error {
	if len(v.scope.Tables) > 1 && !v.features.ReferenceTypes {
		return wasm.ValidationError("multiple tables")
	}
	if v.module.Table == nil {
		return nil
	}
	for i, t := range v.module.Table.Entries {
		if err := validateLimits(t.Limits); err != nil {
			return fmt.Errorf("table %d: %w", i, err)
		}
	}
	return nil
}

func (v *validator) validateMemories() error {
	if v.scope.Memories > 1 {
		return wasm.ValidationError("multiple memories")
	}
	if v.module.Memory == nil || len(v.module.Memory.Entries) == 0 {
		return nil
	}

	limits := v.module.Memory.Entries[0].Limits
	if err := validateLimits(limits); err != nil {
		return err
	}
	if limits.Initial > maxPages || limits.Flags&0x1 != 0 && limits.Maximum > maxPages {
		return wasm.ValidationError("memory size must be at most 65536 pages (4GiB)")
	}
	return nil
}

func (v *validator) validateGlobals() error {
	if v.module.Global == nil {
		return nil
	}

	// Global initializers may only refer to imported globals.
	scope := importScope{v.scope}
	for i, g := range v.module.Global.Globals {
		if err := v.validateInitExpr(g.Init, g.Type.Type, scope); err != nil {
			return fmt.Errorf("global %d: %w", len(v.scope.ImportedGlobals)+i, err)
		}
	}
	return nil
}

func (v *validator) validateElements() error {
	if v.module.Elements == nil {
		return nil
	}
	for i, elem := range v.module.Elements.Entries {
		if _, ok := v.scope.GetTable(elem.Index); !ok {
			return fmt.Errorf("element segment %d: %w", i, wasm.ValidationError("unknown table"))
		}
		if err := v.validateInitExpr(elem.Offset, wasm.ValueTypeI32, v.scope); err != nil {
			return fmt.Errorf("element segment %d: %w", i, err)
		}
		for _, funcidx := range elem.Elems {
			if _, ok := v.scope.GetFunctionSignature(funcidx); !ok {
				return fmt.Errorf("element segment %d: %w", i, wasm.ValidationError("unknown function"))
			}
		}
	}
	return nil
}

func (v *validator) validateData() error {
	if v.module.Data == nil {
		return nil
	}
	if v.module.DataCount != nil && int(v.module.DataCount.Count) != len(v.module.Data.Entries) {
		return wasm.ValidationError("data count and data section have inconsistent lengths")
	}
	for i, data := range v.module.Data.Entries {
		if data.Passive {
			continue
		}
		if !v.scope.HasMemory(data.Index) {
			return fmt.Errorf("data segment %d: %w", i, wasm.ValidationError("unknown memory"))
		}
		if err := v.validateInitExpr(data.Offset, wasm.ValueTypeI32, v.scope); err != nil {
			return fmt.Errorf("data segment %d: %w", i, err)
		}
	}
	return nil
}

func (v *validator) validateStart() error {
	if v.module.Start == nil {
		return nil
	}
	sig, ok := v.scope.GetFunctionSignature(v.module.Start.Index)
	if !ok {
		return wasm.ValidationError("unknown function")
	}
	if len(sig.ParamTypes) != 0 || len(sig.ReturnTypes) != 0 {
		return wasm.ValidationError("start function")
	}
	return nil
}

func (v *validator) validateImports() error {
	if v.module.Import == nil {
		return nil
	}
	for _, i := range v.module.Import.Entries {
		var err error
		switch t := i.Type.(type) {
		case wasm.FuncImport:
			if _, ok := v.scope.GetType(t.Type); !ok {
				err = wasm.ValidationError("unknown type")
			}
		case wasm.TableImport:
			err = validateLimits(t.Type.Limits)
		case wasm.MemoryImport:
			err = validateLimits(t.Type.Limits)
		}
		if err != nil {
			return fmt.Errorf("import %v.%v: %w", i.ModuleName, i.FieldName, err)
		}
	}
	return nil
}

func (v *validator) validateExports() error {
	if v.module.Export == nil {
		return nil
	}

	names := map[string]bool{}
	for _, e := range v.module.Export.Entries {
		if names[e.FieldStr] {
			return fmt.Errorf("export %q: %w", e.FieldStr, wasm.ValidationError("duplicate export name"))
		}
		names[e.FieldStr] = true

		var err error
		switch e.Kind {
		case wasm.ExternalFunction:
			if _, ok := v.scope.GetFunctionSignature(e.Index); !ok {
				err = wasm.ValidationError("unknown function")
			}
		case wasm.ExternalTable:
			if _, ok := v.scope.GetTable(e.Index); !ok {
				err = wasm.ValidationError("unknown table")
			}
		case wasm.ExternalMemory:
			if !v.scope.HasMemory(e.Index) {
				err = wasm.ValidationError("unknown memory")
			}
		case wasm.ExternalGlobal:
			if _, ok := v.scope.GetGlobalType(e.Index); !ok {
				err = wasm.ValidationError("unknown global")
			}
		}
		if err != nil {
			return fmt.Errorf("export %q: %w", e.FieldStr, err)
		}
	}
	return nil
}

func (v *validator) validateInitExpr(expr []byte, expected wasm.ValueType, scope code.Scope) error {
	decoded, err := code.Decode(expr, scope, []wasm.ValueType{expected}, v.features)
	if err != nil {
		return err
	}
	for _, instr := range decoded.Instructions {
		switch instr.Opcode {
		case code.OpI32Const, code.OpI64Const, code.OpF32Const, code.OpF64Const, code.OpEnd:
			// OK
		case code.OpRefNull, code.OpRefFunc:
			if !v.features.ReferenceTypes {
				return wasm.ValidationError("constant expression required")
			}
		case code.OpGlobalGet:
			g, _ := scope.GetGlobalType(instr.Globalidx())
			if g.Mutable {
				return wasm.ValidationError("constant expression required")
			}
		default:
			return wasm.ValidationError("constant expression required")
		}
	}
	return nil
}

// importScope restricts a module scope to its imported globals.
type importScope struct {
	*code.StaticScope
}

func (s importScope) GetGlobalType(globalidx uint32) (wasm.GlobalVar, bool) {
	if globalidx < uint32(len(s.ImportedGlobals)) {
		return s.ImportedGlobals[int(globalidx)], true
	}
	return wasm.GlobalVar{}, false
}
