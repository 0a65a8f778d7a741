package validate

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/stretchr/testify/assert"
)

func constExpr(instrs ...code.Instruction) []byte {
	var buf bytes.Buffer
	if err := code.Encode(&buf, append(instrs, code.End())); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func validModule() *wasm.Module {
	m := wasm.NewModule()
	m.Types.Entries = []wasm.FunctionSig{{Form: -0x20}}
	m.Import.Entries = []wasm.ImportEntry{
		{ModuleName: "env", FieldName: "f", Type: wasm.FuncImport{Type: 0}},
		{ModuleName: "env", FieldName: "g", Type: wasm.GlobalVarImport{Type: wasm.GlobalVar{Type: wasm.ValueTypeI32}}},
		{ModuleName: "env", FieldName: "m", Type: wasm.GlobalVarImport{Type: wasm.GlobalVar{Type: wasm.ValueTypeI32, Mutable: true}}},
	}
	m.Function.Types = []uint32{0}
	m.Code.Bodies = []wasm.FunctionBody{{Module: m, Code: []byte{0x0b}}}
	m.Table.Entries = []wasm.Table{{ElementType: wasm.ValueTypeFuncref, Limits: wasm.ResizableLimits{Initial: 1}}}
	m.Memory.Entries = []wasm.Memory{{Limits: wasm.ResizableLimits{Flags: 1, Initial: 1, Maximum: 2}}}
	m.Global.Globals = []wasm.GlobalEntry{
		{Type: wasm.GlobalVar{Type: wasm.ValueTypeI32}, Init: constExpr(code.GlobalGet(0))},
		{Type: wasm.GlobalVar{Type: wasm.ValueTypeF64, Mutable: true}, Init: constExpr(code.F64Const(1))},
	}
	m.Elements.Entries = []wasm.ElementSegment{{Offset: constExpr(code.I32Const(0)), Elems: []uint32{0, 1}}}
	m.Data.Entries = []wasm.DataSegment{{Offset: constExpr(code.GlobalGet(0)), Data: []byte("hi")}}
	m.Start = &wasm.SectionStartFunction{Index: 1}
	m.Export.Entries = []wasm.ExportEntry{
		{FieldStr: "run", Kind: wasm.ExternalFunction, Index: 1},
		{FieldStr: "memory", Kind: wasm.ExternalMemory, Index: 0},
		{FieldStr: "table", Kind: wasm.ExternalTable, Index: 0},
		{FieldStr: "g", Kind: wasm.ExternalGlobal, Index: 3},
	}
	return m
}

func TestModule(t *testing.T) {
	assert.NoError(t, Module(validModule(), code.DefaultFeatures()))
	assert.NoError(t, Module(wasm.NewModule(), code.DefaultFeatures()))
}

func TestModuleErrors(t *testing.T) {
	cases := []struct {
		name   string
		modify func(m *wasm.Module)
		err    string
	}{
		{"inconsistent code", func(m *wasm.Module) { m.Code.Bodies = nil }, "wasm: validation error: function and code section have inconsistent lengths"},
		{"unknown function type", func(m *wasm.Module) { m.Function.Types[0] = 7 }, "function 1: wasm: validation error: unknown type"},
		{"multiple tables", func(m *wasm.Module) { m.Table.Entries = append(m.Table.Entries, m.Table.Entries[0]) }, "wasm: validation error: multiple tables"},
		{"table limits", func(m *wasm.Module) {
			m.Table.Entries[0].Limits = wasm.ResizableLimits{Flags: 1, Initial: 2, Maximum: 1}
		}, "table 0: wasm: validation error: size minimum must not be greater than maximum"},
		{"multiple memories", func(m *wasm.Module) { m.Memory.Entries = append(m.Memory.Entries, m.Memory.Entries[0]) }, "wasm: validation error: multiple memories"},
		{"memory size", func(m *wasm.Module) { m.Memory.Entries[0].Limits = wasm.ResizableLimits{Initial: maxPages + 1} }, "wasm: validation error: memory size must be at most 65536 pages (4GiB)"},
		{"mutable global initializer", func(m *wasm.Module) { m.Global.Globals[0].Init = constExpr(code.GlobalGet(1)) }, "global 2: wasm: validation error: constant expression required"},
		{"non-constant initializer", func(m *wasm.Module) {
			m.Global.Globals[1].Init = constExpr(code.F64Const(1), code.F64Const(2), code.F64Add())
		}, "global 3: wasm: validation error: constant expression required"},
		{"element function", func(m *wasm.Module) { m.Elements.Entries[0].Elems = []uint32{2} }, "element segment 0: wasm: validation error: unknown function"},
		{"data memory", func(m *wasm.Module) { m.Memory.Entries = nil; m.Export.Entries = m.Export.Entries[:1] }, "data segment 0: wasm: validation error: unknown memory"},
		{"data count", func(m *wasm.Module) { m.DataCount = &wasm.SectionDataCount{Count: 2} }, "wasm: validation error: data count and data section have inconsistent lengths"},
		{"start signature", func(m *wasm.Module) {
			m.Types.Entries = append(m.Types.Entries, wasm.FunctionSig{Form: -0x20, ParamTypes: []wasm.ValueType{wasm.ValueTypeI32}})
			m.Function.Types[0] = 1
		}, "wasm: validation error: start function"},
		{"import type", func(m *wasm.Module) { m.Import.Entries[0].Type = wasm.FuncImport{Type: 3} }, "import env.f: wasm: validation error: unknown type"},
		{"duplicate export", func(m *wasm.Module) { m.Export.Entries[1].FieldStr = "run" }, `export "run": wasm: validation error: duplicate export name`},
		{"export global", func(m *wasm.Module) { m.Export.Entries[3].Index = 4 }, `export "g": wasm: validation error: unknown global`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := validModule()
			c.modify(m)

			err := Module(m, code.DefaultFeatures())
			assert.EqualError(t, err, c.err)

			var verr wasm.ValidationError
			assert.True(t, errors.As(err, &verr))
		})
	}
}

func TestModuleReferenceTypes(t *testing.T) {
	m := validModule()
	m.Table.Entries = append(m.Table.Entries, m.Table.Entries[0])
	assert.Error(t, Module(m, code.DefaultFeatures()))

	features := code.DefaultFeatures()
	features.ReferenceTypes = true
	assert.NoError(t, Module(m, features))
}
