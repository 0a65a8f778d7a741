package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/translate"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	i32 = wasm.ValueTypeI32
	i64 = wasm.ValueTypeI64
	f32 = wasm.ValueTypeF32
	f64 = wasm.ValueTypeF64
)

func sig(params []wasm.ValueType, results ...wasm.ValueType) wasm.FunctionSig {
	return wasm.FunctionSig{Form: -0x20, ParamTypes: params, ReturnTypes: results}
}

type testFunction struct {
	sig    wasm.FunctionSig
	locals []wasm.LocalEntry
	body   []code.Instruction
	export string
}

// newModule builds a module that defines the given functions. Each function gets its own type.
// If imports is non-zero, that many functions of type () -> () are imported first.
func newModule(t testing.TB, imports int, funcs ...testFunction) *wasm.Module {
	m := wasm.NewModule()
	if imports > 0 {
		m.Types.Entries = append(m.Types.Entries, sig(nil))
		for i := 0; i < imports; i++ {
			m.Import.Entries = append(m.Import.Entries, wasm.ImportEntry{
				ModuleName: "env",
				FieldName:  fmt.Sprintf("import%d", i),
				Type:       wasm.FuncImport{Type: 0},
			})
		}
	}

	for i, f := range funcs {
		typeidx := uint32(len(m.Types.Entries))
		m.Types.Entries = append(m.Types.Entries, f.sig)
		m.Function.Types = append(m.Function.Types, typeidx)

		body := append(append([]code.Instruction(nil), f.body...), code.End())
		var buf bytes.Buffer
		require.NoError(t, code.Encode(&buf, body))
		m.Code.Bodies = append(m.Code.Bodies, wasm.FunctionBody{Module: m, Locals: f.locals, Code: buf.Bytes()})

		if f.export != "" {
			m.Export.Entries = append(m.Export.Entries, wasm.ExportEntry{
				FieldStr: f.export,
				Kind:     wasm.ExternalFunction,
				Index:    uint32(imports + i),
			})
		}
	}
	return m
}

func TestCompileModule(t *testing.T) {
	m := newModule(t, 2,
		testFunction{
			sig:    sig([]wasm.ValueType{f64}, f64),
			body:   []code.Instruction{code.LocalGet(0), code.F64Const(0.5), code.F64Mul()},
			export: "half",
		},
		testFunction{
			sig:  sig([]wasm.ValueType{f64}, f64),
			body: []code.Instruction{code.LocalGet(0), code.F64Const(0.5), code.F64Add()},
		},
		testFunction{
			sig:    sig(nil, i32),
			body:   []code.Instruction{code.I32Const(6), code.I32Const(7), code.I32Mul()},
			export: "answer",
		},
	)

	mod, err := New(DefaultConfig()).CompileModule(context.Background(), m)
	require.NoError(t, err)

	require.Len(t, mod.Functions, 3)
	assert.Equal(t, "half", mod.Functions[0].Name)
	assert.Equal(t, "$3", mod.Functions[1].Name)
	assert.Equal(t, "answer", mod.Functions[2].Name)
	assert.Equal(t, map[uint32]string{2: "half", 4: "answer"}, mod.Names)

	// Both uses of 0.5 share a pool slot.
	assert.Equal(t, []uint64{0x3fe0000000000000}, mod.Constants)
	assert.Equal(t, []bytecode.Instruction{
		bytecode.BinaryImm(bytecode.OpF64MulImm, 1, 0), bytecode.ConstRefParam(0),
		bytecode.ReturnReg(1),
	}, mod.Functions[0].Instructions)
	assert.Equal(t, []bytecode.Instruction{bytecode.ReturnImm32(42)}, mod.Functions[2].Instructions)
}

func TestCompileEmptyModule(t *testing.T) {
	mod, err := New(DefaultConfig()).CompileModule(context.Background(), wasm.NewModule())
	require.NoError(t, err)
	assert.Empty(t, mod.Functions)
	assert.Empty(t, mod.Constants)
}

func TestCompileModuleErrors(t *testing.T) {
	valid := testFunction{sig: sig(nil)}

	cases := []struct {
		name     string
		fn       testFunction
		features *code.Features
		err      error
	}{
		{
			name: "validation",
			fn:   testFunction{sig: sig(nil, i32), body: []code.Instruction{code.I32Add()}},
			err:  translate.ErrValidation,
		},
		{
			name: "not implemented",
			fn:   testFunction{sig: sig(nil), body: []code.Instruction{code.Call(0)}},
			err:  translate.ErrNotImplemented,
		},
		{
			name: "unsupported value type",
			fn:   testFunction{sig: sig(nil), locals: []wasm.LocalEntry{{Count: 1, Type: wasm.ValueTypeExternref}}},
			err:  translate.ErrUnsupportedValueType,
		},
		{
			name: "disabled feature",
			fn:   testFunction{sig: sig([]wasm.ValueType{i32}, i32), body: []code.Instruction{code.LocalGet(0), code.I32Extend8S()}},
			features: &code.Features{
				SaturatingFloatToInt: true,
			},
			err: translate.ErrValidation,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			config := DefaultConfig()
			if c.features != nil {
				config.Features = *c.features
			}

			m := newModule(t, 1, valid, c.fn, valid)
			_, err := New(config).CompileModule(context.Background(), m)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.err), "unexpected error %v", err)

			var cerr *CompileError
			require.True(t, errors.As(err, &cerr))
			assert.Equal(t, uint32(2), cerr.FuncIndex)
		})
	}
}

func TestCompileModuleMismatchedSections(t *testing.T) {
	m := newModule(t, 0, testFunction{sig: sig(nil)})
	m.Function.Types = append(m.Function.Types, 0)

	_, err := New(DefaultConfig()).CompileModule(context.Background(), m)
	assert.True(t, errors.Is(err, translate.ErrValidation), "unexpected error %v", err)

	var cerr *CompileError
	assert.False(t, errors.As(err, &cerr))
}

func TestCompileModuleCanceled(t *testing.T) {
	m := newModule(t, 0, testFunction{sig: sig(nil)}, testFunction{sig: sig(nil)})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig()).CompileModule(ctx, m)
	assert.True(t, errors.Is(err, context.Canceled), "unexpected error %v", err)
}

func TestCompileModuleLiveContext(t *testing.T) {
	m := newModule(t, 0, testFunction{sig: sig(nil, i32), body: []code.Instruction{code.I32Const(3)}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := New(DefaultConfig())
	for i := 0; i < 2; i++ {
		mod, err := e.CompileModule(ctx, m)
		require.NoError(t, err)
		assert.Equal(t, []bytecode.Instruction{bytecode.ReturnImm32(3)}, mod.Functions[0].Instructions)
	}
	assert.NoError(t, ctx.Err())

	_, err := e.CompileModule(ctx, wasm.NewModule())
	assert.NoError(t, err)
}

func TestCompileModuleParallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	funcs := make([]testFunction, 200)
	for i := range funcs {
		funcs[i] = testFunction{
			sig: sig([]wasm.ValueType{i32, i64}, i64),
			body: []code.Instruction{
				code.LocalGet(1),
				code.LocalGet(0),
				code.I32Const(int32(i)),
				code.I32Add(),
				code.I64ExtendI32U(),
				code.I64Shl(),
			},
		}
	}
	m := newModule(t, 0, funcs...)

	serial := DefaultConfig()
	serial.Parallelism = 1
	expected, err := New(serial).CompileModule(context.Background(), m)
	require.NoError(t, err)

	parallel := DefaultConfig()
	parallel.Parallelism = 8
	actual, err := New(parallel).CompileModule(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, expected, actual)
}

func TestCompileModuleLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	config := DefaultConfig()
	config.Logger = zap.New(core)

	m := newModule(t, 0,
		testFunction{sig: sig(nil), export: "a"},
		testFunction{sig: sig(nil, i32), body: []code.Instruction{code.I32Const(1)}},
	)
	_, err := New(config).CompileModule(context.Background(), m)
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("compiled function").Len())
	assert.Equal(t, 1, logs.FilterMessage("compiled module").Len())

	m = newModule(t, 0, testFunction{sig: sig(nil), body: []code.Instruction{code.Drop()}})
	_, err = New(config).CompileModule(context.Background(), m)
	require.Error(t, err)

	failures := logs.FilterMessage("compiling function failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, uint32(0), failures[0].ContextMap()["funcidx"])
}

func TestCompileFunction(t *testing.T) {
	m := newModule(t, 1,
		testFunction{sig: sig(nil, i64), body: []code.Instruction{code.I64Const(1 << 40)}},
		testFunction{sig: sig(nil), body: []code.Instruction{code.Call(0)}},
	)

	e := New(DefaultConfig())
	pool := e.NewConstantPool()

	fn, err := e.CompileFunction(m, pool, 0)
	require.NoError(t, err)
	assert.Equal(t, "$1", fn.Name)
	assert.Equal(t, []bytecode.Instruction{bytecode.ReturnImm(0)}, fn.Instructions)
	assert.Equal(t, 1, pool.Len())

	_, err = e.CompileFunction(m, pool, 1)
	assert.True(t, errors.Is(err, translate.ErrNotImplemented), "unexpected error %v", err)

	_, err = e.CompileFunction(m, pool, 2)
	assert.Error(t, err)
}

func TestFunctionNames(t *testing.T) {
	m := newModule(t, 1, testFunction{sig: sig(nil), export: "run"}, testFunction{sig: sig(nil)})

	var buf bytes.Buffer
	ns := wasm.NameSection{Functions: map[uint32]string{0: "host", 1: "internal_run", 2: "helper"}}
	require.NoError(t, ns.MarshalWASM(&buf))
	m.Customs = append(m.Customs, &wasm.SectionCustom{Name: wasm.CustomSectionName, Data: buf.Bytes()})

	assert.Equal(t, map[uint32]string{0: "host", 1: "run", 2: "helper"}, FunctionNames(m))
}
