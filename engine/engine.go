// Package engine compiles the function bodies of decoded WebAssembly modules to register
// bytecode.
package engine

import (
	"context"
	"fmt"

	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/engine/constpool"
	"github.com/pgavlin/rwarp/engine/translate"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/pgavlin/rwarp/wasm/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// A CompileError records the function whose translation failed.
type CompileError struct {
	FuncIndex uint32 // the function's index in the module's function index space
	Err       error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("function %d: %v", e.FuncIndex, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// A Module is the compiled form of a WebAssembly module.
type Module struct {
	// Functions holds the module's defined functions, indexed by defined-function index.
	Functions []*bytecode.Function
	// Constants holds the module's constant pool, indexed by bytecode.ConstRef.
	Constants []uint64
	// Names maps function indices to export or debug names.
	Names map[uint32]string
}

// An Engine compiles modules. An Engine is safe for concurrent use.
type Engine struct {
	config Config
	log    *zap.Logger
}

func New(config Config) *Engine {
	return &Engine{config: config, log: config.logger()}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// NewConstantPool creates an empty constant pool with the engine's configured capacity.
func (e *Engine) NewConstantPool() *constpool.Pool {
	return constpool.New(e.config.MaxConstants)
}

// CompileModule validates m's declarations and translates every function it defines. Functions
// are translated concurrently and share a single constant pool. The first translation failure
// cancels the remaining work and is returned as a *CompileError.
func (e *Engine) CompileModule(ctx context.Context, m *wasm.Module) (*Module, error) {
	if err := validate.Module(m, e.config.Features); err != nil {
		return nil, translate.WrapDecodeError(err)
	}

	var bodies []wasm.FunctionBody
	if m.Code != nil {
		bodies = m.Code.Bodies
	}

	scope := code.NewStaticScope(m)
	pool := e.NewConstantPool()
	names := FunctionNames(m)
	imported := uint32(len(scope.ImportedFunctions))

	e.log.Debug("compiling module",
		zap.Int("functions", len(bodies)),
		zap.Int("parallelism", e.config.parallelism()),
		zap.Stringer("features", e.config.Features))

	functions := make([]*bytecode.Function, len(bodies))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.parallelism())
	for i := range bodies {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			funcidx := imported + uint32(i)
			fn, err := e.compileFunction(scope.Clone(), pool, i, functionName(names, funcidx))
			if err != nil {
				e.log.Error("compiling function failed", zap.Uint32("funcidx", funcidx), zap.Error(err))
				return &CompileError{FuncIndex: funcidx, Err: err}
			}
			functions[i] = fn
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group's context is always canceled by Wait; only the caller's matters here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.log.Debug("compiled module", zap.Int("functions", len(functions)), zap.Int("constants", pool.Len()))
	return &Module{Functions: functions, Constants: pool.Values(), Names: names}, nil
}

// CompileFunction translates the defined function with the given index, which does not include
// imported functions. Constants are allocated from pool.
func (e *Engine) CompileFunction(m *wasm.Module, pool *constpool.Pool, index int) (*bytecode.Function, error) {
	if m.Code == nil || index < 0 || index >= len(m.Code.Bodies) || index >= definedFunctionCount(m) {
		return nil, fmt.Errorf("function %d is not defined", index)
	}

	scope := code.NewStaticScope(m)
	funcidx := uint32(len(scope.ImportedFunctions) + index)
	return e.compileFunction(scope, pool, index, functionName(FunctionNames(m), funcidx))
}

func (e *Engine) compileFunction(scope *code.StaticScope, pool *constpool.Pool, index int, name string) (*bytecode.Function, error) {
	m := scope.Module()
	sig, ok := m.FunctionSignature(index)
	if !ok {
		return nil, &translate.Error{Kind: translate.KindTypeIndexOutOfBounds, Index: m.Function.Types[index]}
	}
	body := m.Code.Bodies[index]
	scope.SetFunction(sig, body)

	t, err := translate.NewFuncTranslator(translate.Config{
		Name:      name,
		Signature: sig,
		Locals:    body.Locals,
		Scope:     scope,
		Constants: pool,
	})
	if err != nil {
		return nil, err
	}
	if _, err := code.Walk(body.Code, scope, sig.ReturnTypes, e.config.Features, t.Visit); err != nil {
		return nil, translate.WrapDecodeError(err)
	}
	fn, err := t.Finish()
	if err != nil {
		return nil, err
	}

	e.log.Debug("compiled function",
		zap.String("name", name),
		zap.Int("index", index),
		zap.Int("instructions", len(fn.Instructions)),
		zap.Int("registers", fn.NumRegisters))
	return fn, nil
}

func definedFunctionCount(m *wasm.Module) int {
	if m.Function == nil {
		return 0
	}
	return len(m.Function.Types)
}

func functionName(names map[uint32]string, funcidx uint32) string {
	if name, ok := names[funcidx]; ok {
		return name
	}
	return fmt.Sprintf("$%d", funcidx)
}

// FunctionNames returns the names of a module's functions, indexed by function index. Export
// names take precedence over names from the name section.
func FunctionNames(m *wasm.Module) map[uint32]string {
	names := map[uint32]string{}
	if ns, err := m.Names(); err == nil {
		for idx, name := range ns.Functions {
			names[idx] = name
		}
	}
	if m.Export != nil {
		for _, export := range m.Export.Entries {
			if export.Kind == wasm.ExternalFunction {
				names[export.Index] = export.FieldStr
			}
		}
	}
	return names
}
