package dump

import (
	"bytes"
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/jszwec/csvutil"
	"github.com/pgavlin/rwarp/engine"
	"github.com/pgavlin/rwarp/engine/translate"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/pgavlin/rwarp/wasm/code"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModule(t *testing.T, bodies ...[]code.Instruction) *wasm.Module {
	m := wasm.NewModule()
	m.Types.Entries = append(m.Types.Entries, wasm.FunctionSig{
		Form:        -0x20,
		ParamTypes:  []wasm.ValueType{wasm.ValueTypeI64},
		ReturnTypes: []wasm.ValueType{wasm.ValueTypeI64},
	})
	for _, body := range bodies {
		var buf bytes.Buffer
		require.NoError(t, code.Encode(&buf, append(body, code.End())))

		m.Function.Types = append(m.Function.Types, 0)
		m.Code.Bodies = append(m.Code.Bodies, wasm.FunctionBody{Module: m, Code: buf.Bytes()})
	}
	m.Export.Entries = append(m.Export.Entries, wasm.ExportEntry{FieldStr: "mix", Kind: wasm.ExternalFunction, Index: 0})
	return m
}

func testResults(t *testing.T) ([]result, []uint64) {
	m := newModule(t,
		[]code.Instruction{code.LocalGet(0), code.I64Const(1 << 40), code.I64Xor()},
		[]code.Instruction{code.LocalGet(0), code.Call(0)},
		[]code.Instruction{code.LocalGet(0), code.I64Const(0), code.I64DivU()},
	)
	return compileFunctions(engine.New(engine.DefaultConfig()), m)
}

func TestCompileFunctions(t *testing.T) {
	results, constants := testResults(t)
	require.Len(t, results, 3)

	assert.Equal(t, "mix", results[0].name)
	assert.NoError(t, results[0].err)

	assert.Equal(t, "$1", results[1].name)
	assert.ErrorIs(t, results[1].err, translate.ErrNotImplemented)

	assert.Equal(t, uint32(2), results[2].funcidx)
	assert.NoError(t, results[2].err)

	assert.Equal(t, []uint64{1 << 40}, constants)
	assert.EqualError(t, failures(results), "1 of 3 functions failed to translate")
	assert.NoError(t, failures(results[:1]))
}

func TestDumpListing(t *testing.T) {
	results, constants := testResults(t)

	var buf bytes.Buffer
	require.NoError(t, dumpListing(&buf, results, constants, newPalette(false)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "func mix (params 1, locals 1, registers 2, results 1)\n"), out)
	assert.Contains(t, out, "func $1: ")
	assert.Contains(t, out, "func $2 ")
	assert.Contains(t, out, "integer divide by zero")
	assert.Contains(t, out, "constants (1)\n")
	assert.Contains(t, out, "0x0000010000000000")
	assert.NotContains(t, out, "\x1b[")
}

func TestDumpListingColors(t *testing.T) {
	results, constants := testResults(t)

	var buf bytes.Buffer
	require.NoError(t, dumpListing(&buf, results, constants, newPalette(true)))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestDumpStats(t *testing.T) {
	results, _ := testResults(t)

	var buf bytes.Buffer
	require.NoError(t, dumpStats(&buf, results))

	var rows []row
	require.NoError(t, csvutil.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, "mix", rows[0].Function)
	assert.Equal(t, 1, rows[0].Params)
	assert.Equal(t, 0, rows[0].Locals)
	assert.Equal(t, 2, rows[0].Registers)
	assert.Equal(t, 1, rows[0].Constants)
	assert.Equal(t, 1, rows[0].Imm)
	assert.Equal(t, 1, rows[0].Param)
	assert.Empty(t, rows[0].Error)

	assert.NotEmpty(t, rows[1].Error)
	assert.Equal(t, 0, rows[1].Instructions)

	assert.Equal(t, 1, rows[2].Instructions)
	assert.Equal(t, 1, rows[2].Control)

	header, err := csv.NewReader(&buf).Read()
	require.NoError(t, err)
	assert.Equal(t, "function", header[0])
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	enabled, err := useColor("always", f)
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = useColor("never", f)
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = useColor("auto", f)
	require.NoError(t, err)
	assert.False(t, enabled)

	_, err = useColor("sometimes", f)
	assert.Error(t, err)
}
