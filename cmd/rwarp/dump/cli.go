package dump

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/pgavlin/rwarp/engine"
	"github.com/pgavlin/rwarp/engine/bytecode"
	"github.com/pgavlin/rwarp/load"
	"github.com/pgavlin/rwarp/wasm"
	"github.com/spf13/cobra"
)

// A result is the outcome of translating a single defined function.
type result struct {
	funcidx uint32
	name    string
	fn      *bytecode.Function
	err     error
}

// compileFunctions translates each of m's defined functions in order. Failures are recorded in
// the corresponding result rather than stopping the translation of later functions.
func compileFunctions(e *engine.Engine, m *wasm.Module) ([]result, []uint64) {
	imported := m.ImportedFunctionCount()
	names := engine.FunctionNames(m)

	var count int
	if m.Function != nil {
		count = len(m.Function.Types)
	}

	pool := e.NewConstantPool()
	results := make([]result, count)
	for i := range results {
		funcidx := uint32(imported + i)
		fn, err := e.CompileFunction(m, pool, i)

		name, ok := names[funcidx]
		if !ok {
			name = fmt.Sprintf("$%d", funcidx)
		}
		results[i] = result{funcidx: funcidx, name: name, fn: fn, err: err}
	}
	return results, pool.Values()
}

func failures(results []result) error {
	n := 0
	for _, r := range results {
		if r.err != nil {
			n++
		}
	}
	if n != 0 {
		return fmt.Errorf("%d of %d functions failed to translate", n, len(results))
	}
	return nil
}

func Command() *cobra.Command {
	var stats bool
	var colorMode string

	command := &cobra.Command{
		Use:   "dump [path to module]",
		Short: "Dump translated WebAssembly functions",
		Long:  "Dump the register bytecode of each function defined by a WebAssembly module",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}

			colors, err := useColor(colorMode, os.Stdout)
			if err != nil {
				return err
			}

			config, err := engine.ConfigFromEnv(nil)
			if err != nil {
				return err
			}

			mod, err := load.LoadFile(args[0])
			if err != nil {
				return err
			}

			results, constants := compileFunctions(engine.New(config), mod)

			w := bufio.NewWriter(os.Stdout)
			defer w.Flush()

			if stats {
				if err := dumpStats(w, results); err != nil {
					return err
				}
			} else {
				if err := dumpListing(w, results, constants, newPalette(colors)); err != nil {
					return err
				}
			}
			return failures(results)
		},
	}

	command.PersistentFlags().BoolVarP(&stats, "stats", "s", false, "dump function statistics in CSV format")
	command.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize the listing: auto, always, or never")

	return command
}
