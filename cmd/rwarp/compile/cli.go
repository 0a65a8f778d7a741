package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/pgavlin/rwarp/engine"
	"github.com/pgavlin/rwarp/load"
	"github.com/spf13/cobra"
)

// summarize writes a one-line description of a compiled module.
func summarize(w io.Writer, path string, mod *engine.Module, elapsed time.Duration) error {
	instructions, registers := 0, 0
	for _, fn := range mod.Functions {
		instructions += len(fn.Instructions)
		if fn.NumRegisters > registers {
			registers = fn.NumRegisters
		}
	}
	_, err := fmt.Fprintf(w, "%s: %d functions, %d instructions, %d constants, max %d registers (%v)\n",
		path, len(mod.Functions), instructions, len(mod.Constants), registers, elapsed.Round(time.Microsecond))
	return err
}

func Command() *cobra.Command {
	var parallelism int

	command := &cobra.Command{
		Use:   "compile [path to module]",
		Short: "Translate a WebAssembly module to register bytecode",
		Long:  "Translate every function in a WebAssembly module to register bytecode and report the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one argument")
			}

			config, err := engine.ConfigFromEnv(nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("parallelism") {
				config.Parallelism = parallelism
			}

			mod, err := load.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			start := time.Now()
			compiled, err := engine.New(config).CompileModule(ctx, mod)
			if err != nil {
				return fmt.Errorf("%v: %w", args[0], err)
			}
			return summarize(cmd.OutOrStdout(), args[0], compiled, time.Since(start))
		},
	}

	command.PersistentFlags().IntVarP(&parallelism, "parallelism", "j", 0, "the number of functions to translate concurrently. Defaults to GOMAXPROCS")

	return command
}
