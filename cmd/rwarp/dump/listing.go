package dump

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pgavlin/rwarp/engine/bytecode"
)

// useColor decides whether output written to f should be colorized.
func useColor(mode string, f *os.File) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
}

type palette struct {
	header   *color.Color
	trap     *color.Color
	failure  *color.Color
	constant *color.Color
}

func newPalette(enabled bool) *palette {
	p := &palette{
		header:   color.New(color.FgCyan, color.Bold),
		trap:     color.New(color.FgYellow),
		failure:  color.New(color.FgRed, color.Bold),
		constant: color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.header, p.trap, p.failure, p.constant} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func dumpListing(w io.Writer, results []result, constants []uint64, colors *palette) error {
	var buf bytes.Buffer
	for _, r := range results {
		if r.err != nil {
			if _, err := colors.failure.Fprintf(w, "func %s: %v\n\n", r.name, r.err); err != nil {
				return err
			}
			continue
		}

		buf.Reset()
		if err := bytecode.Fprint(&buf, r.fn, constants); err != nil {
			return err
		}

		scanner := bufio.NewScanner(&buf)
		for first := true; scanner.Scan(); first = false {
			line := scanner.Text()

			var err error
			switch {
			case first:
				_, err = colors.header.Fprintln(w, line)
			case strings.Contains(line, "trap"):
				_, err = colors.trap.Fprintln(w, line)
			default:
				_, err = fmt.Fprintln(w, line)
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if len(constants) == 0 {
		return nil
	}
	if _, err := colors.header.Fprintf(w, "constants (%d)\n", len(constants)); err != nil {
		return err
	}
	for i, v := range constants {
		if _, err := colors.constant.Fprintf(w, "%6d\t0x%016x\n", i, v); err != nil {
			return err
		}
	}
	return nil
}
