package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"oxygen/internal/diag"
	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
	"oxygen/internal/observ"
	"oxygen/internal/source"
)

const stdinName = "<stdin>"

func readStdin(cmd *cobra.Command) ([]byte, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func (s *settings) driverOptions() driver.Options {
	return driver.Options{MaxDiagnostics: s.maxDiagnostics, Timings: s.timings}
}

// reportToStderr печатает диагностики команд tokenize/parse; основной
// вывод этих команд идёт в stdout.
func reportToStderr(cmd *cobra.Command, s *settings, bag *diag.Bag, fs *source.FileSet) {
	s.filter(bag)
	if bag.Len() == 0 {
		return
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, s.prettyOpts())
}

// exitStatus превращает ошибки в диагностиках в errDiagnostics.
func exitStatus(bags ...*diag.Bag) error {
	for _, bag := range bags {
		if bag != nil && bag.HasErrors() {
			return errDiagnostics
		}
	}
	return nil
}

func printTimings(out io.Writer, label string, rep *observ.Report) {
	if rep != nil {
		rep.Fprint(out, label)
	}
}
