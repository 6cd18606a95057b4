package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.o2|->",
		Short: "Tokenize an Oxygen source file",
		Long:  `Tokenize breaks down an Oxygen source file into its constituent tokens`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, cleanup, err := beginRun(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	switch s.format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		data, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		result = driver.TokenizeSource(cmd.Context(), stdinName, data, s.driverOptions())
	} else {
		result, err = driver.Tokenize(cmd.Context(), args[0], s.driverOptions())
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	reportToStderr(cmd, s, result.Bag, result.FileSet)

	out := cmd.OutOrStdout()
	switch s.format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, result.File.Path, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
	}
	if err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), "tokenize", result.Timing)
	return exitStatus(result.Bag)
}
