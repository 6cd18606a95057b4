package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"oxygen/internal/ast"
	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
	"oxygen/internal/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.o2|directory|->",
		Short: "Parse an Oxygen source file or directory and output AST",
		Long:  `Parse analyzes an Oxygen source file or all *.o2 files in a directory and outputs their syntax trees`,
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|tree)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func writeAST(w io.Writer, format string, builder *ast.Builder, prog ast.ProgramID, fs *source.FileSet) error {
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(w, builder, prog)
	case "tree":
		return diagfmt.FormatASTTree(w, builder, prog)
	default:
		return diagfmt.FormatASTPretty(w, builder, prog, fs)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	s, cleanup, err := beginRun(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	switch s.format {
	case "pretty", "json", "tree":
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}

	path := args[0]
	if path == "-" {
		data, readErr := readStdin(cmd)
		if readErr != nil {
			return readErr
		}
		return emitParseResult(cmd, s, driver.ParseSource(cmd.Context(), stdinName, data, s.driverOptions()))
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		result, parseErr := driver.Parse(cmd.Context(), path, s.driverOptions())
		if parseErr != nil {
			return fmt.Errorf("parsing failed: %w", parseErr)
		}
		return emitParseResult(cmd, s, result)
	}
	return parseDirectory(cmd, s, path)
}

func emitParseResult(cmd *cobra.Command, s *settings, result *driver.ParseResult) error {
	reportToStderr(cmd, s, result.Bag, result.FileSet)
	if err := writeAST(cmd.OutOrStdout(), s.format, result.Builder, result.Program, result.FileSet); err != nil {
		return err
	}
	printTimings(cmd.ErrOrStderr(), "parse", result.Timing)
	return exitStatus(result.Bag)
}

func parseDirectory(cmd *cobra.Command, s *settings, dir string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	opts := s.driverOptions()
	opts.Jobs = jobs

	fs, results, err := driver.ParseDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	merged := driver.MergeBags(results, s.maxDiagnostics)
	reportToStderr(cmd, s, merged, fs)

	out := cmd.OutOrStdout()
	if s.format == "json" {
		// JSON по директории: один объект path -> AST
		output := make(map[string]json.RawMessage, len(results))
		for _, r := range results {
			if r.Builder == nil {
				output[r.Path] = json.RawMessage("null")
				continue
			}
			var buf bytes.Buffer
			if err := diagfmt.FormatASTJSON(&buf, r.Builder, r.Program); err != nil {
				return err
			}
			output[r.Path] = json.RawMessage(buf.Bytes())
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
		return exitStatus(merged)
	}

	for idx, r := range results {
		if !s.quiet {
			fmt.Fprintf(out, "== %s ==\n", r.Path)
		}
		if r.Builder != nil {
			if err := writeAST(out, s.format, r.Builder, r.Program, fs); err != nil {
				return err
			}
		}
		printTimings(cmd.ErrOrStderr(), r.Path, r.Timing)
		if !s.quiet && idx < len(results)-1 {
			fmt.Fprintln(out)
		}
	}
	return exitStatus(merged)
}
