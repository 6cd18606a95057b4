package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"oxygen/internal/diag"
	"oxygen/internal/diagfmt"
	"oxygen/internal/driver"
	"oxygen/internal/source"
	"oxygen/internal/ui"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] <file.o2|directory|->",
		Short: "Report lexical and syntax diagnostics",
		Long:  `Diag parses Oxygen sources and prints their diagnostics; it exits with status 1 when any error was found`,
		Args:  cobra.ExactArgs(1),
		RunE:  runDiag,
	}
	f := cmd.Flags()
	f.String("format", "pretty", "output format (pretty|json|short)")
	f.String("ui", "auto", "progress view for directories (auto|on|off)")
	f.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	f.String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	f.Bool("notes", true, "show notes")
	f.Bool("fixes", false, "show suggested fixes")
	f.Bool("preview", false, "show a before/after preview for fixes")
	return cmd
}

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func runDiag(cmd *cobra.Command, args []string) error {
	s, cleanup, err := beginRun(cmd)
	if err != nil {
		return err
	}
	defer cleanup()
	switch s.format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", s.format)
	}

	fs, bag, err := collectDiagnostics(cmd, s, args[0])
	if err != nil {
		return err
	}
	s.filter(bag)
	if err := writeDiagnostics(cmd, s, bag, fs); err != nil {
		return err
	}
	return exitStatus(bag)
}

func collectDiagnostics(cmd *cobra.Command, s *settings, path string) (*source.FileSet, *diag.Bag, error) {
	if path == "-" {
		data, err := readStdin(cmd)
		if err != nil {
			return nil, nil, err
		}
		res := driver.ParseSource(cmd.Context(), stdinName, data, s.driverOptions())
		printTimings(cmd.ErrOrStderr(), "parse", res.Timing)
		return res.FileSet, res.Bag, nil
	}

	st, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		res, parseErr := driver.Parse(cmd.Context(), path, s.driverOptions())
		if parseErr != nil {
			return nil, nil, fmt.Errorf("parsing failed: %w", parseErr)
		}
		printTimings(cmd.ErrOrStderr(), "parse", res.Timing)
		return res.FileSet, res.Bag, nil
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return nil, nil, err
	}

	opts := s.driverOptions()
	opts.Jobs = jobs
	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
	)
	parse := func(progress driver.ProgressFunc) error {
		opts.Progress = progress
		var parseErr error
		fs, results, parseErr = driver.ParseDir(cmd.Context(), path, opts)
		return parseErr
	}

	if s.shouldUseTUI(cmd, mode) {
		files, listErr := driver.ListSourceFiles(path)
		if listErr != nil {
			return nil, nil, fmt.Errorf("failed to list sources: %w", listErr)
		}
		err = ui.RunProgress(cmd.Context(), cmd.ErrOrStderr(), "parsing "+path, files, parse)
	} else {
		err = parse(nil)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("parsing failed: %w", err)
	}
	for _, r := range results {
		printTimings(cmd.ErrOrStderr(), r.Path, r.Timing)
	}
	return fs, driver.MergeBags(results, s.maxDiagnostics), nil
}

// shouldUseTUI: прогресс рисуется только для человекочитаемого вывода.
func (s *settings) shouldUseTUI(cmd *cobra.Command, mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return !s.quiet && s.format == "pretty" && isTerminal(cmd.ErrOrStderr())
	}
}

func writeDiagnostics(cmd *cobra.Command, s *settings, bag *diag.Bag, fs *source.FileSet) error {
	flags := cmd.Flags()
	pathModeFlag, err := flags.GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, err := diagfmt.ParsePathMode(pathModeFlag)
	if err != nil {
		return err
	}
	notes, err := flags.GetBool("notes")
	if err != nil {
		return fmt.Errorf("failed to get notes flag: %w", err)
	}
	fixes, err := flags.GetBool("fixes")
	if err != nil {
		return fmt.Errorf("failed to get fixes flag: %w", err)
	}
	preview, err := flags.GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}

	out := cmd.OutOrStdout()
	switch s.format {
	case "json":
		return diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     notes,
			IncludeFixes:     fixes,
		})
	case "short":
		if text := diag.FormatShortDiagnostics(bag.Items(), fs, notes); text != "" {
			fmt.Fprintln(out, text)
		}
	default:
		opts := s.prettyOpts()
		opts.PathMode = pathMode
		opts.ShowNotes = notes
		opts.ShowFixes = fixes || preview
		opts.ShowPreview = preview
		// цвет решается по тому потоку, куда идёт вывод
		opts.Color = s.color && (flags.Changed("color") || isTerminal(out))
		diagfmt.Pretty(out, bag, fs, opts)
	}

	if !s.quiet && s.format != "json" {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d error(s), %d warning(s)", bag.ErrorCount(), bag.Count(diag.SevWarning))
		if n := bag.Dropped(); n > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), ", %d more not shown", n)
		}
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	return nil
}
