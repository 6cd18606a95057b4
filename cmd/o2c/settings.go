package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"oxygen/internal/diag"
	"oxygen/internal/diagfmt"
	"oxygen/internal/project"
	"oxygen/internal/source"
)

// settings - итоговые значения флагов с учётом o2.toml.
type settings struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	warnings       bool
	format         string
	manifest       *project.Manifest
}

// beginRun включает профилирование и трассировку и читает настройки.
// cleanup нужно вызвать и при ошибке команды.
func beginRun(cmd *cobra.Command) (*settings, func(), error) {
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, nil, err
	}
	stopTracing, err := setupTracing(cmd)
	if err != nil {
		stopProfiling()
		return nil, nil, err
	}
	cleanup := func() {
		stopTracing()
		stopProfiling()
	}
	s, err := loadSettings(cmd)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return s, cleanup, nil
}

func readColorFlag(value string) (string, error) {
	switch v := strings.TrimSpace(strings.ToLower(value)); v {
	case "", "auto":
		return "auto", nil
	case "on", "off":
		return v, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// loadSettings читает флаги и, если найден, o2.toml из текущей директории.
// Явно заданные флаги важнее манифеста.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()
	s := &settings{}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	colorMode, err := readColorFlag(colorFlag)
	if err != nil {
		return nil, err
	}
	s.color = colorMode == "on" || (colorMode == "auto" && isTerminal(cmd.ErrOrStderr()))

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.warnings, err = flags.GetBool("warnings"); err != nil {
		return nil, fmt.Errorf("failed to get warnings flag: %w", err)
	}
	if flags.Lookup("format") != nil {
		if s.format, err = flags.GetString("format"); err != nil {
			return nil, fmt.Errorf("failed to get format flag: %w", err)
		}
	}

	manifest, ok, err := project.Discover(".")
	if err != nil {
		var merr *project.ManifestError
		if errors.As(err, &merr) {
			reportManifestError(cmd, s, merr)
			return nil, errDiagnostics
		}
		return nil, err
	}
	if ok {
		s.manifest = manifest
		s.applyManifest(cmd, manifest.Diagnostics)
	}
	return s, nil
}

func (s *settings) applyManifest(cmd *cobra.Command, cfg project.DiagnosticsConfig) {
	flags := cmd.Flags()
	if cfg.Max != nil && !flags.Changed("max-diagnostics") {
		s.maxDiagnostics = *cfg.Max
	}
	if cfg.Warnings != nil && !flags.Changed("warnings") {
		s.warnings = *cfg.Warnings
	}
	// format из манифеста относится только к выводу диагностик
	if cfg.Format != nil && cmd.Name() == "diag" && !flags.Changed("format") {
		s.format = *cfg.Format
	}
}

func reportManifestError(cmd *cobra.Command, s *settings, merr *project.ManifestError) {
	fs := source.NewFileSet()
	bag := diag.NewBag(1)
	bag.Add(merr.Diagnostic(fs))
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, s.prettyOpts())
}

func (s *settings) prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{Color: s.color, Context: 2}
}

// filter убирает предупреждения, если они выключены.
func (s *settings) filter(bag *diag.Bag) {
	if s.warnings {
		return
	}
	bag.Filter(func(d diag.Diagnostic) bool { return d.Severity >= diag.SevError })
}
