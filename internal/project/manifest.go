package project

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"oxygen/internal/diag"
	"oxygen/internal/source"
)

// Manifest is a decoded o2.toml.
type Manifest struct {
	Path        string
	Root        string
	Package     PackageConfig
	Diagnostics DiagnosticsConfig
}

type PackageConfig struct {
	Name string `toml:"name"`
}

// DiagnosticsConfig holds defaults for the CLI. Nil pointers mean the key
// was not present, so the CLI keeps its own default.
type DiagnosticsConfig struct {
	Max      *int    `toml:"max"`
	Format   *string `toml:"format"`
	Warnings *bool   `toml:"warnings"`
}

type manifestFile struct {
	Package     PackageConfig     `toml:"package"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
}

// ManifestError describes a manifest that could not be found or decoded.
// Offset/Len point into the manifest text when the location is known.
type ManifestError struct {
	Path   string
	Code   diag.Code
	Msg    string
	Offset int
	Len    int
	Err    error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

func (e *ManifestError) Unwrap() error { return e.Err }

// ErrManifestNotFound is wrapped by ManifestError for a missing manifest.
var ErrManifestNotFound = errors.New("manifest not found")

// Discover finds o2.toml above startDir and loads it. ok=false without an
// error means there is no manifest.
func Discover(startDir string) (m *Manifest, ok bool, err error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ManifestError{Path: path, Code: diag.ProjConfigNotFound, Msg: "no " + ManifestName + " at this path", Err: ErrManifestNotFound}
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return Parse(path, content)
}

// Parse decodes manifest text; path is used for messages and Root.
func Parse(path string, content []byte) (*Manifest, error) {
	var raw manifestFile
	meta, err := toml.Decode(string(content), &raw)
	if err != nil {
		merr := &ManifestError{Path: path, Code: diag.ProjInvalidConfig, Msg: "failed to parse TOML", Err: err}
		var perr toml.ParseError
		if errors.As(err, &perr) {
			merr.Msg = perr.Message
			merr.Offset, merr.Len = perr.Position.Start, perr.Position.Len
		}
		return nil, merr
	}

	invalid := func(key, msg string) error {
		off, n := keyOffset(content, key)
		return &ManifestError{Path: path, Code: diag.ProjInvalidConfig, Msg: msg, Offset: off, Len: n}
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		last := undecoded[0][len(undecoded[0])-1]
		return nil, invalid(last, "unknown key(s): "+strings.Join(keys, ", "))
	}
	if meta.IsDefined("package") && strings.TrimSpace(raw.Package.Name) == "" {
		return nil, invalid("name", "[package].name must not be empty")
	}
	if d := raw.Diagnostics; d.Max != nil && *d.Max < 0 {
		return nil, invalid("max", fmt.Sprintf("[diagnostics].max must be >= 0, got %d", *d.Max))
	}
	if f := raw.Diagnostics.Format; f != nil && *f != "pretty" && *f != "json" {
		return nil, invalid("format", fmt.Sprintf("[diagnostics].format must be \"pretty\" or \"json\", got %q", *f))
	}

	return &Manifest{
		Path:        path,
		Root:        filepath.Dir(path),
		Package:     PackageConfig{Name: strings.TrimSpace(raw.Package.Name)},
		Diagnostics: raw.Diagnostics,
	}, nil
}

// keyOffset ищет строку `key = ...`; (0, 0) если ключ не найден.
func keyOffset(content []byte, key string) (int, int) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	off := 0
	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimLeft(line, " \t")
		if rest, ok := strings.CutPrefix(trimmed, key); ok {
			if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "=") {
				return off + len(line) - len(trimmed), len(key)
			}
		}
		off += len(line) + 1
	}
	return 0, 0
}

// Diagnostic turns the error into a diagnostic pointing into the manifest.
// The manifest text is added to fs so renderers can show the line.
func (e *ManifestError) Diagnostic(fs *source.FileSet) diag.Diagnostic {
	content, err := os.ReadFile(e.Path)
	if err != nil {
		content = nil
	}
	fileID := fs.AddVirtual(e.Path, content)

	start := min(max(e.Offset, 0), len(content))
	end := min(start+max(e.Len, 0), len(content))
	startU, err := safecast.Conv[uint32](start)
	if err != nil {
		panic(fmt.Errorf("manifest offset overflow: %w", err))
	}
	endU, err := safecast.Conv[uint32](end)
	if err != nil {
		panic(fmt.Errorf("manifest offset overflow: %w", err))
	}
	pos := fs.Get(fileID).Position(startU)
	span := source.Span{File: fileID, Start: startU, End: endU, Line: pos.Line, Col: pos.Col}
	return diag.NewError(e.Code, span, e.Msg)
}
