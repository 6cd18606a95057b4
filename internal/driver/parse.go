package driver

import (
	"context"
	"fmt"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/observ"
	"oxygen/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Program ast.ProgramID
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Parse loads path and parses it. Lexical and syntax problems end up in
// Bag; the error is returned only when the file cannot be read.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return parseFile(ctx, fs, fs.Get(fileID), opts), nil
}

// ParseSource parses an in-memory buffer.
func ParseSource(ctx context.Context, name string, content []byte, opts Options) *ParseResult {
	fs := source.NewFileSet()
	return parseFile(ctx, fs, fs.Get(fs.AddVirtual(name, content)), opts)
}

func parseFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *ParseResult {
	one := parseOne(ctx, fs, file, opts)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: one.Builder,
		Program: one.Program,
		Bag:     one.Bag,
		Timing:  one.Timing,
	}
}
