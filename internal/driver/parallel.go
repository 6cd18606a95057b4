package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/observ"
	"oxygen/internal/parser"
	"oxygen/internal/source"
	"oxygen/internal/trace"
)

// SourceExt is the extension of Oxygen source files.
const SourceExt = ".o2"

// ParseDirResult is the outcome for one file of a directory run.
type ParseDirResult struct {
	Path    string
	FileID  source.FileID
	Builder *ast.Builder // nil when the file could not be read
	Program ast.ProgramID
	Bag     *diag.Bag
	Timing  *observ.Report
}

// ListSourceFiles walks dir and returns every *.o2 file in lexical order.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case !d.IsDir() && filepath.Ext(path) == SourceExt:
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// loaded is a file slot filled before any worker starts.
type loaded struct {
	path string
	id   source.FileID
	err  error
}

// ParseDir parses every *.o2 file under dir on a bounded worker pool.
// The FileSet is filled up front and read-only afterwards; each worker gets
// its own lexer, builder and bag. Results follow ListSourceFiles order.
func ParseDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []ParseDirResult, error) {
	paths, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	fileSet := source.NewFileSetWithBase(dir)
	if len(paths) == 0 {
		return fileSet, nil, nil
	}

	span := trace.Begin(ctx, trace.ScopeDriver, "parse-dir", dir)
	defer span.End()
	ctx = span.Context(ctx)

	slots := make([]loaded, len(paths))
	for i, path := range paths {
		slots[i].path = path
		slots[i].id, slots[i].err = fileSet.Load(path)
		if slots[i].err != nil {
			span.Point(trace.ScopeFile, "load", slots[i].err.Error())
		}
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	results := make([]ParseDirResult, len(paths)) // каждый воркер пишет только свой индекс
	var finished atomic.Int64
	notify := func(ev ProgressEvent) {
		if opts.Progress != nil {
			ev.Total = len(paths)
			opts.Progress(ev)
		}
	}

	for i, slot := range slots {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			notify(ProgressEvent{Path: slot.path, Status: StatusWorking, Done: int(finished.Load())})

			if slot.err != nil {
				results[i] = loadFailure(slot, opts)
			} else {
				results[i] = parseOne(gctx, fileSet, fileSet.Get(slot.id), opts)
				results[i].Path = slot.path
			}

			ev := ProgressEvent{Path: slot.path, Status: StatusDone, Errors: results[i].Bag.ErrorCount()}
			if ev.Errors > 0 {
				ev.Status = StatusError
			}
			ev.Done = int(finished.Add(1))
			notify(ev)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	span.Set(trace.Int("files", len(paths)))
	return fileSet, results, nil
}

func loadFailure(slot loaded, opts Options) ParseDirResult {
	bag := diag.NewBag(opts.MaxDiagnostics)
	bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, fmt.Sprintf("failed to load file: %v", slot.err)))
	return ParseDirResult{Path: slot.path, Bag: bag}
}

func parseOne(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) ParseDirResult {
	timer := observ.NewTimer()
	out := ParseDirResult{FileID: file.ID, Bag: diag.NewBag(opts.MaxDiagnostics)}
	reporter := diag.Unique(diag.BagReporter{Bag: out.Bag})

	stop := timer.Track("parse")
	out.Builder = ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(ctx, fs, lexer.New(file, lexer.Options{Reporter: reporter}), out.Builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: opts.maxErrors(),
	})
	out.Program = res.Program
	stop(fmt.Sprintf("%d stmts", len(out.Builder.Programs.Get(res.Program).Stmts)))

	stop = timer.Track("sort")
	out.Bag.Sort()
	stop(fmt.Sprintf("%d diagnostics", out.Bag.Len()))

	if opts.Timings {
		rep := timer.Report()
		out.Timing = &rep
	}
	return out
}

// MergeBags collects every file's diagnostics into one sorted bag of at most
// limit entries.
func MergeBags(results []ParseDirResult, limit int) *diag.Bag {
	total := diag.NewBag(limit)
	for _, r := range results {
		total.Merge(r.Bag)
	}
	total.Sort()
	return total
}
