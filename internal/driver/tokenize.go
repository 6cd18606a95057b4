package driver

import (
	"context"
	"fmt"
	"strconv"

	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/observ"
	"oxygen/internal/source"
	"oxygen/internal/token"
	"oxygen/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
	Timing  *observ.Report
}

// Tokenize loads path and returns its full token stream, EOF included.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return tokenizeFile(ctx, fs, fs.Get(fileID), opts), nil
}

// TokenizeSource is Tokenize over an in-memory buffer (stdin, tests).
func TokenizeSource(ctx context.Context, name string, content []byte, opts Options) *TokenizeResult {
	fs := source.NewFileSet()
	return tokenizeFile(ctx, fs, fs.Get(fs.AddVirtual(name, content)), opts)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, opts Options) *TokenizeResult {
	span := trace.Begin(ctx, trace.ScopePass, "tokenize", file.Path)
	timer := observ.NewTimer()
	done := timer.Track("tokenize")

	bag := diag.NewBag(opts.MaxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	tokens := collectTokens(lx)
	done(strconv.Itoa(len(tokens)) + " tokens")

	sorted := timer.Track("sort")
	bag.Sort()
	sorted(strconv.Itoa(bag.Len()) + " diagnostics")
	span.Set(trace.Int("tokens", len(tokens)), trace.Int("diags", bag.Len())).End()

	res := &TokenizeResult{FileSet: fs, File: file, Tokens: tokens, Bag: bag}
	if opts.Timings {
		rep := timer.Report()
		res.Timing = &rep
	}
	return res
}

// collectTokens собирает все токены до EOF включительно.
func collectTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}
