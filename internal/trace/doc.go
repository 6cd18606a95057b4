// Package trace is the structured event log of the o2c compiler.
//
// Enable it from the command line:
//
//	o2c parse --trace=- --trace-level=debug main.o2
//
// Scopes say how coarse an event is: ScopeDriver for CLI operations,
// ScopePass for tokenizing or parsing one file, ScopeFile for per-file
// bookkeeping, ScopeNode for parser internals such as error recovery.
// LevelError lets through only error events (syntax diagnostics as the
// parser reports them), LevelPhase adds driver and pass spans, LevelDebug
// shows everything.
//
// Spans nest through context.Context:
//
//	span := trace.Begin(ctx, trace.ScopePass, "parse", file.Path)
//	defer span.End()
//	span.Point(trace.ScopeNode, "recover", "", trace.Int("skipped", 3))
package trace
