// Package diagfmt renders compiler output for humans and tools: diagnostics
// (pretty, JSON), token streams (pretty, JSON, msgpack) and AST dumps.
package diagfmt
