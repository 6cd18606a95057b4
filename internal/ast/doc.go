// Package ast holds the arena-backed syntax tree produced by the parser.
//
// Nodes live in per-kind arenas owned by a Builder and refer to their
// children by 1-based IDs; the zero ID means "absent". Every ID is referenced
// by exactly one parent, so the tree is owned strictly top-down. Each node
// carries the span of the source text it was parsed from, and a parent span
// always contains the spans of its children (see CheckSpans).
package ast
