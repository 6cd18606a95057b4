// Package lexer turns a source.File into a pull-based stream of tokens.
//
// The lexer never materialises the whole stream: Next scans one lexeme,
// Peek buffers exactly one token. Whitespace and comments are collected as
// Leading trivia of the following token; the EOF token carries the trivia at
// the end of the file. Every malformed lexeme produces one diagnostic through
// Options.Reporter and an Invalid token, and scanning continues after it.
package lexer
