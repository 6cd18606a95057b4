// Package driver wires source loading, the lexer and the parser into the
// operations the CLI exposes: Tokenize, Parse and ParseDir.
package driver
