// Package token defines lexical token kinds and trivia for the Oxygen compiler.
// Invariants:
//   - Token.Text is a slice of the original source (no copies of other text).
//   - Token.Span matches Text exactly (Start..End).
//   - Whitespace and comments never appear in the main token stream; they are
//     attached to the following token as Leading trivia. The EOF token carries
//     the trailing trivia of the file, so the stream reproduces the source.
//   - Type names (int, bool, string, void) are keywords.
package token
