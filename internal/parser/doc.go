// Package parser turns the token stream of one .o2 file into an arena AST.
//
// Statements are parsed by recursive descent, expressions by precedence
// climbing over the table in op_table.go. Syntax errors go to the
// diag.Reporter from Options; the parser always produces a Program, with
// StmtBad/ExprBad placeholders where input could not be parsed.
package parser
