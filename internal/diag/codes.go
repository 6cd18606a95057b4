package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexBadEscape                Code = 1006

	// Парсерные
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnclosedParen   Code = 2006
	SynUnclosedBrace   Code = 2007
	SynExpectSemicolon Code = 2012
	SynFnNotAllowed    Code = 2030

	SynExpectIdentifier Code = 2102

	SynExpectType          Code = 2202
	SynExpectExpression    Code = 2203
	SynExpectLParen        Code = 2208
	SynExpectBlock         Code = 2209
	SynMissingReturn       Code = 2210
	SynIntOutOfRange       Code = 2211
	SynInvalidAssignTarget Code = 2212
	SynVoidNotAllowed      Code = 2213
	SynBreakOutsideLoop    Code = 2214

	// Ввод-вывод и проект
	IOLoadFileError    Code = 4001
	ProjInvalidConfig  Code = 5001
	ProjConfigNotFound Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed integer literal",
	LexTokenTooLong:             "Token too long",
	LexBadEscape:                "Unknown escape sequence",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynUnclosedBrace:            "Unclosed brace",
	SynExpectSemicolon:          "Missing semicolon",
	SynFnNotAllowed:             "Function declaration not allowed here",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectType:               "Expected type",
	SynExpectExpression:         "Expected expression",
	SynExpectLParen:             "Expected '('",
	SynExpectBlock:              "Expected block",
	SynMissingReturn:            "Missing return in function",
	SynIntOutOfRange:            "Integer literal out of range",
	SynInvalidAssignTarget:      "Invalid assignment target",
	SynVoidNotAllowed:           "'void' is not a value type",
	SynBreakOutsideLoop:         "Loop control outside of a loop",
	IOLoadFileError:             "Cannot load file",
	ProjInvalidConfig:           "Invalid project manifest",
	ProjConfigNotFound:          "Project manifest not found",
}

// codeRange maps a thousand-block of codes to its ID prefix and phase.
type codeRange struct {
	prefix, phase string
}

var codeRanges = map[Code]codeRange{
	1: {"LEX", "lex"},
	2: {"SYN", "syntax"},
	4: {"IO", "io"},
	5: {"PRJ", "project"},
}

func (c Code) family() (codeRange, bool) {
	r, ok := codeRanges[c/1000]
	return r, ok
}

// ID is the stable printable form, e.g. SYN2001.
func (c Code) ID() string {
	if r, ok := c.family(); ok {
		return fmt.Sprintf("%s%04d", r.prefix, uint16(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Phase names the stage that produces c: lex, syntax, io or project.
func (c Code) Phase() string {
	if r, ok := c.family(); ok {
		return r.phase
	}
	return "unknown"
}

// IsLexical reports whether c belongs to the lexer range.
func (c Code) IsLexical() bool { return c >= 1000 && c < 2000 }

// IsSyntax reports whether c belongs to the parser range.
func (c Code) IsSyntax() bool { return c >= 2000 && c < 3000 }
