package parser

import (
	"oxygen/internal/ast"
	"oxygen/internal/token"
)

// binaryOp - приоритет и ассоциативность бинарного оператора.
type binaryOp struct {
	prec       int
	rightAssoc bool
	op         ast.BinaryOp
}

var binaryOps = map[token.Kind]binaryOp{
	token.OrOr:    {prec: 1, op: ast.BinLogOr},
	token.AndAnd:  {prec: 2, op: ast.BinLogAnd},
	token.Pipe:    {prec: 3, op: ast.BinOr},
	token.Caret:   {prec: 4, op: ast.BinXor},
	token.Amp:     {prec: 5, op: ast.BinAnd},
	token.EqEq:    {prec: 6, op: ast.BinEq},
	token.BangEq:  {prec: 6, op: ast.BinNe},
	token.Lt:      {prec: 7, op: ast.BinLt},
	token.LtEq:    {prec: 7, op: ast.BinLe},
	token.Gt:      {prec: 7, op: ast.BinGt},
	token.GtEq:    {prec: 7, op: ast.BinGe},
	token.Shl:     {prec: 8, op: ast.BinShl},
	token.Shr:     {prec: 8, op: ast.BinShr},
	token.Plus:    {prec: 9, op: ast.BinAdd},
	token.Minus:   {prec: 9, op: ast.BinSub},
	token.Star:    {prec: 10, op: ast.BinMul},
	token.Slash:   {prec: 10, op: ast.BinDiv},
	token.Percent: {prec: 10, op: ast.BinMod},
}

// getBinaryOperatorPrec возвращает приоритет (0 - не бинарный оператор)
// и признак правой ассоциативности.
func getBinaryOperatorPrec(k token.Kind) (int, bool) {
	if op, ok := binaryOps[k]; ok {
		return op.prec, op.rightAssoc
	}
	return 0, false
}

func unaryOpFor(k token.Kind) (ast.UnaryOp, bool) {
	switch k {
	case token.Minus:
		return ast.UnNeg, true
	case token.Plus:
		return ast.UnPlus, true
	case token.Bang:
		return ast.UnNot, true
	case token.Tilde:
		return ast.UnCompl, true
	default:
		return 0, false
	}
}

func assignOpFor(k token.Kind) (ast.AssignOp, bool) {
	switch k {
	case token.Assign:
		return ast.AssignPlain, true
	case token.PlusAssign:
		return ast.AssignAdd, true
	case token.MinusAssign:
		return ast.AssignSub, true
	case token.StarAssign:
		return ast.AssignMul, true
	case token.SlashAssign:
		return ast.AssignDiv, true
	case token.PercentAssign:
		return ast.AssignMod, true
	default:
		return 0, false
	}
}
