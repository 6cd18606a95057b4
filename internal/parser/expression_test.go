package parser

import (
	"testing"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
)

func TestPrecedence(t *testing.T) {
	p := parseSource(t, "int x = 1 + 2 * 3;")
	expectNoDiags(t, p)

	sum, ok := p.builder.Exprs.Binary(p.declValue(t, 0))
	if !ok || sum.Op != ast.BinAdd {
		t.Fatalf("root is not '+'")
	}
	if p.intLit(t, sum.Left) != 1 {
		t.Fatalf("left of '+' is not 1")
	}
	mul, ok := p.builder.Exprs.Binary(sum.Right)
	if !ok || mul.Op != ast.BinMul {
		t.Fatalf("right of '+' is not '*'")
	}
	if p.intLit(t, mul.Left) != 2 || p.intLit(t, mul.Right) != 3 {
		t.Fatalf("unexpected operands of '*'")
	}
}

func TestLeftAssociativity(t *testing.T) {
	p := parseSource(t, "int x = 1 - 2 - 3;")
	expectNoDiags(t, p)

	outer, ok := p.builder.Exprs.Binary(p.declValue(t, 0))
	if !ok || outer.Op != ast.BinSub {
		t.Fatalf("root is not '-'")
	}
	if p.intLit(t, outer.Right) != 3 {
		t.Fatalf("right of root is not 3")
	}
	inner, ok := p.builder.Exprs.Binary(outer.Left)
	if !ok || p.intLit(t, inner.Left) != 1 || p.intLit(t, inner.Right) != 2 {
		t.Fatalf("left of root is not (1 - 2)")
	}
}

func TestOperatorTable(t *testing.T) {
	tests := []struct {
		src  string
		root ast.BinaryOp
	}{
		{"int x = a || b && c;", ast.BinLogOr},
		{"int x = a && b | c;", ast.BinLogAnd},
		{"int x = a | b ^ c;", ast.BinOr},
		{"int x = a ^ b & c;", ast.BinXor},
		{"int x = a & b == c;", ast.BinAnd},
		{"int x = a == b < c;", ast.BinEq},
		{"int x = a != b >= c;", ast.BinNe},
		{"int x = a < b << c;", ast.BinLt},
		{"int x = a >> b + c;", ast.BinShr},
		{"int x = a - b % c;", ast.BinSub},
		{"int x = a * b / c;", ast.BinDiv},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p := parseSource(t, tt.src)
			expectNoDiags(t, p)
			bin, ok := p.builder.Exprs.Binary(p.declValue(t, 0))
			if !ok || bin.Op != tt.root {
				t.Fatalf("root operator = %v, want %v", bin, tt.root)
			}
		})
	}
}

func TestUnaryChainAppliesRightToLeft(t *testing.T) {
	p := parseSource(t, "int x = -!~+y;")
	expectNoDiags(t, p)

	want := []ast.UnaryOp{ast.UnNeg, ast.UnNot, ast.UnCompl, ast.UnPlus}
	id := p.declValue(t, 0)
	for _, op := range want {
		un, ok := p.builder.Exprs.Unary(id)
		if !ok || un.Op != op {
			t.Fatalf("expected unary %v", op)
		}
		id = un.Operand
	}
	if _, ok := p.builder.Exprs.Ident(id); !ok {
		t.Fatalf("innermost operand is not an identifier")
	}
}

func TestUnaryBindsTighterThanBinary(t *testing.T) {
	p := parseSource(t, "int x = -a * b;")
	expectNoDiags(t, p)
	bin, ok := p.builder.Exprs.Binary(p.declValue(t, 0))
	if !ok || bin.Op != ast.BinMul {
		t.Fatalf("root is not '*'")
	}
	if _, ok := p.builder.Exprs.Unary(bin.Left); !ok {
		t.Fatalf("left of '*' is not unary")
	}
}

func TestCallsAndGroups(t *testing.T) {
	p := parseSource(t, `print(1, f(2), "s", (a + b));`)
	expectNoDiags(t, p)
	expectKinds(t, p, ast.StmtExpr)

	call, ok := p.builder.Exprs.Call(p.builder.Stmts.Expr(p.stmts()[0]).Expr)
	if !ok || len(call.Args) != 4 {
		t.Fatalf("expected call with 4 args, got %+v", call)
	}
	if name, _ := p.builder.Exprs.Ident(call.Callee); p.builder.Name(name.Name) != "print" {
		t.Fatalf("callee is not 'print'")
	}
	if _, ok := p.builder.Exprs.Call(call.Args[1]); !ok {
		t.Fatalf("second argument is not a call")
	}
	if s, ok := p.builder.Exprs.Literal(call.Args[2]); !ok || s.Str != "s" || s.Raw != `"s"` {
		t.Fatalf("third argument is not the string literal")
	}
	if _, ok := p.builder.Exprs.Group(call.Args[3]); !ok {
		t.Fatalf("fourth argument is not a group")
	}
}

func TestLiteralValues(t *testing.T) {
	p := parseSource(t, "int a = 0x1F; int b = 0b101; int c = 0o17; int d = 1_000; bool e = true; string s = \"a\\tb\";")
	expectNoDiags(t, p)

	for i, want := range []int64{31, 5, 15, 1000} {
		if got := p.intLit(t, p.declValue(t, i)); got != want {
			t.Errorf("literal %d = %d, want %d", i, got, want)
		}
	}
	if b, ok := p.builder.Exprs.Literal(p.declValue(t, 4)); !ok || b.Kind != ast.LitBool || !b.Bool {
		t.Errorf("expected bool literal true")
	}
	if s, ok := p.builder.Exprs.Literal(p.declValue(t, 5)); !ok || s.Str != "a\tb" {
		t.Errorf("string literal not unescaped: %+v", s)
	}
}

func TestIntOutOfRange(t *testing.T) {
	p := parseSource(t, "int x = 9223372036854775808;\nint y = 9223372036854775807;")
	expectCodes(t, p, diag.SynIntOutOfRange)
	expectKinds(t, p, ast.StmtDecl, ast.StmtDecl)
	if _, ok := p.builder.Exprs.Literal(p.declValue(t, 0)); !ok {
		t.Fatalf("out of range literal must still produce a node")
	}
	if p.intLit(t, p.declValue(t, 1)) != 9223372036854775807 {
		t.Fatalf("max int64 decoded wrongly")
	}
}

func TestUnclosedParen(t *testing.T) {
	p := parseSource(t, "int x = (1 + 2;\nint y;")
	expectCodes(t, p, diag.SynUnclosedParen)
	expectKinds(t, p, ast.StmtBad, ast.StmtDecl)
	if notes := p.bag.Items()[0].Notes; len(notes) != 1 || notes[0].Span.Start != 8 {
		t.Fatalf("expected a note at the opening paren, got %+v", notes)
	}
}

func TestExpectExpression(t *testing.T) {
	p := parseSource(t, "int x = ;\nint y = 1 + ;")
	expectCodes(t, p, diag.SynExpectExpression, diag.SynExpectExpression)
	expectKinds(t, p, ast.StmtBad, ast.StmtBad)
	if msg := p.bag.Items()[0].Message; msg != "expected expression, got ';'" {
		t.Fatalf("unexpected message %q", msg)
	}
}
