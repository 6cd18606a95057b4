package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const fibSource = `int fib(int n) {
    if (n < 2) { return n; }
    return fib(n - 1) + fib(n - 2);
}
int x = -fib(10) * 2;
`

func TestFormatASTPretty(t *testing.T) {
	pf := parseVirtual(t, "fib.o2", fibSource)
	if pf.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", pf.bag.Items())
	}

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, pf.builder, pf.prog, pf.fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	wants := []string{
		"Program fib.o2 (span: 1:1-6:1)",
		"├─ Fn int fib(int n) (span: 1:1-4:2)",
		"└─ Decl int x (span: 5:1-5:22)",
		"Binary * ",
		"Unary - ",
		"Call/1 ",
		"Lit int 10 ",
		"Ident n ",
		"Cond",
	}
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestFormatASTTree(t *testing.T) {
	pf := parseVirtual(t, "t.o2", "int x = 1 + 2 * 3;\nx += 1;\n")

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, pf.builder, pf.prog); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if strings.TrimSpace(lines[0]) != "Program" || strings.TrimSpace(lines[1]) != "|" {
		t.Errorf("unexpected root lines:\n%s", buf.String())
	}
	if !strings.Contains(lines[3], "Decl int x = (1 + (2 * 3))") || !strings.Contains(lines[3], "x += 1") {
		t.Errorf("unexpected leaves: %q", lines[3])
	}
	if !strings.Contains(lines[2], "/") || !strings.Contains(lines[2], `\`) {
		t.Errorf("expected branch connectors: %q", lines[2])
	}
}

func TestRenderTreeCentersLabel(t *testing.T) {
	block := renderTree(&treeNode{label: "root", children: []*treeNode{{label: "a"}, {label: "b"}}})
	// a _ _ _ b: центры детей 0 и 4, корень над колонкой 2
	if block.root != 2 {
		t.Errorf("root = %d, want 2", block.root)
	}
	if block.lines[2] != `/---\` {
		t.Errorf("connector = %q", block.lines[2])
	}
	if block.lines[3] != "a   b" {
		t.Errorf("children = %q", block.lines[3])
	}
}

func TestFormatASTJSON(t *testing.T) {
	pf := parseVirtual(t, "t.o2", "string s = \"hi\\n\";\nwhile (true) { break; }\n")

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, pf.builder, pf.prog); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Type != "Program" || len(root.Children) != 2 {
		t.Fatalf("unexpected root: %+v", root)
	}
	decl := root.Children[0]
	if decl.Kind != "Decl" || decl.Fields["name"] != "s" || decl.Fields["type"] != "string" {
		t.Errorf("unexpected decl: %+v", decl)
	}
	lit := decl.Children[0]
	if lit.Kind != "Lit" || lit.Fields["value"] != "hi\n" || lit.Fields["role"] != "value" {
		t.Errorf("unexpected literal: %+v", lit)
	}
	loop := root.Children[1]
	if loop.Kind != "While" || len(loop.Children) != 2 || loop.Children[1].Children[0].Kind != "Break" {
		t.Errorf("unexpected loop: %+v", loop)
	}
}

func TestFormatASTMissingProgram(t *testing.T) {
	pf := parseVirtual(t, "t.o2", "")
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, pf.builder, pf.prog+5, pf.fs); err == nil {
		t.Error("expected error for unknown program")
	}
}
