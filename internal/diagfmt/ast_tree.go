package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"oxygen/internal/ast"
)

type treeBlock struct {
	lines []string
	width int
	root  int // колонка вертикального соединителя корня
}

// FormatASTTree рисует AST сверху вниз: операторы узлами, выражения одной
// строкой внутри подписи.
func FormatASTTree(w io.Writer, builder *ast.Builder, prog ast.ProgramID) error {
	program := builder.Programs.Get(prog)
	if program == nil {
		return fmt.Errorf("program %d not found", prog)
	}
	root := &treeNode{label: "Program"}
	for _, id := range program.Stmts {
		root.children = append(root.children, outlineStmt(builder, id))
	}
	block := renderTree(root)
	var sb strings.Builder
	for _, line := range block.lines {
		sb.WriteString(strings.TrimRight(line, " "))
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func outlineStmt(builder *ast.Builder, id ast.StmtID) *treeNode {
	st := builder.Stmts.Get(id)
	if st == nil {
		return &treeNode{label: "<none>"}
	}
	expr := func(e ast.ExprID) string { return formatExprInline(builder, e) }
	node := &treeNode{label: st.Kind.String()}
	switch st.Kind {
	case ast.StmtBlock:
		node.label = "{}"
		for _, s := range builder.Stmts.Block(id).Stmts {
			node.children = append(node.children, outlineStmt(builder, s))
		}
	case ast.StmtDecl:
		d := builder.Stmts.Decl(id)
		node.label = fmt.Sprintf("Decl %s %s", d.Type.Kind, builder.Name(d.Name))
		if d.Value.IsValid() {
			node.label += " = " + expr(d.Value)
		}
	case ast.StmtFn:
		fn := builder.Stmts.Fn(id)
		params := make([]string, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, fmt.Sprintf("%s %s", p.Type.Kind, builder.Name(p.Name)))
		}
		node.label = fmt.Sprintf("Fn %s %s(%s)", fn.ReturnType.Kind, builder.Name(fn.Name), strings.Join(params, ", "))
		node.children = append(node.children, outlineStmt(builder, fn.Body))
	case ast.StmtAssign:
		a := builder.Stmts.Assign(id)
		node.label = fmt.Sprintf("%s %s %s", expr(a.Target), a.Op, expr(a.Value))
	case ast.StmtIf:
		s := builder.Stmts.If(id)
		node.label = "If " + expr(s.Cond)
		node.children = append(node.children, outlineStmt(builder, s.Then))
		if s.Else.IsValid() {
			node.children = append(node.children, outlineStmt(builder, s.Else))
		}
	case ast.StmtWhile:
		s := builder.Stmts.While(id)
		node.label = "While " + expr(s.Cond)
		node.children = append(node.children, outlineStmt(builder, s.Body))
	case ast.StmtFor:
		s := builder.Stmts.For(id)
		cond := ""
		if s.Cond.IsValid() {
			cond = expr(s.Cond)
		}
		node.label = "For " + cond
		if s.Init.IsValid() {
			node.children = append(node.children, outlineStmt(builder, s.Init))
		}
		if s.Post.IsValid() {
			node.children = append(node.children, outlineStmt(builder, s.Post))
		}
		node.children = append(node.children, outlineStmt(builder, s.Body))
	case ast.StmtReturn:
		node.label = "Return"
		if v := builder.Stmts.Return(id).Value; v.IsValid() {
			node.label += " " + expr(v)
		}
	case ast.StmtExpr:
		node.label = expr(builder.Stmts.Expr(id).Expr)
	}
	return node
}

func padRight(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// renderTree раскладывает детей в ряд через spacing колонок и центрирует
// подпись родителя над ними.
func renderTree(node *treeNode) treeBlock {
	label := node.label
	labelWidth := runewidth.StringWidth(label)
	if len(node.children) == 0 {
		return treeBlock{lines: []string{label}, width: labelWidth, root: labelWidth / 2}
	}

	const spacing = 3
	blocks := make([]treeBlock, len(node.children))
	height := 0
	for i, child := range node.children {
		blocks[i] = renderTree(child)
		height = max(height, len(blocks[i].lines))
	}

	positions := make([]int, len(blocks))
	width := 0
	for i, b := range blocks {
		if i > 0 {
			width += spacing
		}
		positions[i] = width + b.root
		width += b.width
	}

	// сдвигаем либо подпись, либо детей, чтобы центры совпали
	center := (positions[0] + positions[len(positions)-1]) / 2
	labelShift, childShift := 0, 0
	if center >= labelWidth/2 {
		labelShift = center - labelWidth/2
	} else {
		childShift = labelWidth/2 - center
	}
	rootPos := labelShift + labelWidth/2
	width = max(width+childShift, labelShift+labelWidth)

	connector := []rune(strings.Repeat(" ", width))
	first, last := positions[0]+childShift, positions[len(positions)-1]+childShift
	for i := first; i <= last; i++ {
		connector[i] = '-'
	}
	for _, pos := range positions {
		pos += childShift
		switch {
		case pos < rootPos:
			connector[pos] = '/'
		case pos > rootPos:
			connector[pos] = '\\'
		default:
			connector[pos] = '|'
		}
	}

	lines := make([]string, 0, height+3)
	lines = append(lines,
		padRight(strings.Repeat(" ", labelShift)+label, width),
		padRight(strings.Repeat(" ", rootPos)+"|", width),
		string(connector))
	for row := range height {
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", childShift))
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(strings.Repeat(" ", spacing))
			}
			line := ""
			if row < len(b.lines) {
				line = b.lines[row]
			}
			sb.WriteString(padRight(line, b.width))
		}
		lines = append(lines, padRight(sb.String(), width))
	}
	return treeBlock{lines: lines, width: width, root: rootPos}
}
