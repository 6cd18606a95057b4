package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"oxygen/internal/ast"
	"oxygen/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// buildProgramTreeNode строит дерево подписей для дампов; fs может быть nil.
func buildProgramTreeNode(builder *ast.Builder, prog ast.ProgramID, fs *source.FileSet) (*treeNode, error) {
	program := builder.Programs.Get(prog)
	if program == nil {
		return nil, fmt.Errorf("program %d not found", prog)
	}
	header := "Program"
	if fs != nil {
		header = "Program " + fs.Get(program.Span.File).FormatPath("auto", fs.BaseDir())
	}
	root := &treeNode{label: fmt.Sprintf("%s (span: %s)", header, formatSpan(program.Span, fs))}
	for _, id := range program.Stmts {
		root.children = append(root.children, buildStmtTreeNode(builder, id, fs))
	}
	return root, nil
}

func buildStmtTreeNode(builder *ast.Builder, id ast.StmtID, fs *source.FileSet) *treeNode {
	st := builder.Stmts.Get(id)
	if st == nil {
		return &treeNode{label: "<none>"}
	}
	node := &treeNode{}
	title := st.Kind.String()
	child := func(label string, n *treeNode) {
		if label != "" {
			n = &treeNode{label: label, children: []*treeNode{n}}
		}
		node.children = append(node.children, n)
	}

	switch st.Kind {
	case ast.StmtBlock:
		for _, s := range builder.Stmts.Block(id).Stmts {
			child("", buildStmtTreeNode(builder, s, fs))
		}
	case ast.StmtDecl:
		d := builder.Stmts.Decl(id)
		title = fmt.Sprintf("Decl %s %s", d.Type.Kind, builder.Name(d.Name))
		if d.Value.IsValid() {
			child("", buildExprTreeNode(builder, d.Value, fs))
		}
	case ast.StmtFn:
		fn := builder.Stmts.Fn(id)
		params := make([]string, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, fmt.Sprintf("%s %s", p.Type.Kind, builder.Name(p.Name)))
		}
		title = fmt.Sprintf("Fn %s %s(%s)", fn.ReturnType.Kind, builder.Name(fn.Name), strings.Join(params, ", "))
		child("", buildStmtTreeNode(builder, fn.Body, fs))
	case ast.StmtAssign:
		a := builder.Stmts.Assign(id)
		title = "Assign " + a.Op.String()
		child("", buildExprTreeNode(builder, a.Target, fs))
		child("", buildExprTreeNode(builder, a.Value, fs))
	case ast.StmtIf:
		s := builder.Stmts.If(id)
		child("Cond", buildExprTreeNode(builder, s.Cond, fs))
		child("Then", buildStmtTreeNode(builder, s.Then, fs))
		if s.Else.IsValid() {
			child("Else", buildStmtTreeNode(builder, s.Else, fs))
		}
	case ast.StmtWhile:
		s := builder.Stmts.While(id)
		child("Cond", buildExprTreeNode(builder, s.Cond, fs))
		child("Body", buildStmtTreeNode(builder, s.Body, fs))
	case ast.StmtFor:
		s := builder.Stmts.For(id)
		if s.Init.IsValid() {
			child("Init", buildStmtTreeNode(builder, s.Init, fs))
		}
		if s.Cond.IsValid() {
			child("Cond", buildExprTreeNode(builder, s.Cond, fs))
		}
		if s.Post.IsValid() {
			child("Post", buildStmtTreeNode(builder, s.Post, fs))
		}
		child("Body", buildStmtTreeNode(builder, s.Body, fs))
	case ast.StmtReturn:
		if v := builder.Stmts.Return(id).Value; v.IsValid() {
			child("", buildExprTreeNode(builder, v, fs))
		}
	case ast.StmtExpr:
		child("", buildExprTreeNode(builder, builder.Stmts.Expr(id).Expr, fs))
	}

	node.label = fmt.Sprintf("%s (span: %s)", title, formatSpan(st.Span, fs))
	return node
}

func buildExprTreeNode(builder *ast.Builder, id ast.ExprID, fs *source.FileSet) *treeNode {
	e := builder.Exprs.Get(id)
	if e == nil {
		return &treeNode{label: "<none>"}
	}
	node := &treeNode{}
	title := e.Kind.String()

	switch e.Kind {
	case ast.ExprIdent:
		d, _ := builder.Exprs.Ident(id)
		title = "Ident " + builder.Name(d.Name)
	case ast.ExprLit:
		d, _ := builder.Exprs.Literal(id)
		title = fmt.Sprintf("Lit %s %s", d.Kind, formatLiteral(d))
	case ast.ExprUnary:
		d, _ := builder.Exprs.Unary(id)
		title = "Unary " + d.Op.String()
		node.children = append(node.children, buildExprTreeNode(builder, d.Operand, fs))
	case ast.ExprBinary:
		d, _ := builder.Exprs.Binary(id)
		title = "Binary " + d.Op.String()
		node.children = append(node.children,
			buildExprTreeNode(builder, d.Left, fs),
			buildExprTreeNode(builder, d.Right, fs))
	case ast.ExprCall:
		d, _ := builder.Exprs.Call(id)
		title = fmt.Sprintf("Call/%d", len(d.Args))
		node.children = append(node.children, buildExprTreeNode(builder, d.Callee, fs))
		for _, arg := range d.Args {
			node.children = append(node.children, buildExprTreeNode(builder, arg, fs))
		}
	case ast.ExprGroup:
		d, _ := builder.Exprs.Group(id)
		node.children = append(node.children, buildExprTreeNode(builder, d.Inner, fs))
	}

	node.label = fmt.Sprintf("%s (span: %s)", title, formatSpan(e.Span, fs))
	return node
}

// FormatASTPretty печатает AST с отступами ├─ / └─.
func FormatASTPretty(w io.Writer, builder *ast.Builder, prog ast.ProgramID, fs *source.FileSet) error {
	root, err := buildProgramTreeNode(builder, prog, fs)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	writeIndented(&sb, root.children, "")
	_, err = io.WriteString(w, sb.String())
	return err
}

func writeIndented(sb *strings.Builder, nodes []*treeNode, prefix string) {
	for i, n := range nodes {
		branch, next := "├─ ", "│  "
		if i == len(nodes)-1 {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(n.label)
		sb.WriteByte('\n')
		writeIndented(sb, n.children, prefix+next)
	}
}

// SpanJSON - позиция узла в JSON-дампе AST.
type SpanJSON struct {
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
	Line  uint32 `json:"line"`
	Col   uint32 `json:"col"`
}

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     SpanJSON        `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

func makeSpanJSON(sp source.Span) SpanJSON {
	return SpanJSON{Start: sp.Start, End: sp.End, Line: sp.Line, Col: sp.Col}
}

// FormatASTJSON пишет AST как вложенные узлы с полями, зависящими от вида узла.
func FormatASTJSON(w io.Writer, builder *ast.Builder, prog ast.ProgramID) error {
	program := builder.Programs.Get(prog)
	if program == nil {
		return fmt.Errorf("program %d not found", prog)
	}
	out := ASTNodeOutput{Type: "Program", Span: makeSpanJSON(program.Span)}
	for _, id := range program.Stmts {
		out.Children = append(out.Children, stmtJSON(builder, id))
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

func stmtJSON(builder *ast.Builder, id ast.StmtID) ASTNodeOutput {
	st := builder.Stmts.Get(id)
	out := ASTNodeOutput{Type: "Stmt", Kind: st.Kind.String(), Span: makeSpanJSON(st.Span)}
	addStmt := func(role string, sid ast.StmtID) {
		if sid.IsValid() {
			n := stmtJSON(builder, sid)
			if role != "" {
				n.Fields = withRole(n.Fields, role)
			}
			out.Children = append(out.Children, n)
		}
	}
	addExpr := func(role string, eid ast.ExprID) {
		if eid.IsValid() {
			n := exprJSON(builder, eid)
			if role != "" {
				n.Fields = withRole(n.Fields, role)
			}
			out.Children = append(out.Children, n)
		}
	}

	switch st.Kind {
	case ast.StmtBlock:
		for _, s := range builder.Stmts.Block(id).Stmts {
			addStmt("", s)
		}
	case ast.StmtDecl:
		d := builder.Stmts.Decl(id)
		out.Fields = map[string]any{"type": d.Type.Kind.String(), "name": builder.Name(d.Name)}
		addExpr("value", d.Value)
	case ast.StmtFn:
		fn := builder.Stmts.Fn(id)
		params := make([]map[string]string, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, map[string]string{"type": p.Type.Kind.String(), "name": builder.Name(p.Name)})
		}
		out.Fields = map[string]any{"return": fn.ReturnType.Kind.String(), "name": builder.Name(fn.Name), "params": params}
		addStmt("body", fn.Body)
	case ast.StmtAssign:
		a := builder.Stmts.Assign(id)
		out.Fields = map[string]any{"op": a.Op.String()}
		addExpr("target", a.Target)
		addExpr("value", a.Value)
	case ast.StmtIf:
		s := builder.Stmts.If(id)
		addExpr("cond", s.Cond)
		addStmt("then", s.Then)
		addStmt("else", s.Else)
	case ast.StmtWhile:
		s := builder.Stmts.While(id)
		addExpr("cond", s.Cond)
		addStmt("body", s.Body)
	case ast.StmtFor:
		s := builder.Stmts.For(id)
		addStmt("init", s.Init)
		addExpr("cond", s.Cond)
		addStmt("post", s.Post)
		addStmt("body", s.Body)
	case ast.StmtReturn:
		addExpr("value", builder.Stmts.Return(id).Value)
	case ast.StmtExpr:
		addExpr("", builder.Stmts.Expr(id).Expr)
	}
	return out
}

func exprJSON(builder *ast.Builder, id ast.ExprID) ASTNodeOutput {
	e := builder.Exprs.Get(id)
	out := ASTNodeOutput{Type: "Expr", Kind: e.Kind.String(), Span: makeSpanJSON(e.Span)}
	switch e.Kind {
	case ast.ExprIdent:
		d, _ := builder.Exprs.Ident(id)
		out.Fields = map[string]any{"name": builder.Name(d.Name)}
	case ast.ExprLit:
		d, _ := builder.Exprs.Literal(id)
		fields := map[string]any{"lit": d.Kind.String(), "raw": d.Raw}
		switch d.Kind {
		case ast.LitInt:
			fields["value"] = d.Int
		case ast.LitString:
			fields["value"] = d.Str
		case ast.LitBool:
			fields["value"] = d.Bool
		}
		out.Fields = fields
	case ast.ExprUnary:
		d, _ := builder.Exprs.Unary(id)
		out.Fields = map[string]any{"op": d.Op.String()}
		out.Children = append(out.Children, exprJSON(builder, d.Operand))
	case ast.ExprBinary:
		d, _ := builder.Exprs.Binary(id)
		out.Fields = map[string]any{"op": d.Op.String()}
		out.Children = append(out.Children, exprJSON(builder, d.Left), exprJSON(builder, d.Right))
	case ast.ExprCall:
		d, _ := builder.Exprs.Call(id)
		out.Children = append(out.Children, exprJSON(builder, d.Callee))
		for _, arg := range d.Args {
			out.Children = append(out.Children, exprJSON(builder, arg))
		}
	case ast.ExprGroup:
		d, _ := builder.Exprs.Group(id)
		out.Children = append(out.Children, exprJSON(builder, d.Inner))
	}
	return out
}

func withRole(fields map[string]any, role string) map[string]any {
	if fields == nil {
		fields = make(map[string]any, 1)
	}
	fields["role"] = role
	return fields
}
