package diagfmt

import (
	"fmt"
	"strconv"
	"strings"

	"oxygen/internal/ast"
)

// formatExprInline печатает выражение одной строкой, со скобками вокруг
// каждого бинарного подвыражения: ((1 + (2 * 3)) - x).
func formatExprInline(builder *ast.Builder, exprID ast.ExprID) string {
	expr := builder.Exprs.Get(exprID)
	if expr == nil {
		return "<none>"
	}
	switch expr.Kind {
	case ast.ExprIdent:
		if data, ok := builder.Exprs.Ident(exprID); ok {
			return builder.Name(data.Name)
		}
	case ast.ExprLit:
		if data, ok := builder.Exprs.Literal(exprID); ok {
			return formatLiteral(data)
		}
	case ast.ExprUnary:
		if data, ok := builder.Exprs.Unary(exprID); ok {
			return data.Op.String() + formatExprInline(builder, data.Operand)
		}
	case ast.ExprBinary:
		if data, ok := builder.Exprs.Binary(exprID); ok {
			return fmt.Sprintf("(%s %s %s)", formatExprInline(builder, data.Left), data.Op, formatExprInline(builder, data.Right))
		}
	case ast.ExprCall:
		if data, ok := builder.Exprs.Call(exprID); ok {
			args := make([]string, 0, len(data.Args))
			for _, arg := range data.Args {
				args = append(args, formatExprInline(builder, arg))
			}
			return fmt.Sprintf("%s(%s)", formatExprInline(builder, data.Callee), strings.Join(args, ", "))
		}
	case ast.ExprGroup:
		if data, ok := builder.Exprs.Group(exprID); ok {
			return "(" + formatExprInline(builder, data.Inner) + ")"
		}
	case ast.ExprBad:
		return "<bad>"
	}
	return "<?>"
}

func formatLiteral(data *ast.LitExpr) string {
	switch data.Kind {
	case ast.LitInt:
		return strconv.FormatInt(data.Int, 10)
	case ast.LitString:
		return strconv.Quote(data.Str)
	case ast.LitBool:
		return strconv.FormatBool(data.Bool)
	default:
		return data.Raw
	}
}
