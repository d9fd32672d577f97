package ir

import (
	"fmt"
	"strings"
)

// Sprint renders stmts as a compact s-expression-ish trace, one
// statement per line, for tooling output (z80dec decode). It is not
// used by anything that consumes the IR programmatically.
func Sprint(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(sprintStmt(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func sprintStmt(s Stmt) string {
	switch n := s.(type) {
	case *ExpressionStatement:
		return sprintExpr(n.Expression)
	case *IfStatement:
		if n.Alternate != nil {
			return fmt.Sprintf("if (%s) %s else %s", sprintExpr(n.Test), sprintStmt(n.Consequent), sprintStmt(n.Alternate))
		}
		return fmt.Sprintf("if (%s) %s", sprintExpr(n.Test), sprintStmt(n.Consequent))
	case *BlockStatement:
		parts := make([]string, len(n.Body))
		for i, body := range n.Body {
			parts[i] = sprintStmt(body)
		}
		return "{ " + strings.Join(parts, "; ") + " }"
	case *ReturnStatement:
		if n.Argument == nil {
			return "return"
		}
		return "return " + sprintExpr(n.Argument)
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

func sprintExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return fmt.Sprintf("0x%X", n.Value)
	case *Identifier:
		return n.Name
	case *Register:
		return n.Name
	case *MemberExpression:
		return fmt.Sprintf("%s[%s]", sprintExpr(n.Object), sprintExpr(n.Property))
	case *BinaryExpression:
		return fmt.Sprintf("(%s %s %s)", sprintExpr(n.Left), n.Op, sprintExpr(n.Right))
	case *AssignmentExpression:
		return fmt.Sprintf("%s %s %s", sprintExpr(n.Left), n.Op, sprintExpr(n.Right))
	case *CallExpression:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = sprintExpr(a)
		}
		return fmt.Sprintf("%s(%s)", n.Callee.Name, strings.Join(args, ", "))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
