package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprint renders statements in parenthesized prefix form, one top-level
// statement per line. It only reads the tree.
func Sprint(stmts []Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		b.WriteString(SprintStmt(stmt))
		b.WriteByte('\n')
	}

	return b.String()
}

func SprintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		return parenthesize(";", s.Expr)
	case *PrintStmt:
		return parenthesize("print", s.Expr)
	case *VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}

		return parenthesize("var "+s.Name.Lexeme, s.Initializer)
	case *BlockStmt:
		return parenthesize("block", stmtParts(s.Statements)...)
	case *IfStmt:
		if s.ElseBranch == nil {
			return parenthesize("if", s.Condition, s.ThenBranch)
		}

		return parenthesize("if", s.Condition, s.ThenBranch, s.ElseBranch)
	case *WhileStmt:
		return parenthesize("while", s.Condition, s.Body)
	case *FunctionStmt:
		return sprintFunction("fun", s)
	case *ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}

		return parenthesize("return", s.Value)
	case *ClassStmt:
		name := "class " + s.Name.Lexeme
		if s.Superclass != nil {
			name += " < " + s.Superclass.Name.Lexeme
		}

		parts := make([]interface{}, 0, len(s.Methods))
		for _, method := range s.Methods {
			parts = append(parts, sprintFunction("method", method))
		}

		return parenthesize(name, parts...)
	default:
		return fmt.Sprintf("(? %T)", stmt)
	}
}

func SprintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *AssignExpr:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *LogicalExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *GroupingExpr:
		return parenthesize("group", e.Inner)
	case *LiteralExpr:
		if s, ok := e.Value.(string); ok {
			return strconv.Quote(s)
		}

		return Stringify(e.Value)
	case *VariableExpr:
		return e.Name.Lexeme
	case *CallExpr:
		parts := make([]interface{}, 0, len(e.Arguments)+1)
		parts = append(parts, e.Callee)
		for _, arg := range e.Arguments {
			parts = append(parts, arg)
		}

		return parenthesize("call", parts...)
	case *GetExpr:
		return parenthesize(".", e.Object, e.Name.Lexeme)
	case *SetExpr:
		return parenthesize(".=", e.Object, e.Name.Lexeme, e.Value)
	case *ThisExpr:
		return "this"
	case *SuperExpr:
		return "(super " + e.Method.Lexeme + ")"
	default:
		return fmt.Sprintf("(? %T)", expr)
	}
}

func sprintFunction(keyword string, s *FunctionStmt) string {
	params := make([]string, 0, len(s.Params))
	for _, param := range s.Params {
		params = append(params, param.Lexeme)
	}

	parts := []interface{}{"(" + strings.Join(params, " ") + ")"}
	parts = append(parts, stmtParts(s.Body)...)

	return parenthesize(keyword+" "+s.Name.Lexeme, parts...)
}

func stmtParts(stmts []Stmt) []interface{} {
	parts := make([]interface{}, 0, len(stmts))
	for _, stmt := range stmts {
		parts = append(parts, stmt)
	}

	return parts
}

// parenthesize accepts expressions, statements and plain strings.
func parenthesize(name string, parts ...interface{}) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)

	for _, part := range parts {
		b.WriteByte(' ')

		switch p := part.(type) {
		case Expr:
			b.WriteString(SprintExpr(p))
		case Stmt:
			b.WriteString(SprintStmt(p))
		case string:
			b.WriteString(p)
		}
	}

	b.WriteString(")")
	return b.String()
}
