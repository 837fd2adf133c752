package lox

// Node is implemented by every AST node. Nodes are never mutated after the
// parser builds them.
type Node interface {
	node()
}

// Expression nodes
type (
	Expr interface {
		Node
		exprNode()
	}

	AssignExpr struct {
		Name  Token
		Value Expr
	}

	BinaryExpr struct {
		Left     Expr
		Operator Token
		Right    Expr
	}

	// LogicalExpr is an 'and'/'or' expression. Its right operand is only
	// evaluated when the left one doesn't decide the result.
	LogicalExpr struct {
		Left     Expr
		Operator Token
		Right    Expr
	}

	UnaryExpr struct {
		Operator Token
		Right    Expr
	}

	GroupingExpr struct {
		Inner Expr
	}

	// LiteralExpr holds nil, a bool, a float64 or a string.
	LiteralExpr struct {
		Value interface{}
	}

	VariableExpr struct {
		Name Token
	}

	CallExpr struct {
		Callee    Expr
		Paren     Token
		Arguments []Expr
	}

	GetExpr struct {
		Object Expr
		Name   Token
	}

	SetExpr struct {
		Object Expr
		Name   Token
		Value  Expr
	}

	ThisExpr struct {
		Keyword Token
	}

	SuperExpr struct {
		Keyword Token
		Method  Token
	}
)

func (*AssignExpr) node()   {}
func (*BinaryExpr) node()   {}
func (*LogicalExpr) node()  {}
func (*UnaryExpr) node()    {}
func (*GroupingExpr) node() {}
func (*LiteralExpr) node()  {}
func (*VariableExpr) node() {}
func (*CallExpr) node()     {}
func (*GetExpr) node()      {}
func (*SetExpr) node()      {}
func (*ThisExpr) node()     {}
func (*SuperExpr) node()    {}

func (*AssignExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}
func (*LogicalExpr) exprNode()  {}
func (*UnaryExpr) exprNode()    {}
func (*GroupingExpr) exprNode() {}
func (*LiteralExpr) exprNode()  {}
func (*VariableExpr) exprNode() {}
func (*CallExpr) exprNode()     {}
func (*GetExpr) exprNode()      {}
func (*SetExpr) exprNode()      {}
func (*ThisExpr) exprNode()     {}
func (*SuperExpr) exprNode()    {}

// Statement nodes
type (
	Stmt interface {
		Node
		stmtNode()
	}

	ExpressionStmt struct {
		Expr Expr
	}

	PrintStmt struct {
		Expr Expr
	}

	// VarStmt declares a variable. Initializer is nil when absent.
	VarStmt struct {
		Name        Token
		Initializer Expr
	}

	BlockStmt struct {
		Statements []Stmt
	}

	IfStmt struct {
		Condition  Expr
		ThenBranch Stmt
		ElseBranch Stmt
	}

	WhileStmt struct {
		Condition Expr
		Body      Stmt
	}

	FunctionStmt struct {
		Name   Token
		Params []Token
		Body   []Stmt
	}

	ReturnStmt struct {
		Keyword Token
		Value   Expr
	}

	ClassStmt struct {
		Name       Token
		Superclass *VariableExpr
		Methods    []*FunctionStmt
	}
)

func (*ExpressionStmt) node() {}
func (*PrintStmt) node()      {}
func (*VarStmt) node()        {}
func (*BlockStmt) node()      {}
func (*IfStmt) node()         {}
func (*WhileStmt) node()      {}
func (*FunctionStmt) node()   {}
func (*ReturnStmt) node()     {}
func (*ClassStmt) node()      {}

func (*ExpressionStmt) stmtNode() {}
func (*PrintStmt) stmtNode()      {}
func (*VarStmt) stmtNode()        {}
func (*BlockStmt) stmtNode()      {}
func (*IfStmt) stmtNode()         {}
func (*WhileStmt) stmtNode()      {}
func (*FunctionStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()     {}
func (*ClassStmt) stmtNode()      {}

// AST is the result of a parse: the top-level statements in source order
// and the syntax errors collected on the way.
type AST struct {
	Statements []Stmt
	Errors     []*SyntaxError
}
