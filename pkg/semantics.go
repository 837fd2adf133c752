package lox

type functionKind int

const (
	functionNone functionKind = iota
	functionPlain
	functionMethod
)

type classKind int

const (
	classNone classKind = iota
	classPlain
	classSubclass
)

// Analyzer walks a parsed program looking for constructs that are
// syntactically valid but can never run: returning from top-level code, or
// 'this' and 'super' used where no instance exists. Name resolution is left
// to the interpreter.
type Analyzer struct {
	currentFunction functionKind
	currentClass    classKind
	errors          []*SemanticError
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze is a shorthand for running a fresh analyzer over stmts.
func Analyze(stmts []Stmt) []*SemanticError {
	return NewAnalyzer().Do(stmts)
}

func (a *Analyzer) Do(stmts []Stmt) []*SemanticError {
	for _, stmt := range stmts {
		a.stmt(stmt)
	}

	return a.errors
}

func (a *Analyzer) stmt(stmt Stmt) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		a.expr(s.Expr)
	case *PrintStmt:
		a.expr(s.Expr)
	case *VarStmt:
		if s.Initializer != nil {
			a.expr(s.Initializer)
		}
	case *BlockStmt:
		for _, child := range s.Statements {
			a.stmt(child)
		}
	case *IfStmt:
		a.expr(s.Condition)
		a.stmt(s.ThenBranch)
		if s.ElseBranch != nil {
			a.stmt(s.ElseBranch)
		}
	case *WhileStmt:
		a.expr(s.Condition)
		a.stmt(s.Body)
	case *FunctionStmt:
		a.function(s, functionPlain)
	case *ReturnStmt:
		if a.currentFunction == functionNone {
			a.errorf(s.Keyword, "Can't return from top-level code.")
		}

		if s.Value != nil {
			a.expr(s.Value)
		}
	case *ClassStmt:
		a.class(s)
	}
}

func (a *Analyzer) class(s *ClassStmt) {
	enclosing := a.currentClass
	a.currentClass = classPlain
	defer func() { a.currentClass = enclosing }()

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			a.errorf(s.Superclass.Name, "A class can't inherit from itself.")
		}

		a.currentClass = classSubclass
	}

	for _, method := range s.Methods {
		a.function(method, functionMethod)
	}
}

func (a *Analyzer) function(s *FunctionStmt, kind functionKind) {
	enclosing := a.currentFunction
	a.currentFunction = kind
	defer func() { a.currentFunction = enclosing }()

	for _, stmt := range s.Body {
		a.stmt(stmt)
	}
}

func (a *Analyzer) expr(expr Expr) {
	switch e := expr.(type) {
	case *AssignExpr:
		a.expr(e.Value)
	case *BinaryExpr:
		a.expr(e.Left)
		a.expr(e.Right)
	case *LogicalExpr:
		a.expr(e.Left)
		a.expr(e.Right)
	case *UnaryExpr:
		a.expr(e.Right)
	case *GroupingExpr:
		a.expr(e.Inner)
	case *CallExpr:
		a.expr(e.Callee)
		for _, arg := range e.Arguments {
			a.expr(arg)
		}
	case *GetExpr:
		a.expr(e.Object)
	case *SetExpr:
		a.expr(e.Value)
		a.expr(e.Object)
	case *ThisExpr:
		if a.currentClass == classNone {
			a.errorf(e.Keyword, "Can't use 'this' outside of a class.")
		}
	case *SuperExpr:
		switch a.currentClass {
		case classNone:
			a.errorf(e.Keyword, "Can't use 'super' outside of a class.")
		case classPlain:
			a.errorf(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
	}
}

func (a *Analyzer) errorf(tok Token, message string) {
	a.errors = append(a.errors, &SemanticError{Token: tok, Message: message})
}
