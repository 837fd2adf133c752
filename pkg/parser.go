package lox

const maxArguments = 255

// Parser builds statements out of a token sequence with recursive descent.
// Syntax errors are collected rather than returned; after a structural error
// the parser skips to the next statement boundary and carries on.
type Parser struct {
	tokens  []Token
	current int
	errors  []*SyntaxError
}

func NewParser(tokens []Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Typ != TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}

		tokens = append(tokens, Token{Typ: TokenEOF, Line: line})
	}

	return &Parser{tokens: tokens}
}

// Parse is a shorthand for running a parser over tokens.
func Parse(tokens []Token) *AST {
	return NewParser(tokens).Run()
}

func (p *Parser) Run() *AST {
	ast := &AST{}

	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			ast.Statements = append(ast.Statements, stmt)
		}
	}

	ast.Errors = p.errors
	return ast
}

// declaration parses a single declaration and recovers from any structural
// error inside it, in which case it returns nil.
func (p *Parser) declaration() Stmt {
	start := p.current

	var stmt Stmt
	var err error

	switch {
	case p.match(TokenClass):
		stmt, err = p.classDecl()
	case p.match(TokenFun):
		stmt, err = p.function("function")
	case p.match(TokenVar):
		stmt, err = p.varDecl()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize(start)
		return nil
	}

	return stmt
}

func (p *Parser) classDecl() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *VariableExpr
	if p.match(TokenLess) {
		super, err := p.consume(TokenIdentifier, "Expect superclass name.")
		if err != nil {
			return nil, err
		}

		superclass = &VariableExpr{Name: super}
	}

	if _, err := p.consume(TokenLeftBrace, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*FunctionStmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}

		methods = append(methods, method)
	}

	if _, err := p.consume(TokenRightBrace, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ClassStmt{
		Name:       name,
		Superclass: superclass,
		Methods:    methods,
	}, nil
}

func (p *Parser) function(kind string) (*FunctionStmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect "+kind+" name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenLeftParen, "Expect '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	var params []Token
	if !p.check(TokenRightParen) {
		for {
			if len(params) >= maxArguments {
				p.errorf(p.peek(), "Can't have more than 255 parameters.")
			}

			param, err := p.consume(TokenIdentifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}

			params = append(params, param)

			if !p.match(TokenComma) {
				break
			}
		}
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenLeftBrace, "Expect '{' before "+kind+" body."); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &FunctionStmt{
		Name:   name,
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) varDecl() (Stmt, error) {
	name, err := p.consume(TokenIdentifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(TokenEqual) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}

	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(TokenFor):
		return p.forStmt()
	case p.match(TokenIf):
		return p.ifStmt()
	case p.match(TokenPrint):
		return p.printStmt()
	case p.match(TokenReturn):
		return p.returnStmt()
	case p.match(TokenWhile):
		return p.whileStmt()
	case p.match(TokenLeftBrace):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}

		return &BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStmt()
	}
}

// forStmt parses a for loop and lowers it into an equivalent while loop,
// wrapped in a block when there is an initializer.
func (p *Parser) forStmt() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer Stmt
	var err error
	switch {
	case p.match(TokenSemicolon):
	case p.match(TokenVar):
		initializer, err = p.varDecl()
	default:
		initializer, err = p.expressionStmt()
	}
	if err != nil {
		return nil, err
	}

	var condition Expr
	if !p.check(TokenSemicolon) {
		if condition, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment Expr
	if !p.check(TokenRightParen) {
		if increment, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Stmt{initializer, body}}
	}

	return body, nil
}

func (p *Parser) ifStmt() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}

	condition, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	// The else binds to the closest if
	var elseBranch Stmt
	if p.match(TokenElse) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}

	return &IfStmt{
		Condition:  condition,
		ThenBranch: thenBranch,
		ElseBranch: elseBranch,
	}, nil
}

func (p *Parser) printStmt() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}

	return &PrintStmt{Expr: value}, nil
}

func (p *Parser) returnStmt() (Stmt, error) {
	keyword := p.previous()

	var value Expr
	var err error
	if !p.check(TokenSemicolon) {
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}

	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) whileStmt() (Stmt, error) {
	if _, err := p.consume(TokenLeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}

	condition, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenRightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	return &WhileStmt{Condition: condition, Body: body}, nil
}

func (p *Parser) expressionStmt() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(TokenSemicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}

	return &ExpressionStmt{Expr: expr}, nil
}

// block parses the statements up to the closing brace. The opening brace
// must already be consumed.
func (p *Parser) block() ([]Stmt, error) {
	var stmts []Stmt
	for !p.check(TokenRightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	if _, err := p.consume(TokenRightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}

	return stmts, nil
}

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if !p.match(TokenEqual) {
		return expr, nil
	}

	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	switch target := expr.(type) {
	case *VariableExpr:
		return &AssignExpr{Name: target.Name, Value: value}, nil
	case *GetExpr:
		return &SetExpr{Object: target.Object, Name: target.Name, Value: value}, nil
	}

	// Reported, but the statement is still well formed
	p.errorf(equals, "Invalid assignment target.")
	return expr, nil
}

func (p *Parser) or() (Expr, error) {
	return p.leftAssoc(p.and, true, TokenOr)
}

func (p *Parser) and() (Expr, error) {
	return p.leftAssoc(p.equality, true, TokenAnd)
}

func (p *Parser) equality() (Expr, error) {
	return p.leftAssoc(p.comparison, false, TokenBangEqual, TokenEqualEqual)
}

func (p *Parser) comparison() (Expr, error) {
	return p.leftAssoc(p.term, false, TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual)
}

func (p *Parser) term() (Expr, error) {
	return p.leftAssoc(p.factor, false, TokenMinus, TokenPlus)
}

func (p *Parser) factor() (Expr, error) {
	return p.leftAssoc(p.unary, false, TokenSlash, TokenStar)
}

// leftAssoc parses one precedence level: operands come from next and are
// folded to the left for as long as one of the operators follows.
func (p *Parser) leftAssoc(next func() (Expr, error), logical bool, operators ...TokenType) (Expr, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		op := p.previous()

		rhs, err := next()
		if err != nil {
			return nil, err
		}

		if logical {
			lhs = &LogicalExpr{Left: lhs, Operator: op, Right: rhs}
		} else {
			lhs = &BinaryExpr{Left: lhs, Operator: op, Right: rhs}
		}
	}

	return lhs, nil
}

func (p *Parser) unary() (Expr, error) {
	if p.match(TokenBang, TokenMinus) {
		op := p.previous()

		right, err := p.unary()
		if err != nil {
			return nil, err
		}

		return &UnaryExpr{Operator: op, Right: right}, nil
	}

	return p.call()
}

func (p *Parser) call() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(TokenLeftParen):
			if expr, err = p.finishCall(expr); err != nil {
				return nil, err
			}
		case p.match(TokenDot):
			name, err := p.consume(TokenIdentifier, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}

			expr = &GetExpr{Object: expr, Name: name}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	var args []Expr
	if !p.check(TokenRightParen) {
		for {
			if len(args) >= maxArguments {
				p.errorf(p.peek(), "Can't have more than 255 arguments.")
			}

			arg, err := p.expression()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if !p.match(TokenComma) {
				break
			}
		}
	}

	paren, err := p.consume(TokenRightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (Expr, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenFalse:
		p.advance()
		return &LiteralExpr{Value: false}, nil
	case TokenTrue:
		p.advance()
		return &LiteralExpr{Value: true}, nil
	case TokenNil:
		p.advance()
		return &LiteralExpr{Value: nil}, nil
	case TokenNumber, TokenString:
		p.advance()
		return &LiteralExpr{Value: tok.Literal}, nil
	case TokenThis:
		p.advance()
		return &ThisExpr{Keyword: tok}, nil
	case TokenSuper:
		p.advance()
		if _, err := p.consume(TokenDot, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}

		method, err := p.consume(TokenIdentifier, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}

		return &SuperExpr{Keyword: tok, Method: method}, nil
	case TokenIdentifier:
		p.advance()
		return &VariableExpr{Name: tok}, nil
	case TokenLeftParen:
		p.advance()

		inner, err := p.expression()
		if err != nil {
			return nil, err
		}

		if _, err := p.consume(TokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}

		return &GroupingExpr{Inner: inner}, nil
	default:
		return nil, p.errorf(tok, "Expect expression.")
	}
}

// synchronize discards tokens until a statement boundary: just past a ';'
// or right before a keyword starting a statement. The token the error was
// reported at is only skipped when nothing of the declaration was consumed.
func (p *Parser) synchronize(start int) {
	if p.current == start {
		p.advance()
	}

	for !p.isAtEnd() {
		if p.previous().Typ == TokenSemicolon {
			return
		}

		switch p.peek().Typ {
		case TokenClass, TokenFun, TokenVar, TokenFor, TokenIf, TokenWhile, TokenPrint, TokenReturn:
			return
		}

		p.advance()
	}
}

func (p *Parser) errorf(tok Token, message string) error {
	err := newSyntaxError(tok, message)
	p.errors = append(p.errors, err)

	return err
}

func (p *Parser) consume(typ TokenType, message string) (Token, error) {
	if p.check(typ) {
		return p.advance(), nil
	}

	return Token{}, p.errorf(p.peek(), message)
}

func (p *Parser) match(types ...TokenType) bool {
	for _, typ := range types {
		if p.check(typ) {
			p.advance()
			return true
		}
	}

	return false
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return !p.peek().isValid()
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}
