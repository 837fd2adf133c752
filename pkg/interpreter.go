package lox

import (
	"errors"
	"fmt"
	"io"

	"github.com/edwingeng/deque"
)

// completion is the outcome of executing a statement. A returning
// completion unwinds every enclosing statement up to the function call that
// is running them.
type completion struct {
	returning bool
	value     Value
	keyword   Token
}

var normal = completion{}

// Interpreter executes statements directly off the AST.
type Interpreter struct {
	globals *Environment
	out     io.Writer
	opts    Options

	// Active calls, innermost at the back
	frames deque.Deque
}

func NewInterpreter(out io.Writer, opt *Options) *Interpreter {
	return &Interpreter{
		globals: NewEnvironment(nil),
		out:     out,
		opts:    opt.normalize(),
		frames:  deque.NewDeque(),
	}
}

// Globals returns the outermost scope, shared by every Interpret call.
func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret executes stmts in order and stops at the first runtime error.
func (in *Interpreter) Interpret(stmts []Stmt) error {
	for _, stmt := range stmts {
		c, err := in.execute(stmt, in.globals)
		if err != nil {
			return err
		}

		if c.returning {
			return newRuntimeError(c.keyword, "Can't return from top-level code.")
		}
	}

	return nil
}

func (in *Interpreter) execute(stmt Stmt, env *Environment) (completion, error) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := in.evaluate(s.Expr, env)
		return normal, err
	case *PrintStmt:
		v, err := in.evaluate(s.Expr, env)
		if err != nil {
			return normal, err
		}

		_, err = fmt.Fprintln(in.out, Stringify(v))
		return normal, err
	case *VarStmt:
		var v Value
		if s.Initializer != nil {
			var err error
			if v, err = in.evaluate(s.Initializer, env); err != nil {
				return normal, err
			}
		}

		env.Define(s.Name.Lexeme, v)
		return normal, nil
	case *BlockStmt:
		return in.executeBlock(s.Statements, NewEnvironment(env))
	case *IfStmt:
		cond, err := in.evaluate(s.Condition, env)
		if err != nil {
			return normal, err
		}

		if isTruthy(cond) {
			return in.execute(s.ThenBranch, env)
		}

		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch, env)
		}

		return normal, nil
	case *WhileStmt:
		return in.executeWhile(s, env)
	case *FunctionStmt:
		env.Define(s.Name.Lexeme, &Function{Declaration: s, Closure: env})
		return normal, nil
	case *ReturnStmt:
		var v Value
		if s.Value != nil {
			var err error
			if v, err = in.evaluate(s.Value, env); err != nil {
				return normal, err
			}
		}

		return completion{returning: true, value: v, keyword: s.Keyword}, nil
	case *ClassStmt:
		return normal, in.executeClass(s, env)
	default:
		return normal, fmt.Errorf("unsupported statement %T", stmt)
	}
}

// executeBlock runs stmts against env, which the caller has already
// created for them.
func (in *Interpreter) executeBlock(stmts []Stmt, env *Environment) (completion, error) {
	for _, stmt := range stmts {
		c, err := in.execute(stmt, env)
		if err != nil || c.returning {
			return c, err
		}
	}

	return normal, nil
}

func (in *Interpreter) executeWhile(s *WhileStmt, env *Environment) (completion, error) {
	for {
		cond, err := in.evaluate(s.Condition, env)
		if err != nil {
			return normal, err
		}

		if !isTruthy(cond) {
			return normal, nil
		}

		c, err := in.execute(s.Body, env)
		if err != nil || c.returning {
			return c, err
		}
	}
}

func (in *Interpreter) executeClass(s *ClassStmt, env *Environment) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass, env)
		if err != nil {
			return err
		}

		class, ok := v.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}

		superclass = class
	}

	env.Define(s.Name.Lexeme, nil)

	methodEnv := env
	if superclass != nil {
		methodEnv = NewEnvironment(env)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &Function{
			Declaration:   method,
			Closure:       methodEnv,
			IsInitializer: method.Name.Lexeme == initializerName,
		}
	}

	env.Define(s.Name.Lexeme, &Class{
		Name:       s.Name.Lexeme,
		Superclass: superclass,
		Methods:    methods,
	})

	return nil
}

func (in *Interpreter) evaluate(expr Expr, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *GroupingExpr:
		return in.evaluate(e.Inner, env)
	case *VariableExpr:
		return env.Get(e.Name)
	case *AssignExpr:
		v, err := in.evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}

		if err := env.Assign(e.Name, v); err != nil {
			return nil, err
		}

		return v, nil
	case *UnaryExpr:
		return in.evaluateUnary(e, env)
	case *BinaryExpr:
		return in.evaluateBinary(e, env)
	case *LogicalExpr:
		left, err := in.evaluate(e.Left, env)
		if err != nil {
			return nil, err
		}

		if e.Operator.Typ == TokenOr {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}

		return in.evaluate(e.Right, env)
	case *CallExpr:
		return in.evaluateCall(e, env)
	case *GetExpr:
		object, err := in.evaluate(e.Object, env)
		if err != nil {
			return nil, err
		}

		instance, ok := object.(*Instance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have properties, got %s.", typeName(object))
		}

		return instance.Get(e.Name)
	case *SetExpr:
		object, err := in.evaluate(e.Object, env)
		if err != nil {
			return nil, err
		}

		instance, ok := object.(*Instance)
		if !ok {
			return nil, newRuntimeError(e.Name, "Only instances have fields, got %s.", typeName(object))
		}

		v, err := in.evaluate(e.Value, env)
		if err != nil {
			return nil, err
		}

		instance.Set(e.Name, v)
		return v, nil
	case *ThisExpr:
		return env.Get(e.Keyword)
	case *SuperExpr:
		return in.evaluateSuper(e, env)
	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}

func (in *Interpreter) evaluateUnary(e *UnaryExpr, env *Environment) (Value, error) {
	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Typ {
	case TokenBang:
		return !isTruthy(right), nil
	case TokenMinus:
		n, ok := right.(float64)
		if !ok {
			return nil, newRuntimeError(e.Operator, "Operand of '-' must be a number, got %s.", typeName(right))
		}

		return -n, nil
	default:
		return nil, newRuntimeError(e.Operator, "Unknown unary operator '%s'.", e.Operator.Lexeme)
	}
}

func (in *Interpreter) evaluateBinary(e *BinaryExpr, env *Environment) (Value, error) {
	left, err := in.evaluate(e.Left, env)
	if err != nil {
		return nil, err
	}

	right, err := in.evaluate(e.Right, env)
	if err != nil {
		return nil, err
	}

	op := e.Operator
	switch op.Typ {
	case TokenEqualEqual:
		return isEqual(left, right), nil
	case TokenBangEqual:
		return !isEqual(left, right), nil
	case TokenPlus:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}

		return nil, newRuntimeError(op, "Operands of '+' must be two numbers or two strings, got %s and %s.",
			typeName(left), typeName(right))
	}

	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return nil, newRuntimeError(op, "Operands of '%s' must be numbers, got %s and %s.",
			op.Lexeme, typeName(left), typeName(right))
	}

	switch op.Typ {
	case TokenMinus:
		return l - r, nil
	case TokenStar:
		return l * r, nil
	case TokenSlash:
		return l / r, nil
	case TokenGreater:
		return l > r, nil
	case TokenGreaterEqual:
		return l >= r, nil
	case TokenLess:
		return l < r, nil
	case TokenLessEqual:
		return l <= r, nil
	default:
		return nil, newRuntimeError(op, "Unknown binary operator '%s'.", op.Lexeme)
	}
}

func (in *Interpreter) evaluateCall(e *CallExpr, env *Environment) (Value, error) {
	callee, err := in.evaluate(e.Callee, env)
	if err != nil {
		return nil, err
	}

	args := make([]Value, 0, len(e.Arguments))
	for _, arg := range e.Arguments {
		v, err := in.evaluate(arg, env)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren, "Can only call functions and classes, got %s.", typeName(callee))
	}

	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}

	return in.call(fn, args, e.Paren)
}

// call invokes fn inside a new call frame. Exceeding the configured depth
// fails the run with a stack overflow instead of growing the host stack.
func (in *Interpreter) call(fn Callable, args []Value, paren Token) (Value, error) {
	if in.frames.Len() >= in.opts.MaxCallDepth {
		err := newRuntimeError(paren, "Stack overflow.")
		err.cause = ErrStackOverflow
		return nil, err
	}

	in.frames.PushBack(Frame{Name: fn.String(), Line: paren.Line})
	defer in.frames.PopBack()

	v, err := fn.Call(in, args)
	if err != nil && in.opts.Trace {
		// The innermost call sees the error first, with every frame still
		// on the stack
		var runtimeErr *RuntimeError
		if errors.As(err, &runtimeErr) && runtimeErr.Trace == nil {
			runtimeErr.Trace = in.stackTrace()
		}
	}

	return v, err
}

// stackTrace lists the active call frames, innermost first.
func (in *Interpreter) stackTrace() []Frame {
	trace := make([]Frame, 0, in.frames.Len())
	for i := in.frames.Len() - 1; i >= 0; i-- {
		trace = append(trace, in.frames.Peek(i).(Frame))
	}

	return trace
}

func (in *Interpreter) callFunction(f *Function, args []Value) (Value, error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	c, err := in.executeBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}

	if f.IsInitializer {
		this, err := f.Closure.Get(thisToken)
		if err != nil {
			return nil, err
		}

		if c.returning && c.value != nil && c.value != this {
			return nil, newRuntimeError(c.keyword, "Can't return a value from an initializer.")
		}

		return this, nil
	}

	return c.value, nil
}

func (in *Interpreter) evaluateSuper(e *SuperExpr, env *Environment) (Value, error) {
	v, err := env.Get(e.Keyword)
	if err != nil {
		return nil, err
	}

	superclass, ok := v.(*Class)
	if !ok {
		return nil, newRuntimeError(e.Keyword, "Superclass must be a class.")
	}

	v, err = env.Get(thisToken)
	if err != nil {
		return nil, err
	}

	instance, ok := v.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Keyword, "Can't use 'super' outside of a method.")
	}

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}

	return method.Bind(instance), nil
}
