package lox

import "fmt"

// Value is any run-time value: nil, bool, float64, string, *Function,
// *Class or *Instance.
type Value interface{}

const initializerName = "init"

var thisToken = Token{Typ: TokenThis, Lexeme: "this"}

// Callable is implemented by the values a call expression accepts.
type Callable interface {
	fmt.Stringer
	Arity() int
	Call(in *Interpreter, args []Value) (Value, error)
}

// Function is a declared function or method together with the scope it
// closes over.
type Function struct {
	Declaration   *FunctionStmt
	Closure       *Environment
	IsInitializer bool
}

// Bind returns a copy of the method whose closure has 'this' set to
// instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnvironment(f.Closure)
	env.Define(thisToken.Lexeme, instance)

	return &Function{
		Declaration:   f.Declaration,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

func (f *Function) Call(in *Interpreter, args []Value) (Value, error) {
	return in.callFunction(f, args)
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks name up in the class and then in its ancestors.
func (c *Class) FindMethod(name string) *Function {
	for class := c; class != nil; class = class.Superclass {
		if method, ok := class.Methods[name]; ok {
			return method
		}
	}

	return nil
}

func (c *Class) Arity() int {
	if init := c.FindMethod(initializerName); init != nil {
		return init.Arity()
	}

	return 0
}

// Call creates an instance and runs its initializer, if any. The result is
// always the new instance.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)

	if init := c.FindMethod(initializerName); init != nil {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}

	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}

type Instance struct {
	Class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		fields: make(map[string]Value),
	}
}

// Get returns the field called name or, failing that, the method bound to
// this instance.
func (i *Instance) Get(name Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}

	if method := i.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}

	return nil, newRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

func (i *Instance) Set(name Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return i.Class.Name + " instance"
}
