package lox

// Environment is one scope of the variable chain. Scopes are shared: every
// closure created inside a scope keeps it alive for as long as the closure
// itself is reachable.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
	}
}

// Define binds name in this scope, shadowing any enclosing binding and
// overwriting a previous one in the same scope.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get looks name up from this scope outwards.
func (e *Environment) Get(name Token) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if v, ok := env.values[name.Lexeme]; ok {
			return v, nil
		}
	}

	return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign rebinds name in the closest scope that defines it. It never
// declares a new binding.
func (e *Environment) Assign(name Token, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}

	return newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}
