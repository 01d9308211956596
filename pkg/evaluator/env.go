package evaluator

// Env is a scope record for variable bindings. Lookup walks the
// parent chain outward; writes touch only the current record, so a
// define in an inner scope shadows rather than reassigns an outer
// binding. The chain is acyclic and finite: the global environment
// has a nil parent.
type Env struct {
	bindings map[string]Value
	parent   *Env
}

// NewEnv creates a new environment with an optional parent scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		bindings: make(map[string]Value),
		parent:   parent,
	}
}

// Child creates a new scope whose parent is this environment.
func (e *Env) Child() *Env {
	return NewEnv(e)
}

// Get looks up a variable by name, traversing parent scopes.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.bindings[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// Set binds a variable in this scope only, overwriting any existing
// local entry and never touching ancestors.
func (e *Env) Set(name string, val Value) {
	e.bindings[name] = val
}
