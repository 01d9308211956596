// Package stdlib provides the Yolk built-in library.
package stdlib

import (
	"github.com/yolklang/yolk/pkg/evaluator"
)

// Registry holds the global bindings used to seed an environment.
type Registry struct {
	entries map[string]evaluator.Value
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]evaluator.Value),
	}
}

// Register adds a global binding to the registry.
func (r *Registry) Register(name string, val evaluator.Value) {
	r.entries[name] = val
}

// Get retrieves a binding by name.
func (r *Registry) Get(name string) (evaluator.Value, bool) {
	val, ok := r.entries[name]
	return val, ok
}

// Install writes every registered binding into env. The registry is
// not consulted again afterwards, so the environment stays immutable
// as long as nothing redefines the names.
func (r *Registry) Install(env *evaluator.Env) {
	for name, val := range r.entries {
		env.Set(name, val)
	}
}
