// Package runtime provides the top-level Yolk driver.
//
// A Runtime owns the shared global environment seeded by the built-in
// library. Each program run evaluates in a fresh child of that
// environment, so concurrent runs only share the immutable built-in
// bindings.
package runtime

import (
	"fmt"
	"strings"

	"github.com/yolklang/yolk/pkg/diagnostics"
	"github.com/yolklang/yolk/pkg/evaluator"
	"github.com/yolklang/yolk/pkg/parser"
	"github.com/yolklang/yolk/pkg/stdlib"
	"github.com/yolklang/yolk/pkg/validator"
)

// Runtime wires together parser, evaluator and built-ins.
type Runtime struct {
	registry *stdlib.Registry
	sink     stdlib.Sink
	globals  *evaluator.Env
}

// Option is a functional option for configuring the Runtime.
type Option func(*Runtime)

// WithSink sets the output sink used by print. The default sink
// writes Show(v) to stdout.
func WithSink(sink stdlib.Sink) Option {
	return func(rt *Runtime) {
		rt.sink = sink
	}
}

// WithStdlib replaces the default built-in registry. The caller is
// responsible for wiring its own print entry.
func WithStdlib(r *stdlib.Registry) Option {
	return func(rt *Runtime) {
		rt.registry = r
	}
}

// New creates a Runtime and builds the global environment once.
func New(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}
	if rt.sink == nil {
		rt.sink = func(v evaluator.Value) {
			fmt.Println(evaluator.Show(v))
		}
	}
	if rt.registry == nil {
		reg := stdlib.NewRegistry()
		stdlib.RegisterDefaults(reg, rt.sink)
		rt.registry = reg
	}
	rt.globals = evaluator.NewEnv(nil)
	rt.registry.Install(rt.globals)
	return rt
}

// Run parses source and evaluates it in a fresh child of the global
// environment. The returned error, if any, is a *diagnostics.Diagnostic
// whose Error() is the boundary display string.
func (rt *Runtime) Run(source, filename string) (evaluator.Value, error) {
	expr, err := parser.Parse(source, filename)
	if err != nil {
		return nil, err
	}
	return evaluator.Evaluate(expr, rt.globals.Child())
}

// RunFragments joins multiple source fragments with a newline
// separator and runs them as a single expression.
func (rt *Runtime) RunFragments(filename string, fragments ...string) (evaluator.Value, error) {
	return rt.Run(strings.Join(fragments, "\n"), filename)
}

// Check parses and statically validates source without evaluating it.
func (rt *Runtime) Check(source, filename string) []*diagnostics.Diagnostic {
	expr, err := parser.Parse(source, filename)
	if err != nil {
		return []*diagnostics.Diagnostic{err.(*diagnostics.Diagnostic)}
	}
	return validator.Validate(expr)
}

// Session is a persistent scope for interactive use: every Eval runs
// in the same child of the global environment, so defines survive
// across lines.
type Session struct {
	env *evaluator.Env
}

// NewSession creates a session scoped under the runtime's globals.
func (rt *Runtime) NewSession() *Session {
	return &Session{env: rt.globals.Child()}
}

// Eval parses and evaluates one source line in the session scope.
func (s *Session) Eval(source, filename string) (evaluator.Value, error) {
	expr, err := parser.Parse(source, filename)
	if err != nil {
		return nil, err
	}
	return evaluator.Evaluate(expr, s.env)
}
