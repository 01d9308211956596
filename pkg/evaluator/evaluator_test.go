package evaluator_test

import (
	"strings"
	"testing"

	"github.com/yolklang/yolk/pkg/diagnostics"
	"github.com/yolklang/yolk/pkg/evaluator"
	"github.com/yolklang/yolk/pkg/parser"
	"github.com/yolklang/yolk/pkg/stdlib"
)

// --- helpers ---

// newEnv builds a program scope: a child of a fresh global environment
// seeded with the default built-ins. print output is appended to
// *output when it is non-nil.
func newEnv(output *[]string) *evaluator.Env {
	reg := stdlib.NewRegistry()
	stdlib.RegisterDefaults(reg, func(v evaluator.Value) {
		if output != nil {
			*output = append(*output, evaluator.Show(v))
		}
	})
	globals := evaluator.NewEnv(nil)
	reg.Install(globals)
	return globals.Child()
}

func eval(t *testing.T, src string) (evaluator.Value, error) {
	t.Helper()
	expr, err := parser.Parse(src, "test.yk")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return evaluator.Evaluate(expr, newEnv(nil))
}

func mustEval(t *testing.T, src string) evaluator.Value {
	t.Helper()
	val, err := eval(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return val
}

func wantNumber(t *testing.T, val evaluator.Value, want float64) {
	t.Helper()
	num, ok := val.(evaluator.Number)
	if !ok {
		t.Fatalf("expected Number, got %T (%s)", val, evaluator.Show(val))
	}
	if num.Value != want {
		t.Errorf("got %v, want %v", num.Value, want)
	}
}

func wantBool(t *testing.T, val evaluator.Value, want bool) {
	t.Helper()
	b, ok := val.(evaluator.Boolean)
	if !ok {
		t.Fatalf("expected Boolean, got %T (%s)", val, evaluator.Show(val))
	}
	if b.Value != want {
		t.Errorf("got %v, want %v", b.Value, want)
	}
}

// wantError asserts evaluation fails with the given kind and a
// message containing want.
func wantError(t *testing.T, src, kind, want string) {
	t.Helper()
	_, err := eval(t, src)
	if err == nil {
		t.Fatalf("expected error evaluating %q", src)
	}
	diag, ok := err.(*diagnostics.Diagnostic)
	if !ok {
		t.Fatalf("expected *diagnostics.Diagnostic, got %T", err)
	}
	if diag.Kind != kind {
		t.Errorf("got kind %q, want %q", diag.Kind, kind)
	}
	if !strings.Contains(diag.Message, want) {
		t.Errorf("got message %q, want substring %q", diag.Message, want)
	}
}

// --- literals and variables ---

func TestLiterals(t *testing.T) {
	wantNumber(t, mustEval(t, "42"), 42)

	val := mustEval(t, `"hello"`)
	str, ok := val.(evaluator.String)
	if !ok || str.Value != "hello" {
		t.Errorf("got %#v, want String hello", val)
	}
}

func TestGlobalBindings(t *testing.T) {
	wantBool(t, mustEval(t, "true"), true)
	wantBool(t, mustEval(t, "false"), false)
}

func TestUndefinedVariable(t *testing.T) {
	wantError(t, "foo", diagnostics.KindReference, "Undefined variable: foo")

	// The boundary string combines kind and message.
	_, err := eval(t, "foo")
	if err.Error() != "ReferenceError: Undefined variable: foo" {
		t.Errorf("got boundary string %q", err.Error())
	}
}

// --- ordinary application ---

func TestApplication(t *testing.T) {
	wantNumber(t, mustEval(t, "+(1, 2)"), 3)
	wantNumber(t, mustEval(t, "*(+(1, 2), 4)"), 12)
}

func TestArgumentOrder(t *testing.T) {
	// Arguments evaluate left to right; print output shows the order.
	var output []string
	expr, err := parser.Parse("fun(a, b, 0)(print(1), print(2))", "test.yk")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := evaluator.Evaluate(expr, newEnv(&output)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(output, ",") != "1,2" {
		t.Errorf("got output %v, want [1 2]", output)
	}
}

func TestApplyNonFunction(t *testing.T) {
	wantError(t, "5(1)", diagnostics.KindType, "Applying a non-function.")
	wantError(t, `"f"(1)`, diagnostics.KindType, "Applying a non-function.")
}

func TestNonFunctionCheckPrecedesArguments(t *testing.T) {
	// With a non-function operator the arguments are never evaluated,
	// so a side-effecting argument leaves no trace.
	var output []string
	expr, err := parser.Parse("5(print(1))", "test.yk")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = evaluator.Evaluate(expr, newEnv(&output))
	if err == nil {
		t.Fatal("expected error applying a number")
	}
	if err.Error() != "TypeError: Applying a non-function." {
		t.Errorf("got %q", err.Error())
	}
	if len(output) != 0 {
		t.Errorf("argument was evaluated, output %v", output)
	}

	// An undefined variable in argument position never masks the
	// TypeError either.
	wantError(t, "5(boom)", diagnostics.KindType, "Applying a non-function.")
}

// --- if ---

func TestIf(t *testing.T) {
	wantNumber(t, mustEval(t, "if(true, 1, 2)"), 1)
	wantNumber(t, mustEval(t, "if(false, 1, 2)"), 2)
}

func TestIfTruthiness(t *testing.T) {
	// Only boolean false selects the else branch; 0 and "" are truthy.
	wantNumber(t, mustEval(t, "if(0, 1, 2)"), 1)
	wantNumber(t, mustEval(t, `if("", 1, 2)`), 1)
}

func TestIfLazyBranches(t *testing.T) {
	// The untaken branch is never evaluated, so an undefined variable
	// there is not an error.
	wantNumber(t, mustEval(t, "if(true, 1, boom)"), 1)
	wantNumber(t, mustEval(t, "if(false, boom, 2)"), 2)
}

func TestIfArity(t *testing.T) {
	wantError(t, "if(true, 1)", diagnostics.KindSyntax, "Wrong number of args to if")
	wantError(t, "if(true, 1, 2, 3)", diagnostics.KindSyntax, "Wrong number of args to if")
}

// --- while ---

func TestWhileSum(t *testing.T) {
	src := `do(define(total, 0),
	          define(count, 1),
	          while(<(count, 11),
	                do(define(total, +(total, count)),
	                   define(count, +(count, 1)))),
	          total)`
	wantNumber(t, mustEval(t, src), 55)
}

func TestWhileReturnsFalse(t *testing.T) {
	wantBool(t, mustEval(t, "while(false, 1)"), false)
	wantBool(t, mustEval(t, "do(define(x, 0), while(<(x, 3), define(x, +(x, 1))))"), false)
}

func TestWhileSkipsBodyWhenFalse(t *testing.T) {
	// Zero iterations: the body is never evaluated.
	wantBool(t, mustEval(t, "while(false, boom)"), false)
}

func TestWhileArity(t *testing.T) {
	wantError(t, "while(true)", diagnostics.KindSyntax, "Wrong number of args to while")
}

// --- do ---

func TestDo(t *testing.T) {
	wantNumber(t, mustEval(t, "do(1, 2, 3)"), 3)
	wantBool(t, mustEval(t, "do()"), false)
}

func TestDoOrder(t *testing.T) {
	var output []string
	expr, err := parser.Parse(`do(print(1), print(2), print(3))`, "test.yk")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if _, err := evaluator.Evaluate(expr, newEnv(&output)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Join(output, ",") != "1,2,3" {
		t.Errorf("got output %v", output)
	}
}

// --- define ---

func TestDefine(t *testing.T) {
	wantNumber(t, mustEval(t, "do(define(x, 10), +(x, 5))"), 15)
	// define returns the bound value.
	wantNumber(t, mustEval(t, "define(x, 7)"), 7)
}

func TestDefineShadowsOuter(t *testing.T) {
	// A define inside a function body writes into the invocation
	// scope, never the enclosing one.
	wantNumber(t, mustEval(t, "do(define(x, 5), fun(q, define(x, 10))(0), x)"), 5)
	// Inside the function the shadowing binding is visible.
	wantNumber(t, mustEval(t, "do(define(x, 5), fun(q, do(define(x, 10), x))(0))"), 10)
}

func TestDefineMisuse(t *testing.T) {
	wantError(t, "define(x)", diagnostics.KindSyntax, "Bad use of define")
	wantError(t, "define(1, 2)", diagnostics.KindSyntax, "Bad use of define")
	wantError(t, `define("x", 2)`, diagnostics.KindSyntax, "Bad use of define")
}

// --- fun ---

func TestFun(t *testing.T) {
	wantNumber(t, mustEval(t, "fun(a, b, +(a, b))(3, 4)"), 7)
	// Zero-parameter function: the single argument is the body.
	wantNumber(t, mustEval(t, "fun(42)()"), 42)
}

func TestClosureCapture(t *testing.T) {
	src := `do(define(make, fun(n, fun(m, +(n, m)))),
	          define(add5, make(5)),
	          add5(3))`
	wantNumber(t, mustEval(t, src), 8)
}

func TestCurriedApplication(t *testing.T) {
	wantNumber(t, mustEval(t, "fun(a, fun(b, +(a, b)))(3)(4)"), 7)
}

func TestRecursion(t *testing.T) {
	src := `do(define(fact, fun(n, if(==(n, 0), 1, *(n, fact(-(n, 1)))))),
	          fact(5))`
	wantNumber(t, mustEval(t, src), 120)
}

func TestClosureArity(t *testing.T) {
	wantError(t, "fun(a, a)(1, 2)", diagnostics.KindType, "Wrong number of arguments: expected 1, got 2")
	wantError(t, "fun(a, b, a)(1)", diagnostics.KindType, "Wrong number of arguments: expected 2, got 1")
}

func TestFunMisuse(t *testing.T) {
	wantError(t, "fun()", diagnostics.KindSyntax, "Functions need a body")
	wantError(t, "fun(1, a)", diagnostics.KindSyntax, "Arg names must be words")
	wantError(t, `fun("a", a)`, diagnostics.KindSyntax, "Arg names must be words")
}

// --- special-form dispatch ---

func TestSpecialFormsShadowVariables(t *testing.T) {
	// Call sites dispatch on the operator name before lookup, so a
	// variable named if never changes if(...) calls, but the bare word
	// resolves to the variable.
	wantNumber(t, mustEval(t, "do(define(if, 1), if(false, 1, 2))"), 2)
	wantNumber(t, mustEval(t, "do(define(if, 1), if)"), 1)
}

func TestIsSpecialForm(t *testing.T) {
	for _, name := range []string{"if", "while", "do", "define", "fun"} {
		if !evaluator.IsSpecialForm(name) {
			t.Errorf("expected %q to be a special form", name)
		}
	}
	if evaluator.IsSpecialForm("print") {
		t.Error("print must not be a special form")
	}
}

// --- print ---

func TestPrintReturnsArgument(t *testing.T) {
	var output []string
	expr, err := parser.Parse("+(print(1), 2)", "test.yk")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	val, err := evaluator.Evaluate(expr, newEnv(&output))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantNumber(t, val, 3)
	if len(output) != 1 || output[0] != "1" {
		t.Errorf("got output %v, want [1]", output)
	}
}
