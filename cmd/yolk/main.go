// Command yolk is the Yolk language CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/yolklang/yolk/pkg/diagnostics"
	"github.com/yolklang/yolk/pkg/evaluator"
	"github.com/yolklang/yolk/pkg/formatter"
	"github.com/yolklang/yolk/pkg/parser"
	"github.com/yolklang/yolk/pkg/runtime"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: yolk <command> [options]")
		fmt.Fprintln(os.Stderr, "commands: run, eval, check, fmt, repl")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "eval":
		os.Exit(cmdEval(os.Args[2:]))
	case "check":
		os.Exit(cmdCheck(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl())
	case "help", "--help", "-h":
		fmt.Println("usage: yolk <command> [options]")
		fmt.Println("commands:")
		fmt.Println("  run <file> [--pretty]    parse and evaluate a program file")
		fmt.Println("  eval <expr>              evaluate an inline expression")
		fmt.Println("  check <file> [--pretty]  parse and statically validate a file")
		fmt.Println("  fmt <file> [--write]     print (or rewrite) the canonical form")
		fmt.Println("  repl                     interactive session")
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

// exitCodeForKind maps error kinds to process exit codes: 2 for
// syntax, 3 for runtime failures.
func exitCodeForKind(kind string) int {
	if kind == diagnostics.KindSyntax {
		return 2
	}
	return 3
}

// readSource loads a program file; "-" reads stdin.
func readSource(file string) (source, filename string, ok bool) {
	if file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading stdin: %s\n", err)
			return "", "", false
		}
		return string(data), "<stdin>", true
	}
	data, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %s\n", file, err)
		return "", "", false
	}
	return string(data), file, true
}

func reportError(err error, pretty bool) int {
	if diag, ok := err.(*diagnostics.Diagnostic); ok {
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostic(diag, pretty))
		return exitCodeForKind(diag.Kind)
	}
	fmt.Fprintln(os.Stderr, err.Error())
	return 3
}

func cmdRun(args []string) int {
	var file string
	pretty := false
	for _, arg := range args {
		switch arg {
		case "--pretty":
			pretty = true
		default:
			if !strings.HasPrefix(arg, "-") || arg == "-" {
				file = arg
			}
		}
	}
	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: yolk run <file> [--pretty]")
		return 1
	}

	source, filename, ok := readSource(file)
	if !ok {
		return 1
	}

	rt := runtime.New()
	val, err := rt.Run(source, filename)
	if err != nil {
		return reportError(err, pretty)
	}
	fmt.Println(evaluator.Show(val))
	return 0
}

func cmdEval(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: yolk eval <expr>")
		return 1
	}
	rt := runtime.New()
	val, err := rt.RunFragments("<eval>", args...)
	if err != nil {
		return reportError(err, false)
	}
	fmt.Println(evaluator.Show(val))
	return 0
}

func cmdCheck(args []string) int {
	var file string
	pretty := false
	for _, arg := range args {
		switch arg {
		case "--pretty":
			pretty = true
		default:
			if !strings.HasPrefix(arg, "-") || arg == "-" {
				file = arg
			}
		}
	}
	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: yolk check <file> [--pretty]")
		return 1
	}

	source, filename, ok := readSource(file)
	if !ok {
		return 1
	}

	rt := runtime.New()
	diags := rt.Check(source, filename)
	if len(diags) > 0 {
		fmt.Fprintln(os.Stderr, diagnostics.FormatDiagnostics(diags, pretty))
		return 2
	}
	fmt.Println("No errors found.")
	return 0
}

func cmdFmt(args []string) int {
	var file string
	write := false
	for _, arg := range args {
		switch arg {
		case "--write":
			write = true
		default:
			if !strings.HasPrefix(arg, "-") {
				file = arg
			}
		}
	}
	if file == "" {
		fmt.Fprintln(os.Stderr, "usage: yolk fmt <file> [--write]")
		return 1
	}

	source, filename, ok := readSource(file)
	if !ok {
		return 1
	}

	expr, err := parser.Parse(source, filename)
	if err != nil {
		return reportError(err, true)
	}
	formatted := formatter.Format(expr)
	if write {
		if err := os.WriteFile(file, []byte(formatted), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "error writing %s: %s\n", file, err)
			return 1
		}
		return 0
	}
	fmt.Print(formatted)
	return 0
}

func cmdRepl() int {
	rt := runtime.New()
	sess := rt.NewSession()

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := filepath.Join(os.TempDir(), ".yolk_history")
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("yolk repl (ctrl-d to exit)")
	for {
		input, err := line.Prompt("yolk> ")
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		val, err := sess.Eval(input, "<repl>")
		if err != nil {
			fmt.Println(err.Error())
			continue
		}
		fmt.Println(evaluator.Show(val))
	}

	if f, err := os.Create(historyPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	fmt.Println()
	return 0
}
