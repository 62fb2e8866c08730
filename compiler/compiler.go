/*
File    : gomix-cpp/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"

	"github.com/akashmaji946/gomix-cpp/ast"
	"github.com/akashmaji946/gomix-cpp/diag"
	"github.com/akashmaji946/gomix-cpp/eval"
	"github.com/akashmaji946/gomix-cpp/parser"
	"github.com/akashmaji946/gomix-cpp/semantic"
)

// CompileAndRun runs the full lexer -> parser -> analyzer -> evaluator
// pipeline on source and returns a self-contained Result. filename is only
// ever used to label diagnostic_output; it does not change compilation.
func CompileAndRun(source string, filename string) Result {
	return CompileAndRunWithOptions(source, Options{Filename: filename})
}

// CompileAndRunWithOptions is CompileAndRun with full control over verbosity
// and output capping, for callers that need it.
func CompileAndRunWithOptions(source string, opts Options) Result {
	var diagBuf bytes.Buffer
	banner := color.New(color.FgCyan)
	errColor := color.New(color.FgRed)

	logPhase := func(format string, args ...any) {
		if opts.Verbose {
			banner.Fprintf(&diagBuf, format, args...)
		}
	}

	name := opts.Filename
	if name == "" {
		name = "<source>"
	}
	logPhase("[lex+parse] %s\n", name)

	p := parser.New(source)
	prog := p.Parse()
	if p.HasErrors() {
		return failure(p.Errors(), diagBuf.String(), errColor)
	}

	logPhase("[analyze] %s\n", name)
	a := semantic.New()
	a.Analyze(prog)
	if len(a.Errors()) > 0 {
		return failure(a.Errors(), diagBuf.String(), errColor)
	}

	logPhase("[evaluate] %s\n", name)
	return runEvaluator(prog, opts, diagBuf.String(), errColor)
}

// failure converts a phase's accumulated diagnostics into a Result,
// painting each one in red the way the teacher's runFile does for parse
// errors written to stderr.
func failure(diags []*diag.Diagnostic, diagOut string, errColor *color.Color) Result {
	details := make([]string, len(diags))
	var errBuf bytes.Buffer
	for i, d := range diags {
		details[i] = d.Error()
		errColor.Fprintf(&errBuf, "%s\n", d.Error())
	}
	return Result{
		Success:          false,
		Error:            details[0],
		Details:          details,
		DiagnosticOutput: diagOut + errBuf.String(),
		ExitCode:         1,
	}
}

// runEvaluator executes prog, converting any panic the evaluator raises
// (division by zero, a missing main, an otherwise-unreachable internal
// error) into a failed Result instead of crashing the host process, the
// same recovery discipline the teacher's executeFileWithRecovery applies
// around its own evaluator call.
func runEvaluator(prog *ast.Program, opts Options, diagOut string, errColor *color.Color) (result Result) {
	out := &cappedWriter{limit: opts.MaxOutputBytes}
	ev := eval.New(out)

	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if d, ok := r.(*diag.Diagnostic); ok {
				msg = d.Error()
			}
			var errBuf bytes.Buffer
			errColor.Fprintf(&errBuf, "[RUNTIME ERROR] %s\n", msg)
			result = Result{
				Success:          false,
				Error:            msg,
				Details:          []string{msg},
				ExecutionOutput:  out.String(),
				DiagnosticOutput: diagOut + errBuf.String(),
				ExitCode:         1,
			}
		}
	}()

	code := ev.Run(prog)
	return Result{
		Success:          true,
		ExecutionOutput:  out.String(),
		DiagnosticOutput: diagOut,
		ExitCode:         code,
	}
}
