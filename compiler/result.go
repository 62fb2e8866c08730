/*
File    : gomix-cpp/compiler/result.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package compiler wires lexer, parser, semantic.Analyzer and eval.Evaluator
// into the single entry point every collaborator (CLI, REPL) calls.
package compiler

// Result is the full outcome of one CompileAndRun call: a program's stdout,
// the compiler's own verbose chatter, and either a success exit code or a
// structured failure description.
type Result struct {
	Success          bool
	Error            string   // non-empty iff !Success
	Details          []string // one entry per diagnostic
	ExecutionOutput  string   // the program's own std::cout output
	DiagnosticOutput string   // verbose-mode phase banners
	ExitCode         int      // 0 on success; main's return value or 1
}
