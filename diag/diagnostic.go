/*
File    : gomix-cpp/diag/diagnostic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag carries phase-tagged, position-aware diagnostics produced by
// the parser and semantic analyzer, and the runtime errors the evaluator
// panics with.
package diag

import "fmt"

// Phase identifies which pipeline stage raised a Diagnostic.
type Phase string

const (
	Syntax   Phase = "syntax"
	Semantic Phase = "semantic"
	Runtime  Phase = "runtime"
)

// Diagnostic is a single reported problem, always attributable to a
// source position except for the runtime error reporting a missing main
// (Line/Column are then zero).
type Diagnostic struct {
	Phase   Phase
	Message string
	Line    int
	Column  int
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped anywhere a plain error is expected.
func (d *Diagnostic) Error() string {
	if d.Line == 0 && d.Column == 0 {
		return fmt.Sprintf("%s error: %s", d.Phase, d.Message)
	}
	return fmt.Sprintf("%s error at %d:%d: %s", d.Phase, d.Line, d.Column, d.Message)
}

// New builds a Diagnostic for the given phase and position.
func New(phase Phase, line, column int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Phase: phase, Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}
