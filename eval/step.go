/*
File    : gomix-cpp/eval/step.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/gomix-cpp/values"

// StepResult is what executing one statement produces: either Normal,
// meaning control simply falls through to the next statement, or a
// Returned value unwinding out of every enclosing block and loop up to the
// function call that's currently running. This replaces the
// exception-driven unwinding a tree-walker would otherwise reach for —
// every loop and block checks IsReturn after each nested statement and
// propagates it upward unexamined.
type StepResult struct {
	IsReturn bool
	Value    values.Value
}

// Normal is the step result of a statement with no control-flow effect.
func Normal() StepResult { return StepResult{} }

// Returned is the step result of a return statement (or of propagating one
// up from a nested block).
func Returned(v values.Value) StepResult { return StepResult{IsReturn: true, Value: v} }
