/*
File    : gomix-cpp/compiler/options.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

// Options configures a single CompileAndRun call. It is a plain struct
// passed by the driver rather than a generic config/env framework, the same
// small-struct-per-call pattern the teacher's repl.Repl constructor uses.
type Options struct {
	// Filename labels the verbose phase banners in diagnostic_output; it
	// plays no role in compilation itself.
	Filename string
	// Verbose turns on phase-banner diagnostic_output.
	Verbose bool
	// MaxOutputBytes caps how much execution_output is retained; zero means
	// unlimited. A runaway program's cout output is truncated rather than
	// allowed to exhaust memory.
	MaxOutputBytes int
}
