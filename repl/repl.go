/*
File    : gomix-cpp/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package repl implements an interactive read-compile-run loop. Each line
// is a complete, independent CompileAndRun call: there is no persisted
// scope or frame across lines, preserving the core's single-call
// statelessness invariant even under interactive use. A user who wants
// multi-statement programs with shared state uses file mode instead.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/gomix-cpp/compiler"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl ready to Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to gomix-cpp!")
	cyanColor.Fprintf(writer, "%s\n", "Each line is compiled and run as its own complete program.")
	cyanColor.Fprintf(writer, "%s\n", "Type '/exit' to quit, '/help' for a reminder of this message.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-compile-run loop until the user exits or input
// is exhausted. reader is accepted for interface symmetry with a plain
// io.Reader-driven REPL but, like the teacher's own REPL, line editing goes
// through readline rather than reader directly.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == "/exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if line == "/help" {
			r.PrintBannerInfo(writer)
			continue
		}

		rl.SaveHistory(line)
		r.runLine(writer, line)
	}
}

// runLine compiles and runs one line as a complete program, reporting
// success output and exit code or the diagnostics CompileAndRun recorded.
// Unlike file mode, a failing line never halts the loop.
func (r *Repl) runLine(writer io.Writer, line string) {
	result := compiler.CompileAndRun(line, "<repl>")
	if !result.Success {
		for _, d := range result.Details {
			redColor.Fprintf(writer, "%s\n", d)
		}
		if len(result.Details) == 0 {
			redColor.Fprintf(writer, "%s\n", result.Error)
		}
		return
	}

	if result.ExecutionOutput != "" {
		writer.Write([]byte(result.ExecutionOutput))
	}
	yellowColor.Fprintf(writer, "[exit code %d]\n", result.ExitCode)
}
