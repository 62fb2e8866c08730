/*
File    : gomix-cpp/cmd/gomixcpp/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the gomixcpp command-line driver. It
provides two modes of operation:
1. REPL Mode (default): interactive read-compile-run loop for live coding
2. File Mode: compile and run a single source file

Both modes are thin collaborators over compiler.CompileAndRun; neither
holds any interpreter state of its own.
*/
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/gomix-cpp/compiler"
	"github.com/akashmaji946/gomix-cpp/repl"
)

var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENSE = "MIT"
var PROMPT = "gomix-cpp >>> "

var BANNER = `
   ____       __  __ _      ____ _____  _____
  / ___| ___ |  \/  (_)_  _/ ___|_   _|| ____|
 | |  _ / _ \| |\/| | \ \/ / |     | |  |  _|
 | |_| | (_) | |  | | |>  <| |___  | |  | |___
  \____|\___/|_|  |_|_/_/\_\\____| |_|  |_____|
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on the first command-line argument:
//
//	gomixcpp              - start the interactive REPL
//	gomixcpp <file>        - compile and run the given source file
//	gomixcpp --help | -h   - usage
//	gomixcpp --version | -v- version info
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("gomixcpp - a tree-walking front end for a strict C++ subset")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  gomixcpp                    Start interactive REPL mode")
	yellowColor.Println("  gomixcpp <path-to-file>      Compile and run a .cpp file")
	yellowColor.Println("  gomixcpp --help              Display this help message")
	yellowColor.Println("  gomixcpp --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /exit                        Exit the REPL")
	yellowColor.Println("  /help                        Show the welcome banner again")
}

func showVersion() {
	cyanColor.Println("gomixcpp - a tree-walking front end for a strict C++ subset")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads fileName, compiles and runs it through compiler.CompileAndRun,
// and mirrors its Result onto stdout/stderr with an exit code matching
// main's return value (or 1 on any pipeline failure).
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}

	result := compiler.CompileAndRun(string(source), fileName)

	if result.DiagnosticOutput != "" {
		os.Stdout.WriteString(result.DiagnosticOutput)
	}

	if !result.Success {
		for _, d := range result.Details {
			redColor.Fprintf(os.Stderr, "[ERROR] %s\n", d)
		}
		if len(result.Details) == 0 {
			redColor.Fprintf(os.Stderr, "[ERROR] %s\n", result.Error)
		}
		os.Exit(1)
	}

	if result.ExecutionOutput != "" {
		os.Stdout.WriteString(result.ExecutionOutput)
	}
	os.Exit(result.ExitCode)
}
