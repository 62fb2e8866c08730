/*
File    : gomix-cpp/compiler/compiler_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileAndRun_EndToEndScenarios(t *testing.T) {
	cases := []struct {
		name       string
		source     string
		wantOutput string
		wantCode   int
	}{
		{
			name:       "hello world",
			source:     `#include <iostream>` + "\n" + `using namespace std;` + "\n" + `int main(){ cout << "Hello, World!" << endl; return 0; }`,
			wantOutput: "Hello, World!\n",
			wantCode:   0,
		},
		{
			name:       "arithmetic",
			source:     `int main(){ int x=10; int y=20; cout << (x+y) << endl; return 0; }`,
			wantOutput: "30\n",
			wantCode:   0,
		},
		{
			name:       "function call",
			source:     `int add(int a,int b){ return a+b; } int main(){ cout << add(5,3) << endl; return 0; }`,
			wantOutput: "8\n",
			wantCode:   0,
		},
		{
			name:       "for loop",
			source:     `int main(){ for(int i=1;i<=3;i=i+1){ cout << i << " "; } cout << endl; return 0; }`,
			wantOutput: "1 2 3 \n",
			wantCode:   0,
		},
		{
			name:       "if else",
			source:     `int main(){ if (2>1) return 7; else return 9; }`,
			wantOutput: "",
			wantCode:   7,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CompileAndRun(tc.source, "<test>")
			assert.True(t, result.Success, "expected success, details: %v", result.Details)
			assert.Equal(t, tc.wantOutput, result.ExecutionOutput)
			assert.Equal(t, tc.wantCode, result.ExitCode)
		})
	}
}

func TestCompileAndRun_UsedBeforeInitializationIsASemanticFailure(t *testing.T) {
	result := CompileAndRun(`int main(){ int x; cout << x; return 0; }`, "<test>")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Details)
	found := false
	for _, d := range result.Details {
		if containsX(d) {
			found = true
		}
	}
	assert.True(t, found, "expected a diagnostic mentioning x, got %v", result.Details)
}

func containsX(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 'x' {
			return true
		}
	}
	return false
}

func TestCompileAndRun_MissingMainIsARuntimeFailure(t *testing.T) {
	result := CompileAndRun(``, "<test>")
	assert.False(t, result.Success)
	assert.Equal(t, 1, result.ExitCode)
}

func TestCompileAndRun_SyntaxErrorStopsThePipelineBeforeAnalysis(t *testing.T) {
	result := CompileAndRun(`int main( { return 0; }`, "<test>")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Details)
}

func TestCompileAndRun_IsIdempotent(t *testing.T) {
	source := `int main(){ int x=10; int y=20; cout << (x+y) << endl; return 0; }`
	first := CompileAndRun(source, "<test>")
	second := CompileAndRun(source, "<test>")
	assert.Equal(t, first.ExecutionOutput, second.ExecutionOutput)
	assert.Equal(t, first.ExitCode, second.ExitCode)
}

func TestCompileAndRun_VerboseModeProducesDiagnosticOutput(t *testing.T) {
	result := CompileAndRunWithOptions(`int main(){ return 0; }`, Options{Filename: "<test>", Verbose: true})
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.DiagnosticOutput)
}

func TestCompileAndRun_MaxOutputBytesTruncatesExecutionOutput(t *testing.T) {
	result := CompileAndRunWithOptions(
		`int main(){ cout << "0123456789"; return 0; }`,
		Options{Filename: "<test>", MaxOutputBytes: 4},
	)
	assert.True(t, result.Success)
	assert.Equal(t, "0123", result.ExecutionOutput)
}
