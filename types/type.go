/*
File    : gomix-cpp/types/type.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package types models the static type descriptors used by the parser and
// semantic analyzer, and the numeric promotion lattice that drives binary
// operator type checking.
package types

// Base is one of the fixed set of base types the language supports. Only
// the base participates in checking; qualifiers are parsed and preserved
// but never enforced, per spec.
type Base string

const (
	Int     Base = "int"
	Float   Base = "float"
	Double  Base = "double"
	Char    Base = "char"
	Bool    Base = "bool"
	Void    Base = "void"
	String  Base = "string"
	Ostream Base = "ostream"
	// Unknown marks an internal error: it must never appear in a successful
	// analysis, but is used as a best-guess placeholder so the analyzer can
	// keep walking past an individual expression failure.
	Unknown Base = "unknown"
)

// builtins is the set of base types the language recognises without a
// class/struct declaration.
var builtins = map[Base]bool{
	Int: true, Float: true, Double: true, Char: true, Bool: true,
	Void: true, String: true, Ostream: true,
}

// IsBuiltin reports whether b is one of the fixed built-in base types.
func IsBuiltin(b Base) bool {
	return builtins[b]
}

// Type is the full type descriptor attached to a VarDecl, parameter or
// function return type. Qualifiers are parsed so the AST can round-trip the
// source faithfully, even though only Base feeds semantic checking.
type Type struct {
	Base        Base
	IsConst     bool
	IsPointer   bool
	IsReference bool
}

// promotionLattice is the exact pairing table from the original C++ subset
// compiler's semantic analyzer: every (a, b) pair not present here is
// incompatible. Lookups try both orderings since the lattice is commutative.
var promotionLattice = map[[2]Base]Base{
	{Int, Int}:       Int,
	{Int, Float}:      Float,
	{Int, Double}:     Double,
	{Float, Float}:    Float,
	{Float, Double}:    Double,
	{Double, Double}:   Double,
	{Bool, Bool}:      Bool,
	{Char, Char}:      Char,
	{String, String}:   String,
}

// Promote returns the result type of combining two operands under the
// numeric promotion lattice (§4.3), and whether the pairing is compatible
// at all. The lattice is symmetric: Promote(a, b) == Promote(b, a).
func Promote(a, b Base) (Base, bool) {
	if result, ok := promotionLattice[[2]Base{a, b}]; ok {
		return result, true
	}
	if result, ok := promotionLattice[[2]Base{b, a}]; ok {
		return result, true
	}
	return Unknown, false
}
