/*
File    : gomix-cpp/values/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values implements the runtime value model the evaluator operates
// on: a single closed tagged union rather than a family of interface
// implementations, per this language's small and fixed set of base types.
package values

import (
	"fmt"
	"io"

	"github.com/akashmaji946/gomix-cpp/types"
)

// Value is the evaluator's universal runtime cell. Base says which field is
// live: Int for Int, Flt for Float/Double, Str for String/Char, Bool for
// Bool, Writer for Ostream. Every constructor below sets Base explicitly; a
// zero Value (Base == "") is the void result of a bare `return;` or of a
// void function.
type Value struct {
	Base   types.Base
	Int    int64
	Flt    float64
	Str    string
	Bool   bool
	Writer io.Writer // only set when Base == types.Ostream
}

func NewInt(i int64) Value      { return Value{Base: types.Int, Int: i} }
func NewFloat(f float64) Value  { return Value{Base: types.Float, Flt: f} }
func NewDouble(f float64) Value { return Value{Base: types.Double, Flt: f} }
func NewBool(b bool) Value      { return Value{Base: types.Bool, Bool: b} }
func NewString(s string) Value  { return Value{Base: types.String, Str: s} }

// NewChar stores a single decoded character. C is kept as a one-byte string
// so the same Str field used by String can hold it.
func NewChar(c byte) Value { return Value{Base: types.Char, Str: string([]byte{c})} }

// NewOstream wraps w as a stream value — what the cout / std::cout
// identifiers evaluate to.
func NewOstream(w io.Writer) Value { return Value{Base: types.Ostream, Writer: w} }

// IsTruthy reports how a Value behaves as an if/while/for condition: bools
// by their own value, ints by non-zero, nothing else is ever accepted (the
// analyzer already rejected any other condition type before evaluation).
func (v Value) IsTruthy() bool {
	switch v.Base {
	case types.Bool:
		return v.Bool
	case types.Int:
		return v.Int != 0
	}
	return false
}

// AsFloat64 widens an Int, Float, Double or Char value to float64 for
// arithmetic performed at a promoted floating type. A Char's byte lives in
// Str (see NewChar), not Int, so it needs its own case rather than falling
// through to the zero default.
func (v Value) AsFloat64() float64 {
	switch v.Base {
	case types.Int:
		return float64(v.Int)
	case types.Float, types.Double:
		return v.Flt
	case types.Char:
		if v.Str == "" {
			return 0
		}
		return float64(v.Str[0])
	}
	return 0
}

// String renders a Value the way std::cout would print it: a string or
// char prints its bare content (quotes were already stripped when the
// literal was evaluated), a bool prints as "true"/"false" rather than Go's
// capitalised spelling, and everything else uses its natural form.
func (v Value) String() string {
	switch v.Base {
	case types.Int:
		return fmt.Sprintf("%d", v.Int)
	case types.Float, types.Double:
		return fmt.Sprintf("%g", v.Flt)
	case types.Bool:
		if v.Bool {
			return "true"
		}
		return "false"
	case types.Char, types.String:
		return v.Str
	case types.Ostream:
		return "<ostream>"
	default:
		return ""
	}
}
