/*
File    : gomix-cpp/values/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_StringRenderingMatchesCoutFormatting(t *testing.T) {
	assert.Equal(t, "42", NewInt(42).String())
	assert.Equal(t, "3.5", NewFloat(3.5).String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "false", NewBool(false).String())
	assert.Equal(t, "hi", NewString("hi").String())
	assert.Equal(t, "a", NewChar('a').String())
}

func TestValue_IsTruthy(t *testing.T) {
	assert.True(t, NewBool(true).IsTruthy())
	assert.False(t, NewBool(false).IsTruthy())
	assert.True(t, NewInt(1).IsTruthy())
	assert.False(t, NewInt(0).IsTruthy())
}

func TestValue_AsFloat64WidensChar(t *testing.T) {
	assert.Equal(t, float64('a'), NewChar('a').AsFloat64())
	assert.Equal(t, float64(0), NewChar(0).AsFloat64())
}

func TestDecodeQuoted_StripsQuotesAndDecodesEscapes(t *testing.T) {
	assert.Equal(t, "hi\n", DecodeQuoted(`"hi\n"`))
	assert.Equal(t, "a", DecodeQuoted(`'a'`))
	assert.Equal(t, `say "hi"`, DecodeQuoted(`"say \"hi\""`))
}
