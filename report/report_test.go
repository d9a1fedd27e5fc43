package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_ErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Error(3, "Unexpected character.")

	assert.Equal(t, "[Line 3] Error: Unexpected character.\n", buf.String())
	assert.True(t, r.HadError())
}

func TestReporter_TokenErrorAtEnd(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.TokenError(5, "", true, "Expect expression.")

	assert.Equal(t, "[Line 5] Error at end: Expect expression.\n", buf.String())
}

func TestReporter_TokenErrorAtLexeme(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.TokenError(5, "}", false, "Expect ';'.")

	assert.Equal(t, "[Line 5] Error at '}': Expect ';'.\n", buf.String())
}

func TestReporter_RuntimeErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.RuntimeError(7, "Undefined variable 'x'.")

	assert.Equal(t, "Undefined variable 'x'.\n[line 7]\n", buf.String())
	assert.True(t, r.HadRuntimeError())
}

func TestReporter_ResetClearsBothFlags(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Error(1, "bad")
	r.RuntimeError(1, "boom")
	assert.True(t, r.HadError())
	assert.True(t, r.HadRuntimeError())

	r.Reset()
	assert.False(t, r.HadError())
	assert.False(t, r.HadRuntimeError())
}
