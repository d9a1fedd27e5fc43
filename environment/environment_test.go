package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", 10.0)

	v, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestEnvironment_GetUndefinedIsError(t *testing.T) {
	env := New()
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestEnvironment_ChildSharesEnclosingByReference(t *testing.T) {
	parent := New()
	parent.Define("x", 1.0)

	child := NewChild(parent)
	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// A mutation through the child after capture must be visible
	// through any other reference into the same parent frame — the
	// environment chain is a shared graph, not a snapshot.
	err = child.Assign("x", 2.0)
	assert.NoError(t, err)

	v, _ = parent.Get("x")
	assert.Equal(t, 2.0, v)
}

func TestEnvironment_AssignUndefinedIsError(t *testing.T) {
	env := New()
	err := env.Assign("missing", 1.0)
	assert.Error(t, err)
}

func TestEnvironment_GetAtAndAssignAt(t *testing.T) {
	global := New()
	a := NewChild(global)
	b := NewChild(a)
	a.Define("x", 1.0)

	assert.Equal(t, 1.0, b.GetAt(1, "x"))
	b.AssignAt(1, "x", 99.0)
	assert.Equal(t, 99.0, b.GetAt(1, "x"))
}
