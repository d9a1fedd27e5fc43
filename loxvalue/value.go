// Package loxvalue defines the runtime value types the interpreter
// produces and consumes: plain Go values for Lox's primitives (float64
// for number, string, bool, and nil), plus the callable/class/instance
// object graph for functions, classes, and instances.
//
// The teacher's objects.GoMixObject wraps even primitives in a custom
// type (objects/objects.go's Integer/Float/String/Boolean). Lox has a
// single number type and no integer/float split, and original_source's
// interpreter.py stores primitives as bare Python values — so here
// primitives are bare Go values (interface{} holding float64/string/
// bool/nil) and only the callable object graph gets dedicated types,
// which keeps arithmetic and equality as plain Go operations instead
// of per-wrapper dispatch.
package loxvalue

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Interp is the subset of interpreter.Interpreter the callable object
// graph needs to run a function body. Declaring it here — rather than
// importing the interpreter package directly — breaks the import
// cycle (interpreter needs loxvalue's types; loxvalue needs a way to
// call back into the interpreter), the same indirection the teacher
// uses with std.Runtime (std/builtins.go) to let builtins invoke the
// evaluator without importing eval.
type Interp interface {
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
	Globals() *environment.Environment
}

// Callable is anything that can appear to the left of a call
// expression: a user-defined function/method, a class (acting as its
// own constructor), or a native function.
type Callable interface {
	Arity() int
	Call(interp Interp, arguments []interface{}) (interface{}, error)
	String() string
}
