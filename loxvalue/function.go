package loxvalue

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
)

// Function is a user-defined Lox function or method, adapted from the
// teacher's function.Function (function/function.go: Name/Params/
// Body/Scp) but carrying the closure as a live *environment.Environment
// pointer rather than a Scope value, and an IsInitializer flag so a
// class's "init" method can force its return value to the instance.
type Function struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

func NewFunction(declaration *ast.Function, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

// Bind returns a new Function whose closure encloses f's own captured
// environment (not the call site's), with "this" defined to instance.
// This is the fix for the teacher's eval.callFunctionOnObject, which
// instead enlarges the caller's current scope and so loses closures
// captured at class-definition time; see original_source/lox/
// loxfunction.py's bind().
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewChild(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) Call(interp Interp, arguments []interface{}) (interface{}, error) {
	env := environment.NewChild(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if err != nil {
		if ret, ok := err.(*ReturnSignal); ok {
			if f.IsInitializer {
				return f.Closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}

	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
