package loxvalue

import (
	"fmt"

	"github.com/akashmaji946/golox/lexer"
)

// RuntimeError is a Lox runtime error tied to the token that caused
// it, mirroring original_source/lox/errors.py's RuntimeError(token,
// message) exception. It is returned as a normal Go error through the
// evaluate/execute call chain rather than panicked, so the top-level
// Interpreter.Interpret can report it and set the sticky runtime-error
// flag without unwinding arbitrary call stacks.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func NewRuntimeError(token lexer.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Token: token, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string { return e.Message }

// ReturnSignal unwinds out of a function body when a return statement
// executes. It threads through the same error-return channel as
// RuntimeError; Function.Call is the only place that intercepts it,
// matching original_source's return_exception.Return exception, which
// is only ever caught inside LoxFunction.call.
type ReturnSignal struct {
	Value interface{}
}

func (r *ReturnSignal) Error() string { return "return" }
