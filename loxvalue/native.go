package loxvalue

import (
	"fmt"
	"time"
)

// NativeFunction wraps a Go closure as a Callable, the same shape as
// the teacher's std.Builtin/CallbackFunc (std/builtins.go), trimmed to
// Lox's minimal native surface: a name, an arity, and a Go function.
type NativeFunction struct {
	Name     string
	NumArgs  int
	Function func(arguments []interface{}) (interface{}, error)
}

func (n *NativeFunction) Arity() int { return n.NumArgs }

func (n *NativeFunction) Call(interp Interp, arguments []interface{}) (interface{}, error) {
	return n.Function(arguments)
}

func (n *NativeFunction) String() string {
	return fmt.Sprintf("<native function> %s", n.Name)
}

// Clock returns the sole native Lox exposes: the current time in
// milliseconds since the Unix epoch, matching original_source/lox/
// natives.py's Clock.call (time.time_ns()/1_000_000) and its
// "<native function> time" stringification.
func Clock() *NativeFunction {
	return &NativeFunction{
		Name:    "time",
		NumArgs: 0,
		Function: func(arguments []interface{}) (interface{}, error) {
			return float64(time.Now().UnixNano()) / 1e6, nil
		},
	}
}
