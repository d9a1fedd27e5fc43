package loxvalue

import (
	"fmt"

	"github.com/akashmaji946/golox/lexer"
)

// Instance is a Lox object created by calling a Class, grounded on
// original_source/lox/loxinstance.py.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get reads a field first, then a bound method; it reports a runtime
// error for anything else, exactly as loxinstance.py's get() does.
func (i *Instance) Get(name lexer.Token) (interface{}, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if method := i.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set writes a field unconditionally — Lox instances have no declared
// shape, so any property name may be assigned.
func (i *Instance) Set(name lexer.Token, value interface{}) {
	i.Fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
