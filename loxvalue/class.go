package loxvalue

// Class is a Lox class value. It is itself Callable: calling it
// constructs a new Instance, grounded on original_source/lox/
// loxclass.py's LoxClass.call/find_method/arity.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up a method by name, recursing into the
// superclass chain when not found locally.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Arity is the initializer's arity, or 0 if the class declares none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance and runs "init" on it if present,
// discarding init's own return value since Function.Call already
// forces it to return the instance via IsInitializer.
func (c *Class) Call(interp Interp, arguments []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}
