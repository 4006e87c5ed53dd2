// Package failfast turns programmer errors into immediate panics.
// It is reserved for wiring bugs (unknown field names, nil
// dependencies); user input never reaches these paths.
package failfast

import (
	"fmt"
	"reflect"
)

// Err panics if err is non-nil.
func Err(err error) {
	if err != nil {
		panic(fmt.Errorf("failfast: %w", err))
	}
}

// If asserts condition and panics with the formatted message when it
// does not hold.
func If(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Errorf("failfast: "+format, args...))
	}
}

// NotNil panics when v is nil, including typed nil pointers and nil
// functions hiding behind an interface.
func NotNil(v any, name string) {
	if v == nil {
		panic(fmt.Errorf("failfast: %s is nil", name))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan:
		if rv.IsNil() {
			panic(fmt.Errorf("failfast: %s is nil", name))
		}
	}
}
