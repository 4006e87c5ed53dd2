package failfast

import (
	"errors"
	"testing"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestErr(t *testing.T) {
	Err(nil) // must not panic
	expectPanic(t, "Err(non-nil)", func() { Err(errors.New("boom")) })
}

func TestIf(t *testing.T) {
	If(true, "fine")
	expectPanic(t, "If(false)", func() { If(false, "field %q", "nickname") })
}

func TestNotNil(t *testing.T) {
	NotNil("value", "s")
	NotNil(&struct{}{}, "ptr")

	expectPanic(t, "untyped nil", func() { NotNil(nil, "x") })

	var p *int
	expectPanic(t, "typed nil pointer", func() { NotNil(p, "p") })

	var fn func()
	expectPanic(t, "nil func", func() { NotNil(fn, "fn") })
}
