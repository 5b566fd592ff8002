package module

import (
	"testing"

	"lince/object"
)

func TestConstants(t *testing.T) {
	env := object.NewEnvironment()
	NewStdModule(env)
	pi, ok := env.Get("pi")
	if !ok || pi.Kind != object.Double {
		t.Fatalf("expected pi to be bound as a Double")
	}
	if pi.Double < 3.14 || pi.Double > 3.15 {
		t.Fatalf("expected pi ~= 3.14159, got %v", pi.Double)
	}
}

func TestDoubleArithmeticExactMatch(t *testing.T) {
	env := object.NewEnvironment()
	NewStdModule(env)
	fns := env.Functions("operator+")
	var found *object.Function
	for _, fn := range fns {
		if len(fn.Params) == 2 && fn.Params[0] == object.Double && fn.Params[1] == object.Double {
			found = fn
		}
	}
	if found == nil {
		t.Fatalf("expected a Double,Double overload of +")
	}
	result, err := found.Call(nil, []object.Value{object.DoubleOf(2), object.DoubleOf(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Double != 5 {
		t.Fatalf("expected 5, got %v", result.Double)
	}
}

func TestIntDivByZero(t *testing.T) {
	env := object.NewEnvironment()
	NewStdModule(env)
	fns := env.Functions("operator/")
	var found *object.Function
	for _, fn := range fns {
		if len(fn.Params) == 2 && fn.Params[0] == object.Int && fn.Params[1] == object.Int {
			found = fn
		}
	}
	if found == nil {
		t.Fatalf("expected an Int,Int overload of /")
	}
	if _, err := found.Call(nil, []object.Value{object.IntOf(1), object.IntOf(0)}); err == nil {
		t.Fatalf("expected a division-by-zero error")
	}
}

func TestStringRepeat(t *testing.T) {
	env := object.NewEnvironment()
	NewStdModule(env)
	fns := env.Functions("operator*")
	var found *object.Function
	for _, fn := range fns {
		if len(fn.Params) == 2 && fn.Params[0] == object.String && fn.Params[1] == object.Int {
			found = fn
		}
	}
	if found == nil {
		t.Fatalf("expected a String,Int overload of *")
	}
	result, err := found.Call(nil, []object.Value{object.StringOf("ab"), object.IntOf(3)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Str != "ababab" {
		t.Fatalf("expected %q, got %q", "ababab", result.Str)
	}
}

func TestDoubleConstructorFromInt(t *testing.T) {
	env := object.NewEnvironment()
	NewStdModule(env)
	fns := env.Functions("__Double")
	if len(fns) != 1 {
		t.Fatalf("expected exactly one __Double overload, got %d", len(fns))
	}
	result, err := fns[0].Call(nil, []object.Value{object.IntOf(5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Kind != object.Double || result.Double != 5 {
		t.Fatalf("expected Double 5, got %+v", result)
	}
}
