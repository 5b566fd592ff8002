// Package module provides the standard library of constants, operators,
// and conversion constructors every interpreter starts with, grounded on
// the original implementation's lince::ModuleBase (module.hpp): a function
// namespace and a value namespace, both installed into a fresh
// object.Environment rather than assembled as a standalone namespace pair,
// since this Go evaluator always resolves names through an Environment.
package module

import (
	"math"

	"lince/ierr"
	"lince/object"
	"lince/token"
)

// NewStdModule installs the standard constants, operators, and
// constructors into env's innermost frame (the only frame of a fresh
// Environment).
func NewStdModule(env *object.Environment) {
	loadConstants(env)
	loadUnaryDouble(env)
	loadBinaryDouble(env)
	loadBinaryInt(env)
	loadString(env)
	loadConstructors(env)
	loadComparisons(env)
}

func loadConstants(env *object.Environment) {
	env.Set("pi", object.DoubleOf(math.Pi))
	env.Set("e", object.DoubleOf(math.E))
	env.Set("phi", object.DoubleOf(math.Phi))
}

func define(env *object.Environment, name string, params []object.TypeID, call func(ctx object.Ctx, args []object.Value) (object.Value, error)) {
	env.DefineFunction(name, &object.Function{Name: name, Params: params, Call: call})
}

func unaryDouble(env *object.Environment, name string, f func(float64) float64) {
	define(env, name, []object.TypeID{object.Double}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.DoubleOf(f(args[0].Double)), nil
	})
}

func loadUnaryDouble(env *object.Environment) {
	unaryDouble(env, "sqrt", math.Sqrt)
	unaryDouble(env, "sin", math.Sin)
	unaryDouble(env, "cos", math.Cos)
	unaryDouble(env, "tan", math.Tan)
	unaryDouble(env, "cbrt", math.Cbrt)
	unaryDouble(env, "log", math.Log)
	unaryDouble(env, "log10", math.Log10)
	unaryDouble(env, "exp", math.Exp)
	unaryDouble(env, "abs", math.Abs)
	unaryDouble(env, "operator-", func(x float64) float64 { return -x })
}

func loadBinaryDouble(env *object.Environment) {
	define(env, "operator+", []object.TypeID{object.Double, object.Double}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.DoubleOf(args[0].Double + args[1].Double), nil
	})
	define(env, "operator-", []object.TypeID{object.Double, object.Double}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.DoubleOf(args[0].Double - args[1].Double), nil
	})
	define(env, "operator*", []object.TypeID{object.Double, object.Double}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.DoubleOf(args[0].Double * args[1].Double), nil
	})
	define(env, "operator/", []object.TypeID{object.Double, object.Double}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		if args[1].Double == 0 {
			return object.Value{}, ierr.New(ierr.DivByZero, token.Token{}, "division by zero")
		}
		return object.DoubleOf(args[0].Double / args[1].Double), nil
	})
	define(env, "operator^", []object.TypeID{object.Double, object.Double}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.DoubleOf(math.Pow(args[0].Double, args[1].Double)), nil
	})
}

func loadBinaryInt(env *object.Environment) {
	define(env, "operator+", []object.TypeID{object.Int, object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.IntOf(args[0].Int + args[1].Int), nil
	})
	define(env, "operator-", []object.TypeID{object.Int, object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.IntOf(args[0].Int - args[1].Int), nil
	})
	define(env, "operator*", []object.TypeID{object.Int, object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.IntOf(args[0].Int * args[1].Int), nil
	})
	define(env, "operator/", []object.TypeID{object.Int, object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		if args[1].Int == 0 {
			return object.Value{}, ierr.New(ierr.DivByZero, token.Token{}, "division by zero")
		}
		return object.IntOf(args[0].Int / args[1].Int), nil
	})
	define(env, "operator-", []object.TypeID{object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.IntOf(-args[0].Int), nil
	})
}

func loadString(env *object.Environment) {
	define(env, "operator+", []object.TypeID{object.String, object.String}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.StringOf(args[0].Str + args[1].Str), nil
	})
	define(env, "operator*", []object.TypeID{object.String, object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		result := ""
		for i := int64(0); i < args[1].Int; i++ {
			result += args[0].Str
		}
		return object.StringOf(result), nil
	})
}

// loadConstructors registers the __<Type> conversion functions Phase 2 of
// eval.call falls back on when no exact-match overload exists.
func loadConstructors(env *object.Environment) {
	define(env, "__Double", []object.TypeID{object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.DoubleOf(float64(args[0].Int)), nil
	})
	define(env, "__String", []object.TypeID{object.Int}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.StringOf(object.Display(args[0])), nil
	})
}

func loadComparisons(env *object.Environment) {
	for _, t := range []object.TypeID{object.Int, object.Double, object.String} {
		t := t
		define(env, "operator<", []object.TypeID{t, t}, compareFn(t, func(c int) bool { return c < 0 }))
		define(env, "operator>", []object.TypeID{t, t}, compareFn(t, func(c int) bool { return c > 0 }))
		define(env, "operator<=", []object.TypeID{t, t}, compareFn(t, func(c int) bool { return c <= 0 }))
		define(env, "operator>=", []object.TypeID{t, t}, compareFn(t, func(c int) bool { return c >= 0 }))
	}
	define(env, "operator==", []object.TypeID{object.Any, object.Any}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.BoolOf(object.Equal(args[0], args[1])), nil
	})
	define(env, "operator!=", []object.TypeID{object.Any, object.Any}, func(_ object.Ctx, args []object.Value) (object.Value, error) {
		return object.BoolOf(!object.Equal(args[0], args[1])), nil
	})
}

func compareFn(t object.TypeID, pred func(int) bool) func(object.Ctx, []object.Value) (object.Value, error) {
	return func(_ object.Ctx, args []object.Value) (object.Value, error) {
		var c int
		switch t {
		case object.Int:
			c = cmpInt(args[0].Int, args[1].Int)
		case object.Double:
			c = cmpFloat(args[0].Double, args[1].Double)
		case object.String:
			c = cmpString(args[0].Str, args[1].Str)
		}
		return object.BoolOf(pred(c)), nil
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
