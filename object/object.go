// Package object defines the runtime value representation, the function
// type, and the environment the evaluator threads through a run.
package object

import (
	"fmt"

	"lince/ast"
)

// TypeID discriminates the dynamic type of a Value. It is also the
// vocabulary a Function's parameter list is declared in, so that dispatch
// (see eval.call) can compare an argument's TypeID against a candidate
// Function's Params without a type switch.
type TypeID int

const (
	Nil TypeID = iota
	Bool
	Int
	Double
	String
	Func
	// Any matches every TypeID during dispatch; it is never an argument's
	// own Kind, only a parameter declaration on a dynamic-fallback Function.
	Any
)

func (t TypeID) String() string {
	switch t {
	case Nil:
		return "Nil"
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Double:
		return "Double"
	case String:
		return "String"
	case Func:
		return "Func"
	case Any:
		return "Any"
	default:
		return "?"
	}
}

// Ctx is the evaluator's re-entry point, used by a Function's Call closure
// to evaluate the body of a user-defined (dynamic) function against the
// interpreter's environment as it stands at call time. It is an
// interface, not a concrete type, so that this package does not need to
// import the package that implements it (which in turn imports ast, the
// only thing object and eval need to agree on).
type Ctx interface {
	Eval(node ast.Node) (Value, error)
}

// Function is a callable value: either a built-in (Call set directly at
// registration time) or a user-defined function (Call closes over the
// declaring Environment and the body ast.Node, and calls back into Ctx.Eval
// when invoked).
type Function struct {
	Name   string
	Params []TypeID
	Call   func(ctx Ctx, args []Value) (Value, error)
}

// Value is a tagged dynamic value. Using one struct with a Kind
// discriminant, rather than an interface implemented by one type per kind,
// keeps TypeID available as plain data for the dispatch algorithm in
// eval.call to inspect and compare — the algorithm needs to reason about
// types themselves, not just the values that carry them.
type Value struct {
	Kind   TypeID
	Bool   bool
	Int    int64
	Double float64
	Str    string
	Fn     *Function
}

// NilValue is the sole value of Kind Nil.
var NilValue = Value{Kind: Nil}

func BoolOf(b bool) Value     { return Value{Kind: Bool, Bool: b} }
func IntOf(i int64) Value     { return Value{Kind: Int, Int: i} }
func DoubleOf(d float64) Value { return Value{Kind: Double, Double: d} }
func StringOf(s string) Value { return Value{Kind: String, Str: s} }
func FuncOf(fn *Function) Value { return Value{Kind: Func, Fn: fn} }

// Booleanof implements the truthiness rule: nil and the boolean false are
// false, an Int is false only when it is 0, and every other value (Double
// 0.0, the empty string, any Function) is true.
func Booleanof(v Value) bool {
	switch v.Kind {
	case Nil:
		return false
	case Bool:
		return v.Bool
	case Int:
		return v.Int != 0
	default:
		return true
	}
}

// Display renders v the way the REPL echoes a result. A Double always
// shows six decimal places (Go's fmt default for %f), matching the
// original implementation's use of std::to_string(double).
func Display(v Value) string {
	switch v.Kind {
	case Nil:
		return "nil"
	case Bool:
		return fmt.Sprintf("%t", v.Bool)
	case Int:
		return fmt.Sprintf("%d", v.Int)
	case Double:
		return fmt.Sprintf("%f", v.Double)
	case String:
		return `"` + v.Str + `"`
	case Func:
		return "<Function>"
	default:
		return "?"
	}
}

// Equal is the `==` comparison used by the eval/compare builtins. Functions
// compare by identity.
func Equal(lhs, rhs Value) bool {
	if lhs.Kind != rhs.Kind {
		return false
	}
	switch lhs.Kind {
	case Nil:
		return true
	case Bool:
		return lhs.Bool == rhs.Bool
	case Int:
		return lhs.Int == rhs.Int
	case Double:
		return lhs.Double == rhs.Double
	case String:
		return lhs.Str == rhs.Str
	case Func:
		return lhs.Fn == rhs.Fn
	default:
		return false
	}
}
