// Package eval walks the expression tree produced by the parser,
// threading an object.Environment through each step the way the
// teacher's evaluator threads an *object.Environment through Eval — but
// every operator, including unary and binary arithmetic, is itself
// resolved through the same name-dispatch path as an ordinary call,
// rather than being special-cased in a big switch.
package eval

import (
	"sort"
	"strings"

	"lince/ast"
	"lince/ierr"
	"lince/module"
	"lince/object"
)

// Interpreter holds the Environment a run's expressions are evaluated
// against. It implements object.Ctx so that a user-defined Function's
// Call closure can re-enter evaluation for its body.
type Interpreter struct {
	Env *object.Environment
}

// New returns an Interpreter whose Environment already carries the
// standard module (constants, arithmetic, comparisons, constructors).
func New() *Interpreter {
	env := object.NewEnvironment()
	module.NewStdModule(env)
	return &Interpreter{Env: env}
}

// Eval evaluates node against it.Env. It satisfies object.Ctx.
func (it *Interpreter) Eval(node ast.Node) (object.Value, error) {
	switch n := node.(type) {
	case *ast.Const:
		return evalConst(n), nil
	case *ast.Identifier:
		return it.evalIdentifier(n)
	case *ast.Unary:
		return it.evalUnary(n)
	case *ast.Binary:
		return it.evalBinary(n)
	case *ast.Call:
		return it.evalCall(n)
	case *ast.LambdaCall:
		return it.evalLambdaCall(n)
	case *ast.If:
		return it.evalIf(n)
	case *ast.While:
		return it.evalWhile(n)
	case *ast.TranslationUnit:
		return it.evalTranslationUnit(n)
	default:
		return object.Value{}, ierr.New(ierr.ParseError, node.GetToken(), "don't know how to evaluate %T", node)
	}
}

func evalConst(n *ast.Const) object.Value {
	switch n.Kind {
	case ast.ConstBool:
		return object.BoolOf(n.Bool)
	case ast.ConstInt:
		return object.IntOf(n.Int)
	case ast.ConstDouble:
		return object.DoubleOf(n.Double)
	case ast.ConstString:
		return object.StringOf(n.Str)
	default:
		return object.NilValue
	}
}

func (it *Interpreter) evalIdentifier(n *ast.Identifier) (object.Value, error) {
	if v, ok := it.Env.Get(n.Name); ok {
		return v, nil
	}
	return object.Value{}, ierr.New(ierr.NoSuchName, n.Token, "no such name: %s", n.Name)
}

func (it *Interpreter) evalUnary(n *ast.Unary) (object.Value, error) {
	operand, err := it.Eval(n.Operand)
	if err != nil {
		return object.Value{}, err
	}
	return it.call(n.Token, "operator-", []object.Value{operand})
}

// evalBinary special-cases '=': its left operand is either a bare name, in
// which case it is a plain assignment, or a Call in which every argument is
// a name, in which case it adds a new function overload under that name (an
// earlier definition of the same name and arity stays registered, so a call
// that reaches both in the dynamic-fallback phase is an AmbiguousCall).
// Neither shape is resolved through the call-dispatch machinery
// the way every other operator is, since assignment has no meaningful
// "overload" to select between.
func (it *Interpreter) evalBinary(n *ast.Binary) (object.Value, error) {
	if n.Op == "=" {
		switch lhs := n.Left.(type) {
		case *ast.Identifier:
			value, err := it.Eval(n.Right)
			if err != nil {
				return object.Value{}, err
			}
			it.Env.Assign(lhs.Name, value)
			return value, nil
		case *ast.Call:
			return it.defineFunction(lhs, n.Right)
		default:
			return object.Value{}, ierr.New(ierr.ParseError, n.Token, "left side of '=' must be a name or a call of names")
		}
	}

	left, err := it.Eval(n.Left)
	if err != nil {
		return object.Value{}, err
	}
	right, err := it.Eval(n.Right)
	if err != nil {
		return object.Value{}, err
	}
	return it.call(n.Token, "operator"+n.Op, []object.Value{left, right})
}

// defineFunction implements `name(p1, ..., pn) = body`: every argument of
// the left-hand Call must be a bare name, and it registers a dynamic
// (Any-typed) Function under that name whose Call closure pushes a fresh
// scope, binds each parameter positionally, and evaluates body through Ctx
// so that a recursive call re-enters the same dispatch machinery.
func (it *Interpreter) defineFunction(call *ast.Call, body ast.Node) (object.Value, error) {
	paramNames := make([]string, len(call.Args))
	for i, a := range call.Args {
		ident, ok := a.(*ast.Identifier)
		if !ok {
			return object.Value{}, ierr.New(ierr.ParseError, call.GetToken(), "function parameters must be names")
		}
		paramNames[i] = ident.Name
	}

	params := make([]object.TypeID, len(paramNames))
	for i := range params {
		params[i] = object.Any
	}

	fn := &object.Function{
		Name:   call.Name,
		Params: params,
		Call: func(ctx object.Ctx, args []object.Value) (object.Value, error) {
			guard := it.Env.PushScope()
			defer guard.Close()
			for i, name := range paramNames {
				it.Env.Set(name, args[i])
			}
			return ctx.Eval(body)
		},
	}
	it.Env.DefineFunction(call.Name, fn)
	return object.FuncOf(fn), nil
}

func (it *Interpreter) evalCall(n *ast.Call) (object.Value, error) {
	args, err := it.evalArgs(n.Args)
	if err != nil {
		return object.Value{}, err
	}
	return it.call(n.Token, n.Name, args)
}

func (it *Interpreter) evalLambdaCall(n *ast.LambdaCall) (object.Value, error) {
	callee, err := it.Eval(n.Callee)
	if err != nil {
		return object.Value{}, err
	}
	if callee.Kind != object.Func {
		return object.Value{}, ierr.New(ierr.BadCoercion, n.Token, "cannot call a value of kind %s", callee.Kind)
	}
	args, err := it.evalArgs(n.Args)
	if err != nil {
		return object.Value{}, err
	}
	return callee.Fn.Call(it, args)
}

func (it *Interpreter) evalArgs(nodes []ast.Node) ([]object.Value, error) {
	args := make([]object.Value, len(nodes))
	for i, a := range nodes {
		v, err := it.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (it *Interpreter) evalIf(n *ast.If) (object.Value, error) {
	cond, err := it.Eval(n.Condition)
	if err != nil {
		return object.Value{}, err
	}
	if object.Booleanof(cond) {
		return it.Eval(n.Then)
	}
	if n.Else != nil {
		return it.Eval(n.Else)
	}
	return object.NilValue, nil
}

// evalWhile repeatedly evaluates Body while Condition holds, yielding the
// last value Body produced, or nil if the loop never ran.
func (it *Interpreter) evalWhile(n *ast.While) (object.Value, error) {
	result := object.NilValue
	for {
		cond, err := it.Eval(n.Condition)
		if err != nil {
			return object.Value{}, err
		}
		if !object.Booleanof(cond) {
			return result, nil
		}
		result, err = it.Eval(n.Body)
		if err != nil {
			return object.Value{}, err
		}
	}
}

func (it *Interpreter) evalTranslationUnit(n *ast.TranslationUnit) (object.Value, error) {
	result := object.NilValue
	for _, e := range n.Exprs {
		v, err := it.Eval(e)
		if err != nil {
			return object.Value{}, err
		}
		result = v
	}
	return result, nil
}

// Completions returns every bound name in it.Env strictly longer than
// prefix and starting with it, sorted, for the REPL's tab completion.
func (it *Interpreter) Completions(prefix string) []string {
	var matches []string
	for _, name := range it.Env.Names() {
		if len(name) > len(prefix) && strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	return matches
}
