package eval

import (
	"strings"

	"lince/ierr"
	"lince/object"
	"lince/token"
)

// call resolves name against the candidate functions visible in it.Env and
// invokes the one that fits args, in three phases:
//
//  1. Exact match: every declared parameter's TypeID equals the
//     corresponding argument's Kind. If exactly one candidate qualifies,
//     it is called directly.
//  2. Conversion match: for each remaining same-arity candidate, each
//     argument whose Kind doesn't already match its parameter is run
//     through that parameter type's __<Type> constructor, if one exists.
//     A candidate qualifies only if every argument converts. Again,
//     exactly one qualifying candidate is required.
//  3. Dynamic fallback: same-arity candidates declared entirely in terms
//     of Any are called with the original, unconverted arguments.
//
// More than one qualifying candidate at any phase is an AmbiguousCall;
// none at all, after all three phases, is a NoSuchFunction.
func (it *Interpreter) call(tok token.Token, name string, args []object.Value) (object.Value, error) {
	candidates := it.Env.Functions(name)
	if len(candidates) == 0 {
		return object.Value{}, ierr.New(ierr.NoSuchFunction, tok, "no such function: %s", name)
	}

	var sameArity []*object.Function
	for _, fn := range candidates {
		if len(fn.Params) == len(args) {
			sameArity = append(sameArity, fn)
		}
	}
	if len(sameArity) == 0 {
		return object.Value{}, ierr.New(ierr.NoSuchFunction, tok, "no overload of %s takes %d argument(s)", name, len(args))
	}

	exact := exactMatches(sameArity, args)
	if len(exact) == 1 {
		return exact[0].Call(it, args)
	}
	if len(exact) > 1 {
		return object.Value{}, it.ambiguous(tok, name, exact)
	}

	viable, converted := it.viableConversions(sameArity, args)
	if len(viable) == 1 {
		return viable[0].Call(it, converted[0])
	}
	if len(viable) > 1 {
		return object.Value{}, it.ambiguous(tok, name, viable)
	}

	var dynamic []*object.Function
	for _, fn := range sameArity {
		if allAny(fn.Params) {
			dynamic = append(dynamic, fn)
		}
	}
	if len(dynamic) == 1 {
		return dynamic[0].Call(it, args)
	}
	if len(dynamic) > 1 {
		return object.Value{}, it.ambiguous(tok, name, dynamic)
	}

	return object.Value{}, ierr.New(ierr.NoSuchFunction, tok, "no matching overload of %s for the given argument types", name)
}

func exactMatches(candidates []*object.Function, args []object.Value) []*object.Function {
	var result []*object.Function
	for _, fn := range candidates {
		if paramsExactlyMatch(fn.Params, args) {
			result = append(result, fn)
		}
	}
	return result
}

func paramsExactlyMatch(params []object.TypeID, args []object.Value) bool {
	for i, p := range params {
		if p != args[i].Kind {
			return false
		}
	}
	return true
}

func allAny(params []object.TypeID) bool {
	for _, p := range params {
		if p != object.Any {
			return false
		}
	}
	return true
}

// viableConversions tries each same-arity, not-fully-dynamic candidate in
// turn, converting whichever arguments don't already match via that
// parameter type's __<Type> constructor. It returns the qualifying
// candidates alongside the argument list each one would actually be
// called with.
func (it *Interpreter) viableConversions(candidates []*object.Function, args []object.Value) ([]*object.Function, [][]object.Value) {
	var viableFns []*object.Function
	var viableArgs [][]object.Value
	for _, fn := range candidates {
		if allAny(fn.Params) {
			continue // reserved for the dynamic-fallback phase
		}
		if converted, ok := it.coerce(fn.Params, args); ok {
			viableFns = append(viableFns, fn)
			viableArgs = append(viableArgs, converted)
		}
	}
	return viableFns, viableArgs
}

// coerce brings args up to params using each mismatched parameter's
// registered __<Type> constructor. It fails the whole candidate if any
// single argument has no applicable constructor.
func (it *Interpreter) coerce(params []object.TypeID, args []object.Value) ([]object.Value, bool) {
	converted := make([]object.Value, len(args))
	for i, p := range params {
		if p == args[i].Kind || p == object.Any {
			converted[i] = args[i]
			continue
		}
		ctor := it.findConstructor(p, args[i].Kind)
		if ctor == nil {
			return nil, false
		}
		v, err := ctor.Call(it, []object.Value{args[i]})
		if err != nil || v.Kind != p {
			return nil, false
		}
		converted[i] = v
	}
	return converted, true
}

// findConstructor looks up the single-argument __<Type> function that
// converts a value of Kind from into to.
func (it *Interpreter) findConstructor(to, from object.TypeID) *object.Function {
	for _, fn := range it.Env.Functions("__"+to.String()) {
		if len(fn.Params) == 1 && fn.Params[0] == from {
			return fn
		}
	}
	return nil
}

func (it *Interpreter) ambiguous(tok token.Token, name string, candidates []*object.Function) error {
	sigs := make([]string, len(candidates))
	for i, fn := range candidates {
		sigs[i] = signature(name, fn.Params)
	}
	return ierr.New(ierr.AmbiguousCall, tok, "call to %s is ambiguous between: %s", name, strings.Join(sigs, ", "))
}

func signature(name string, params []object.TypeID) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
