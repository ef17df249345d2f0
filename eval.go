package lisp

// maxDepth bounds evaluator recursion so that runaway recursion is
// reported as a value instead of overflowing the native stack.
const maxDepth = 4096

// Eval reduces v against env until a terminal value results. Failures
// come back as *Error values; there is no separate error channel.
func Eval(env *Env, v Value) Value {
	g := env.global
	g.depth++
	defer func() { g.depth-- }()
	if g.depth > maxDepth {
		return Errorf(ErrRecursionLimit, "recursion deeper than %d frames", maxDepth)
	}

	switch v := v.(type) {
	case Symbol:
		if val, ok := env.Lookup(v); ok {
			return val
		}
		return Errorf(ErrUnboundSymbol, "unbound symbol '%s'", v)
	case SExpr:
		return evalSExpr(env, v)
	default:
		// numbers, strings, q-expressions, functions and errors are
		// self-evaluating
		return v
	}
}

func evalSExpr(env *Env, xs SExpr) Value {
	if len(xs) == 0 {
		return xs
	}

	head := Eval(env, xs[0])
	if err, ok := head.(*Error); ok {
		return err
	}

	// a single-element expression collapses to its element
	if len(xs) == 1 {
		return head
	}

	switch head.(type) {
	case *Builtin, *Lambda:
	default:
		return Errorf(ErrNotCallable, "cannot call %s '%s'", TypeName(head), EncodeToString(head))
	}

	args := make([]Value, len(xs)-1)
	for i, x := range xs[1:] {
		r := Eval(env, x)
		if err, ok := r.(*Error); ok {
			return err
		}
		args[i] = r
	}

	return Apply(env, head, args)
}

// Apply invokes a function value with already-evaluated arguments.
func Apply(env *Env, fn Value, args []Value) Value {
	switch fn := fn.(type) {
	case *Builtin:
		return fn.Fn(env, args)
	case *Lambda:
		return applyLambda(fn, args)
	default:
		return Errorf(ErrNotCallable, "cannot call %s '%s'", TypeName(fn), EncodeToString(fn))
	}
}

// applyLambda binds arguments to formals front-to-back in a fresh child
// of the captured environment. A rest marker ("&" or ":") collects the
// remaining arguments as a q-expression. Too few arguments yield a new
// partially-applied lambda; too many without a rest formal are an error.
func applyLambda(fn *Lambda, args []Value) Value {
	formals := fn.Formals
	scope := NewScope(fn.Env)

	for len(args) > 0 {
		if len(formals) == 0 {
			return Errorf(ErrArity, "function takes %d arguments, got %d", len(fn.Formals), len(fn.Formals)+len(args))
		}
		if isRestMarker(formals[0]) {
			rest, err := restFormal(formals)
			if err != nil {
				return err
			}
			scope.Define(rest, QExpr(append([]Value{}, args...)))
			formals, args = nil, nil
			break
		}
		scope.Define(formals[0], args[0])
		formals, args = formals[1:], args[1:]
	}

	// a rest formal that absorbed nothing binds the empty list
	if len(formals) > 0 && isRestMarker(formals[0]) {
		rest, err := restFormal(formals)
		if err != nil {
			return err
		}
		scope.Define(rest, QExpr{})
		formals = nil
	}

	if len(formals) > 0 {
		// partial application: supplied arguments stay bound in scope,
		// the remaining formals wait for the rest
		return &Lambda{Formals: formals, Body: fn.Body, Env: scope}
	}

	return Eval(scope, SExpr(fn.Body))
}

func isRestMarker(s Symbol) bool {
	return s == "&" || s == ":"
}

func restFormal(formals []Symbol) (Symbol, *Error) {
	if len(formals) != 2 || isRestMarker(formals[1]) {
		return "", Errorf(ErrType, "'%s' must be followed by exactly one symbol", formals[0])
	}
	return formals[1], nil
}
