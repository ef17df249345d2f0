package lisp

// builtins is the primitive registry.
var builtins = map[Symbol]func(*Env, []Value) Value{
	// arithmetic
	"+": builtinAdd,
	"-": builtinSub,
	"*": builtinMul,
	"/": builtinDiv,

	// equality
	"==": builtinEq,
	"!=": builtinNe,

	// control
	"if": builtinIf,

	// lists
	"list":   builtinList,
	"empty":  builtinEmpty,
	"head":   builtinHead,
	"tail":   builtinTail,
	"join":   builtinJoin,
	"eval":   builtinEval,
	"unpack": builtinUnpack,

	// definition
	"def": builtinDef,
	"=":   builtinPut,
	"\\":  builtinLambda,
}

// Bootstrap registers every builtin into env. Bootstrapping a fresh root
// scope is the only construction path for a usable environment.
func Bootstrap(env *Env) {
	for name, fn := range builtins {
		env.Define(name, &Builtin{Name: string(name), Fn: fn})
	}
}

// --- Arithmetic ---

func builtinAdd(_ *Env, args []Value) Value { return arith("+", args) }
func builtinSub(_ *Env, args []Value) Value { return arith("-", args) }
func builtinMul(_ *Env, args []Value) Value { return arith("*", args) }
func builtinDiv(_ *Env, args []Value) Value { return arith("/", args) }

// arith left-folds an operator over its operands. A unary "-" negates;
// any other unary form returns its operand.
func arith(name string, args []Value) Value {
	if len(args) == 0 {
		return Errorf(ErrArity, "'%s' expects at least 1 argument", name)
	}
	nums := make([]float64, len(args))
	for i, a := range args {
		n, ok := a.(Number)
		if !ok {
			return Errorf(ErrType, "'%s' expects numbers, got %s '%s'", name, TypeName(a), EncodeToString(a))
		}
		nums[i] = float64(n)
	}

	if len(nums) == 1 {
		if name == "-" {
			return Number(-nums[0])
		}
		return Number(nums[0])
	}

	x := nums[0]
	for _, y := range nums[1:] {
		switch name {
		case "+":
			x += y
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			if y == 0 {
				return Errorf(ErrDivideByZero, "cannot divide by zero")
			}
			x /= y
		}
	}
	return Number(x)
}

// --- Equality ---

func builtinEq(_ *Env, args []Value) Value {
	if len(args) != 2 {
		return Errorf(ErrArity, "'==' expects 2 arguments, got %d", len(args))
	}
	return boolNumber(ValuesEqual(args[0], args[1]))
}

func builtinNe(_ *Env, args []Value) Value {
	if len(args) != 2 {
		return Errorf(ErrArity, "'!=' expects 2 arguments, got %d", len(args))
	}
	return boolNumber(!ValuesEqual(args[0], args[1]))
}

func boolNumber(b bool) Value {
	if b {
		return Number(1)
	}
	return Number(0)
}

// --- Control ---

func builtinIf(env *Env, args []Value) Value {
	if len(args) != 3 {
		return Errorf(ErrArity, "'if' expects 3 arguments, got %d", len(args))
	}
	cond, ok := args[0].(Number)
	if !ok {
		return Errorf(ErrType, "'if' expects a number condition, got %s '%s'", TypeName(args[0]), EncodeToString(args[0]))
	}

	branch := args[2]
	if cond != 0 {
		branch = args[1]
	}
	q, ok := branch.(QExpr)
	if !ok {
		return Errorf(ErrType, "'if' expects q-expression branches, got %s '%s'", TypeName(branch), EncodeToString(branch))
	}
	return Eval(env, SExpr(q))
}

// --- Lists ---

func builtinList(_ *Env, args []Value) Value {
	return QExpr(append([]Value{}, args...))
}

func builtinEmpty(_ *Env, args []Value) Value {
	q, err := oneQExpr("empty", args)
	if err != nil {
		return err
	}
	return boolNumber(len(q) == 0)
}

func builtinHead(_ *Env, args []Value) Value {
	q, err := oneQExpr("head", args)
	if err != nil {
		return err
	}
	if len(q) == 0 {
		return Errorf(ErrEmptyList, "'head' on an empty q-expression")
	}
	return q[0]
}

func builtinTail(_ *Env, args []Value) Value {
	q, err := oneQExpr("tail", args)
	if err != nil {
		return err
	}
	if len(q) == 0 {
		return Errorf(ErrEmptyList, "'tail' on an empty q-expression")
	}
	return QExpr(append([]Value{}, q[1:]...))
}

func builtinJoin(_ *Env, args []Value) Value {
	if len(args) == 0 {
		return Errorf(ErrArity, "'join' expects at least 1 argument")
	}
	joined := []Value{}
	for _, a := range args {
		q, ok := a.(QExpr)
		if !ok {
			return Errorf(ErrType, "'join' expects q-expressions, got %s '%s'", TypeName(a), EncodeToString(a))
		}
		joined = append(joined, q...)
	}
	return QExpr(joined)
}

func builtinEval(env *Env, args []Value) Value {
	if len(args) != 1 {
		return Errorf(ErrArity, "'eval' expects 1 argument, got %d", len(args))
	}
	if q, ok := args[0].(QExpr); ok {
		return Eval(env, SExpr(q))
	}
	return Eval(env, args[0])
}

func builtinUnpack(env *Env, args []Value) Value {
	if len(args) != 2 {
		return Errorf(ErrArity, "'unpack' expects 2 arguments, got %d", len(args))
	}
	q, ok := args[1].(QExpr)
	if !ok {
		return Errorf(ErrType, "'unpack' expects a q-expression of arguments, got %s '%s'", TypeName(args[1]), EncodeToString(args[1]))
	}
	return Apply(env, args[0], append([]Value{}, q...))
}

func oneQExpr(name string, args []Value) (QExpr, *Error) {
	if len(args) != 1 {
		return nil, Errorf(ErrArity, "'%s' expects 1 argument, got %d", name, len(args))
	}
	q, ok := args[0].(QExpr)
	if !ok {
		return nil, Errorf(ErrType, "'%s' expects a q-expression, got %s '%s'", name, TypeName(args[0]), EncodeToString(args[0]))
	}
	return q, nil
}

// --- Definition ---

// builtinDef binds in the global root regardless of call depth; the
// prelude's fun helper relies on this to install top-level names from
// inside a lambda body.
func builtinDef(env *Env, args []Value) Value {
	return define(env.Global(), "def", args)
}

// builtinPut is the local-frame counterpart of def.
func builtinPut(env *Env, args []Value) Value {
	return define(env, "=", args)
}

func define(target *Env, name string, args []Value) Value {
	if len(args) < 2 {
		return Errorf(ErrArity, "'%s' expects a symbol list and values", name)
	}
	syms, err := symbolList(name, args[0])
	if err != nil {
		return err
	}
	if len(syms) != len(args)-1 {
		return Errorf(ErrArity, "'%s' got %d symbols but %d values", name, len(syms), len(args)-1)
	}
	for i, sym := range syms {
		target.Define(sym, args[i+1])
	}
	return SExpr{}
}

func builtinLambda(env *Env, args []Value) Value {
	if len(args) != 2 {
		return Errorf(ErrArity, "'\\' expects formals and a body, got %d arguments", len(args))
	}
	formals, err := symbolList("\\", args[0])
	if err != nil {
		return err
	}
	body, ok := args[1].(QExpr)
	if !ok {
		return Errorf(ErrType, "'\\' expects a q-expression body, got %s '%s'", TypeName(args[1]), EncodeToString(args[1]))
	}
	return &Lambda{Formals: formals, Body: body, Env: env}
}

func symbolList(name string, v Value) ([]Symbol, *Error) {
	q, ok := v.(QExpr)
	if !ok {
		return nil, Errorf(ErrType, "'%s' expects a q-expression of symbols, got %s '%s'", name, TypeName(v), EncodeToString(v))
	}
	syms := make([]Symbol, len(q))
	for i, el := range q {
		sym, ok := el.(Symbol)
		if !ok {
			return nil, Errorf(ErrType, "'%s' expects symbols, got %s '%s'", name, TypeName(el), EncodeToString(el))
		}
		syms[i] = sym
	}
	return syms, nil
}
