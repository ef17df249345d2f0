package lisp

import "fmt"

// Prelude is the standard-library source evaluated into every new
// environment. Everything here is glue over the builtins.
const Prelude = `
; function definition: (fun {name args...} {body})
(def {fun} (\ {decl body} {def (list (head decl)) (\ (tail decl) body)}))

; list construction
(fun {cons x xs} {join (list x) xs})
(fun {snoc x xs} {join xs (list x)})

; list queries
(fun {len xs} {if (empty xs) {0} {+ 1 (len (tail xs))}})
(fun {reverse xs} {if (empty xs) {{}} {join (reverse (tail xs)) (list (head xs))}})
(fun {nth xs n} {if (== n 0) {head xs} {nth (tail xs) (- n 1)}})
(fun {last xs} {nth xs (- (len xs) 1)})

; argument packing
(fun {curry f xs} {unpack f xs})
(fun {uncurry f & xs} {f xs})

; sequencing: evaluate everything, keep the last result
(fun {do & l} {if (empty l) {{}} {last l}})

; anonymous recursion: the function receives itself as its first argument
(fun {recur f & xs} {curry (f f) xs})
`

// NewEnv returns a global environment with every builtin registered and
// the prelude loaded.
func NewEnv() (*Env, error) {
	env := NewScope(nil)
	Bootstrap(env)
	if err := LoadPrelude(env); err != nil {
		return nil, err
	}
	return env, nil
}

// LoadPrelude feeds the prelude through parse and eval, form by form.
// Any failure is fatal: the language is misconfigured without its
// standard library.
func LoadPrelude(env *Env) error {
	forms, err := ParseString(Prelude)
	if err != nil {
		return fmt.Errorf("prelude: %w", err)
	}
	for _, form := range forms {
		if e, ok := Eval(env, form).(*Error); ok {
			return fmt.Errorf("prelude: %w", e)
		}
	}
	return nil
}
