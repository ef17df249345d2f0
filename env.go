package lisp

import "sort"

// Env is a chained scope mapping symbols to values. Children hold their
// parent by reference; parents never reference children. Every frame also
// keeps a handle on the root of its chain, which is where `def` writes
// and where the evaluator's recursion budget lives.
type Env struct {
	vars   map[Symbol]Value
	parent *Env
	global *Env

	depth int // used on the global frame only
}

// NewScope returns a fresh frame. With a nil parent the frame is a global
// root; otherwise it chains to parent and shares parent's root.
func NewScope(parent *Env) *Env {
	e := &Env{vars: map[Symbol]Value{}, parent: parent}
	if parent == nil {
		e.global = e
	} else {
		e.global = parent.global
	}
	return e
}

// Lookup searches this frame, then the parent chain.
func (e *Env) Lookup(sym Symbol) (Value, bool) {
	for ; e != nil; e = e.parent {
		if v, ok := e.vars[sym]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define inserts or overwrites a binding in this frame only.
func (e *Env) Define(sym Symbol, v Value) {
	e.vars[sym] = v
}

// Global returns the root of the chain.
func (e *Env) Global() *Env {
	return e.global
}

// Names returns this frame's bound symbols in sorted order.
func (e *Env) Names() []Symbol {
	names := make([]Symbol, 0, len(e.vars))
	for sym := range e.vars {
		names = append(names, sym)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
