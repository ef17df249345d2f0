package lisp

// ValuesEqual reports structural equality: numbers by numeric value,
// symbols and strings by content, sequences element-wise, errors by kind
// and message. Functions never compare equal.
func ValuesEqual(a, b Value) bool {
	switch a := a.(type) {
	case Number:
		b, ok := b.(Number)
		return ok && a == b
	case Symbol:
		b, ok := b.(Symbol)
		return ok && a == b
	case String:
		b, ok := b.(String)
		return ok && a == b
	case SExpr:
		b, ok := b.(SExpr)
		return ok && seqEqual(a, b)
	case QExpr:
		b, ok := b.(QExpr)
		return ok && seqEqual(a, b)
	case *Error:
		b, ok := b.(*Error)
		return ok && a.Kind == b.Kind && a.Message == b.Message
	default:
		return false
	}
}

func seqEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, el := range a {
		if !ValuesEqual(el, b[i]) {
			return false
		}
	}
	return true
}
