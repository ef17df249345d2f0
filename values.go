package lisp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is the single runtime type. The variant set is closed: Number,
// Symbol, String, SExpr, QExpr, *Builtin, *Lambda and *Error.
type Value interface {
	write(w io.Writer) error
}

// Encode writes a textual representation of v to w.
func Encode(w io.Writer, v Value) error {
	return v.write(w)
}

// EncodeToString returns the textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

// TypeName names v's variant for diagnostics.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	case String:
		return "string"
	case SExpr:
		return "s-expression"
	case QExpr:
		return "q-expression"
	case *Builtin, *Lambda:
		return "function"
	case *Error:
		return "error"
	default:
		return "unknown"
	}
}

// Number
type Number float64

func (n Number) write(w io.Writer) error {
	_, err := io.WriteString(w, strconv.FormatFloat(float64(n), 'g', -1, 64))
	return err
}

// Symbol
type Symbol string

func (s Symbol) write(w io.Writer) error {
	_, err := io.WriteString(w, string(s))
	return err
}

// String
type String string

func (s String) write(w io.Writer) error {
	_, err := io.WriteString(w, strconv.Quote(string(s)))
	return err
}

// SExpr is an expression form: evaluated by applying its first element to
// the evaluated remainder.
type SExpr []Value

func (x SExpr) write(w io.Writer) error {
	return writeSeq(w, x, '(', ')')
}

// QExpr is a quoted list: plain data, never auto-evaluated.
type QExpr []Value

func (q QExpr) write(w io.Writer) error {
	return writeSeq(w, q, '{', '}')
}

func writeSeq(w io.Writer, elems []Value, open, close byte) error {
	if _, err := w.Write([]byte{open}); err != nil {
		return err
	}
	for i, el := range elems {
		if i > 0 {
			if _, err := w.Write([]byte{' '}); err != nil {
				return err
			}
		}
		if err := el.write(w); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{close})
	return err
}

// Builtin is a primitive operation implemented in Go.
type Builtin struct {
	Name string
	Fn   func(env *Env, args []Value) Value
}

func (b *Builtin) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<builtin '%s'>", b.Name)
	return err
}

// Lambda is a user-defined function: formal parameters, a body and the
// environment it was defined in.
type Lambda struct {
	Formals []Symbol
	Body    QExpr
	Env     *Env
}

func (l *Lambda) write(w io.Writer) error {
	if _, err := io.WriteString(w, "(\\ {"); err != nil {
		return err
	}
	for i, f := range l.Formals {
		if i > 0 {
			if _, err := w.Write([]byte{' '}); err != nil {
				return err
			}
		}
		if err := f.write(w); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "} "); err != nil {
		return err
	}
	if err := l.Body.write(w); err != nil {
		return err
	}
	_, err := w.Write([]byte{')'})
	return err
}

// ErrorKind tags the failure classes evaluation can produce.
type ErrorKind int

const (
	ErrUnboundSymbol ErrorKind = iota
	ErrNotCallable
	ErrArity
	ErrType
	ErrEmptyList
	ErrDivideByZero
	ErrRecursionLimit
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnboundSymbol:
		return "unbound-symbol"
	case ErrNotCallable:
		return "not-callable"
	case ErrArity:
		return "arity"
	case ErrType:
		return "type"
	case ErrEmptyList:
		return "empty-list"
	case ErrDivideByZero:
		return "divide-by-zero"
	case ErrRecursionLimit:
		return "recursion-limit"
	default:
		return "unknown"
	}
}

// Error is a first-class failure value. Evaluation never unwinds; any
// *Error produced during reduction propagates by return value.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Errorf builds an *Error from a kind and a format string.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "<error %s: %s>", e.Kind, e.Message)
	return err
}

// Error makes *Error usable as a Go error at the host boundary.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
