// Released under an MIT license. See LICENSE.

// Package failure provides the errors raised by the pix reader, compiler and
// interpreter.
//
// Inside pix, failures travel as panics. Entry points recover them and hand
// an ordinary error to the caller. Use errors.Is with one of the kinds below
// to classify an error.
package failure

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/pix/internal/common/struct/loc"
)

// Error kinds.
var (
	ErrArity   = errors.New("arity error")
	ErrCompile = errors.New("compile error")
	ErrDepth   = errors.New("stack depth exceeded")
	ErrReader  = errors.New("reader error")
	ErrType    = errors.New("type error")
	ErrUnbound = errors.New("unbound symbol")

	// ErrIncomplete is a reader error raised when input ends inside a form.
	ErrIncomplete = fmt.Errorf("%w: unexpected end of input", ErrReader)
)

// T (failure) is an error of a particular kind.
type T struct {
	kind   error
	msg    string
	source *loc.T
}

type failure = T

// New creates a failure of the given kind.
func New(kind error, format string, args ...interface{}) *failure {
	return &failure{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// At creates a failure of the given kind at the lexical location source.
func At(source *loc.T, kind error, format string, args ...interface{}) *failure {
	f := New(kind, format, args...)
	f.source = source

	return f
}

// Raise panics with a new failure.
func Raise(kind error, format string, args ...interface{}) {
	panic(New(kind, format, args...))
}

// Error returns the text of the failure f.
func (f *failure) Error() string {
	s := f.kind.Error()
	if f.msg != "" {
		s += ": " + f.msg
	}

	if f.source != nil {
		s = f.source.String() + ": " + s
	}

	return s
}

// Source returns the lexical location of the failure f, if known.
func (f *failure) Source() *loc.T {
	return f.source
}

// Unwrap returns the kind of the failure f.
func (f *failure) Unwrap() error {
	return f.kind
}

// From converts a recovered value into an error.
func From(r interface{}) error {
	switch r := r.(type) {
	case *failure:
		return r
	case error:
		return New(ErrType, "%s", r.Error())
	case string:
		return New(ErrType, "%s", r)
	case fmt.Stringer:
		return New(ErrType, "%s", r.String())
	}

	return New(ErrType, "unexpected error")
}

// Recover stores a recovered panic, if any, in *err.
// It must be called directly by defer.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}

	*err = From(r)
}
