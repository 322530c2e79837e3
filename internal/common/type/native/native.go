// Released under an MIT license. See LICENSE.

// Package native provides pix's type for functions implemented in Go.
package native

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/validate"
)

const name = "native"

// Variadic, as a maximum, means any number of arguments.
const Variadic = validate.Unlimited

// Fn is the Go signature of a native function.
type Fn func(args []cell.I) cell.I

// T (native) is a named Go function with an argument count range.
type T struct {
	fn    Fn
	label string
	max   int
	min   int
}

type native = T

// New creates a native named label that accepts min to max arguments.
func New(label string, min, max int, fn Fn) *native {
	return &native{fn: fn, label: label, max: max, min: min}
}

// Call checks the number of arguments and then calls the native n.
func (n *native) Call(args []cell.I) cell.I {
	validate.Count(n.label, args, n.min, n.max)

	return n.fn(args)
}

// Equal returns true if c is the same native as n.
func (n *native) Equal(c cell.I) bool {
	t, ok := c.(*native)

	return ok && t == n
}

// Label returns the name the native n was defined with.
func (n *native) Label() string {
	return n.label
}

// Literal returns the literal representation of the native n.
func (n *native) Literal() string {
	return "#<native " + n.label + ">"
}

// Name returns the type name for the native n.
func (n *native) Name() string {
	return name
}

// To returns a native if c is a native; Otherwise it panics.
func To(c cell.I) *native {
	if t, ok := c.(*native); ok {
		return t
	}

	failure.Raise(failure.ErrType, "%s is not a %s", c.Name(), name)

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t native

	// The native type is a cell.
	_ = cell.I(&t)

	// The native type has a literal representation.
	_ = literal.I(&t)
}
