// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/struct/frame"
	"github.com/michaelmacinnis/pix/internal/common/type/array"
	"github.com/michaelmacinnis/pix/internal/common/validate"
)

// Closure is a compiled function and the frame it was created in.
type Closure struct {
	arities []*arity
	frame   *frame.T
	name    string
}

type arity struct {
	body     code
	fixed    int  // Number of positional parameters.
	self     bool // Slot 0 holds the closure itself.
	size     int  // Number of slots in an invocation frame.
	variadic bool // The last slot collects surplus arguments.
}

// Equal returns true if c is the same closure as fn.
func (fn *Closure) Equal(c cell.I) bool {
	t, ok := c.(*Closure)

	return ok && t == fn
}

// Literal returns the literal representation of the closure fn.
func (fn *Closure) Literal() string {
	if fn.name == "" {
		return "#<fn>"
	}

	return "#<fn " + fn.name + ">"
}

// Name returns the type name for the closure fn.
func (fn *Closure) Name() string {
	return "fn"
}

func (fn *Closure) arity(n int) *arity {
	var variadic *arity

	for _, a := range fn.arities {
		if a.variadic {
			variadic = a

			continue
		}

		if a.fixed == n {
			return a
		}
	}

	if variadic != nil && n >= variadic.fixed {
		return variadic
	}

	failure.Raise(failure.ErrArity, "%s cannot be called with %s", fn.Literal(), validate.Plural(n, "argument", "s"))

	return nil
}

// bind stores args in the frame f starting at slot offset.
func (a *arity) bind(f *frame.T, offset int, args []cell.I) {
	for i, v := range args[:a.fixed] {
		f.Set(offset+i, v)
	}

	if a.variadic {
		f.Set(offset+a.fixed, array.New(args[a.fixed:]...))
	}
}

// call invokes the closure fn. The body runs in a loop so that recur can
// rebind the parameters and start again without a nested call.
func (t *task) call(fn *Closure, args []cell.I) cell.I {
	a := fn.arity(len(args))

	f := frame.New(fn.frame, a.size)

	offset := 0
	if a.self {
		f.Set(0, fn)

		offset = 1
	}

	a.bind(f, offset, args)

	t.enter()
	defer t.exit()

	for {
		r := a.body.eval(t, f)

		rb, ok := r.(*rebind)
		if !ok {
			return r
		}

		f.Rebind(offset, rb.values)
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t Closure

	// The closure type is a cell.
	_ = cell.I(&t)

	// The closure type has a literal representation.
	_ = literal.I(&t)
}
