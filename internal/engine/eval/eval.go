// Released under an MIT license. See LICENSE.

// Package eval compiles pix forms into closures and invokes them.
//
// Compiling resolves every symbol once. Local names become (depth, index)
// pairs into the chain of frames and free names become variables, so
// evaluating compiled code never searches by name.
//
// A function or loop body runs inside a loop in Go. A recur in tail position
// evaluates to a rebind value that travels back to that loop, which rebinds
// the frame and runs the body again. Recur therefore uses no Go stack.
package eval

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
)

// MaxDepth is the number of nested (non-recur) calls allowed.
const MaxDepth = 10000

// Compile compiles form, in the current namespace of reg, as the body of a
// closure that takes no arguments.
func Compile(reg *ns.Registry, form cell.I) (fn *Closure, err error) {
	defer failure.Recover(&err)

	current := reg.Current()
	if current == nil {
		return nil, failure.New(failure.ErrCompile, "no namespace is current")
	}

	c := &compiler{
		create:  reg.AutoCreate(),
		current: current,
		reg:     reg,
	}

	body := c.compile(form, context{
		scope:  &scope{},
		tail:   true,
		target: nil,
	})

	trace().Debugf("compiled %s in %s", literal.String(form), current.Label())

	return &Closure{arities: []*arity{{body: body}}}, nil
}

// Eval compiles and then interprets form.
func Eval(reg *ns.Registry, form cell.I) (cell.I, error) {
	fn, err := Compile(reg, form)
	if err != nil {
		return nil, err
	}

	return Interpret(fn)
}

// Interpret invokes fn with no arguments.
func Interpret(fn *Closure) (cell.I, error) {
	return Invoke(fn, nil)
}

// Invoke calls fn, a closure, native or variable, with args.
func Invoke(fn cell.I, args []cell.I) (c cell.I, err error) {
	defer failure.Recover(&err)

	t := &task{}

	return t.apply(fn, args), nil
}

// task holds the state of one invocation from Go.
type task struct {
	depth int
}

func (t *task) enter() {
	t.depth++
	if t.depth > MaxDepth {
		failure.Raise(failure.ErrDepth, "more than %d nested calls", MaxDepth)
	}
}

func (t *task) exit() {
	t.depth--
}

func trace() tracing.Trace {
	return tracing.Select("pix.eval")
}
