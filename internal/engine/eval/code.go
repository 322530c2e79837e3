// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/truth"
	"github.com/michaelmacinnis/pix/internal/common/struct/frame"
	"github.com/michaelmacinnis/pix/internal/common/type/native"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/variable"
)

// code is a compiled form. Evaluating code in a frame produces a value.
// Code in tail position may instead produce a *rebind.
type code interface {
	eval(t *task, f *frame.T) cell.I
}

type applyCode struct {
	args []code
	op   code
}

func (c *applyCode) eval(t *task, f *frame.T) cell.I {
	op := c.op.eval(t, f)

	args := make([]cell.I, len(c.args))
	for i, a := range c.args {
		args[i] = a.eval(t, f)
	}

	return t.apply(op, args)
}

type constant struct {
	value cell.I
}

func (c *constant) eval(_ *task, _ *frame.T) cell.I {
	return c.value
}

type defCode struct {
	value code
	v     *variable.T
}

func (c *defCode) eval(t *task, f *frame.T) cell.I {
	if c.value != nil {
		c.v.Set(c.value.eval(t, f))

		trace().Debugf("defined %s", c.v)
	}

	return c.v
}

type doCode struct {
	body []code
}

func (c *doCode) eval(t *task, f *frame.T) cell.I {
	r := pair.Null

	for _, e := range c.body {
		r = e.eval(t, f)
	}

	return r
}

type fnCode struct {
	arities []*arity
	name    string
}

func (c *fnCode) eval(_ *task, f *frame.T) cell.I {
	return &Closure{arities: c.arities, frame: f, name: c.name}
}

type global struct {
	v *variable.T
}

func (c *global) eval(_ *task, _ *frame.T) cell.I {
	return c.v.Deref()
}

type ifCode struct {
	test      code
	then      code
	otherwise code
}

func (c *ifCode) eval(t *task, f *frame.T) cell.I {
	if truth.Value(c.test.eval(t, f)) {
		return c.then.eval(t, f)
	}

	return c.otherwise.eval(t, f)
}

// letCode binds values in a new frame and evaluates its body there.
// If loop is true the body is a recur target.
type letCode struct {
	body  code
	inits []code
	loop  bool
}

func (c *letCode) eval(t *task, f *frame.T) cell.I {
	l := frame.New(f, len(c.inits))

	for i, e := range c.inits {
		l.Set(i, e.eval(t, l))
	}

	for {
		r := c.body.eval(t, l)
		if !c.loop {
			return r
		}

		rb, ok := r.(*rebind)
		if !ok {
			return r
		}

		l.Rebind(0, rb.values)
	}
}

type local struct {
	depth int
	index int
}

func (c *local) eval(_ *task, f *frame.T) cell.I {
	return f.Get(c.depth, c.index)
}

type recurCode struct {
	args []code
}

func (c *recurCode) eval(t *task, f *frame.T) cell.I {
	values := make([]cell.I, len(c.args))
	for i, a := range c.args {
		values[i] = a.eval(t, f)
	}

	return &rebind{values: values}
}

// rebind is the value of recur. It asks the nearest enclosing loop or
// function body to rebind its frame and start again.
type rebind struct {
	values []cell.I
}

func (r *rebind) Equal(c cell.I) bool {
	return c == cell.I(r)
}

func (r *rebind) Name() string {
	return "recur"
}

// apply invokes op with args. A variable is dereferenced and its value
// invoked.
func (t *task) apply(op cell.I, args []cell.I) cell.I {
	switch op := op.(type) {
	case *Closure:
		return t.call(op, args)
	case *native.T:
		return op.Call(args)
	case *variable.T:
		return t.apply(op.Deref(), args)
	}

	failure.Raise(failure.ErrType, "%s is not callable", op.Name())

	return nil
}
