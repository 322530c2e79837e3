// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
	"github.com/michaelmacinnis/pix/internal/common/type/variable"
)

// compiler holds the state for compiling one top-level form.
type compiler struct {
	create  bool  // Unresolved symbols create variables in current.
	current *ns.T // The namespace forms are compiled in.
	reg     *ns.Registry
}

// context describes the position of the form being compiled.
type context struct {
	scope  *scope
	tail   bool    // The form's value is the value of the enclosing body.
	target *target // The nearest enclosing loop or function body.
}

// scope maps the names bound by one frame to slot indexes.
type scope struct {
	names  []*sym.T
	parent *scope
}

// target is a loop or function body that recur can restart.
type target struct {
	count int
}

func (x context) nontail() context {
	x.tail = false

	return x
}

func (s *scope) resolve(name *sym.T) (depth, index int, ok bool) {
	for ; s != nil; s = s.parent {
		for i := len(s.names) - 1; i >= 0; i-- {
			if s.names[i] == name {
				return depth, i, true
			}
		}

		depth++
	}

	return 0, 0, false
}

func (c *compiler) body(forms []cell.I, x context) code {
	switch len(forms) {
	case 0:
		return &constant{value: pair.Null}
	case 1:
		return c.compile(forms[0], x)
	}

	body := make([]code, len(forms))

	last := len(forms) - 1
	for i, f := range forms[:last] {
		body[i] = c.compile(f, x.nontail())
	}

	body[last] = c.compile(forms[last], x)

	return &doCode{body: body}
}

func (c *compiler) compile(form cell.I, x context) code {
	switch form := form.(type) {
	case *sym.T:
		return c.symbol(form, x)
	case *pair.T:
		if cell.I(form) == pair.Null {
			break
		}

		if !list.Proper(form) {
			failure.Raise(failure.ErrCompile, "cannot compile %s", literal.String(form))
		}

		args := list.Slice(pair.Cdr(form))

		if s, ok := pair.Car(form).(*sym.T); ok && s.Namespace() == "" && sym.Reserved(s.Local()) {
			return c.special(s.Local(), args, x)
		}

		return c.application(pair.Car(form), args, x)
	}

	return &constant{value: form}
}

func (c *compiler) application(op cell.I, args []cell.I, x context) code {
	x = x.nontail()

	a := &applyCode{
		args: make([]code, len(args)),
		op:   c.compile(op, x),
	}

	for i, arg := range args {
		a.args[i] = c.compile(arg, x)
	}

	return a
}

// global resolves the symbol s to a variable. Unqualified symbols and
// symbols qualified by the current namespace are looked up in the current
// namespace and the namespaces it refers to.
func (c *compiler) global(s *sym.T) *variable.T {
	label := s.Namespace()
	if label == "" || label == c.current.Label() {
		if v := c.current.Lookup(s.Local()); v != nil {
			return v
		}

		if c.create {
			trace().Debugf("created %s/%s", c.current.Label(), s.Local())

			return c.current.Intern(s.Local())
		}

		failure.Raise(failure.ErrUnbound, "unable to resolve %s", s)
	}

	n := c.reg.Find(label)
	if n == nil {
		failure.Raise(failure.ErrUnbound, "unable to resolve %s: no namespace %s", s, label)
	}

	v := n.Lookup(s.Local())
	if v == nil {
		failure.Raise(failure.ErrUnbound, "unable to resolve %s", s)
	}

	return v
}

func (c *compiler) symbol(s *sym.T, x context) code {
	if depth, index, ok := x.scope.resolve(s); ok {
		return &local{depth: depth, index: index}
	}

	if s.Namespace() == "" && sym.Reserved(s.Local()) {
		failure.Raise(failure.ErrCompile, "%s cannot be used as a value", s)
	}

	return &global{v: c.global(s)}
}
