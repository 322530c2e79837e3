// Released under an MIT license. See LICENSE.

package eval

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/array"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
	"github.com/michaelmacinnis/pix/internal/common/validate"
)

//nolint:gochecknoglobals
var ampersand = sym.New("&")

func (c *compiler) special(name string, args []cell.I, x context) code {
	switch name {
	case "def":
		return c.def(args, x)
	case "do":
		return c.body(args, x)
	case "fn*":
		return c.fn(args, x)
	case "if":
		return c.ifForm(args, x)
	case "let*":
		return c.let(name, args, x, false)
	case "loop":
		return c.let(name, args, x, true)
	case "quote":
		expect(name, args, 1, 1)

		return &constant{value: args[0]}
	case "recur":
		return c.recur(args, x)
	}

	failure.Raise(failure.ErrCompile, "%s cannot be used as an operator", name)

	return nil
}

func (c *compiler) def(args []cell.I, x context) code {
	expect("def", args, 1, 2)

	s, ok := args[0].(*sym.T)
	if !ok {
		failure.Raise(failure.ErrCompile, "def expected a symbol, got %s", literal.String(args[0]))
	}

	if l := s.Namespace(); l != "" && l != c.current.Label() {
		failure.Raise(failure.ErrCompile, "cannot def %s in namespace %s", s, c.current.Label())
	}

	n := s.Local()

	// The variable exists while the value compiles so the value can refer
	// to it. A variable created here is removed if compiling fails.
	if c.current.Owned(n) == nil {
		defer func() {
			if r := recover(); r != nil {
				c.current.Remove(n)
				panic(r)
			}
		}()
	}

	d := &defCode{v: c.current.Intern(n)}

	if len(args) == 2 {
		d.value = c.compile(args[1], x.nontail())
	}

	return d
}

// fn compiles (fn* name? [params] body...) or (fn* name? ([params] body...)...).
func (c *compiler) fn(args []cell.I, x context) code {
	var self *sym.T

	if len(args) > 0 {
		if s, ok := args[0].(*sym.T); ok {
			self = s
			args = args[1:]
		}
	}

	if len(args) == 0 {
		failure.Raise(failure.ErrCompile, "fn* expected a parameter vector or arity clauses")
	}

	f := &fnCode{}
	if self != nil {
		f.name = self.String()
	}

	if array.Is(args[0]) {
		f.arities = []*arity{c.arity(self, args[0], args[1:], x)}

		return f
	}

	for _, clause := range args {
		if !list.Proper(clause) || clause == pair.Null {
			failure.Raise(failure.ErrCompile, "fn* arity clause expected, got %s", literal.String(clause))
		}

		forms := list.Slice(clause)

		f.arities = append(f.arities, c.arity(self, forms[0], forms[1:], x))
	}

	checkArities(f.arities)

	return f
}

func (c *compiler) arity(self *sym.T, params cell.I, body []cell.I, x context) *arity {
	v, ok := params.(*array.T)
	if !ok {
		failure.Raise(failure.ErrCompile, "fn* expected a parameter vector, got %s", literal.String(params))
	}

	s := &scope{parent: x.scope}

	a := &arity{}
	if self != nil {
		a.self = true
		s.names = append(s.names, self)
	}

	items := v.Items()
	for i, p := range items {
		name, ok := p.(*sym.T)
		if !ok {
			failure.Raise(failure.ErrCompile, "fn* parameter must be a symbol, got %s", literal.String(p))
		}

		if name != ampersand {
			s.names = append(s.names, name)

			continue
		}

		if i != len(items)-2 {
			failure.Raise(failure.ErrCompile, "& must be followed by exactly one parameter")
		}

		rest, ok := items[i+1].(*sym.T)
		if !ok || rest == ampersand {
			failure.Raise(failure.ErrCompile, "fn* rest parameter must be a symbol, got %s", literal.String(items[i+1]))
		}

		a.variadic = true
		s.names = append(s.names, rest)

		break
	}

	a.fixed = len(items)
	if a.variadic {
		a.fixed -= 2
	}

	a.size = len(s.names)

	count := a.fixed
	if a.variadic {
		count++
	}

	a.body = c.body(body, context{
		scope:  s,
		tail:   true,
		target: &target{count: count},
	})

	return a
}

func (c *compiler) ifForm(args []cell.I, x context) code {
	expect("if", args, 2, 3)

	i := &ifCode{
		test:      c.compile(args[0], x.nontail()),
		then:      c.compile(args[1], x),
		otherwise: &constant{value: pair.Null},
	}

	if len(args) == 3 {
		i.otherwise = c.compile(args[2], x)
	}

	return i
}

// let compiles let* and loop. Each value is compiled in a scope that sees
// the names bound before it.
func (c *compiler) let(name string, args []cell.I, x context, loop bool) code {
	expect(name, args, 1, validate.Unlimited)

	v, ok := args[0].(*array.T)
	if !ok || v.Len()%2 != 0 {
		failure.Raise(failure.ErrCompile, "%s expected a vector with an even number of forms, got %s",
			name, literal.String(args[0]))
	}

	items := v.Items()
	s := &scope{parent: x.scope}
	inner := context{scope: s, target: x.target}

	l := &letCode{loop: loop}

	for i := 0; i < len(items); i += 2 {
		n, ok := items[i].(*sym.T)
		if !ok || n == ampersand {
			failure.Raise(failure.ErrCompile, "%s binding must be a symbol, got %s", name, literal.String(items[i]))
		}

		l.inits = append(l.inits, c.compile(items[i+1], inner))

		s.names = append(s.names, n)
	}

	inner.tail = x.tail
	if loop {
		inner.tail = true
		inner.target = &target{count: len(l.inits)}
	}

	l.body = c.body(args[1:], inner)

	return l
}

func (c *compiler) recur(args []cell.I, x context) code {
	if !x.tail || x.target == nil {
		failure.Raise(failure.ErrCompile, "recur can only be used in tail position of a loop or function body")
	}

	if len(args) != x.target.count {
		failure.Raise(failure.ErrArity, "recur expected %s, passed %d",
			validate.Plural(x.target.count, "argument", "s"), len(args))
	}

	r := &recurCode{args: make([]code, len(args))}

	for i, a := range args {
		r.args[i] = c.compile(a, x.nontail())
	}

	return r
}

// checkArities rejects arity tables where an argument count could select
// more than one arity.
func checkArities(arities []*arity) {
	seen := map[int]bool{}

	var variadic *arity

	for _, a := range arities {
		if a.variadic {
			if variadic != nil {
				failure.Raise(failure.ErrCompile, "fn* can have only one variadic arity")
			}

			variadic = a

			continue
		}

		if seen[a.fixed] {
			failure.Raise(failure.ErrCompile, "fn* has more than one arity with %s",
				validate.Plural(a.fixed, "parameter", "s"))
		}

		seen[a.fixed] = true
	}

	if variadic == nil {
		return
	}

	for n := range seen {
		if n >= variadic.fixed {
			failure.Raise(failure.ErrCompile, "fn* cannot have a fixed arity with %s and a variadic arity with %s",
				validate.Plural(n, "parameter", "s"), validate.Plural(variadic.fixed, "fixed parameter", "s"))
		}
	}
}

// expect panics with a compile error unless the special form name was
// passed min to max arguments.
func expect(name string, args []cell.I, min, max int) {
	n := len(args)
	if n >= min && (max == validate.Unlimited || n <= max) {
		return
	}

	failure.Raise(failure.ErrCompile, "malformed %s: %s", name, validate.Plural(n, "argument", "s"))
}
