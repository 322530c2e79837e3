// Released under an MIT license. See LICENSE.

// Package ns provides pix's namespace type and the registry of namespaces.
package ns

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/interface/reference"
	"github.com/michaelmacinnis/pix/internal/common/struct/hash"
	"github.com/michaelmacinnis/pix/internal/common/type/variable"
)

const name = "namespace"

// T (ns) maps local names to variables.
type T struct {
	label  string
	refers []*ns
	vars   *hash.T
}

type ns = T

// New creates an empty namespace named label.
func New(label string) *ns {
	return &ns{label: label, vars: hash.New()}
}

// Equal returns true if c is the same namespace as n.
func (n *ns) Equal(c cell.I) bool {
	t, ok := c.(*ns)

	return ok && t == n
}

// Intern returns the variable named local owned by n, creating it if absent.
// The variable's identity never changes once created.
func (n *ns) Intern(local string) *variable.T {
	r := n.vars.Intern(local, func() reference.I {
		return variable.New(n.label, local)
	})

	return r.(*variable.T)
}

// Label returns the name of the namespace n.
func (n *ns) Label() string {
	return n.label
}

// Literal returns the literal representation of the namespace n.
func (n *ns) Literal() string {
	return "#<namespace " + n.label + ">"
}

// Lookup finds the variable named local in n or, failing that, in one of
// the namespaces n refers to. It returns nil if there is no such variable.
func (n *ns) Lookup(local string) *variable.T {
	if v := n.Owned(local); v != nil {
		return v
	}

	for _, o := range n.refers {
		if v := o.Owned(local); v != nil {
			return v
		}
	}

	return nil
}

// Name returns the type name for the namespace n.
func (n *ns) Name() string {
	return name
}

// Names returns the local names of the variables owned by n, sorted.
func (n *ns) Names() []string {
	return n.vars.Keys()
}

// Owned returns the variable named local owned by n or nil.
func (n *ns) Owned(local string) *variable.T {
	r := n.vars.Get(local)
	if r == nil {
		return nil
	}

	return r.(*variable.T)
}

// Refer makes the variables owned by o visible in n.
func (n *ns) Refer(o *ns) {
	if o == n {
		return
	}

	for _, r := range n.refers {
		if r == o {
			return
		}
	}

	n.refers = append(n.refers, o)
}

// Remove drops the variable named local from n. Code already compiled
// against it keeps the variable.
func (n *ns) Remove(local string) bool {
	return n.vars.Del(local)
}

// String returns the name of the namespace n.
func (n *ns) String() string {
	return n.label
}

// To returns a namespace if c is a namespace; Otherwise it panics.
func To(c cell.I) *ns {
	if t, ok := c.(*ns); ok {
		return t
	}

	failure.Raise(failure.ErrType, "%s is not a %s", c.Name(), name)

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t ns

	// The ns type is a cell.
	_ = cell.I(&t)

	// The ns type has a literal representation.
	_ = literal.I(&t)
}
