// Released under an MIT license. See LICENSE.

// Package variable provides pix's Var type: a named, mutable, single-value
// binding owned by a namespace.
package variable

import (
	"sync"

	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/interface/reference"
)

const name = "var"

// T (variable) holds a cell value. A variable with no value is unbound.
type T struct {
	sync.RWMutex
	c     cell.I
	local string
	ns    string
}

type variable = T

// New creates a new unbound variable named local in the namespace ns.
func New(ns, local string) *variable {
	return &variable{local: local, ns: ns}
}

// Bound returns true if the variable v has a value.
func (v *variable) Bound() bool {
	return v.Get() != nil
}

// Deref returns the value of the variable v. It panics if v is unbound.
func (v *variable) Deref() cell.I {
	c := v.Get()
	if c == nil {
		failure.Raise(failure.ErrUnbound, "%s is unbound", v.String())
	}

	return c
}

// Equal returns true if c is the same variable as v.
func (v *variable) Equal(c cell.I) bool {
	t, ok := c.(*variable)

	return ok && t == v
}

// Get returns the value in variable v or nil if v is unbound.
func (v *variable) Get() cell.I {
	v.RLock()
	defer v.RUnlock()

	return v.c
}

// Literal returns the literal representation of the variable v.
func (v *variable) Literal() string {
	return "#'" + v.String()
}

// Local returns the name of the variable v within its namespace.
func (v *variable) Local() string {
	return v.local
}

// Name returns the type name for the variable v.
func (v *variable) Name() string {
	return name
}

// Namespace returns the name of the namespace that owns the variable v.
func (v *variable) Namespace() string {
	return v.ns
}

// Set replaces the value in variable v with the cell c.
func (v *variable) Set(c cell.I) {
	v.Lock()
	defer v.Unlock()

	v.c = c
}

// String returns the qualified name of the variable v.
func (v *variable) String() string {
	return v.ns + "/" + v.local
}

// Is returns true if c is a variable.
func Is(c cell.I) bool {
	_, ok := c.(*variable)

	return ok
}

// To returns a variable if c is a variable; Otherwise it panics.
func To(c cell.I) *variable {
	if t, ok := c.(*variable); ok {
		return t
	}

	failure.Raise(failure.ErrType, "%s is not a %s", c.Name(), name)

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t variable

	// The variable type is a cell.
	_ = cell.I(&t)

	// The variable type has a literal representation.
	_ = literal.I(&t)

	// The variable type is a reference.
	_ = reference.I(&t)

	// The variable type is a stringer.
	_ = common.Stringer(&t)
}
