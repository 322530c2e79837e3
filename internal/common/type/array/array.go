// Released under an MIT license. See LICENSE.

// Package array provides pix's persistent array type.
//
// An array never changes once created. Conj returns a new array. When the
// receiver is the longest array sharing a backing slice, the new array
// extends that slice in place. Otherwise the elements are copied. Either
// way, existing arrays see the same elements they always have.
package array

import (
	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
)

const name = "array"

type backing struct {
	items []cell.I
}

// T (array) is an ordered, counted sequence of cells.
type T struct {
	*backing
	n int
}

type array = T

// New creates a new array containing a copy of items.
func New(items ...cell.I) *array {
	b := &backing{items: make([]cell.I, len(items))}
	copy(b.items, items)

	return &array{backing: b, n: len(items)}
}

// At returns the element at index i of the array a.
func (a *array) At(i int) cell.I {
	if i < 0 || i >= a.n {
		failure.Raise(failure.ErrType, "index %d out of range for array of %d", i, a.n)
	}

	return a.items[i]
}

// Conj returns a new array with the elements of a followed by c.
func (a *array) Conj(c cell.I) *array {
	if a.n == len(a.items) {
		a.items = append(a.items, c)

		return &array{backing: a.backing, n: a.n + 1}
	}

	b := &backing{items: make([]cell.I, a.n, a.n+1)}
	copy(b.items, a.items[:a.n])
	b.items = append(b.items, c)

	return &array{backing: b, n: a.n + 1}
}

// Equal returns true if c is an array with elements equal to a's.
func (a *array) Equal(c cell.I) bool {
	t, ok := c.(*array)
	if !ok || t.n != a.n {
		return false
	}

	for i, e := range a.Items() {
		if !e.Equal(t.items[i]) {
			return false
		}
	}

	return true
}

// Items returns the elements of the array a. The slice must not be modified.
func (a *array) Items() []cell.I {
	return a.items[:a.n:a.n]
}

// Len returns the number of elements in the array a.
func (a *array) Len() int {
	return a.n
}

// Literal returns the literal representation of the array a.
func (a *array) Literal() string {
	return "[" + literal.Join(a.Items(), " ") + "]"
}

// Name returns the type name for the array a.
func (a *array) Name() string {
	return name
}

// String returns the text representation of the array a.
func (a *array) String() string {
	return a.Literal()
}

// Is returns true if c is an array.
func Is(c cell.I) bool {
	_, ok := c.(*array)

	return ok
}

// To returns an array if c is an array; Otherwise it panics.
func To(c cell.I) *array {
	if t, ok := c.(*array); ok {
		return t
	}

	failure.Raise(failure.ErrType, "%s is not an %s", c.Name(), name)

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t array

	// The array type is a cell.
	_ = cell.I(&t)

	// The array type has a literal representation.
	_ = literal.I(&t)

	// The array type is a stringer.
	_ = common.Stringer(&t)
}
