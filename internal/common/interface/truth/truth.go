// Released under an MIT license. See LICENSE.

// Package truth decides which pix values count as false.
package truth

import (
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
)

// I (truth) is implemented by the values that can be false: false and nil.
type I interface {
	Bool() bool
}

// Falsy returns true if c is false or nil.
func Falsy(c cell.I) bool {
	return !Value(c)
}

// Value returns the truth value of c. Values that do not implement I,
// including 0, "" and empty collections, are true.
func Value(c cell.I) bool {
	if b, ok := c.(I); ok {
		return b.Bool()
	}

	return true
}
