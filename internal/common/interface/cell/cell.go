// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all pix values.
package cell

// I (cell) is the basic unit of storage in pix.
//
// Name returns the name of the value's kind. It is what the type primitive
// reports and what error messages use to describe a value.
type I interface {
	Equal(c I) bool
	Name() string
}
