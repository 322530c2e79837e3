// Released under an MIT license. See LICENSE.

// Package reference defines the interface for pix's mutable bindings.
package reference

import (
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
)

// I (reference) is a named binding that may or may not hold a value.
// Get returns nil for an unbound reference. Deref panics instead.
type I interface {
	Bound() bool
	Deref() cell.I
	Get() cell.I
	Set(cell.I)
}
