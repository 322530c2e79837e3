// Released under an MIT license. See LICENSE.

// Package integer converts a pix cell to an int value, if possible.
package integer

import (
	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
)

// Value returns the int value for a cell, if possible.
func Value(c cell.I) int {
	bi := num.To(c).Int()
	if !bi.IsInt64() {
		failure.Raise(failure.ErrType, "%s is too large to be used as an index", bi)
	}

	i := bi.Int64()
	if int64(int(i)) != i {
		failure.Raise(failure.ErrType, "%d is too large to be used as an index", i)
	}

	return int(i)
}
