// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
)

func eq(args []cell.I) cell.I {
	for _, a := range args[1:] {
		if !args[0].Equal(a) {
			return boolean.False
		}
	}

	return boolean.True
}

func ge(args []cell.I) cell.I {
	return ordered(args, func(cmp int) bool { return cmp >= 0 })
}

func gt(args []cell.I) cell.I {
	return ordered(args, func(cmp int) bool { return cmp > 0 })
}

func identical(args []cell.I) cell.I {
	return boolean.Bool(args[0] == args[1])
}

func le(args []cell.I) cell.I {
	return ordered(args, func(cmp int) bool { return cmp <= 0 })
}

func lt(args []cell.I) cell.I {
	return ordered(args, func(cmp int) bool { return cmp < 0 })
}

// ordered returns true if ok holds for every adjacent pair of numbers.
// Every argument is checked to be a number even after the answer is known.
func ordered(args []cell.I, ok func(int) bool) cell.I {
	result := true

	prev := num.To(args[0]).Int()
	for _, a := range args[1:] {
		curr := num.To(a).Int()

		if !ok(prev.Cmp(curr)) {
			result = false
		}

		prev = curr
	}

	return boolean.Bool(result)
}
