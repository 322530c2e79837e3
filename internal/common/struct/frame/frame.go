// Released under an MIT license. See LICENSE.

// Package frame provides pix's lexical frame type.
//
// A frame holds the values bound by one function invocation, let* or loop.
// Frames are chained to the frame that was current when the enclosing
// closure was created. Names are resolved to a (depth, index) pair when code
// is compiled, so a frame only stores values.
package frame

import (
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
)

// T (frame) is an activation record.
type T struct {
	previous *frame
	slots    []cell.I
}

type frame = T

// New creates a new frame with room for n values and previous frame p.
func New(p *frame, n int) *frame {
	return &frame{previous: p, slots: make([]cell.I, n)}
}

// Get returns the value in slot i of the frame depth frames up from f.
func (f *frame) Get(depth, i int) cell.I {
	for ; depth > 0; depth-- {
		f = f.previous
	}

	return f.slots[i]
}

// Previous returns the previous frame.
func (f *frame) Previous() *frame {
	return f.previous
}

// Rebind replaces the values in f starting at slot offset.
func (f *frame) Rebind(offset int, values []cell.I) {
	copy(f.slots[offset:], values)
}

// Set stores the value c in slot i of the frame f.
func (f *frame) Set(i int, c cell.I) {
	f.slots[i] = c
}

// Size returns the number of slots in the frame f.
func (f *frame) Size() int {
	return len(f.slots)
}
