// Released under an MIT license. See LICENSE.

package frame

import (
	"testing"

	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
)

func TestGet(t *testing.T) {
	outer := New(nil, 1)
	outer.Set(0, num.Int(1))

	inner := New(outer, 2)
	inner.Set(1, num.Int(2))

	if !num.Int(1).Equal(inner.Get(1, 0)) {
		t.Fatalf("Expected 1 from the enclosing frame")
	}

	if !num.Int(2).Equal(inner.Get(0, 1)) {
		t.Fatalf("Expected 2 from the innermost frame")
	}

	if inner.Previous() != outer || inner.Size() != 2 {
		t.Fatalf("Unexpected frame shape")
	}
}

func TestRebind(t *testing.T) {
	f := New(nil, 3)
	f.Set(0, num.Int(0))

	f.Rebind(1, []cell.I{num.Int(1), num.Int(2)})

	for i := 0; i < 3; i++ {
		if !num.Int(int64(i)).Equal(f.Get(0, i)) {
			t.Fatalf("Expected slot %d to hold %d", i, i)
		}
	}
}
