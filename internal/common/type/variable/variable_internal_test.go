// Released under an MIT license. See LICENSE.

package variable

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
)

func TestDerefUnbound(t *testing.T) {
	v := New("user", "x")

	err := func() (err error) {
		defer failure.Recover(&err)

		v.Deref()

		return nil
	}()

	if !errors.Is(err, failure.ErrUnbound) {
		t.Fatalf("Expected unbound error; got %v", err)
	}
}

func TestSet(t *testing.T) {
	v := New("user", "x")

	if v.Bound() {
		t.Fatalf("Expected a new variable to be unbound")
	}

	v.Set(num.Int(1))
	v.Set(num.Int(2))

	if !v.Bound() || !num.Int(2).Equal(v.Deref()) {
		t.Fatalf("Expected user/x to be 2")
	}

	if !v.Equal(v) || v.Equal(New("user", "x")) {
		t.Fatalf("Expected variables to be equal only to themselves")
	}
}
