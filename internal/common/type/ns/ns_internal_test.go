// Released under an MIT license. See LICENSE.

package ns

import (
	"testing"

	"github.com/michaelmacinnis/pix/internal/common/type/num"
)

func TestEnterRestores(t *testing.T) {
	r := NewRegistry()

	if r.Current() != nil || r.AutoCreate() {
		t.Fatalf("Expected no current namespace")
	}

	outer := r.Enter("user", true)

	inner := r.Enter("other", false)

	if r.Current().Label() != "other" || r.AutoCreate() {
		t.Fatalf("Expected other without auto-create; got %s", r.Current())
	}

	inner()

	if r.Current().Label() != "user" || !r.AutoCreate() {
		t.Fatalf("Expected user with auto-create; got %s", r.Current())
	}

	outer()

	if r.Current() != nil {
		t.Fatalf("Expected no current namespace; got %s", r.Current())
	}
}

func TestInternIsStable(t *testing.T) {
	r := NewRegistry()

	n := r.Intern("user")
	if r.Intern("user") != n || r.Find("user") != n {
		t.Fatalf("Expected one namespace named user")
	}

	v := n.Intern("x")
	if n.Intern("x") != v {
		t.Fatalf("Expected one variable named user/x")
	}

	if v.Namespace() != "user" || v.Local() != "x" {
		t.Fatalf("Expected user/x; got %s", v)
	}
}

func TestLookupRefersCore(t *testing.T) {
	r := NewRegistry()

	core := r.Find(Core).Intern("x")
	core.Set(num.Int(1))

	user := r.Intern("user")

	if user.Lookup("x") != core {
		t.Fatalf("Expected user to see %s/x", Core)
	}

	if user.Owned("x") != nil {
		t.Fatalf("Expected user to own no variables")
	}

	own := user.Intern("x")

	if user.Lookup("x") != own {
		t.Fatalf("Expected user/x to shadow %s/x", Core)
	}

	if r.Find("missing") != nil {
		t.Fatalf("Expected Find not to create namespaces")
	}

	if names := user.Names(); len(names) != 1 || names[0] != "x" {
		t.Fatalf("Expected [x]; got %v", names)
	}
}
