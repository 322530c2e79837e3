// Released under an MIT license. See LICENSE.

package sym

import (
	"testing"
)

func TestInterned(t *testing.T) {
	if New("x") != New("x") {
		t.Fatalf("Expected symbols with the same name to be identical")
	}

	if Qualified("user", "x") == New("x") {
		t.Fatalf("Expected qualified and unqualified symbols to differ")
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		text      string
		current   string
		namespace string
		local     string
	}{
		{"x", "user", "user", "x"},
		{"x", "", "", "x"},
		{"pix.core/+", "user", "pix.core", "+"},
		{"/", "user", "user", "/"},
		{"a/", "user", "user", "a/"},
		{"recur", "user", "", "recur"},
		{"&", "user", "", "&"},
		{"fn*", "user", "", "fn*"},
	} {
		s := Parse(tc.text, tc.current)

		if s.Namespace() != tc.namespace || s.Local() != tc.local {
			t.Fatalf("Expected %q in %q to be %s/%s; got %s",
				tc.text, tc.current, tc.namespace, tc.local, s)
		}
	}
}

func TestString(t *testing.T) {
	if s := Qualified("user", "x").String(); s != "user/x" {
		t.Fatalf("Expected user/x; got %s", s)
	}

	if s := To(New("x")).String(); s != "x" {
		t.Fatalf("Expected x; got %s", s)
	}
}
