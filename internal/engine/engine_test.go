// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/reader"
)

func setup(t *testing.T) (*T, *bytes.Buffer) {
	t.Helper()

	var b bytes.Buffer

	reg := ns.NewRegistry()
	if err := Boot(reg, &b); err != nil {
		t.Fatalf("Unexpected error booting: %v", err)
	}

	return New(reg, "user"), &b
}

func check(t *testing.T, e *T, text string, expected cell.I) {
	t.Helper()

	actual, err := e.EvalString("test", text)
	if err != nil {
		t.Fatalf("Unexpected error evaluating %s: %v", text, err)
	}

	if !expected.Equal(actual) {
		t.Fatalf("Expected %s to be %s; got %s", text, literal.String(expected), literal.String(actual))
	}
}

func TestBootFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pix.engine", "pix.eval")
	defer teardown()

	e, _ := setup(t)

	check(t, e, "(inc 41)", num.Int(42))
	check(t, e, "(dec 43)", num.Int(42))
	check(t, e, "(zero? 0)", boolean.True)
	check(t, e, "(second [1 2 3])", num.Int(2))
	check(t, e, "(reduce + [1 2 3 4])", num.Int(10))
	check(t, e, "(reduce + [])", num.Int(0))
	check(t, e, "(reduce + 10 '(1 2))", num.Int(13))
	check(t, e, "(reverse '(1 2 3))", list.New(num.Int(3), num.Int(2), num.Int(1)))
	check(t, e, "(map inc [1 2 3])", list.New(num.Int(2), num.Int(3), num.Int(4)))
	check(t, e, "(filter zero? [0 1 0])", list.New(num.Int(0), num.Int(0)))
	check(t, e, "(count (range 100000))", num.Int(100000))
	check(t, e, "(range 2 5)", list.New(num.Int(2), num.Int(3), num.Int(4)))
}

func TestEachContinuesAfterErrors(t *testing.T) {
	e, _ := setup(t)

	var values []string

	var errs []error

	e.Each("test", "(+ 1 2) (oops) (inc 41)", func(v cell.I, err error) {
		if err != nil {
			errs = append(errs, err)

			return
		}

		values = append(values, literal.String(v))
	})

	if len(errs) != 1 || !errors.Is(errs[0], failure.ErrUnbound) {
		t.Fatalf("Expected one unbound symbol error; got %v", errs)
	}

	if len(values) != 2 || values[0] != "3" || values[1] != "42" {
		t.Fatalf("Expected [3 42]; got %v", values)
	}

	if c := e.reg.Current(); c != nil {
		t.Fatalf("Expected no current namespace; got %s", c)
	}
}

func TestEmptyInput(t *testing.T) {
	e, _ := setup(t)

	check(t, e, "", pair.Null)
	check(t, e, "; nothing but a comment\n", pair.Null)
}

func TestEvaluate(t *testing.T) {
	e, _ := setup(t)

	c, err := reader.String("test", "(+ 1 2)", nil).Read(false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	v, err := e.Evaluate(c)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !num.Int(3).Equal(v) {
		t.Fatalf("Expected 3; got %s", literal.String(v))
	}
}

func TestLoadStopsAtFirstError(t *testing.T) {
	e, b := setup(t)

	_, err := e.Load("script", strings.NewReader("(println 1)\n(oops)\n(println 2)\n"))
	if !errors.Is(err, failure.ErrUnbound) {
		t.Fatalf("Expected unbound symbol error; got %v", err)
	}

	if b.String() != "1\n" {
		t.Fatalf("Expected only the first form to run; got %q", b.String())
	}

	if c := e.reg.Current(); c != nil {
		t.Fatalf("Expected no current namespace after an error; got %s", c)
	}
}

func TestNamespaces(t *testing.T) {
	e, _ := setup(t)

	other := New(e.reg, "other")

	for _, x := range []*T{e, other} {
		v, err := x.EvalString("test", "(def x "+strconv.Itoa(len(x.label))+")")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if v != cell.I(e.reg.Find(x.label).Owned("x")) {
			t.Fatalf("Expected %s/x; got %s", x.label, literal.String(v))
		}
	}

	check(t, other, "(+ x user/x)", num.Int(9))
	check(t, e, "x", num.Int(4))

	if e.Namespace() != "user" || other.Namespace() != "other" {
		t.Fatalf("Expected user and other; got %s and %s", e.Namespace(), other.Namespace())
	}
}

func TestReaderErrors(t *testing.T) {
	e, _ := setup(t)

	for _, s := range []string{"(+ 1", ")", "[1 2)"} {
		_, err := e.EvalString("test", s)
		if !errors.Is(err, failure.ErrReader) {
			t.Fatalf("Expected reader error for %q; got %v", s, err)
		}
	}
}

func TestSession(t *testing.T) {
	e, b := setup(t)

	check(t, e, `
; A small program.
(def fib
  (fn* fib [n]
    (loop [a 0 b 1 i n]
      (if (zero? i)
        a
        (recur b (+ a b) (dec i))))))

(println "fib 90 =" (fib 90))

(fib 10)
`, num.Int(55))

	if e := "fib 90 = 2880067194370816120\n"; b.String() != e {
		t.Fatalf("Expected %q; got %q", e, b.String())
	}
}
