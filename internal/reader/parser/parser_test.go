// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/type/array"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
	"github.com/michaelmacinnis/pix/internal/reader/lexer"
)

func parse(t *testing.T, s string) []cell.I {
	l := lexer.New("test")

	l.Scan(s)
	l.Close()

	p := New(l.Token, nil)

	var forms []cell.I

	for {
		c, err := p.Next()
		if err != nil {
			t.Fatalf("Unexpected error parsing %q: %v", s, err)
		}

		if c == nil {
			return forms
		}

		forms = append(forms, c)
	}
}

func problem(s string) error {
	l := lexer.New("test")

	l.Scan(s)
	l.Close()

	p := New(l.Token, nil)

	for {
		c, err := p.Next()
		if err != nil || c == nil {
			return err
		}
	}
}

func check(t *testing.T, s string) {
	p := ""
	for _, c := range parse(t, s) {
		p += literal.String(c) + "\n"
	}

	r := ""
	for _, c := range parse(t, p) {
		r += literal.String(c) + "\n"
	}

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func TestAtoms(t *testing.T) {
	forms := parse(t, "42 -7 +3 nil true false foo \"a\\tb\"")

	expected := []cell.I{
		num.Int(42),
		num.Int(-7),
		num.Int(3),
		pair.Null,
		boolean.True,
		boolean.False,
		sym.New("foo"),
		str.New("a\tb"),
	}

	if len(forms) != len(expected) {
		t.Fatalf("Expected %d forms; got %d", len(expected), len(forms))
	}

	for i, e := range expected {
		if !e.Equal(forms[i]) {
			t.Fatalf("Expected %v; got %v", literal.String(e), literal.String(forms[i]))
		}
	}
}

func TestCommentsAndCommas(t *testing.T) {
	forms := parse(t, "; leading comment\n[1, 2 ,3] ; trailing\n")

	if len(forms) != 1 {
		t.Fatalf("Expected 1 form; got %d", len(forms))
	}

	if !array.New(num.Int(1), num.Int(2), num.Int(3)).Equal(forms[0]) {
		t.Fatalf("Expected [1 2 3]; got %v", literal.String(forms[0]))
	}
}

func TestNested(t *testing.T) {
	check(t, "(fn* sum ([] 0) ([x & more] (+ x (sum more))))\n")
}

func TestQuote(t *testing.T) {
	forms := parse(t, "'(1 2)")

	e := list.New(sym.New("quote"), list.New(num.Int(1), num.Int(2)))
	if !e.Equal(forms[0]) {
		t.Fatalf("Expected %v; got %v", literal.String(e), literal.String(forms[0]))
	}
}

func TestQualifiedSymbol(t *testing.T) {
	forms := parse(t, "pix.core/count")

	s := sym.To(forms[0])
	if s.Namespace() != "pix.core" || s.Local() != "count" {
		t.Fatalf("Expected pix.core/count; got %v", s)
	}
}

func TestRoundTrip(t *testing.T) {
	check(t, "(loop [x 0] (if (= x 10) x (recur (+ x 1))))\n")
	check(t, "[1 [2 3] \"four\" (five)]\n")
	check(t, "'a '(b c)\n")
}

func TestSymbolHook(t *testing.T) {
	l := lexer.New("test")

	l.Scan("(def x 1)")
	l.Close()

	c := New(l.Token, func(text string) cell.I {
		return sym.Parse(text, "user")
	}).Form()

	if pair.Car(c) != sym.New("def") {
		t.Fatalf("Expected def to stay unqualified; got %v", pair.Car(c))
	}

	if pair.Cadr(c) != sym.Qualified("user", "x") {
		t.Fatalf("Expected user/x; got %v", pair.Cadr(c))
	}
}

func TestIncomplete(t *testing.T) {
	for _, s := range []string{"(1 2", "[1", "'", "\"abc", "(a (b)"} {
		err := problem(s)
		if !errors.Is(err, failure.ErrIncomplete) {
			t.Fatalf("Expected incomplete input error for %q; got %v", s, err)
		}
	}
}

func TestUnbalanced(t *testing.T) {
	for _, s := range []string{")", "(1 ]", "]"} {
		err := problem(s)
		if !errors.Is(err, failure.ErrReader) || errors.Is(err, failure.ErrIncomplete) {
			t.Fatalf("Expected reader error for %q; got %v", s, err)
		}
	}
}
