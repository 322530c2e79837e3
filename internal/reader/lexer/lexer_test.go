// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/pix/internal/common/struct/loc"
	"github.com/michaelmacinnis/pix/internal/common/struct/token"
)

func TestAtomsAndPunctuation(t *testing.T) {
	h := setup(t, "AtomsAndPunctuation")

	h.scan("(+ 1 [x])\n",
		h.literal("("),
		h.atom("+"),
		h.space(1),
		h.atom("1"),
		h.space(1),
		h.literal("["),
		h.atom("x"),
		h.literal("]"),
		h.literal(")"),
		nil,
	)
}

func TestClose(t *testing.T) {
	h := setup(t, "Close")

	h.scan("abc",
		nil,
	)

	h.lexer.Close()

	h.expect(
		h.atom("abc"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("; ignored (\nx\n",
		h.newline(),
		h.atom("x"),
		nil,
	)
}

func TestContinuation(t *testing.T) {
	h := setup(t, "Continuation")

	h.scan("foo",
		nil,
	)

	h.scan("bar baz\n",
		h.atom("foobar"),
		h.space(1),
		h.atom("baz"),
		nil,
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("'x\n",
		h.literal("'"),
		h.atom("x"),
		nil,
	)
}

func TestString(t *testing.T) {
	h := setup(t, "String")

	h.scan(`"a \" b" c`+"\n",
		h.other(token.String, `"a \" b"`),
		h.space(1),
		h.atom("c"),
		nil,
	)
}

func TestUnterminated(t *testing.T) {
	h := setup(t, "Unterminated")

	h.scan(`"abc`,
		nil,
	)

	h.lexer.Close()

	h.expect(
		h.other(token.Unterminated, `"abc`),
		nil,
	)
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

var skip = token.New(token.Error, "", loc.T{ //nolint:gochecknoglobals
	Char: 0,
	Line: 0,
	Name: "",
})

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Class() != e.Class() || a.Value() != e.Value() || *a.Source() != *e.Source():
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) atom(s string) *token.T {
	return h.other(token.Atom, s)
}

func (h *harness) literal(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) newline() *token.T {
	h.index = 1
	h.source.Line++

	return skip
}

func (h *harness) other(class token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(class, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}
