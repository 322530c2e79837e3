// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for pix.
package parser

import (
	"regexp"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/struct/loc"
	"github.com/michaelmacinnis/pix/internal/common/struct/token"
	"github.com/michaelmacinnis/pix/internal/common/type/array"
	"github.com/michaelmacinnis/pix/internal/common/type/boolean"
	"github.com/michaelmacinnis/pix/internal/common/type/list"
	"github.com/michaelmacinnis/pix/internal/common/type/num"
	"github.com/michaelmacinnis/pix/internal/common/type/pair"
	"github.com/michaelmacinnis/pix/internal/common/type/str"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead  bool                     // Lookahead is valid.
	item   func() *token.T          // Function to call to get another token.
	symbol func(text string) cell.I // Function to call to make a symbol.
	token  *token.T                 // Token lookahead.
}

// New creates a new parser that consumes tokens produced by item.
// Bare words that are not numbers or constants are passed to symbol.
// If symbol is nil, they become unqualified symbols.
func New(item func() *token.T, symbol func(text string) cell.I) *T {
	if symbol == nil {
		symbol = func(text string) cell.I {
			return sym.Parse(text, "")
		}
	}

	return &T{item: item, symbol: symbol}
}

// Form returns the next complete form or nil if there are no more tokens.
// Malformed input causes a panic with a reader failure.
func (p *T) Form() cell.I {
	t := p.peek()
	if t == nil {
		return nil
	}

	return p.form()
}

// Next is like Form but returns failures as errors.
func (p *T) Next() (c cell.I, err error) {
	defer failure.Recover(&err)

	return p.Form(), nil
}

func (p *T) consume() *token.T {
	if !p.ahead {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = false
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if !p.ahead {
		p.token = p.item()
		p.ahead = true
	}

	return p.token
}

// Grammar functions.

func (p *T) atom(t *token.T) cell.I {
	text := t.Value()

	if integer.MatchString(text) {
		return num.New(text)
	}

	if text == "nil" {
		return pair.Null
	}

	if b, ok := boolean.Parse(text); ok {
		return b
	}

	return p.symbol(text)
}

func (p *T) form() cell.I {
	t := p.consume()

	switch t.Class() {
	case token.Atom:
		return p.atom(t)
	case token.String:
		return p.string(t)
	case token.Unterminated:
		panic(failure.At(t.Source(), failure.ErrIncomplete, "unterminated string"))
	case token.ListOpen:
		return list.New(p.sequence(t)...)
	case token.VectorOpen:
		return array.New(p.sequence(t)...)
	case token.Quote:
		return list.New(sym.New("quote"), p.quoted(t))
	}

	panic(failure.At(t.Source(), failure.ErrReader, "unexpected %q", t.Value()))
}

func (p *T) quoted(q *token.T) cell.I {
	t := p.peek()
	if t == nil {
		panic(incomplete(q.Source(), "quote"))
	}

	return p.form()
}

func (p *T) sequence(open *token.T) []cell.I {
	closer, _ := token.Closer(open.Class())

	var s []cell.I

	for {
		t := p.peek()

		switch {
		case t == nil:
			panic(incomplete(open.Source(), "missing %q", rune(closer)))
		case t.Is(closer):
			p.consume()

			return s
		case t.Closes():
			panic(failure.At(t.Source(), failure.ErrReader,
				"unexpected %q, expected %q", t.Value(), rune(closer)))
		}

		s = append(s, p.form())
	}
}

func (p *T) string(t *token.T) cell.I {
	text := t.Value()

	s, err := adapted.ActualBytes(text[1 : len(text)-1])
	if err != nil {
		panic(failure.At(t.Source(), failure.ErrReader, "%s", err.Error()))
	}

	return str.New(s)
}

//nolint:gochecknoglobals
var integer = regexp.MustCompile(`^[+-]?[0-9]+$`)

func incomplete(source *loc.T, format string, args ...interface{}) error {
	return failure.At(source, failure.ErrIncomplete, format, args...)
}
