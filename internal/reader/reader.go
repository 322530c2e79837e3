// Released under an MIT license. See LICENSE.

// Package reader turns text into pix forms.
//
// A reader pulls text from its source a line at a time, only as needed to
// complete the next form, so it can be called repeatedly to read the
// successive top-level forms of a file or an interactive session.
package reader

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/michaelmacinnis/pix/internal/common/failure"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/common/struct/token"
	"github.com/michaelmacinnis/pix/internal/common/type/ns"
	"github.com/michaelmacinnis/pix/internal/common/type/sym"
	"github.com/michaelmacinnis/pix/internal/reader/lexer"
	"github.com/michaelmacinnis/pix/internal/reader/parser"
)

// EOF is returned by an end-of-input sensitive Read when the source is
// exhausted.
var EOF cell.I = &marker{} //nolint:gochecknoglobals

// T (reader) encapsulates the pix lexer and parser.
type T struct {
	label  string
	lexer  *lexer.T
	parser *parser.T
	reg    *ns.Registry
	src    *bufio.Reader
}

type reader = T

// New creates a new reader for src. Label can be a file name or other
// identifier. Bare symbols are qualified by the current namespace in reg at
// the time they are read. If reg is nil, symbols are not qualified.
func New(label string, src io.Reader, reg *ns.Registry) *T {
	r := &T{
		label: label,
		lexer: lexer.New(label),
		reg:   reg,
		src:   bufio.NewReader(src),
	}

	r.parser = parser.New(r.token, r.symbol)

	return r
}

// Complete returns false if text ends in the middle of a form.
// Any other problem with text is left for Read to report.
func Complete(text string) bool {
	l := lexer.New("complete")

	l.Scan(text)
	l.Close()

	p := parser.New(l.Token, nil)

	for {
		c, err := p.Next()
		if err != nil {
			return !errors.Is(err, failure.ErrIncomplete)
		}

		if c == nil {
			return true
		}
	}
}

// Read returns the next form. When the source is exhausted, Read returns
// EOF if eofSensitive is true. Otherwise, it fails with a reader error.
func (r *reader) Read(eofSensitive bool) (c cell.I, err error) {
	defer failure.Recover(&err)

	c = r.parser.Form()
	if c != nil {
		trace().Debugf("%s: read %s", r.label, literal.String(c))

		return c, nil
	}

	if eofSensitive {
		return EOF, nil
	}

	return nil, failure.New(failure.ErrReader, "%s: unexpected end of input", r.label)
}

func (r *reader) symbol(text string) cell.I {
	current := ""

	if r.reg != nil {
		if n := r.reg.Current(); n != nil {
			current = n.Label()
		}
	}

	return sym.Parse(text, current)
}

func (r *reader) token() *token.T {
	for {
		if t := r.lexer.Token(); t != nil {
			return t
		}

		if r.src == nil {
			return nil
		}

		line, err := r.src.ReadString('\n')
		if line != "" {
			r.lexer.Scan(line)
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				failure.Raise(failure.ErrReader, "%s: %s", r.label, err.Error())
			}

			r.lexer.Close()
			r.src = nil
		}
	}
}

// String returns a reader for the text s.
func String(label, s string, reg *ns.Registry) *T {
	return New(label, strings.NewReader(s), reg)
}

type marker struct{}

func (m *marker) Equal(c cell.I) bool {
	return c == cell.I(m)
}

func (m *marker) Name() string {
	return "eof"
}

func trace() tracing.Trace {
	return tracing.Select("pix.reader")
}
