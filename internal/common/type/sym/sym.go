// Released under an MIT license. See LICENSE.

// Package sym provides pix's symbol cell type.
//
// Symbols are interned. Two symbols with the same namespace and name are the
// same *T, so symbols can be compared with ==.
package sym

import (
	"strings"
	"sync"

	"github.com/michaelmacinnis/pix/internal/common"
	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is a name, optionally qualified by a namespace.
type T struct {
	ns   string
	name string
}

type sym = T

// New creates (or finds) the unqualified symbol v.
func New(v string) cell.I {
	return symnew("", v)
}

// Qualified creates (or finds) the symbol v in the namespace ns.
func Qualified(ns, v string) *sym {
	return symnew(ns, v)
}

// Parse creates a symbol from text. If text has the form "ns/name" the
// symbol is qualified by ns. Otherwise, unless the name is reserved, it is
// qualified by current.
func Parse(text, current string) *sym {
	if i := strings.IndexByte(text, '/'); i > 0 && i < len(text)-1 {
		return symnew(text[:i], text[i+1:])
	}

	if Reserved(text) {
		current = ""
	}

	return symnew(current, text)
}

// Reserved returns true if v is the name of a special form or the variadic
// marker. Reserved names are never qualified.
func Reserved(v string) bool {
	_, ok := reserved[v]

	return ok
}

// Equal returns true if c is the same symbol as s.
func (s *sym) Equal(c cell.I) bool {
	t, ok := c.(*sym)

	return ok && t == s
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return s.String()
}

// Local returns the name of the sym s without its namespace.
func (s *sym) Local() string {
	return s.name
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Namespace returns the namespace that qualifies the sym s, if any.
func (s *sym) Namespace() string {
	return s.ns
}

// String returns the text of the sym s.
func (s *sym) String() string {
	if s.ns == "" {
		return s.name
	}

	return s.ns + "/" + s.name
}

//nolint:gochecknoglobals
var (
	cache  = map[sym]*sym{}
	cachel = &sync.RWMutex{}

	reserved = map[string]struct{}{
		"&":     {},
		"def":   {},
		"do":    {},
		"fn*":   {},
		"if":    {},
		"let*":  {},
		"loop":  {},
		"quote": {},
		"recur": {},
	}
)

func symnew(ns, v string) *sym {
	k := sym{ns: ns, name: v}

	if p, ok := symtry(k); ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok := cache[k]; ok {
		return p
	}

	p := &k
	cache[k] = p

	return p
}

func symtry(k sym) (p *sym, ok bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	p, ok = cache[k]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
