// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/pix/internal/common/type/ns"
	"github.com/michaelmacinnis/pix/internal/engine"
)

type script struct {
	prompts []string
	replies []interface{}
}

func (s *script) Prompt(p string) (string, error) {
	s.prompts = append(s.prompts, p)

	if len(s.replies) == 0 {
		return "", io.EOF
	}

	r := s.replies[0]
	s.replies = s.replies[1:]

	if err, ok := r.(error); ok {
		return "", err
	}

	return r.(string), nil
}

func run(t *testing.T, replies ...interface{}) (*script, string, string) {
	t.Helper()

	var out, errs bytes.Buffer

	reg := ns.NewRegistry()
	if err := engine.Boot(reg, &out); err != nil {
		t.Fatalf("Unexpected error booting: %v", err)
	}

	s := &script{replies: replies}

	Loop(engine.New(reg, "user"), s, &out, &errs)

	return s, out.String(), errs.String()
}

func TestAbort(t *testing.T) {
	s, out, errs := run(t, "(+ 1", liner.ErrPromptAborted, "(+ 2 3)")

	if out != "5\n\n" {
		t.Fatalf("Expected partial input to be discarded; got %q", out)
	}

	if errs != "" {
		t.Fatalf("Expected no errors; got %q", errs)
	}

	if s.prompts[2] != "user=> " {
		t.Fatalf("Expected a fresh prompt after abort; got %q", s.prompts[2])
	}
}

func TestContinuation(t *testing.T) {
	s, out, _ := run(t, "(def f", "  (fn* [x] (* x x)))", "(f 7)")

	if !strings.HasSuffix(out, "49\n\n") {
		t.Fatalf("Expected 49; got %q", out)
	}

	expected := []string{"user=> ", "    -> ", "user=> ", "user=> "}
	for i, p := range expected {
		if s.prompts[i] != p {
			t.Fatalf("Expected prompt %d to be %q; got %q", i, p, s.prompts[i])
		}
	}
}

func TestErrorsContinue(t *testing.T) {
	_, out, errs := run(t, "(undefined 1)", "  ", `(str "a" 1)`)

	if !strings.Contains(errs, "unbound symbol") {
		t.Fatalf("Expected an unbound symbol error; got %q", errs)
	}

	if out != "\"a1\"\n\n" {
		t.Fatalf("Expected \"a1\"; got %q", out)
	}
}

func TestEveryFormOnALine(t *testing.T) {
	_, out, errs := run(t, "(undefined 1) (+ 1 2)", "(def a 1) (def b 2) a")

	if !strings.Contains(errs, "unbound symbol") {
		t.Fatalf("Expected an unbound symbol error; got %q", errs)
	}

	if e := "3\n#'user/a\n#'user/b\n1\n\n"; out != e {
		t.Fatalf("Expected %q; got %q", e, out)
	}
}

func TestReaderErrorStopsChunk(t *testing.T) {
	_, out, errs := run(t, "1 ] 2")

	if !strings.Contains(errs, "reader error") {
		t.Fatalf("Expected a reader error; got %q", errs)
	}

	if out != "1\n\n" {
		t.Fatalf("Expected only 1; got %q", out)
	}
}
