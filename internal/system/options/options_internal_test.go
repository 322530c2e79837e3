// Released under an MIT license. See LICENSE.

package options

import (
	"testing"

	"github.com/docopt/docopt-go"
)

func TestDefaults(t *testing.T) {
	if err := parse([]string{}, docopt.NoHelpHandler, true); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if Namespace() != "user" {
		t.Fatalf("Expected namespace user; got %s", Namespace())
	}

	if Trace() != "error" {
		t.Fatalf("Expected trace level error; got %s", Trace())
	}

	if !Interactive() {
		t.Fatalf("Expected interactive mode on a terminal")
	}
}

func TestExpression(t *testing.T) {
	err := parse([]string{"-n", "scratch", "-e", "(+ 1 2)"}, docopt.NoHelpHandler, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if Expression() != "(+ 1 2)" {
		t.Fatalf("Expected (+ 1 2); got %s", Expression())
	}

	if Namespace() != "scratch" {
		t.Fatalf("Expected namespace scratch; got %s", Namespace())
	}

	if Interactive() {
		t.Fatalf("Expected interactive mode to be off")
	}
}

func TestInvertInteractive(t *testing.T) {
	if err := parse([]string{"-i"}, docopt.NoHelpHandler, false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !Interactive() {
		t.Fatalf("Expected -i to enable interactive mode without a terminal")
	}
}

func TestScript(t *testing.T) {
	err := parse([]string{"--trace=debug", "main.pix", "a", "b"}, docopt.NoHelpHandler, true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if Script() != "main.pix" {
		t.Fatalf("Expected main.pix; got %s", Script())
	}

	if a := Args(); len(a) != 2 || a[0] != "a" || a[1] != "b" {
		t.Fatalf("Expected [a b]; got %v", a)
	}

	if Trace() != "debug" {
		t.Fatalf("Expected trace level debug; got %s", Trace())
	}

	if Interactive() {
		t.Fatalf("Expected interactive mode to be off")
	}
}

func TestUsageError(t *testing.T) {
	if err := parse([]string{"-e"}, docopt.NoHelpHandler, true); err == nil {
		t.Fatalf("Expected an error for -e without an expression")
	}
}
