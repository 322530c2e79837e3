// Released under an MIT license. See LICENSE.

// Package options parses the pix command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by pix -v.
const Version = "pix 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	expression  string
	interactive bool
	namespace   string
	script      string
	trace       string
	usage       = `pix

Usage:
  pix [-t LEVEL] [-n NS] SCRIPT [ARGUMENTS...]
  pix [-t LEVEL] [-n NS] -e EXPR
  pix [-t LEVEL] [-n NS] [-i]
  pix -h
  pix -v

Arguments:
  ARGUMENTS  Bound, as a list of strings, to *command-line-args*.
  SCRIPT     Path to pix script.

Options:
  -e, --eval=EXPR        Evaluate EXPR and print the result.
  -i, --interactive      Invert interactive mode.
  -n, --namespace=NS     Namespace to evaluate code in [default: user].
  -t, --trace=LEVEL      Trace level: error, info or debug [default: error].
  -h, --help             Display this help.
  -v, --version          Print pix version.

If pix's stdin is a TTY, and pix was invoked with neither a script nor an
expression, interactive mode is enabled. Otherwise, it is disabled.
`
)

// Args returns the arguments that follow the script name.
func Args() []string {
	return args
}

// Expression returns the expression passed with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if pix should prompt for input.
func Interactive() bool {
	return interactive
}

// Namespace returns the name of the namespace to evaluate code in.
func Namespace() string {
	return namespace
}

// Parse parses the command line. It exits after printing help or the
// version. A malformed command line prints usage and exits too, but any
// other parse error is returned.
func Parse() error {
	return parse(os.Args[1:], docopt.PrintHelpAndExit, isatty.IsTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Trace returns the trace level.
func Trace() string {
	return trace
}

func parse(argv []string, help func(error, string), tty bool) error {
	p := &docopt.Parser{HelpHandler: help}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	expression, _ = opts.String("--eval")
	namespace, _ = opts.String("--namespace")
	script, _ = opts.String("SCRIPT")
	trace, _ = opts.String("--trace")

	args, _ = opts["ARGUMENTS"].([]string)

	interactive = script == "" && expression == "" && tty

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}
