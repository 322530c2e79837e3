// Released under an MIT license. See LICENSE.

// Package ui provides an interactive command-line interface for pix.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/pix/internal/common/interface/cell"
	"github.com/michaelmacinnis/pix/internal/common/interface/literal"
	"github.com/michaelmacinnis/pix/internal/reader"
	"github.com/michaelmacinnis/pix/internal/system/history"
)

// Evaluator is the interface for things that evaluate complete input.
// Each passes the value or error of every form in text to yield.
type Evaluator interface {
	Each(label, text string, yield func(cell.I, error))
	Namespace() string
}

// Prompter is the part of liner.State used to read a line.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Run reads input from the terminal until end of input, passing each
// complete chunk to e.
func Run(e Evaluator) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	prompter := promptFunc(func(p string) (string, error) {
		if err := uncooked.ApplyMode(); err != nil {
			return "", err
		}

		line, err := cli.Prompt(p)

		if merr := cooked.ApplyMode(); merr != nil {
			return "", merr
		}

		if err == nil && strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		return line, err
	})

	Loop(e, prompter, os.Stdout, os.Stderr)

	return history.Save(cli.WriteHistory)
}

// Loop prompts for lines until input is complete and then evaluates it
// form by form, writing each result to w and each error to ew. An aborted prompt discards any
// partial input. Loop returns at end of input.
func Loop(e Evaluator, p Prompter, w, ew io.Writer) {
	var text strings.Builder

	for {
		prompt := e.Namespace() + "=> "
		if text.Len() > 0 {
			prompt = strings.Repeat(" ", len(prompt)-3) + "-> "
		}

		line, err := p.Prompt(prompt)

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			text.Reset()

			continue
		default:
			if err != io.EOF {
				fmt.Fprintln(ew, err)
			}

			fmt.Fprintln(w)

			return
		}

		text.WriteString(line)
		text.WriteString("\n")

		if !reader.Complete(text.String()) {
			continue
		}

		s := text.String()
		text.Reset()

		if strings.TrimSpace(s) == "" {
			continue
		}

		e.Each("repl", s, func(v cell.I, err error) {
			if err != nil {
				fmt.Fprintln(ew, err)

				return
			}

			fmt.Fprintln(w, literal.String(v))
		})
	}
}

type promptFunc func(string) (string, error)

func (f promptFunc) Prompt(p string) (string, error) {
	return f(p)
}
