// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the uncalc session.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/peterh/liner"

	"github.com/uncalc/uncalc/internal/engine/session"
	"github.com/uncalc/uncalc/internal/system/history"
)

const prompt = ">>> "

// Run launches the UI, which submits lines to the session until the
// operator leaves with ctrl-d.
func Run(s *session.T) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		start := pos
		for start > 0 && word(line[start-1]) {
			start--
		}

		return head[:start], s.Complete(head[start:]), tail
	})

	_ = history.Load(func(r io.Reader) (int, error) {
		return cli.ReadHistory(r)
	})

	for {
		line, err := cli.Prompt(prompt)

		switch err {
		case nil:
			// Below.
		case liner.ErrPromptAborted:
			// Ctrl-c discards the pending line.
			continue
		default:
			_ = history.Save(func(w io.Writer) (int, error) {
				return cli.WriteHistory(w)
			})

			fmt.Println()

			return
		}

		if line != "" {
			cli.AppendHistory(line)
		}

		Report(os.Stdout, s.Submit(line))
	}
}

// Report writes the outcome of a submitted line to w. Nothing is
// written for a successful assignment or a blank line.
func Report(w io.Writer, r Result) {
	switch r.Kind {
	case session.Displayed:
		if r.Text != "" {
			fmt.Fprintln(w, r.Text)
		}
	case session.Failed:
		fmt.Fprintln(w, r.Fault.Error())
	}
}

type Result = session.Result

func word(b byte) bool {
	return b == '_' ||
		('0' <= b && b <= '9') ||
		('A' <= b && b <= 'Z') ||
		('a' <= b && b <= 'z')
}
