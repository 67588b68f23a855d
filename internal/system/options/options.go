package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	usage       = `uncalc

Usage:
  uncalc -c COMMAND
  uncalc [-i]
  uncalc -h
  uncalc -v

Options:
  -c, --command=COMMAND  Evaluate the specified command and exit.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print uncalc version.

If uncalc's stdin is a TTY and no command was given, line editing,
history, and completion are enabled. Otherwise uncalc reads lines
from stdin and evaluates them in order.
`
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")

	if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive
}
