/*
Uncalc is a calculator for quantities you are not entirely sure about.
It evaluates arithmetic over exact fractions, reals, complex numbers,
and uncertain measurements, promoting between them as required:

    >>> 1/3 + 1/6
    1/2
    >>> (-1)**0.5
    6.123233995736766e-17+1i
    >>> m = unc(9.81, 0.02)
    >>> m * 2
    19.62 ± 0.04

For more detail, see: https://github.com/uncalc/uncalc

Uncalc is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/uncalc/uncalc/internal/engine/session"
	"github.com/uncalc/uncalc/internal/system/options"
	"github.com/uncalc/uncalc/internal/ui"
)

func main() {
	options.Parse()

	s := session.New()

	if options.Interactive() {
		ui.Run(s)

		return
	}

	if command := options.Command(); command != "" {
		os.Exit(batch(s, command))
	}

	status := 0

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		status = batch(s, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	os.Exit(status)
}

func batch(s *session.T, line string) int {
	r := s.Submit(line)
	if r.Kind == session.Failed {
		fmt.Fprintln(os.Stderr, r.Fault.Error())

		return 1
	}

	ui.Report(os.Stdout, r)

	return 0
}
