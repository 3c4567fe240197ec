package main

import (
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
)

func validateCmd() *commander.Command {
	var in string
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			var r io.Reader = os.Stdin
			if in != "" {
				f, err := os.Open(in)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			return format.Validate(r)
		},
		UsageLine: "validate [-in file]",
		Short:     "checks that an instance meets the judge's input limits",
		Long: `
validate applies the strict judge rules: single spaces, no leading zeros,
ids 1..N, difficulty 1..10, length 1..10000, points at most the target, and
topics drawn from the preference list. The first violation is reported with its
line number and the command exits with status 1.

	$ pickset validate -in case.in
`,
		Flag: *flag.NewFlagSet("validate", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&in, "in", "", "input file (default stdin)")

	return cmd
}
