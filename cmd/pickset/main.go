// Command pickset selects a problem set whose points reach a target while
// keeping total difficulty, set size, topic preference and statement length as
// favourable as possible.
//
//	$ pickset solve < case.in
//	$ pickset validate -in case.in
//	$ pickset gen -seed 7 -count 10 -dir data -answers
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func root() *commander.Command {
	return &commander.Command{
		UsageLine: "pickset <command> [options]",
		Short:     "best-first problem-set selection",
		Subcommands: []*commander.Command{
			solveCmd(),
			validateCmd(),
			genCmd(),
		},
		Flag: *flag.NewFlagSet("pickset", flag.ExitOnError),
	}
}

func main() {
	if err := root().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "pickset: %v\n", err)
		os.Exit(1)
	}
}
