package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

var errBadFlag = errors.New("pickset: bad flag value")

type solveFlags struct {
	in        string
	json      bool
	maxCount  int
	dominance string
	none      string
	verbose   bool
}

func solveCmd() *commander.Command {
	var f solveFlags
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return runSolve(f)
		},
		UsageLine: "solve [-in file] [-json] [-max n] [-dominance reach|shape|off] [-none s] [-v]",
		Short:     "reads an instance and prints the chosen problem ids",
		Long: `
solve reads one instance (stdin by default) and prints the ids of the chosen
problems in ascending order on a single line, or the no-solution marker.

	$ pickset solve -in case.in
	$ pickset solve -json -max 12 < case.json
`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&f.in, "in", "", "input file (default stdin)")
	cmd.Flag.BoolVar(&f.json, "json", false, "input is JSON instead of the text format")
	cmd.Flag.IntVar(&f.maxCount, "max", 0, "maximum number of problems in the set (0 = unlimited)")
	cmd.Flag.StringVar(&f.dominance, "dominance", "reach", "pruning policy: reach, shape or off")
	cmd.Flag.StringVar(&f.none, "none", format.DefaultSentinel, "line printed when no set reaches the target")
	cmd.Flag.BoolVar(&f.verbose, "v", false, "debug logging on stderr")

	return cmd
}

func runSolve(f solveFlags) error {
	log, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if f.maxCount < 0 {
		return fmt.Errorf("%w: -max=%d", errBadFlag, f.maxCount)
	}
	policy, err := search.ParseDominance(f.dominance)
	if err != nil {
		return err
	}

	inst, err := readInstance(f.in, f.json)
	if err != nil {
		log.Debug("cannot read instance", zap.String("in", f.in), zap.Error(err))
		return err
	}
	log.Debug("instance loaded",
		zap.Stringer("target", inst.Target),
		zap.Int("problems", len(inst.Problems)),
		zap.Strings("topics", inst.Topics),
	)

	res, err := search.Search(inst.Target, inst.Problems, inst.Topics,
		search.WithMaxCount(f.maxCount),
		search.WithDominance(policy),
		search.WithLogger(log),
	)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	if err := format.WriteResult(out, res, f.none); err != nil {
		return err
	}

	return out.Flush()
}

// readInstance loads path (stdin when empty) in the text or JSON format.
func readInstance(path string, asJSON bool) (format.Instance, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return format.Instance{}, err
		}
		defer f.Close()
		r = f
	}

	if !asJSON {
		return format.ReadText(r)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return format.Instance{}, err
	}

	return format.ReadJSON(data)
}
