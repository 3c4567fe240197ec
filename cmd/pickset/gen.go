package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/CamJeff/COMP-321-Problem-Development/format"
	"github.com/CamJeff/COMP-321-Problem-Development/gen"
	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

type genFlags struct {
	seed    int64
	count   int
	dir     string
	answers bool
	verbose bool
}

func genCmd() *commander.Command {
	var f genFlags
	cmd := &commander.Command{
		Run: func(_ *commander.Command, _ []string) error {
			return runGen(f)
		},
		UsageLine: "gen [-seed s] [-count k] [-dir d] [-answers] [-v]",
		Short:     "writes the sample, random and edge cases",
		Long: `
gen writes sample-N.in for each published sample, random-NN.in for each
random case and secret-11.in to secret-20.in for the hand-written edge cases
into the target directory. With -answers each .in file gets a
matching .ans file; random answers are computed with the default options.

	$ pickset gen -seed 7 -count 10 -dir data -answers
`,
		Flag: *flag.NewFlagSet("gen", flag.ExitOnError),
	}
	cmd.Flag.Int64Var(&f.seed, "seed", 0, "base seed (0 = built-in default)")
	cmd.Flag.IntVar(&f.count, "count", 10, "number of random cases")
	cmd.Flag.StringVar(&f.dir, "dir", ".", "output directory")
	cmd.Flag.BoolVar(&f.answers, "answers", false, "also write .ans files")
	cmd.Flag.BoolVar(&f.verbose, "v", false, "debug logging on stderr")

	return cmd
}

func runGen(f genFlags) error {
	log, err := newLogger(f.verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	if f.count < 0 {
		return fmt.Errorf("%w: -count=%d", errBadFlag, f.count)
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}

	for _, s := range gen.Samples() {
		if err := writeCase(f.dir, s.Name, s.Instance, s.Answer, f.answers); err != nil {
			return err
		}
		log.Debug("sample written", zap.String("name", s.Name))
	}

	cfg := gen.DefaultConfig()
	for i := 1; i <= f.count; i++ {
		name := fmt.Sprintf("random-%02d", i)
		inst, err := gen.Random(gen.DeriveSeed(f.seed, uint64(i)), cfg)
		if err != nil {
			return err
		}

		answer, err := solveCase(log, name, inst, f.answers)
		if err != nil {
			return err
		}
		if err := writeCase(f.dir, name, inst, answer, f.answers); err != nil {
			return err
		}
	}

	for _, c := range gen.EdgeCases() {
		answer, err := solveCase(log, c.Name, c.Instance, f.answers)
		if err != nil {
			return err
		}
		if err := writeCase(f.dir, c.Name, c.Instance, answer, f.answers); err != nil {
			return err
		}
	}

	return nil
}

// solveCase returns the answer line for inst, or "" when answers are off.
func solveCase(log *zap.Logger, name string, inst format.Instance, answers bool) (string, error) {
	if !answers {
		return "", nil
	}
	res, err := search.Search(inst.Target, inst.Problems, inst.Topics, search.WithLogger(log))
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	answer := format.Answer(res, format.DefaultSentinel)
	log.Debug("case solved",
		zap.String("name", name),
		zap.String("answer", answer),
		zap.Int("popped", res.Stats.Popped),
	)

	return answer, nil
}

// writeCase writes dir/name.in and, when withAnswer is set, dir/name.ans.
func writeCase(dir, name string, inst format.Instance, answer string, withAnswer bool) error {
	if err := writeFile(filepath.Join(dir, name+".in"), func(w *bufio.Writer) error {
		return format.WriteText(w, inst)
	}); err != nil {
		return err
	}
	if !withAnswer {
		return nil
	}

	return writeFile(filepath.Join(dir, name+".ans"), func(w *bufio.Writer) error {
		_, err := w.WriteString(answer + "\n")
		return err
	})
}

func writeFile(path string, fill func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
