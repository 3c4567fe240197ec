// Package pickset chooses contest problem sets.
//
// Given a target point total and a pool of candidate problems, pickset finds the
// subset whose points reach the target while minimising, in order:
//
//  1. total difficulty,
//  2. number of problems,
//  3. topic dissatisfaction (the negated sum of topic preference ranks),
//  4. total statement length.
//
// The work is split across small packages:
//
//	problem/  candidate type, topic ranking, canonical ordering, validation
//	search/   best-first branch-and-bound over subsets with dominance pruning
//	format/   text and JSON instance readers, answer writer, strict validator
//	gen/      deterministic random instances and the published samples
//	cmd/pickset         command line: solve, validate, gen
//	cmd/pickset-lambda  the solver behind an AWS Lambda function URL
//
// Quick example:
//
//	in, _ := format.ReadText(os.Stdin)
//	res, _ := search.Search(in.Target, in.Problems, in.Topics)
//	format.WriteResult(os.Stdout, res, format.DefaultSentinel)
//
// Points use math/big throughout, so targets beyond 64 bits are handled
// exactly.
package pickset
