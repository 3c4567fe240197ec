// Package format reads and writes problem-set instances and search answers.
//
// Text format (ReadText / WriteText):
//
//	M N                       target points (arbitrary precision), problem count
//	t1 t2 ... tK              topic preference order, first = most preferred
//	id points difficulty topic length      × N
//
// Tokens may be separated by any run of spaces or tabs. Blank lines between
// records are ignored; anything after the N-th problem is an error.
//
// JSON format (ReadJSON), parsed with gjson:
//
//	{
//	  "target":   "100000000000000",
//	  "topics":   ["dp", "graphs"],
//	  "problems": [{"id": 1, "points": "60000000000000", "difficulty": 3, "topic": "dp", "length": 5000}]
//	}
//
// Integer fields may be JSON numbers or decimal strings; strings keep full
// precision for point values beyond 2^53.
//
// Answers (WriteResult): one line, chosen ids ascending and space-separated, or
// the caller's no-solution sentinel (DefaultSentinel is "-1").
//
// Validate applies the stricter contest rules of the judge data (canonical
// spacing, ids 1..N, difficulty 1..10, length 1..10000, listed topics).
//
// Error handling (sentinel errors, always wrapped with a line or field):
//
//   - ErrMalformed:     a token is missing, extra, or not a number.
//   - ErrTruncated:     input ended before N problems were read.
//   - ErrTrailingInput: non-blank input follows the last problem.
//   - ErrBadJSON:       ReadJSON received syntactically invalid JSON.
//   - ErrInvalid:       Validate rejected a structurally readable instance.
package format
