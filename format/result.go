package format

import (
	"io"
	"strconv"
	"strings"

	"github.com/CamJeff/COMP-321-Problem-Development/search"
)

// Answer renders res as a single line without the trailing newline: the chosen
// ids ascending and space-separated, or sentinel when nothing was found.
func Answer(res search.Result, sentinel string) string {
	if !res.Found {
		return sentinel
	}
	parts := make([]string, len(res.IDs))
	for i, id := range res.IDs {
		parts[i] = strconv.Itoa(id)
	}

	return strings.Join(parts, " ")
}

// WriteResult writes Answer(res, sentinel) followed by a newline.
func WriteResult(w io.Writer, res search.Result, sentinel string) error {
	_, err := io.WriteString(w, Answer(res, sentinel)+"\n")

	return err
}
