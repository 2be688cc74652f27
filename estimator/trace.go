package estimator

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeTraceHeader writes the whitespace-columnar header line
// ("t name_1 name_2 ...") spec.md §6 mandates for the per-rank trace
// files. A nil writer is a no-op, letting callers disable tracing without
// branching at every call site.
func writeTraceHeader(w io.Writer, names []string) error {
	if w == nil {
		return nil
	}
	_, err := fmt.Fprintln(w, "t "+strings.Join(names, " "))

	return err
}

// writeTraceLine writes one "<t> <v1> <v2> ..." line. A nil writer is a
// no-op.
func writeTraceLine(w io.Writer, t int, values []float64) error {
	if w == nil {
		return nil
	}
	cols := make([]string, 0, len(values)+1)
	cols = append(cols, strconv.Itoa(t))
	for _, v := range values {
		cols = append(cols, strconv.FormatFloat(v, 'g', -1, 64))
	}
	_, err := fmt.Fprintln(w, strings.Join(cols, " "))

	return err
}

// WriteObsStats writes obs_stats as a single whitespace-separated line,
// per spec.md §6's "obs_stats_<prefix>_<rank>.txt: a single line of
// values."
func WriteObsStats(w io.Writer, obsStats []float64) error {
	cols := make([]string, len(obsStats))
	for i, v := range obsStats {
		cols[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	_, err := fmt.Fprintln(w, strings.Join(cols, " "))

	return err
}
