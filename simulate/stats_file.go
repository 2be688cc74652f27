package simulate

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeStatsLine appends one whitespace-separated line of the current
// cumulative statistics vector. A nil writer is a no-op.
func writeStatsLine(w io.Writer, values []float64) error {
	if w == nil {
		return nil
	}
	cols := make([]string, len(values))
	for i, v := range values {
		cols[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	_, err := fmt.Fprintln(w, strings.Join(cols, " "))

	return err
}
