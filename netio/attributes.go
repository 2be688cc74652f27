package netio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/ergmee/graph"
)

// naToken is the whitespace attribute table's missing-value sentinel
// (spec.md §6, "NA denotes missing"), matched case-insensitively.
const naToken = "NA"

// AttributeTable is a parsed whitespace-delimited attribute file: a header
// naming each column, and one row per node in node-index order.
type AttributeTable struct {
	Names []string
	Rows  [][]string
}

// ReadAttributeTable parses r: the first line is whitespace-separated
// column names, each subsequent line is one node's row of values (or the
// NA token).
func ReadAttributeTable(r io.Reader) (*AttributeTable, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("netio: empty attribute file: %w", ErrMalformedHeader)
	}
	names := strings.Fields(scanner.Text())

	table := &AttributeTable{Names: names}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != len(names) {
			return nil, fmt.Errorf("netio: row has %d fields, header has %d: %w", len(fields), len(names), ErrMalformedRow)
		}
		table.Rows = append(table.Rows, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

// column extracts the name-th column across every row.
func (t *AttributeTable) column(name string) ([]string, bool) {
	idx := -1
	for i, n := range t.Names {
		if n == name {
			idx = i

			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	col := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		col[i] = row[idx]
	}

	return col, true
}

// LoadBinary installs the named column as a binary attribute on g, parsing
// "0"/"1"/"NA" per node.
func LoadBinary(g *graph.Graph, t *AttributeTable, name string) error {
	col, ok := t.column(name)
	if !ok {
		return fmt.Errorf("netio: column %q not found: %w", name, ErrMalformedRow)
	}
	vals := make([]int8, len(col))
	for i, tok := range col {
		if strings.EqualFold(tok, naToken) {
			vals[i] = -1

			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil || (v != 0 && v != 1) {
			return fmt.Errorf("netio: binary attribute %q row %d: %q: %w", name, i, tok, ErrMalformedRow)
		}
		vals[i] = int8(v)
	}
	g.SetBinary(name, vals)

	return nil
}

// LoadCategorical installs the named column as a categorical attribute.
func LoadCategorical(g *graph.Graph, t *AttributeTable, name string) error {
	col, ok := t.column(name)
	if !ok {
		return fmt.Errorf("netio: column %q not found: %w", name, ErrMalformedRow)
	}
	vals := make([]int64, len(col))
	for i, tok := range col {
		if strings.EqualFold(tok, naToken) {
			vals[i] = graph.NAInt

			continue
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return fmt.Errorf("netio: categorical attribute %q row %d: %q: %w", name, i, tok, ErrMalformedRow)
		}
		vals[i] = v
	}
	g.SetCategorical(name, vals)

	return nil
}

// LoadContinuous installs the named column as a continuous attribute.
func LoadContinuous(g *graph.Graph, t *AttributeTable, name string) error {
	col, ok := t.column(name)
	if !ok {
		return fmt.Errorf("netio: column %q not found: %w", name, ErrMalformedRow)
	}
	vals := make([]float64, len(col))
	for i, tok := range col {
		if strings.EqualFold(tok, naToken) {
			vals[i] = math.NaN()

			continue
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("netio: continuous attribute %q row %d: %q: %w", name, i, tok, ErrMalformedRow)
		}
		vals[i] = v
	}
	g.SetContinuous(name, vals)

	return nil
}
