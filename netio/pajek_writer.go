package netio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/ergmee/graph"
)

// PajekWriter implements simulate.NetworkWriter: each WriteNetwork call
// writes the graph's current edge set to "<Dir>/<Prefix>_<step>.net" in
// Pajek format, per spec.md §6 ("Filenames: <simNetFilePrefix>_<step>.net").
type PajekWriter struct {
	Dir    string
	Prefix string
}

// WriteNetwork writes g's current state to <Dir>/<Prefix>_<step>.net.
func (w PajekWriter) WriteNetwork(step int, g *graph.Graph) error {
	path := filepath.Join(w.Dir, fmt.Sprintf("%s_%d.net", w.Prefix, step))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("netio: create %s: %w", path, err)
	}
	defer f.Close()

	return WritePajek(f, g)
}

// WritePajek writes g's full current state (header, vertex count, and the
// edges/arcs section) to w in Pajek format.
func WritePajek(w *os.File, g *graph.Graph) error {
	if g.Bipartite() {
		if _, err := fmt.Fprintf(w, "*vertices %d %d\n", g.N(), g.NA()); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "*vertices %d\n", g.N()); err != nil {
		return err
	}

	section := "*edges"
	if g.Directed() {
		section = "*arcs"
	}
	if _, err := fmt.Fprintln(w, section); err != nil {
		return err
	}

	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(w, "%d %d\n", e[0]+1, e[1]+1); err != nil {
			return err
		}
	}

	return nil
}
