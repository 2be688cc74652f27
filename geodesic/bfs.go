package geodesic

import (
	"context"

	"github.com/katalvlaran/ergmee/graph"
)

// queueItem pairs a node id with its BFS depth, mirroring the classic
// unweighted-shortest-path walker shape (queue, visited set, depth map).
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable single-source BFS state over g's adjacency.
type walker struct {
	g         *graph.Graph
	neighbors func(int) []int
	queue     []queueItem
	visited   []bool
	dist      []float64 // output row: dist[v] is source's distance to v
}

// singleSourceBFS fills row (pre-sized to g.N(), initialised to -1 for
// "unreached") with source's distance to every reachable node.
func singleSourceBFS(ctx context.Context, g *graph.Graph, neighbors func(int) []int, source int, row []float64) error {
	w := &walker{
		g:         g,
		neighbors: neighbors,
		queue:     make([]queueItem, 0, g.N()),
		visited:   make([]bool, g.N()),
		dist:      row,
	}
	w.enqueue(source, 0)

	for len(w.queue) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		item := w.dequeue()
		for _, nbr := range w.neighbors(item.id) {
			if w.visited[nbr] {
				continue
			}
			w.enqueue(nbr, item.depth+1)
		}
	}

	return nil
}

func (w *walker) enqueue(id, depth int) {
	w.visited[id] = true
	w.dist[id] = float64(depth)
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]

	return item
}
