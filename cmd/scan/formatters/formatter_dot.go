package formatters

import (
	"errors"
	"fmt"
	"strings"

	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/uedeps/recdeps/depgraph"
)

// DOTFormatter renders the union of all reported cycle paths as a directed
// graph in Graphviz DOT notation. Nodes are file names; every consecutive
// pair in a cycle path becomes an edge.
type DOTFormatter struct{}

// Format implements Formatter.
func (f *DOTFormatter) Format(report *depgraph.CycleReport) (string, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	for _, terminus := range report.Termini() {
		for _, path := range report.PathsFor(terminus) {
			for _, name := range path {
				if err := g.AddVertex(name); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
					return "", fmt.Errorf("failed to add vertex %s: %w", name, err)
				}
			}
			for i := 0; i+1 < len(path); i++ {
				err := g.AddEdge(path[i], path[i+1])
				if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
					return "", fmt.Errorf("failed to add edge %s->%s: %w", path[i], path[i+1], err)
				}
			}
		}
	}

	var b strings.Builder
	if err := draw.DOT(g, &b); err != nil {
		return "", fmt.Errorf("failed to render DOT graph: %w", err)
	}

	return b.String(), nil
}
