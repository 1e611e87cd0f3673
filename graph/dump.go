package graph

import (
	"bufio"
	"fmt"
	"io"
)

// Dump writes one line per vertex, listing its adjacency in ascending block
// order as "v: d0 d1 d2 ...", for the --dump_graph debug mode. Intended for
// small graphs; it walks every vertex sequentially.
func (g *Graph) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for v := int64(0); v < g.numVertices; v++ {
		if _, err := fmt.Fprintf(bw, "%d:", v); err != nil {
			return err
		}
		for _, dst := range g.OutNeighbors(v) {
			if _, err := fmt.Fprintf(bw, " %d", dst); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}
