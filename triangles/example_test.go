package triangles_test

import (
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/triangles"
)

// ExampleCount counts the single triangle in a 3-cycle.
func ExampleCount() {
	_ = core.Init(1)

	el := edgelist.New(3, 3)
	pairs := [][2]int64{{0, 1}, {1, 2}, {0, 2}}
	for i, p := range pairs {
		el.Src.Set(i, p[0])
		el.Dst.Set(i, p[1])
	}

	g, err := graph.New(el)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := triangles.Count(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.NumTriangles)

	// Output:
	// 1
}

// ExamplePeel computes the k-truss decomposition of a single triangle: the
// whole graph is a 3-truss.
func ExamplePeel() {
	_ = core.Init(1)

	el := edgelist.New(3, 3)
	pairs := [][2]int64{{0, 1}, {1, 2}, {0, 2}}
	for i, p := range pairs {
		el.Src.Set(i, p[0])
		el.Dst.Set(i, p[1])
	}

	g, err := graph.New(el)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	stats, err := triangles.Peel(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(stats.MaxK)

	// Output:
	// 3
}
