package pagerank_test

import (
	"fmt"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/pagerank"
)

// ExampleRun computes PageRank on a star graph and prints the hub's score
// rounded to two decimal places.
func ExampleRun() {
	_ = core.Init(1)

	el := edgelist.New(5, 4)
	pairs := [][2]int64{{0, 1}, {0, 2}, {0, 3}, {0, 4}}
	for i, p := range pairs {
		el.Src.Set(i, p[0])
		el.Dst.Set(i, p[1])
	}

	g, err := graph.New(el)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := pagerank.Run(g, pagerank.WithMaxIterations(100), pagerank.WithEpsilon(1e-9))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%.2f\n", res.Scores[0])

	// Output:
	// 0.48
}
