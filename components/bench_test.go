package components_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/components"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
)

func BenchmarkRun_Chain10000(b *testing.B) {
	if err := core.Init(4); err != nil {
		b.Fatal(err)
	}
	defer core.Init(1)

	n := 10000
	el := edgelist.New(int64(n), int64(n-1))
	for i := 0; i < n-1; i++ {
		el.Src.Set(i, int64(i))
		el.Dst.Set(i, int64(i+1))
	}
	g, err := graph.New(el)
	if err != nil {
		b.Fatal(err)
	}

	cc := components.New(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cc.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
