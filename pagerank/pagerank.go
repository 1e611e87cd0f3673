package pagerank

import (
	"math"

	"github.com/katalvlaran/nodegraph/graph"
	"github.com/katalvlaran/nodegraph/intrinsics"
	"github.com/katalvlaran/nodegraph/traversal"
)

// PageRank owns the per-vertex scratch state for repeated PageRank trials
// against one graph.Graph: the score and contribution arrays, and the
// cached adjacency (the graph never changes between trials).
type PageRank struct {
	g         *graph.Graph
	scores    []float64
	contrib   []float64
	adjacency [][]int64
}

// New allocates PageRank scratch sized to g.
func New(g *graph.Graph) *PageRank {
	v := int(g.NumVertices())
	return &PageRank{
		g:       g,
		scores:  make([]float64, v),
		contrib: make([]float64, v),
	}
}

// Run performs one PageRank trial with DefaultOptions overridden by opts.
func Run(g *graph.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return New(g).Run(opts...)
}

// Run executes pull-style PageRank against p.g, iterating until
// o.Epsilon convergence or o.MaxIterations.
func (p *PageRank) Run(opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	v := int(p.g.NumVertices())
	if p.adjacency == nil {
		p.adjacency = make([][]int64, v)
		traversal.Fixed{}.Run(v, func(i int) {
			p.adjacency[i] = p.g.OutNeighbors(int64(i))
		})
	}

	initScore := 1.0 / float64(v)
	baseScore := (1.0 - o.Damping) / float64(v)
	traversal.Fixed{}.Run(v, func(i int) { p.scores[i] = initScore })

	var iters int
	var lastErr float64
	for iters = 0; iters < o.MaxIterations; iters++ {
		traversal.Dynamic{Grain: 64}.Run(v, func(i int) {
			deg := p.g.Degree(int64(i))
			if deg > 0 {
				p.contrib[i] = p.scores[i] / float64(deg)
			} else {
				p.contrib[i] = 0
			}
		})

		var errAcc float64
		traversal.Dynamic{Grain: 64}.Run(v, func(i int) {
			var incoming float64
			for _, dst := range p.adjacency[i] {
				incoming += p.contrib[dst]
			}
			oldScore := p.scores[i]
			newScore := baseScore + o.Damping*incoming
			p.scores[i] = newScore
			intrinsics.AddFloat64(&errAcc, math.Abs(newScore-oldScore))
		})

		lastErr = errAcc
		if lastErr < o.Epsilon {
			iters++
			break
		}
	}

	scores := make([]float64, v)
	copy(scores, p.scores)
	return &Result{Scores: scores, Iterations: iters, Error: lastErr}, nil
}
