package edgelist

import "golang.org/x/sync/errgroup"

// ForallEdgesSequential applies f(src, dst) to every edge, in stripe order,
// on the calling goroutine. Used by Dump and by callers that need a
// deterministic visiting order.
func (el *DistEdgeList) ForallEdgesSequential(f func(src, dst int64)) {
	n := el.Src.NodeletCount()
	for nlet := 0; nlet < n; nlet++ {
		srcStripe := el.Src.Stripe(nlet)
		dstStripe := el.Dst.Stripe(nlet)
		for i := range srcStripe {
			f(srcStripe[i], dstStripe[i])
		}
	}
}

// ForallEdges applies f(src, dst) to every edge, one worker per nodelet
// walking that nodelet's local stripe — the Fixed execution policy from
// the traversal primitives, specialized here since edgelist has no
// dependency on the traversal package.
func (el *DistEdgeList) ForallEdges(f func(src, dst int64)) error {
	n := el.Src.NodeletCount()
	var g errgroup.Group
	for nlet := 0; nlet < n; nlet++ {
		srcStripe := el.Src.Stripe(nlet)
		dstStripe := el.Dst.Stripe(nlet)
		g.Go(func() error {
			for i := range srcStripe {
				f(srcStripe[i], dstStripe[i])
			}
			return nil
		})
	}
	return g.Wait()
}
