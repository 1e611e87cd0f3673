package core_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/stretchr/testify/require"
)

// shared is a trivial stand-in for a composite object whose sub-structures
// (here just a single *Striped[int]) are meant to be shared by every view,
// with only the nodelet tag differing per view.
type shared struct {
	nodelet int
	backing *core.Striped[int]
}

func TestReplicatedShallowSharesBackingAcrossViews(t *testing.T) {
	withNodelets(t, 4)

	rs := core.NewReplicatedShallow(
		func() *shared {
			return &shared{nodelet: 0, backing: core.NewStriped[int](8)}
		},
		func(owner *shared, nodelet int) *shared {
			return &shared{nodelet: nodelet, backing: owner.backing}
		},
	)

	require.Equal(t, 4, rs.Len())
	require.Same(t, rs.Owner(), rs.View(0))

	for nlet := 1; nlet < 4; nlet++ {
		require.NotSame(t, rs.Owner(), rs.View(nlet))
		require.Same(t, rs.Owner().backing, rs.View(nlet).backing)
		require.Equal(t, nlet, rs.View(nlet).nodelet)
	}

	rs.Owner().backing.Set(3, 99)
	require.Equal(t, 99, rs.View(2).backing.Get(3), "views observe writes through the shared owner backing")
}
