package core_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/stretchr/testify/require"
)

func TestReplicatedBroadcastAndGetNth(t *testing.T) {
	withNodelets(t, 4)

	r := core.NewReplicated[int]()
	require.Equal(t, 4, r.Len())

	r.Broadcast(9)
	for k := 0; k < 4; k++ {
		require.Equal(t, 9, *r.GetNth(k))
	}

	*r.GetNth(2) = 100
	require.Equal(t, 100, *r.GetNth(2))
	require.Equal(t, 9, *r.GetNth(1))
}

func TestNewReplicatedWithPerNodeletInit(t *testing.T) {
	withNodelets(t, 3)

	r := core.NewReplicatedWith(func(nodelet int) int { return nodelet * nodelet })
	require.Equal(t, 0, *r.GetNth(0))
	require.Equal(t, 1, *r.GetNth(1))
	require.Equal(t, 4, *r.GetNth(2))
}

func TestReplicatedGetNthPanicsOutOfRange(t *testing.T) {
	withNodelets(t, 2)

	r := core.NewReplicated[int]()
	require.Panics(t, func() { r.GetNth(2) })
	require.Panics(t, func() { r.GetNth(-1) })
}

func TestReplicatedReduceSumInt(t *testing.T) {
	withNodelets(t, 4)

	r := core.NewReplicatedWith(func(nodelet int) int { return nodelet + 1 })
	require.Equal(t, 10, core.SumInt(r)) // 1+2+3+4
}

func TestReplicatedReduceOrBool(t *testing.T) {
	withNodelets(t, 4)

	r := core.NewReplicated[bool]()
	require.False(t, core.OrBool(r))

	*r.GetNth(3) = true
	require.True(t, core.OrBool(r))
}

func TestReplicatedReduceEmptyReturnsZeroValue(t *testing.T) {
	r := &core.Replicated[int]{}
	require.Equal(t, 0, r.Reduce(func(a, b int) int { return a + b }))
}
