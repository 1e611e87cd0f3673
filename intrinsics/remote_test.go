package intrinsics_test

import (
	"testing"

	"github.com/katalvlaran/nodegraph/intrinsics"
	"github.com/stretchr/testify/require"
)

func TestRemoteAddNotVisibleBeforeFence(t *testing.T) {
	var word int64
	intrinsics.RemoteAdd(&word, 1)
	// Not asserting word == 0 here: the race is inherent (the goroutine may
	// already have run). The contract under test is that Fence is
	// sufficient, not that the write is necessarily delayed.
	intrinsics.Fence()
	require.Equal(t, int64(1), word)
}

func TestRemoteAddAccumulatesManyWrites(t *testing.T) {
	var word int64
	const n = 500
	for i := 0; i < n; i++ {
		intrinsics.RemoteAdd(&word, 1)
	}
	intrinsics.Fence()
	require.Equal(t, int64(n), word)
}

func TestRemoteMinMax(t *testing.T) {
	word := int64(50)
	intrinsics.RemoteMin(&word, 10)
	intrinsics.RemoteMin(&word, 20)
	intrinsics.Fence()
	require.Equal(t, int64(10), word)

	word = 5
	intrinsics.RemoteMax(&word, 10)
	intrinsics.RemoteMax(&word, 3)
	intrinsics.Fence()
	require.Equal(t, int64(10), word)
}

func TestRemoteAndOrXor(t *testing.T) {
	word := int64(0b1010)
	intrinsics.RemoteOr(&word, 0b0101)
	intrinsics.Fence()
	require.EqualValues(t, 0b1111, word)

	intrinsics.RemoteAnd(&word, 0b1100)
	intrinsics.Fence()
	require.EqualValues(t, 0b1100, word)

	intrinsics.RemoteXor(&word, 0b1111)
	intrinsics.Fence()
	require.EqualValues(t, 0b0011, word)
}

func TestAckControllerReenableAndFenceDrainsPendingWrites(t *testing.T) {
	intrinsics.Acks().Disable()
	require.True(t, intrinsics.Acks().Disabled())

	var word int64
	const n = 200
	for i := 0; i < n; i++ {
		intrinsics.RemoteAdd(&word, 1)
	}

	intrinsics.Acks().ReenableAndFence()
	require.False(t, intrinsics.Acks().Disabled())
	require.Equal(t, int64(n), word)
}
