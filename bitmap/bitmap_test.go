package bitmap_test

import (
	"bytes"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/nodegraph/bitmap"
	"github.com/katalvlaran/nodegraph/core"
	"github.com/stretchr/testify/require"
)

func TestNewDistributesAcrossNodelets(t *testing.T) {
	require.NoError(t, core.Init(4))
	defer func() { require.NoError(t, core.Init(1)) }()

	b := bitmap.New(130)
	require.Equal(t, 130, b.Size())
	require.True(t, b.IsEmpty())
}

func TestSetClearTest(t *testing.T) {
	require.NoError(t, core.Init(3))
	defer func() { require.NoError(t, core.Init(1)) }()

	b := bitmap.New(20)
	for _, i := range []int{0, 1, 5, 19} {
		b.Set(i)
	}
	for i := 0; i < 20; i++ {
		want := i == 0 || i == 1 || i == 5 || i == 19
		require.Equal(t, want, b.Test(i), "bit %d", i)
	}

	b.Clear(5)
	require.False(t, b.Test(5))
}

func TestForEachSetVisitsNodeletMajorOrder(t *testing.T) {
	require.NoError(t, core.Init(4))
	defer func() { require.NoError(t, core.Init(1)) }()

	b := bitmap.New(50)
	set := []int{3, 7, 22, 41, 49}
	for _, i := range set {
		b.Set(i)
	}

	var got []int
	b.ForEachSet(func(i int) { got = append(got, i) })
	// Nodelet 1 holds 41 and 49, nodelet 2 holds 22, nodelet 3 holds 3 and 7.
	require.Equal(t, []int{41, 49, 22, 3, 7}, got)
	require.Equal(t, len(set), b.PopCount())
}

func TestSetAtomicConcurrentDistinctBits(t *testing.T) {
	require.NoError(t, core.Init(2))
	defer func() { require.NoError(t, core.Init(1)) }()

	b := bitmap.New(256)
	var wg sync.WaitGroup
	for i := 0; i < 256; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b.SetAtomic(i)
		}(i)
	}
	wg.Wait()

	require.Equal(t, 256, b.PopCount())
}

func TestNewLocalIgnoresAmbientNodeletCount(t *testing.T) {
	require.NoError(t, core.Init(8))
	defer func() { require.NoError(t, core.Init(1)) }()

	b := bitmap.NewLocal(10)
	b.Set(3)
	require.True(t, b.Test(3))
}

func TestClearAllEmptiesBitmap(t *testing.T) {
	b := bitmap.New(10)
	for i := 0; i < 10; i++ {
		b.Set(i)
	}
	require.False(t, b.IsEmpty())
	b.ClearAll()
	require.True(t, b.IsEmpty())
}

func TestDumpWritesOneIndexPerLine(t *testing.T) {
	b := bitmap.New(5)
	b.Set(1)
	b.Set(4)

	var buf bytes.Buffer
	require.NoError(t, b.Dump(&buf))

	lines := strings.Fields(buf.String())
	require.Equal(t, []string{"1", "4"}, lines)
	for _, l := range lines {
		_, err := strconv.Atoi(l)
		require.NoError(t, err)
	}
}
