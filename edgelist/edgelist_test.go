package edgelist_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/katalvlaran/nodegraph/core"
	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/stretchr/testify/require"
)

func writeBinaryEdgeList(t *testing.T, path string, header string, edges [][2]int64) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString(header)
	require.NoError(t, err)

	var buf [16]byte
	for _, e := range edges {
		binary.LittleEndian.PutUint64(buf[0:8], uint64(e[0]))
		binary.LittleEndian.PutUint64(buf[8:16], uint64(e[1]))
		_, err := f.Write(buf[:])
		require.NoError(t, err)
	}
}

func TestLoadBinaryRoundTrip(t *testing.T) {
	require.NoError(t, core.Init(3))
	defer func() { require.NoError(t, core.Init(1)) }()

	edges := [][2]int64{{0, 1}, {1, 2}, {2, 3}, {0, 3}}
	path := filepath.Join(t.TempDir(), "edges.el64")
	writeBinaryEdgeList(t, path, "--num_vertices 4 --num_edges 4 --is_deduped --format el64\n", edges)

	el, err := edgelist.LoadBinary(path)
	require.NoError(t, err)
	require.EqualValues(t, 4, el.NumVertices)
	require.EqualValues(t, 4, el.NumEdges)

	var got [][2]int64
	el.ForallEdgesSequential(func(src, dst int64) {
		got = append(got, [2]int64{src, dst})
	})
	sort.Slice(got, func(i, j int) bool {
		if got[i][0] != got[j][0] {
			return got[i][0] < got[j][0]
		}
		return got[i][1] < got[j][1]
	})
	want := append([][2]int64{}, edges...)
	sort.Slice(want, func(i, j int) bool {
		if want[i][0] != want[j][0] {
			return want[i][0] < want[j][0]
		}
		return want[i][1] < want[j][1]
	})
	require.Equal(t, want, got)
}

func TestLoadBinaryRejectsBadHeader(t *testing.T) {
	cases := map[string]string{
		"missing deduped": "--num_vertices 4 --num_edges 1 --format el64\n",
		"bad format":      "--num_vertices 4 --num_edges 1 --is_deduped --format el32\n",
		"zero vertices":   "--num_vertices 0 --num_edges 1 --is_deduped --format el64\n",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.el64")
			writeBinaryEdgeList(t, path, header, [][2]int64{{0, 1}})
			_, err := edgelist.LoadBinary(path)
			require.Error(t, err)
		})
	}
}

func TestWriteFilesetThenLoadDistributedRoundTrips(t *testing.T) {
	require.NoError(t, core.Init(3))
	defer func() { require.NoError(t, core.Init(1)) }()

	el := edgelist.New(4, 6)
	edges := [][2]int64{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {1, 3}}
	for i, e := range edges {
		el.Src.Set(i, e[0])
		el.Dst.Set(i, e[1])
	}

	base := filepath.Join(t.TempDir(), "shard")
	require.NoError(t, edgelist.WriteFileset(el, base))

	reloaded, err := edgelist.LoadDistributed(base)
	require.NoError(t, err)
	require.Equal(t, el.NumVertices, reloaded.NumVertices)
	require.Equal(t, el.NumEdges, reloaded.NumEdges)

	var wantPairs, gotPairs [][2]int64
	el.ForallEdgesSequential(func(s, d int64) { wantPairs = append(wantPairs, [2]int64{s, d}) })
	reloaded.ForallEdgesSequential(func(s, d int64) { gotPairs = append(gotPairs, [2]int64{s, d}) })
	require.ElementsMatch(t, wantPairs, gotPairs)
}

func TestDumpWritesOnePairPerLine(t *testing.T) {
	el := edgelist.New(2, 2)
	el.Src.Set(0, 0)
	el.Dst.Set(0, 1)
	el.Src.Set(1, 1)
	el.Dst.Set(1, 0)

	var buf bytes.Buffer
	require.NoError(t, el.Dump(&buf))
	require.Equal(t, "0 1\n1 0\n", buf.String())
}
