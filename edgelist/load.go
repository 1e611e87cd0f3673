package edgelist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/nodegraph/core"
	"golang.org/x/sync/errgroup"
)

// LoadBinary implements the single-reader, scatter-after-read path: one
// reader validates the header and reads every (src, dst) record, then the
// records are copied into the striped Src/Dst arrays in parallel, one
// worker per nodelet operating on a contiguous slice of the edge range.
func LoadBinary(path string) (*DistEdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, h.numEdges*16)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("edgelist: reading edge records: %w", err)
	}

	el := New(h.numVertices, h.numEdges)
	if err := scatterRecords(el, raw); err != nil {
		return nil, err
	}
	return el, nil
}

// scatterRecords decodes raw little-endian (src, dst) pairs into el's
// striped arrays, splitting the edge range into one contiguous chunk per
// nodelet and decoding each chunk concurrently.
func scatterRecords(el *DistEdgeList, raw []byte) error {
	n := el.Src.NodeletCount()
	m := int(el.NumEdges)
	base := m / n
	rem := m % n

	var g errgroup.Group
	start := 0
	for worker := 0; worker < n; worker++ {
		count := base
		if worker < rem {
			count++
		}
		lo, hi := start, start+count
		start = hi
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				off := i * 16
				src := int64(binary.LittleEndian.Uint64(raw[off : off+8]))
				dst := int64(binary.LittleEndian.Uint64(raw[off+8 : off+16]))
				el.Src.Set(i, src)
				el.Dst.Set(i, dst)
			}
			return nil
		})
	}
	return g.Wait()
}

// LoadDistributed reads a per-nodelet fileset basename.<k>of<N>: file k
// holds V, E, the local src length, the local src
// stripe, the local dst length, and the local dst stripe, for nodelet k of
// the current core.NodeletCount().
func LoadDistributed(basename string) (*DistEdgeList, error) {
	n := core.NodeletCount()
	var numVertices, numEdges int64
	srcStripes := make([][]int64, n)
	dstStripes := make([][]int64, n)

	for k := 0; k < n; k++ {
		path := fmt.Sprintf("%s.%dof%d", basename, k, n)
		v, e, src, dst, err := readFilesetShard(path)
		if err != nil {
			return nil, err
		}
		if k == 0 {
			numVertices, numEdges = v, e
		} else if v != numVertices || e != numEdges {
			return nil, fmt.Errorf("%w: shard %s disagrees on V/E", ErrInvalidHeader, path)
		}
		srcStripes[k] = src
		dstStripes[k] = dst
	}

	el := New(numVertices, numEdges)
	el.Src.AdoptStripes(srcStripes)
	el.Dst.AdoptStripes(dstStripes)
	return el, nil
}

func readFilesetShard(path string) (v, e int64, src, dst []int64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	v, err = readInt64(br)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	e, err = readInt64(br)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	src, err = readInt64Slice(br)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	dst, err = readInt64Slice(br)
	if err != nil {
		return 0, 0, nil, nil, err
	}
	return v, e, src, dst, nil
}

func readInt64(r io.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("edgelist: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func readInt64Slice(r io.Reader) ([]int64, error) {
	length, err := readInt64(r)
	if err != nil {
		return nil, err
	}
	out := make([]int64, length)
	buf := make([]byte, length*8)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(buf[i*8 : i*8+8]))
	}
	return out, nil
}
