package edgelist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Dump writes one "src dst" pair per line, in stripe order, for debugging.
func (el *DistEdgeList) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var writeErr error
	el.ForallEdgesSequential(func(src, dst int64) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(bw, "%d %d\n", src, dst)
	})
	if writeErr != nil {
		return writeErr
	}
	return bw.Flush()
}

// WriteFileset writes the per-nodelet fileset basename.<k>of<N> that
// LoadDistributed reads back, one file per nodelet stripe of el.Src/el.Dst.
func WriteFileset(el *DistEdgeList, basename string) error {
	n := el.Src.NodeletCount()
	for k := 0; k < n; k++ {
		path := fmt.Sprintf("%s.%dof%d", basename, k, n)
		if err := writeFilesetShard(path, el.NumVertices, el.NumEdges, el.Src.Stripe(k), el.Dst.Stripe(k)); err != nil {
			return err
		}
	}
	return nil
}

func writeFilesetShard(path string, numVertices, numEdges int64, src, dst []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if err := writeInt64(bw, numVertices); err != nil {
		return err
	}
	if err := writeInt64(bw, numEdges); err != nil {
		return err
	}
	if err := writeInt64Slice(bw, src); err != nil {
		return err
	}
	if err := writeInt64Slice(bw, dst); err != nil {
		return err
	}
	return bw.Flush()
}

func writeInt64(w io.Writer, v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	if err != nil {
		return fmt.Errorf("edgelist: %w", err)
	}
	return nil
}

func writeInt64Slice(w io.Writer, s []int64) error {
	if err := writeInt64(w, int64(len(s))); err != nil {
		return err
	}
	buf := make([]byte, len(s)*8)
	for i, v := range s {
		binary.LittleEndian.PutUint64(buf[i*8:i*8+8], uint64(v))
	}
	_, err := w.Write(buf)
	if err != nil {
		return fmt.Errorf("edgelist: %w", err)
	}
	return nil
}
