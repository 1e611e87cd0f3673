package edgelist

import (
	"errors"

	"github.com/katalvlaran/nodegraph/core"
)

var (
	// ErrInvalidHeader is returned when the ASCII header line is malformed
	// or missing a required field.
	ErrInvalidHeader = errors.New("edgelist: invalid header")
	// ErrUnsupportedFormat is returned when the header's format tag is not
	// "el64".
	ErrUnsupportedFormat = errors.New("edgelist: unsupported format")
	// ErrNotDeduped is returned when the header does not assert is_deduped.
	ErrNotDeduped = errors.New("edgelist: edge list is not deduped")
)

// DistEdgeList is a pair of equal-length striped arrays of 0-based vertex
// IDs: edge i is (Src.Get(i), Dst.Get(i)).
type DistEdgeList struct {
	NumVertices int64
	NumEdges    int64
	Src         *core.Striped[int64]
	Dst         *core.Striped[int64]
}

// New allocates an empty DistEdgeList sized for numVertices vertices and
// numEdges edges, striped across the current core.NodeletCount().
func New(numVertices, numEdges int64) *DistEdgeList {
	return &DistEdgeList{
		NumVertices: numVertices,
		NumEdges:    numEdges,
		Src:         core.NewStriped[int64](int(numEdges)),
		Dst:         core.NewStriped[int64](int(numEdges)),
	}
}
