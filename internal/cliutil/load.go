package cliutil

import (
	"fmt"
	"os"

	"github.com/katalvlaran/nodegraph/edgelist"
	"github.com/katalvlaran/nodegraph/graph"
	"github.com/rs/zerolog"
)

// LoadGraph reads cfg.GraphFilename (as a single binary file, or as a
// per-nodelet fileset when cfg.DistributedLoad is set), builds the graph,
// and honors the --dump_edge_list / --check_graph / --dump_graph debug
// modes along the way. It also returns the loaded edge list alongside the
// graph.
func LoadGraph(cfg *Config, log zerolog.Logger) (*graph.Graph, *edgelist.DistEdgeList, error) {
	if cfg.GraphFilename == "" {
		return nil, nil, ErrMissingGraphFilename
	}

	var el *edgelist.DistEdgeList
	var err error
	if cfg.DistributedLoad {
		log.Info().Str("basename", cfg.GraphFilename).Msg("loading distributed fileset")
		el, err = edgelist.LoadDistributed(cfg.GraphFilename)
	} else {
		log.Info().Str("path", cfg.GraphFilename).Msg("loading binary edge list")
		el, err = edgelist.LoadBinary(cfg.GraphFilename)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("cliutil: load graph: %w", err)
	}
	log.Info().Int64("num_vertices", el.NumVertices).Int64("num_edges", el.NumEdges).Msg("edge list loaded")

	if cfg.DumpEdgeList {
		if err := el.Dump(os.Stdout); err != nil {
			return nil, nil, fmt.Errorf("cliutil: dump edge list: %w", err)
		}
	}

	var opts []graph.Option
	if !cfg.SortEdgeBlocks {
		opts = append(opts, graph.WithoutSort())
	}
	g, err := graph.New(el, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("cliutil: construct graph: %w", err)
	}

	if cfg.DumpGraph {
		if err := g.Dump(os.Stdout); err != nil {
			return nil, nil, fmt.Errorf("cliutil: dump graph: %w", err)
		}
	}

	if cfg.CheckGraph {
		if err := g.CheckAgainst(el); err != nil {
			log.Error().Err(err).Msg("check_graph: FAIL")
			return nil, nil, err
		}
		log.Info().Msg("check_graph: PASS")
	}

	return g, el, nil
}
