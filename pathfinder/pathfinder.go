// SPDX-License-Identifier: MIT

package pathfinder

import (
	"fmt"

	"github.com/katalvlaran/boukman/matrix"
	"github.com/katalvlaran/boukman/normalize"
)

// FindPath returns the index path from source to target over a normalized
// adjacency matrix.
//
// Implementation:
//   - Stage 1: validate adj, both indices and the algorithm. Nothing reaches
//     the engine on failure.
//   - Stage 2: delegate to the configured engine with unweighted=false;
//     weights are always honored.
//
// Errors:
//   - ErrNilAdjacency, ErrSameEndpoints.
//   - ErrIndexOutOfRange joined with matrix.ErrOutOfRange.
//   - shortest.ErrUnknownAlgorithm for an invalid algorithm value.
//   - Engine errors unchanged: shortest.ErrNoPath, shortest.ErrNegativeCycle.
//
// The result starts with source and ends with target; every consecutive pair
// is a stored entry of adj.
func FindPath(adj *normalize.Adjacency, source, target int, opts ...Option) ([]int, error) {
	if adj == nil {
		return nil, ErrNilAdjacency
	}
	cfg := gatherOptions(opts)

	// Stage 1: preconditions.
	if err := checkIndex(adj, "source", source); err != nil {
		return nil, err
	}
	if err := checkIndex(adj, "target", target); err != nil {
		return nil, err
	}
	if source == target {
		return nil, fmt.Errorf("%w: %d", ErrSameEndpoints, source)
	}
	if err := cfg.Algorithm.Validate(); err != nil {
		return nil, err
	}

	// Stage 2: search.
	return cfg.Engine.ShortestPath(adj.Matrix(), source, target, cfg.Algorithm, false)
}

// checkIndex joins ErrIndexOutOfRange with the matrix.ErrOutOfRange chain.
func checkIndex(adj *normalize.Adjacency, name string, i int) error {
	if err := matrix.ValidateIndex(adj.Matrix(), i); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrIndexOutOfRange, name, err)
	}

	return nil
}
