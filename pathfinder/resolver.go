// SPDX-License-Identifier: MIT

package pathfinder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/boukman/inventory"
	"github.com/katalvlaran/boukman/normalize"
)

// Resolver answers entity-level path queries through an inventory.
// A Resolver built without an inventory still answers index queries via
// FindPath but refuses entity queries with ErrDependencyUnavailable.
type Resolver struct {
	inv  inventory.Inventory
	opts []Option
}

// New returns a Resolver over inv, which may be nil. opts apply to every query.
func New(inv inventory.Inventory, opts ...Option) *Resolver {
	return &Resolver{inv: inv, opts: opts}
}

// Available reports whether entity-level queries can run.
func (r *Resolver) Available() bool { return r != nil && r.inv != nil }

// PathIndices resolves source and target through the inventory and returns
// the index path together with the technosphere it indexes.
//
// Implementation:
//   - Stage 1: availability gate, before any other work.
//   - Stage 2: technosphere of the supply chain reachable from both entities.
//   - Stage 3: normalize with the log transform, then FindPath.
func (r *Resolver) PathIndices(ctx context.Context, source, target inventory.EntityID) ([]int, *inventory.Technosphere, error) {
	if !r.Available() {
		return nil, nil, ErrDependencyUnavailable
	}
	if source == target {
		return nil, nil, fmt.Errorf("%w: %q", ErrSameEndpoints, source)
	}

	ts, err := r.inv.Technosphere(ctx, source, target)
	if err != nil {
		return nil, nil, fmt.Errorf("pathfinder: technosphere for %q -> %q: %w", source, target, err)
	}
	s, ok := ts.Index.IndexOf(source)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", inventory.ErrUnknownEntity, source)
	}
	t, ok := ts.Index.IndexOf(target)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", inventory.ErrUnknownEntity, target)
	}

	adj, err := normalize.Normalize(ts.Matrix, normalize.WithLogTransform(true))
	if err != nil {
		return nil, nil, err
	}
	path, err := FindPath(adj, s, t, r.opts...)
	if err != nil {
		return nil, nil, err
	}

	return path, ts, nil
}

// PathAsEntities returns the path from source to target as supplier/consumer
// edges, one per step.
func (r *Resolver) PathAsEntities(ctx context.Context, source, target inventory.EntityID) ([]Edge, error) {
	path, ts, err := r.PathIndices(ctx, source, target)
	if err != nil {
		return nil, err
	}

	return Project(ts, path)
}

// Project maps an index path over ts to entity edges. Step x → y (consumer
// to supplier) becomes Edge{Supplier: y, Consumer: x, Amount: -flow[y][x]}.
func Project(ts *inventory.Technosphere, path []int) ([]Edge, error) {
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: path of length %d", ErrSameEndpoints, len(path))
	}
	edges := make([]Edge, 0, len(path)-1)
	for k := 0; k+1 < len(path); k++ {
		x, y := path[k], path[k+1]
		consumer, ok := ts.Entity(x)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, x)
		}
		supplier, ok := ts.Entity(y)
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, y)
		}
		row, col := normalize.FlowCell(x, y)
		v, err := ts.Matrix.At(row, col)
		if err != nil {
			return nil, err
		}
		edges = append(edges, Edge{Supplier: supplier, Consumer: consumer, Amount: -v})
	}

	return edges, nil
}
