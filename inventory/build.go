// SPDX-License-Identifier: MIT

package inventory

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"
	"github.com/katalvlaran/boukman/matrix"
)

// BuildTechnosphere assembles the flow matrix of the supply chain reachable
// from demand.
//
// Implementation:
//   - Stage 1: index entities by ID (ErrDuplicateEntity) and group the
//     consumption exchanges by consuming activity, keeping input order.
//   - Stage 2: breadth-first discovery from the demanded activities, in the
//     order given; a roaring bitmap over entity ordinals marks visited
//     activities. Discovery order becomes matrix index order.
//   - Stage 3: one triplet per exchange between discovered activities;
//     duplicates are summed by the CSR conversion.
//   - Stage 4: every discovered activity must have a non-zero production
//     amount (ErrMissingProduction).
//
// Errors:
//   - ErrEmptyDemand when demand is empty.
//   - ErrUnknownEntity for an unknown demanded ID or an exchange whose
//     input is not an entity.
//
// Complexity: O(V + E log E) for the sorted CSR build.
func BuildTechnosphere(entities []Entity, exchanges []Exchange, demand []EntityID) (*Technosphere, error) {
	if len(demand) == 0 {
		return nil, ErrEmptyDemand
	}

	// Stage 1: entity ordinals and adjacency by consumer.
	ordinal := make(map[EntityID]uint32, len(entities))
	for i, e := range entities {
		if _, dup := ordinal[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, e.ID)
		}
		ordinal[e.ID] = uint32(i)
	}
	inputs := make(map[EntityID][]Exchange)
	production := make(map[EntityID]float64)
	for _, ex := range exchanges {
		if ex.IsProduction() {
			production[ex.Output] += ex.Amount
			continue
		}
		inputs[ex.Output] = append(inputs[ex.Output], ex)
	}

	// Stage 2: BFS from the demand.
	visited := roaring.New()
	order := make([]EntityID, 0, len(demand))
	queue := make([]EntityID, 0, len(demand))
	for _, id := range demand {
		ord, ok := ordinal[id]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownEntity, id)
		}
		if visited.CheckedAdd(ord) {
			order = append(order, id)
			queue = append(queue, id)
		}
	}
	for len(queue) > 0 {
		consumer := queue[0]
		queue = queue[1:]
		for _, ex := range inputs[consumer] {
			ord, ok := ordinal[ex.Input]
			if !ok {
				return nil, fmt.Errorf("%w: %q consumed by %q", ErrUnknownEntity, ex.Input, consumer)
			}
			if visited.CheckedAdd(ord) {
				order = append(order, ex.Input)
				queue = append(queue, ex.Input)
			}
		}
	}

	index, err := NewIndex(order)
	if err != nil {
		return nil, err
	}
	n := index.Len()

	// Stage 3: triplets; every consumer is discovered, and so are its inputs.
	tr, err := matrix.NewTriplets(n, n)
	if err != nil {
		return nil, err
	}
	ents := make([]Entity, n)
	for j, id := range order {
		ents[j] = entities[ordinal[id]]

		// Stage 4: production on the diagonal.
		p := production[id]
		if p == 0 {
			return nil, fmt.Errorf("%w: %q", ErrMissingProduction, id)
		}
		if err = tr.Add(j, j, p); err != nil {
			return nil, fmt.Errorf("inventory: production of %q: %w", id, err)
		}
		for _, ex := range inputs[id] {
			i, _ := index.IndexOf(ex.Input)
			if err = tr.Add(i, j, ex.Amount); err != nil {
				return nil, fmt.Errorf("inventory: exchange %q -> %q: %w", ex.Input, id, err)
			}
		}
	}
	m, err := tr.ToCSR()
	if err != nil {
		return nil, err
	}

	return &Technosphere{Matrix: m, Index: index, Entities: ents}, nil
}
