// SPDX-License-Identifier: MIT

package inventory

import (
	"context"
	"fmt"
)

// Memory is an in-process Inventory over fixed entity and exchange lists.
// It is read-only after construction and safe for concurrent use.
type Memory struct {
	entities  []Entity
	exchanges []Exchange
	byID      map[EntityID]int
}

var _ Inventory = (*Memory)(nil)

// NewMemory copies entities and exchanges into a new Memory inventory.
// Returns ErrDuplicateEntity for repeated IDs and ErrUnknownEntity for an
// exchange that references an entity not in the list.
func NewMemory(entities []Entity, exchanges []Exchange) (*Memory, error) {
	m := &Memory{
		entities:  append([]Entity(nil), entities...),
		exchanges: append([]Exchange(nil), exchanges...),
		byID:      make(map[EntityID]int, len(entities)),
	}
	for i, e := range m.entities {
		if _, dup := m.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, e.ID)
		}
		m.byID[e.ID] = i
	}
	for _, ex := range m.exchanges {
		for _, id := range []EntityID{ex.Input, ex.Output} {
			if _, ok := m.byID[id]; !ok {
				return nil, fmt.Errorf("%w: %q in exchange %q -> %q", ErrUnknownEntity, id, ex.Input, ex.Output)
			}
		}
	}

	return m, nil
}

// Entity returns the entity with the given ID.
func (m *Memory) Entity(id EntityID) (Entity, bool) {
	i, ok := m.byID[id]
	if !ok {
		return Entity{}, false
	}

	return m.entities[i], true
}

// Entities returns a copy of the entity list.
func (m *Memory) Entities() []Entity { return append([]Entity(nil), m.entities...) }

// Exchanges returns a copy of the exchange list.
func (m *Memory) Exchanges() []Exchange { return append([]Exchange(nil), m.exchanges...) }

// Technosphere builds the supply-chain flow matrix for demand.
func (m *Memory) Technosphere(ctx context.Context, demand ...EntityID) (*Technosphere, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return BuildTechnosphere(m.entities, m.exchanges, demand)
}
