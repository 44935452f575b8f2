// SPDX-License-Identifier: MIT

package inventory

import (
	"context"
	"errors"

	"github.com/katalvlaran/boukman/matrix"
)

// Sentinel errors for inventory lookups and technosphere construction.
var (
	// ErrUnknownEntity indicates an EntityID that the inventory does not hold.
	ErrUnknownEntity = errors.New("inventory: unknown entity")

	// ErrDuplicateEntity indicates two entities sharing one EntityID.
	ErrDuplicateEntity = errors.New("inventory: duplicate entity")

	// ErrMissingProduction indicates an activity without a non-zero
	// production exchange; it cannot be normalized.
	ErrMissingProduction = errors.New("inventory: activity has no production amount")

	// ErrEmptyDemand indicates a technosphere request without any activity.
	ErrEmptyDemand = errors.New("inventory: empty demand")
)

// EntityID is the stable key of an activity in an inventory database.
type EntityID string

// Entity is an activity of the inventory: something that produces one
// reference product and consumes the products of other activities.
type Entity struct {
	ID       EntityID `yaml:"id"`
	Name     string   `yaml:"name"`
	Unit     string   `yaml:"unit,omitempty"`
	Location string   `yaml:"location,omitempty"`
}

// Exchange records that Output consumes Amount of Input's product.
// Input == Output marks the production exchange of that activity.
//
// Sign convention: production amounts are positive, consumed inputs negative.
type Exchange struct {
	Input  EntityID `yaml:"input"`
	Output EntityID `yaml:"output"`
	Amount float64  `yaml:"amount"`
}

// IsProduction reports whether e is a production exchange.
func (e Exchange) IsProduction() bool { return e.Input == e.Output }

// Technosphere is a flow matrix together with the mapping between its
// indices and inventory entities.
//
// Matrix[i][j] is the amount of entity i's product consumed by entity j;
// Matrix[i][i] is entity i's production amount.
type Technosphere struct {
	Matrix   *matrix.CSR
	Index    *Index
	Entities []Entity // Entities[i] is the entity at index i
}

// Entity returns the entity at matrix index i.
func (t *Technosphere) Entity(i int) (Entity, bool) {
	if i < 0 || i >= len(t.Entities) {
		return Entity{}, false
	}

	return t.Entities[i], true
}

// Inventory supplies technosphere matrices for entity-level path queries.
type Inventory interface {
	// Technosphere returns the flow matrix of the supply chain reachable
	// from the demanded activities; every demanded ID has an index.
	Technosphere(ctx context.Context, demand ...EntityID) (*Technosphere, error)
}
