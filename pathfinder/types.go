// SPDX-License-Identifier: MIT

package pathfinder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/boukman/inventory"
	"github.com/katalvlaran/boukman/shortest"
)

// Sentinel errors for path resolution.
var (
	// ErrNilAdjacency indicates that FindPath received a nil adjacency.
	ErrNilAdjacency = errors.New("pathfinder: adjacency is nil")

	// ErrIndexOutOfRange indicates a source or target outside [0, n).
	ErrIndexOutOfRange = errors.New("pathfinder: index out of range")

	// ErrSameEndpoints indicates source == target; a path has at least two vertices.
	ErrSameEndpoints = errors.New("pathfinder: source and target are the same")

	// ErrDependencyUnavailable indicates an entity-level query without an
	// inventory collaborator.
	ErrDependencyUnavailable = errors.New("pathfinder: inventory dependency unavailable")
)

// Default algorithm for every query that does not pick one.
const DefaultAlgorithm = shortest.BellmanFord

// Edge is one step of an entity-level path: Consumer takes Amount of
// Supplier's product. Amount is the raw technosphere entry negated, so
// consumed inputs read positive.
type Edge struct {
	Supplier inventory.Entity `yaml:"supplier"`
	Consumer inventory.Entity `yaml:"consumer"`
	Amount   float64          `yaml:"amount"`
}

// String renders "consumer <- amount supplier".
func (e Edge) String() string {
	return fmt.Sprintf("%s <- %g %s", e.Consumer.ID, e.Amount, e.Supplier.ID)
}

// Option configures path resolution.
type Option func(*Options)

// Options holds the resolved configuration.
type Options struct {
	Algorithm shortest.Algorithm
	Engine    shortest.Engine
}

// DefaultOptions returns Bellman-Ford on the native engine.
func DefaultOptions() Options {
	return Options{Algorithm: DefaultAlgorithm, Engine: shortest.New()}
}

// WithAlgorithm selects the shortest-path algorithm.
// Panics on a value outside the Algorithm enum.
func WithAlgorithm(a shortest.Algorithm) Option {
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("pathfinder: WithAlgorithm: %v", err))
	}

	return func(o *Options) { o.Algorithm = a }
}

// WithEngine replaces the shortest-path engine. Panics on nil.
func WithEngine(e shortest.Engine) Option {
	if e == nil {
		panic("pathfinder: WithEngine(nil)")
	}

	return func(o *Options) { o.Engine = e }
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
