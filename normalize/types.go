// SPDX-License-Identifier: MIT

package normalize

import (
	"errors"

	"github.com/katalvlaran/boukman/matrix"
)

// Sentinel errors returned by Normalize.
var (
	// ErrInvalidFlowMatrix marks a precondition violation of the raw flow
	// matrix (nil, non-square, zero or missing production amount). It is
	// joined with the matrix sentinel describing the exact violation.
	ErrInvalidFlowMatrix = errors.New("normalize: invalid flow matrix")

	// ErrInvalidLogValue indicates a zero or negative value reached the log
	// transform. This points to a malformed matrix or an upstream sign bug.
	ErrInvalidLogValue = errors.New("normalize: log transform of non-positive value")
)

// EdgeDirection names the orientation of normalized edges.
type EdgeDirection string

const (
	// TowardSuppliers: an edge u→v means "activity u consumes the output of
	// activity v", so a search walks from a functional activity down into its
	// supply chain.
	TowardSuppliers EdgeDirection = "consumer->supplier"

	// Direction is the fixed convention of every Adjacency. The input flow
	// matrix is read in consumption convention (flow[i][j] is the amount of
	// i's output consumed by j; production amounts on the diagonal) and is
	// transposed exactly once, inside Normalize.
	Direction = TowardSuppliers
)

// FlowCell maps a normalized edge from→to back to the raw flow-matrix cell
// (row, col) it was derived from.
func FlowCell(from, to int) (row, col int) { return to, from }

// DefaultLogTransform is the default of WithLogTransform.
const DefaultLogTransform = true

// Option configures Normalize.
type Option func(*Options)

// Options holds the effective Normalize configuration.
type Options struct {
	LogTransform bool // replace every stored v by -ln(v)
}

// WithLogTransform toggles the -ln transform of stored values.
func WithLogTransform(enabled bool) Option {
	return func(o *Options) { o.LogTransform = enabled }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{LogTransform: DefaultLogTransform}
}

// Adjacency is a normalized adjacency matrix. Only Normalize constructs one,
// so a raw flow matrix can never be mistaken for a search-ready graph.
// It is immutable and safe for concurrent reads.
type Adjacency struct {
	m              *matrix.CSR
	logTransformed bool
}

// Matrix returns the underlying CSR. CSR exposes no mutators, so sharing it
// is safe; use Clone for an independent copy.
func (a *Adjacency) Matrix() *matrix.CSR { return a.m }

// Size returns the number of vertices (activities).
func (a *Adjacency) Size() int { return a.m.Rows() }

// LogTransformed reports whether values are -ln weights.
func (a *Adjacency) LogTransformed() bool { return a.logTransformed }

// Direction returns the fixed edge orientation.
func (a *Adjacency) Direction() EdgeDirection { return Direction }

// Weight returns the stored weight of edge from→to and whether it exists.
func (a *Adjacency) Weight(from, to int) (float64, bool) {
	if !a.m.Has(from, to) {
		return 0, false
	}
	v, _ := a.m.At(from, to) // coordinates validated by Has

	return v, true
}

// Clone returns an independent deep copy.
func (a *Adjacency) Clone() *Adjacency {
	return &Adjacency{m: a.m.Clone(), logTransformed: a.logTransformed}
}
