// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/boukman/matrix"
)

// Normalize converts a raw flow matrix into a search-ready Adjacency.
//
// Implementation:
//   - Stage 1: validate the flow matrix (non-nil, square, every production
//     amount on the diagonal stored and non-zero). Nothing is computed on failure.
//   - Stage 2: transpose, so row j lists what activity j consumes.
//   - Stage 3: scale row j by -1/production[j]: the weight of j→i becomes the
//     negated amount of i needed per unit of j's reference output.
//   - Stage 4: discard the scaled production entries and add the identity,
//     leaving exactly 1 on every diagonal position.
//   - Stage 5 (log transform, default on): replace every stored v by -ln(v).
//     Multiplicative flow along a chain then adds up along a path.
//
// Errors:
//   - ErrInvalidFlowMatrix joined with matrix.ErrNilMatrix / ErrNonSquare /
//     ErrZeroDiagonal (Stage 1).
//   - ErrInvalidLogValue when a stored value is <= 0 at Stage 5.
//
// Complexity:
//   - Time O(n + nnz), Space O(n + nnz).
//
// Notes:
//   - The input is never mutated; every stage produces a fresh matrix.
//   - Off-diagonal entries that cancel to exactly zero are dropped; otherwise
//     the off-diagonal pattern equals the transposed input's.
//   - With the technosphere sign convention (inputs negative, production
//     positive) every off-diagonal value is positive after Stage 3, which is
//     what the log transform requires.
func Normalize(flow *matrix.CSR, opts ...Option) (*Adjacency, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Stage 1: preconditions, before any transformation.
	if err := matrix.ValidateNonZeroDiagonal(flow); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlowMatrix, err)
	}
	production := flow.Diagonal()

	// Stage 2: consumer rows.
	consumers, err := matrix.Transpose(flow)
	if err != nil {
		return nil, err
	}

	// Stage 3: per-unit, negated coefficients.
	scale := make([]float64, len(production))
	for j, p := range production {
		scale[j] = -1 / p
	}
	scaled, err := matrix.ScaleRows(consumers, scale)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFlowMatrix, err)
	}

	// Stage 4: unit diagonal.
	offDiagonal, err := matrix.DropDiagonal(scaled)
	if err != nil {
		return nil, err
	}
	normalized, err := matrix.AddIdentity(offDiagonal)
	if err != nil {
		return nil, err
	}

	if cfg.LogTransform {
		// Stage 5: -ln on every stored value; non-positive values fail loudly.
		normalized, err = matrix.Map(normalized, negLog)
		if err != nil {
			return nil, err
		}
	}

	return &Adjacency{m: normalized, logTransformed: cfg.LogTransform}, nil
}

// negLog is the Stage 5 transform.
func negLog(_, _ int, v float64) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("value %g: %w", v, ErrInvalidLogValue)
	}

	return -math.Log(v), nil
}
