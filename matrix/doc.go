// Package matrix offers the sparse and dense storages used by flow-network
// path analysis.
//
// The matrix package provides:
//
//   - CSR, an immutable compressed-sparse-row matrix: the working format for
//     flow matrices and normalized adjacency matrices.
//   - Triplets, a COO builder that accepts entries in any order, sums
//     duplicates and drops structural zeros.
//   - Sparse kernels (Transpose, ScaleRows, ScaleCols, DropDiagonal,
//     AddIdentity, Map) that never mutate their inputs.
//   - Dense, a small row-major helper for literals, inspection and tests.
//   - Validators and sentinel errors shared by every caller.
//
// All public operations return errors instead of panicking; option
// constructors panic only on programmer error (e.g. a negative tolerance).
//
// See the examples in this package for usage patterns.
package matrix
